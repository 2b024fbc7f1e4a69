package model

// Progress is a snapshot of batch progress delivered to the UI.
// Completed equals Total after the last task; that is the batch's
// termination signal for observers.
type Progress struct {
	Completed int
	Total     int
	Message   string
}

// Done reports whether the batch has processed every task
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

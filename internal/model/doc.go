package model

// Package model defines domain data structures used across the app:
// conversion tasks, per-task outcomes, and batch progress snapshots.
// Outcomes are tagged values; all user-visible log text is derived
// from them rather than assembled ad hoc.

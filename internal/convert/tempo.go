package convert

import (
	"math"
	"strconv"
	"strings"
)

// ffmpeg atempo supports 0.5..2.0 per filter stage; factors outside
// that range are reached by chaining stages.
const (
	TempoStageMin = 0.5
	TempoStageMax = 2.0

	// TempoIdentityTolerance is the tolerance used to drop a residual
	// factor that is effectively 1.0 after rounding
	TempoIdentityTolerance = 1e-3
)

// TempoChain decomposes a target speed multiplier into a sequence of
// atempo stage factors, each within [TempoStageMin, TempoStageMax],
// whose product equals speed. Non-positive speeds are treated as 1.0.
// An identity speed yields a single 1.0 stage.
func TempoChain(speed float64) []float64 {
	if speed <= 0 {
		speed = 1.0
	}

	var factors []float64
	remaining := speed

	for remaining > TempoStageMax {
		factors = append(factors, TempoStageMax)
		remaining /= TempoStageMax
	}
	for remaining < TempoStageMin {
		factors = append(factors, TempoStageMin)
		remaining /= TempoStageMin
	}

	// Snap residual to 3 decimals to avoid float noise
	remaining = math.Round(remaining*1000) / 1000
	if !tempoIsIdentity(remaining) {
		factors = append(factors, remaining)
	}

	if len(factors) == 0 {
		factors = append(factors, 1.0)
	}
	return factors
}

// AtempoFilter renders the tempo chain for speed as an ffmpeg audio
// filter expression, e.g. "atempo=2,atempo=1.15".
func AtempoFilter(speed float64) string {
	factors := TempoChain(speed)
	stages := make([]string, 0, len(factors))
	for _, f := range factors {
		stages = append(stages, "atempo="+formatFactor(f))
	}
	return strings.Join(stages, ",")
}

// tempoIsIdentity reports whether f is within tolerance of 1.0
func tempoIsIdentity(f float64) bool {
	return math.Abs(f-1.0) <= TempoIdentityTolerance
}

// formatFactor renders a tempo factor without trailing zeros
func formatFactor(f float64) string {
	if f == 1.0 {
		return "1.0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

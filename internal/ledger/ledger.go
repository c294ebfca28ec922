// Package ledger holds the pure intoxication arithmetic. No I/O happens
// here; thresholds (overdose, pre-overdose) are judged by the bar service.
package ledger

// Normalize self-heals a corrupted level: anything outside [0, 100]
// collapses to 0. In-range values pass through unchanged.
func Normalize(level int) int {
	if level < 0 || level > 100 {
		return 0
	}
	return level
}

// Apply adds a drink's intoxication to the level. The result is not
// clamped upward; the caller checks the overdose threshold before
// persisting anything further.
func Apply(level, delta int) int {
	return level + delta
}

// DecayStep lowers the level by step, flooring at 0.
func DecayStep(level, step int) int {
	if level <= step {
		return 0
	}
	return level - step
}

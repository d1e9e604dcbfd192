package session

// Progress derives the lesson completion percentage from the step
// counter. It keeps full float precision; rounding happens at the
// display boundary only.
func Progress(stepIndex, steps int) float64 {
	if steps <= 0 {
		return 0
	}
	p := float64(stepIndex) / float64(steps) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

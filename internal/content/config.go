package content

// Config holds content generation settings.
type Config struct {
	LessonMaxTokens     int
	QuestionMaxTokens   int
	EvaluationMaxTokens int
	Temperature         float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		LessonMaxTokens:     1024,
		QuestionMaxTokens:   384,
		EvaluationMaxTokens: 256,
		Temperature:         0.6,
	}
}

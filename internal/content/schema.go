package content

import "github.com/abhisek/totli/internal/llm"

// LessonSchema defines the JSON schema for lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A short interactive lesson for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Lesson title",
			},
			"objective": map[string]any{
				"type":        "string",
				"description": "What the child will learn",
			},
			"content": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"text", "image", "interactive"},
						},
						"data": map[string]any{
							"type":        "string",
							"description": "Content text or image description",
						},
						"interaction": map[string]any{
							"type":        "string",
							"description": "How the child should interact with this step",
						},
					},
					"required":             []any{"type", "data"},
					"additionalProperties": false,
				},
			},
			"activities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"pointing", "speaking", "touching"},
						},
						"instruction": map[string]any{
							"type":        "string",
							"description": "What to do",
						},
						"expectedResponse": map[string]any{
							"type":        "string",
							"description": "Expected answer",
						},
					},
					"required":             []any{"type", "instruction", "expectedResponse"},
					"additionalProperties": false,
				},
			},
			"duration": map[string]any{
				"type":        "string",
				"description": "Estimated minutes, e.g. \"5 minutes\"",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
		},
		"required":             []any{"title", "objective", "content", "activities", "duration", "difficulty"},
		"additionalProperties": false,
	},
}

// QuestionSchema defines the JSON schema for quiz question generation.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A simple test question for a young child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Question text",
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"multiple_choice", "pointing", "speaking", "true_false"},
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Answer options for multiple choice",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct option",
			},
			"image": map[string]any{
				"type":        "string",
				"description": "Description of an image to show",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "Helpful hint",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
		},
		"required":             []any{"question", "type", "correctAnswer", "hint", "difficulty"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for answer evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Encouraging evaluation of a child's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type": "boolean",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging feedback message",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Simple explanation",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "Motivational message",
			},
		},
		"required":             []any{"isCorrect", "feedback", "explanation"},
		"additionalProperties": false,
	},
}

package content

// Built-in fallback payloads served whenever the provider fails. The
// learner never sees a raw generation error, only this fixed content.

// fallbackLessons maps subject to its offline lesson. Unknown subjects
// get the english entry.
var fallbackLessons = map[string]Lesson{
	"english": {
		Title:     "Let's Learn English!",
		Objective: "Learn basic English words",
		Content: []LessonStep{
			{Kind: StepText, Data: "Hello! Let's learn some English words today!", Interaction: "Listen and repeat"},
		},
		Activities: []Activity{
			{Kind: "speaking", Instruction: "Say 'Hello'", ExpectedResponse: "Hello"},
		},
		Duration:   "5 minutes",
		Difficulty: "beginner",
	},
	"urdu": {
		Title:     "اردو سیکھیں!",
		Objective: "بنیادی اردو الفاظ سیکھیں",
		Content: []LessonStep{
			{Kind: StepText, Data: "السلام علیکم! آج کچھ اردو الفاظ سیکھتے ہیں!", Interaction: "سن کر دہرائیں"},
		},
		Activities: []Activity{
			{Kind: "speaking", Instruction: "السلام علیکم کہیں", ExpectedResponse: "السلام علیکم"},
		},
		Duration:   "5 minutes",
		Difficulty: "beginner",
	},
	"math": {
		Title:     "Let's Count!",
		Objective: "Learn to count from 1 to 5",
		Content: []LessonStep{
			{Kind: StepText, Data: "Let's count together! 1, 2, 3, 4, 5!", Interaction: "Count along"},
		},
		Activities: []Activity{
			{Kind: "speaking", Instruction: "Count from 1 to 5", ExpectedResponse: "1, 2, 3, 4, 5"},
		},
		Duration:   "5 minutes",
		Difficulty: "beginner",
	},
	"arabic": {
		Title:     "تعلم العربية!",
		Objective: "تعلم الكلمات العربية الأساسية",
		Content: []LessonStep{
			{Kind: StepText, Data: "مرحبا! دعنا نتعلم بعض الكلمات العربية اليوم!", Interaction: "استمع وكرر"},
		},
		Activities: []Activity{
			{Kind: "speaking", Instruction: "قل مرحبا", ExpectedResponse: "مرحبا"},
		},
		Duration:   "5 minutes",
		Difficulty: "beginner",
	},
}

// FallbackLesson returns the offline lesson for a subject.
func FallbackLesson(subject string) Lesson {
	if l, ok := fallbackLessons[subject]; ok {
		return l
	}
	return fallbackLessons["english"]
}

// FallbackQuestion returns the subject-agnostic offline question.
func FallbackQuestion() Question {
	return Question{
		Question:      "What color is the sun?",
		Kind:          QuestionMultipleChoice,
		Options:       []string{"Red", "Yellow", "Blue", "Green"},
		CorrectAnswer: "Yellow",
		Image:         "A bright sun in the sky",
		Hint:          "It's bright and warm!",
		Difficulty:    "beginner",
	}
}

// FallbackEvaluation returns the always-encouraging offline evaluation.
func FallbackEvaluation() Evaluation {
	return Evaluation{
		IsCorrect:   false,
		Feedback:    "Good try! Let's try again.",
		Explanation: "Keep learning!",
	}
}

package model

// EvaluationGuide holds the three rubric tiers used to score an essay answer.
// Tier N describes what a score of N looks like.
type EvaluationGuide struct {
	Score0 string `json:"score_0"`
	Score1 string `json:"score_1"`
	Score2 string `json:"score_2"`
}

// Question is one fixed questionnaire entry. The question list is defined
// statically at process start and never mutated.
type Question struct {
	ID    int             `json:"id"`
	Text  string          `json:"question"`
	Guide EvaluationGuide `json:"-"`
}

// QuestionSummary is the public shape of a question, rubric omitted.
type QuestionSummary struct {
	ID   int    `json:"id"`
	Text string `json:"question"`
}

package model

// Evaluation is the scorer's verdict for a single answer.
type Evaluation struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// Feedback is the narrative outcome for a cumulative total score.
type Feedback struct {
	Range   string `json:"range"`
	Message string `json:"message"`
}

// AssessmentContext summarizes a completed questionnaire for use in the
// free-chat system prompt.
type AssessmentContext struct {
	TotalScore    int    `json:"total_score"`
	FeedbackRange string `json:"feedback_range"`
	Answers       string `json:"answers"`
}

// StartSessionResponse is returned by POST /start-session.
type StartSessionResponse struct {
	SessionID      string `json:"session_id"`
	Message        string `json:"message"`
	FirstQuestion  string `json:"first_question"`
	QuestionID     int    `json:"question_id"`
	TotalQuestions int    `json:"total_questions"`
}

// NextQuestionResponse is returned after answers to questions 1..4.
type NextQuestionResponse struct {
	Type         string `json:"type"`
	Question     string `json:"question"`
	QuestionID   int    `json:"question_id"`
	CurrentScore int    `json:"current_score"`
	Progress     string `json:"progress"`
}

// CompletionResponse is returned after the final answer.
type CompletionResponse struct {
	Type          string `json:"type"`
	TotalScore    int    `json:"total_score"`
	Feedback      string `json:"feedback"`
	FeedbackRange string `json:"feedback_range"`
	Message       string `json:"message"`
}

// ChatResponse is returned for free-chat turns.
type ChatResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

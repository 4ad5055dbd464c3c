package model

import "time"

// Interaction phases. A session moves from the questionnaire into free chat;
// the phase of each ledger row is recorded in its metadata.
const (
	PhaseQuestionnaire         = "questionnaire"
	PhaseQuestionnaireComplete = "questionnaire_complete"
	PhaseFreeChat              = "free_chat"
)

// Interaction kinds persisted in the interaction_type column.
const (
	InteractionQuestionnaire = "questionnaire"
	InteractionFreeChat      = "free_chat"
)

// Sentinel user messages. SessionStart marks session creation;
// QuestionnaireComplete marks the terminal questionnaire row, which is the
// unique source of the final total score and feedback band.
const (
	SentinelSessionStart          = "SESSION_START"
	SentinelQuestionnaireComplete = "QUESTIONNAIRE_COMPLETE"
)

// ScoreEntry is one scored answer, accumulated in order inside each ledger
// row's metadata so running totals can be rebuilt without a separate table.
type ScoreEntry struct {
	QuestionID int `json:"question_id" bson:"question_id"`
	Score      int `json:"score" bson:"score"`
}

// InteractionMetadata is the structured metadata record attached to every
// ledger row. Its populated fields depend on the phase.
type InteractionMetadata struct {
	Phase           string       `json:"phase" bson:"phase"`
	QuestionIndex   *int         `json:"question_index,omitempty" bson:"question_index,omitempty"`
	QuestionID      int          `json:"question_id,omitempty" bson:"question_id,omitempty"`
	Score           *int         `json:"score,omitempty" bson:"score,omitempty"`
	Scores          []ScoreEntry `json:"scores" bson:"scores"`
	TotalScore      *int         `json:"total_score,omitempty" bson:"total_score,omitempty"`
	FeedbackRange   string       `json:"feedback_range,omitempty" bson:"feedback_range,omitempty"`
	ContextUsed     *bool        `json:"context_used,omitempty" bson:"context_used,omitempty"`
	AssessmentScore *int         `json:"assessment_score,omitempty" bson:"assessment_score,omitempty"`
}

// Interaction is one append-only ledger row. Rows are immutable once written;
// session state is derived by querying the latest or matching rows.
type Interaction struct {
	ID              string              `json:"id" bson:"_id,omitempty"`
	SessionID       string              `json:"session_id" bson:"session_id"`
	UserMessage     string              `json:"user_message" bson:"user_message"`
	BotResponse     string              `json:"bot_response" bson:"bot_response"`
	InteractionType string              `json:"interaction_type" bson:"interaction_type"`
	QuestionNumber  *int                `json:"question_number,omitempty" bson:"question_number,omitempty"`
	Score           *int                `json:"score,omitempty" bson:"score,omitempty"`
	Metadata        InteractionMetadata `json:"metadata" bson:"metadata"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
}

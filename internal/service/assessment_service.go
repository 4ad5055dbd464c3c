package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"cyclica-api/internal/cache"
	"cyclica-api/internal/model"
	"cyclica-api/internal/repository"
)

// AssessmentService drives the questionnaire phase: question order, score
// accumulation, and the transition into feedback. There is no in-process
// session state; everything is reconstructed from the ledger (with a redis
// snapshot on the hot path), so two concurrent answers for one session can
// race on the score sequence. Accepted for single-user-per-session usage.
type AssessmentService struct {
	interactions repository.InteractionRepository
	sessions     cache.SessionCache
	evaluator    *EvaluatorService
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(interactions repository.InteractionRepository, sessions cache.SessionCache, evaluator *EvaluatorService) *AssessmentService {
	return &AssessmentService{
		interactions: interactions,
		sessions:     sessions,
		evaluator:    evaluator,
	}
}

// GetQuestions returns the questionnaire with rubrics omitted.
func (s *AssessmentService) GetQuestions() []model.QuestionSummary {
	return QuestionSummaries()
}

// StartSession creates a session by writing the SESSION_START sentinel row
// and returns the first question. A failed write abandons the session.
func (s *AssessmentService) StartSession(ctx context.Context) (*model.StartSessionResponse, error) {
	sessionID := newSessionID()
	questionIndex := 0

	row := &model.Interaction{
		SessionID:       sessionID,
		UserMessage:     model.SentinelSessionStart,
		BotResponse:     "Cultural fit assessment initiated",
		InteractionType: model.InteractionQuestionnaire,
		Metadata: model.InteractionMetadata{
			Phase:         model.PhaseQuestionnaire,
			QuestionIndex: &questionIndex,
			Scores:        []model.ScoreEntry{},
		},
	}

	if err := s.interactions.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &model.StartSessionResponse{
		SessionID:      sessionID,
		Message:        "Welcome to Cyclica's cultural fit assessment",
		FirstQuestion:  questions[0].Text,
		QuestionID:     questions[0].ID,
		TotalQuestions: TotalQuestions(),
	}, nil
}

// SubmitAnswer scores one answer and advances the questionnaire. Exactly one
// of the two responses is non-nil on success: the next question for questions
// 1..4, the completion payload after the last one. Re-answering an already
// answered question is not guarded and double-counts its score.
func (s *AssessmentService) SubmitAnswer(ctx context.Context, sessionID string, questionID int, answer string) (*model.NextQuestionResponse, *model.CompletionResponse, error) {
	question := QuestionByID(questionID)
	if question == nil {
		return nil, nil, fmt.Errorf("question %d not found", questionID)
	}

	evaluation := s.evaluator.EvaluateAnswer(ctx, question, answer)

	scores, err := s.currentScores(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	newScores := append(append([]model.ScoreEntry{}, scores...), model.ScoreEntry{
		QuestionID: questionID,
		Score:      evaluation.Score,
	})
	totalScore := 0
	for _, entry := range newScores {
		totalScore += entry.Score
	}

	row := &model.Interaction{
		SessionID:       sessionID,
		UserMessage:     answer,
		BotResponse:     evaluation.Reasoning,
		InteractionType: model.InteractionQuestionnaire,
		QuestionNumber:  &questionID,
		Score:           &evaluation.Score,
		Metadata: model.InteractionMetadata{
			Phase:      model.PhaseQuestionnaire,
			QuestionID: questionID,
			Score:      &evaluation.Score,
			Scores:     newScores,
			TotalScore: &totalScore,
		},
	}
	if err := s.interactions.Create(ctx, row); err != nil {
		return nil, nil, fmt.Errorf("failed to record answer: %w", err)
	}

	if err := s.sessions.SetScores(ctx, sessionID, newScores); err != nil {
		log.Printf("Session cache write failed: %v", err)
	}

	if questionID < TotalQuestions() {
		next := questions[questionID]
		return &model.NextQuestionResponse{
			Type:         "next_question",
			Question:     next.Text,
			QuestionID:   next.ID,
			CurrentScore: totalScore,
			Progress:     fmt.Sprintf("%d/%d", questionID, TotalQuestions()),
		}, nil, nil
	}

	return nil, s.complete(ctx, sessionID, totalScore, newScores), nil
}

// complete writes the terminal sentinel row and builds the final payload. The
// feedback itself is already computed; a failed terminal write is logged but
// does not withhold the result from the candidate.
func (s *AssessmentService) complete(ctx context.Context, sessionID string, totalScore int, scores []model.ScoreEntry) *model.CompletionResponse {
	feedback := GenerateFeedback(totalScore)

	row := &model.Interaction{
		SessionID:       sessionID,
		UserMessage:     model.SentinelQuestionnaireComplete,
		BotResponse:     feedback.Message,
		InteractionType: model.InteractionQuestionnaire,
		Score:           &totalScore,
		Metadata: model.InteractionMetadata{
			Phase:         model.PhaseQuestionnaireComplete,
			TotalScore:    &totalScore,
			FeedbackRange: feedback.Range,
			Scores:        scores,
		},
	}
	if err := s.interactions.Create(ctx, row); err != nil {
		log.Printf("Failed to record questionnaire completion: %v", err)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.Printf("Session cache delete failed: %v", err)
	}

	return &model.CompletionResponse{
		Type:          "questionnaire_complete",
		TotalScore:    totalScore,
		Feedback:      feedback.Message,
		FeedbackRange: feedback.Range,
		Message:       "Do you want to talk more about any of these topics? Feel free to drop your doubts so we can explain better to you our vision.",
	}
}

// currentScores returns the score sequence accumulated so far, cache first,
// ledger on miss. An unknown session yields an empty sequence.
func (s *AssessmentService) currentScores(ctx context.Context, sessionID string) ([]model.ScoreEntry, error) {
	cached, err := s.sessions.GetScores(ctx, sessionID)
	if err != nil {
		log.Printf("Session cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	latest, err := s.interactions.LatestBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if latest == nil {
		return nil, nil
	}

	return latest.Metadata.Scores, nil
}

// AssessmentContext summarizes a session's completed questionnaire for the
// free-chat prompt. It returns nil when the session never answered anything;
// absence is not an error.
func (s *AssessmentService) AssessmentContext(ctx context.Context, sessionID string) (*model.AssessmentContext, error) {
	rows, err := s.interactions.BySessionAndPhase(ctx, sessionID, model.PhaseQuestionnaire, 0)
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	totalScore := 0
	feedbackRange := "unknown"
	if completion, err := s.interactions.CompletionRow(ctx, sessionID); err == nil && completion != nil {
		if completion.Metadata.TotalScore != nil {
			totalScore = *completion.Metadata.TotalScore
		}
		if completion.Metadata.FeedbackRange != "" {
			feedbackRange = completion.Metadata.FeedbackRange
		}
	}

	var answers []string
	for _, row := range rows {
		if row.UserMessage == "" || strings.Contains(row.UserMessage, "SESSION") {
			continue
		}
		answers = append(answers, fmt.Sprintf("Q%d: %s", len(answers)+1, row.UserMessage))
	}

	return &model.AssessmentContext{
		TotalScore:    totalScore,
		FeedbackRange: feedbackRange,
		Answers:       strings.Join(answers, "\n"),
	}, nil
}

func newSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().Unix(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

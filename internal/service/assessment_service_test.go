package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cyclica-api/internal/config"
	"cyclica-api/internal/model"
)

// memLedger is an in-memory InteractionRepository.
type memLedger struct {
	rows []*model.Interaction
}

func (m *memLedger) Create(_ context.Context, interaction *model.Interaction) error {
	row := *interaction
	row.ID = fmt.Sprintf("row-%d", len(m.rows)+1)
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().Add(time.Duration(len(m.rows)) * time.Millisecond)
	}
	m.rows = append(m.rows, &row)
	interaction.ID = row.ID
	return nil
}

func (m *memLedger) LatestBySession(_ context.Context, sessionID string) (*model.Interaction, error) {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].SessionID == sessionID {
			return m.rows[i], nil
		}
	}
	return nil, nil
}

func (m *memLedger) BySessionAndPhase(_ context.Context, sessionID, phase string, limit int64) ([]*model.Interaction, error) {
	var out []*model.Interaction
	for _, row := range m.rows {
		if row.SessionID == sessionID && row.Metadata.Phase == phase {
			out = append(out, row)
		}
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[int64(len(out))-limit:]
	}
	return out, nil
}

func (m *memLedger) CompletionRow(_ context.Context, sessionID string) (*model.Interaction, error) {
	for _, row := range m.rows {
		if row.SessionID == sessionID && row.UserMessage == model.SentinelQuestionnaireComplete {
			return row, nil
		}
	}
	return nil, nil
}

// memSessionCache is an in-memory SessionCache.
type memSessionCache struct {
	scores map[string][]model.ScoreEntry
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{scores: make(map[string][]model.ScoreEntry)}
}

func (m *memSessionCache) GetScores(_ context.Context, sessionID string) ([]model.ScoreEntry, error) {
	return m.scores[sessionID], nil
}

func (m *memSessionCache) SetScores(_ context.Context, sessionID string, scores []model.ScoreEntry) error {
	m.scores[sessionID] = scores
	return nil
}

func (m *memSessionCache) Delete(_ context.Context, sessionID string) error {
	delete(m.scores, sessionID)
	return nil
}

// newAssessmentFixture wires an assessment service to an in-memory ledger and
// a stub completion endpoint that always scores fixedScore.
func newAssessmentFixture(t *testing.T, fixedScore int) (*AssessmentService, *memLedger, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"content":"{\"score\": %d, \"reasoning\": \"stub\"}"}}]}`, fixedScore)
	}))

	cfg := config.DefaultAIConfig()
	cfg.APIKey = "test"
	cfg.BaseURL = server.URL

	ledger := &memLedger{}
	svc := NewAssessmentService(ledger, newMemSessionCache(), NewEvaluatorService(cfg, NewOpenAIClient(cfg)))
	return svc, ledger, server
}

func TestStartSessionWritesSentinelRow(t *testing.T) {
	svc, ledger, server := newAssessmentFixture(t, 2)
	defer server.Close()

	resp, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	if !strings.HasPrefix(resp.SessionID, "session_") {
		t.Errorf("unexpected session id %q", resp.SessionID)
	}
	if resp.QuestionID != 1 || resp.TotalQuestions != 5 {
		t.Errorf("unexpected start response: %+v", resp)
	}
	if resp.FirstQuestion != QuestionByID(1).Text {
		t.Errorf("first question mismatch: %q", resp.FirstQuestion)
	}

	if len(ledger.rows) != 1 {
		t.Fatalf("expected 1 ledger row, got %d", len(ledger.rows))
	}
	row := ledger.rows[0]
	if row.UserMessage != model.SentinelSessionStart {
		t.Errorf("unexpected sentinel %q", row.UserMessage)
	}
	if row.Metadata.Phase != model.PhaseQuestionnaire || len(row.Metadata.Scores) != 0 {
		t.Errorf("unexpected metadata: %+v", row.Metadata)
	}
	if row.Metadata.QuestionIndex == nil || *row.Metadata.QuestionIndex != 0 {
		t.Errorf("expected question_index 0, got %+v", row.Metadata.QuestionIndex)
	}
}

func TestSubmitAnswerSequencing(t *testing.T) {
	svc, _, server := newAssessmentFixture(t, 2)
	defer server.Close()
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	for q := 1; q <= 4; q++ {
		next, complete, err := svc.SubmitAnswer(ctx, start.SessionID, q, "I adapt my workload to my energy and communicate openly.")
		if err != nil {
			t.Fatalf("SubmitAnswer(%d) failed: %v", q, err)
		}
		if complete != nil {
			t.Fatalf("question %d should not complete the questionnaire", q)
		}
		if next.Type != "next_question" || next.QuestionID != q+1 {
			t.Fatalf("unexpected next response for question %d: %+v", q, next)
		}
		if next.Progress != fmt.Sprintf("%d/5", q) {
			t.Errorf("unexpected progress: %q", next.Progress)
		}
		if next.CurrentScore != 2*q {
			t.Errorf("unexpected running total after question %d: %d", q, next.CurrentScore)
		}
	}

	next, complete, err := svc.SubmitAnswer(ctx, start.SessionID, 5, "Flexibility fits how I already work; I keep my team in the loop.")
	if err != nil {
		t.Fatalf("SubmitAnswer(5) failed: %v", err)
	}
	if next != nil {
		t.Fatal("final answer must not yield a next question")
	}
	if complete.Type != "questionnaire_complete" || complete.TotalScore != 10 || complete.FeedbackRange != "9-10" {
		t.Fatalf("unexpected completion: %+v", complete)
	}
	if complete.Feedback == "" || complete.Message == "" {
		t.Errorf("completion missing narrative text: %+v", complete)
	}
}

func TestSubmitAnswerCompletionRow(t *testing.T) {
	svc, ledger, server := newAssessmentFixture(t, 1)
	defer server.Close()
	ctx := context.Background()

	start, _ := svc.StartSession(ctx)
	for q := 1; q <= 5; q++ {
		if _, _, err := svc.SubmitAnswer(ctx, start.SessionID, q, "Balance matters, though I have not thought deeply about rhythms."); err != nil {
			t.Fatalf("SubmitAnswer(%d) failed: %v", q, err)
		}
	}

	completion, err := ledger.CompletionRow(ctx, start.SessionID)
	if err != nil || completion == nil {
		t.Fatalf("expected completion row, got %v / %v", completion, err)
	}
	if completion.Metadata.Phase != model.PhaseQuestionnaireComplete {
		t.Errorf("unexpected phase %q", completion.Metadata.Phase)
	}
	if completion.Metadata.TotalScore == nil || *completion.Metadata.TotalScore != 5 {
		t.Errorf("unexpected total score: %+v", completion.Metadata.TotalScore)
	}
	if completion.Metadata.FeedbackRange != "4-6" {
		t.Errorf("unexpected range %q", completion.Metadata.FeedbackRange)
	}
	if len(completion.Metadata.Scores) != 5 {
		t.Errorf("expected 5 score entries, got %d", len(completion.Metadata.Scores))
	}
}

func TestSubmitAnswerFirstAnswerWithoutSession(t *testing.T) {
	// A session unknown to the ledger starts from an empty score sequence.
	svc, _, server := newAssessmentFixture(t, 2)
	defer server.Close()

	next, _, err := svc.SubmitAnswer(context.Background(), "session_unseen", 1, "I slow down and reprioritize when my energy drops.")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if next.CurrentScore != 2 || next.Progress != "1/5" {
		t.Fatalf("unexpected response: %+v", next)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	svc, _, server := newAssessmentFixture(t, 2)
	defer server.Close()

	if _, _, err := svc.SubmitAnswer(context.Background(), "session_x", 9, "whatever answer"); err == nil {
		t.Fatal("expected error for unknown question id")
	}
}

func TestAssessmentContext(t *testing.T) {
	svc, _, server := newAssessmentFixture(t, 2)
	defer server.Close()
	ctx := context.Background()

	// No rows at all
	missing, err := svc.AssessmentContext(ctx, "session_none")
	if err != nil || missing != nil {
		t.Fatalf("expected nil context for unknown session, got %v / %v", missing, err)
	}

	start, _ := svc.StartSession(ctx)
	for q := 1; q <= 5; q++ {
		if _, _, err := svc.SubmitAnswer(ctx, start.SessionID, q, fmt.Sprintf("Answer number %d about sustainable rhythms and trust.", q)); err != nil {
			t.Fatalf("SubmitAnswer(%d) failed: %v", q, err)
		}
	}

	assessment, err := svc.AssessmentContext(ctx, start.SessionID)
	if err != nil || assessment == nil {
		t.Fatalf("expected assessment context, got %v / %v", assessment, err)
	}
	if assessment.TotalScore != 10 || assessment.FeedbackRange != "9-10" {
		t.Errorf("unexpected assessment summary: %+v", assessment)
	}
	if strings.Contains(assessment.Answers, "SESSION") {
		t.Errorf("sentinel rows leaked into answers: %q", assessment.Answers)
	}
	if !strings.Contains(assessment.Answers, "Q1: Answer number 1") || !strings.Contains(assessment.Answers, "Q5: Answer number 5") {
		t.Errorf("answers summary incomplete: %q", assessment.Answers)
	}
}

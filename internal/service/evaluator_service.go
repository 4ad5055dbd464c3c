package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cyclica-api/internal/config"
	"cyclica-api/internal/model"
)

// EvaluatorService scores free-text answers against the question rubric via
// the LLM. A broken scoring call must never block questionnaire progression,
// so every failure degrades to a neutral score.
type EvaluatorService struct {
	config *config.AIConfig
	client *OpenAIClient
}

// NewEvaluatorService creates a new evaluator service.
func NewEvaluatorService(cfg *config.AIConfig, client *OpenAIClient) *EvaluatorService {
	return &EvaluatorService{
		config: cfg,
		client: client,
	}
}

// EvaluateAnswer scores an answer 0-2 with reasoning. It never returns an
// error: invocation or parse failures yield the neutral fallback, and when no
// API key is configured the local mock path is used.
func (s *EvaluatorService) EvaluateAnswer(ctx context.Context, question *model.Question, answer string) *model.Evaluation {
	if !s.config.IsEnabled() {
		return s.mockEvaluate(answer)
	}

	prompt := s.buildScoringPrompt(question, answer)
	messages := []ChatMessage{{Role: "user", Content: prompt}}

	content, err := s.client.ChatCompletion(ctx, s.config.Models.Scoring, messages, s.config.ScoringTemperature, 0)
	if err != nil {
		log.Printf("Evaluation call failed: %v", err)
		return neutralEvaluation()
	}

	result, err := parseEvaluation(content)
	if err != nil {
		log.Printf("Evaluation parse failed: %v", err)
		return neutralEvaluation()
	}

	return result
}

// parseEvaluation treats the model output as an untrusted format: the JSON
// must carry an integer score in {0,1,2} and a string reasoning.
func parseEvaluation(content string) (*model.Evaluation, error) {
	cleaned := stripCodeFence(content)

	var parsed struct {
		Score     *int   `json:"score"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("invalid evaluation JSON: %w", err)
	}

	if parsed.Score == nil || *parsed.Score < 0 || *parsed.Score > 2 {
		return nil, fmt.Errorf("score out of range")
	}
	if parsed.Reasoning == "" {
		return nil, fmt.Errorf("missing reasoning")
	}

	return &model.Evaluation{Score: *parsed.Score, Reasoning: parsed.Reasoning}, nil
}

// stripCodeFence removes a markdown code-fence wrapper if present.
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func neutralEvaluation() *model.Evaluation {
	return &model.Evaluation{
		Score:     1,
		Reasoning: "Could not evaluate, assigned neutral score",
	}
}

func (s *EvaluatorService) buildScoringPrompt(question *model.Question, answer string) string {
	return fmt.Sprintf(`You are evaluating a candidate's cultural fit for Cyclica, a company that values body awareness, cyclical work rhythms, flexibility, and sustainable productivity.

Company Context:
%s

Question Asked: %s

Candidate's Answer: "%s"

CRITICAL: Before evaluating, check for invalid responses:
- Repeated letters (e.g., "xxxx", "aaaa", "test test test")
- Non-meaningful text or gibberish
- Copy-pasted text unrelated to the question
→ If detected, assign score 0 immediately with reasoning: "Response appears to be placeholder text or invalid input"

Evaluation Guidelines (use these to assess the answer, NOT as expected answers):
- Score 0 if: %s
- Score 1 if: %s
- Score 2 if: %s

Analyze the candidate's answer and determine how well it aligns with Cyclica's values. Consider:
- Awareness of bodily needs and their impact on work
- Openness to flexibility and non-traditional work structures
- Understanding of sustainable productivity vs. constant performance
- Respect for collective well-being and trust-based relationships

Respond ONLY with a JSON object:
{
  "score": <number 0-2>,
  "reasoning": "<brief explanation of why this score was given in relation to Cyclica's values>"
}`,
		companyContext, question.Text, answer,
		question.Guide.Score0, question.Guide.Score1, question.Guide.Score2)
}

// mockEvaluate is the no-API-key path: the validator catches gibberish and
// answer length stands in for depth.
func (s *EvaluatorService) mockEvaluate(answer string) *model.Evaluation {
	if !IsValidAnswer(answer) {
		return &model.Evaluation{
			Score:     0,
			Reasoning: "Response appears to be placeholder text or invalid input",
		}
	}

	if len(strings.Fields(answer)) >= 30 {
		return &model.Evaluation{
			Score:     2,
			Reasoning: "Mock evaluation: detailed response with reasonable vocabulary diversity.",
		}
	}

	return &model.Evaluation{
		Score:     1,
		Reasoning: "Mock evaluation based on response length.",
	}
}

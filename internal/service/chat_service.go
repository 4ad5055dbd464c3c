package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cyclica-api/internal/config"
	"cyclica-api/internal/model"
	"cyclica-api/internal/repository"
)

// contextTopK is how many document excerpts are retrieved per message.
const contextTopK = 3

// historyRowLimit is how many free-chat ledger rows are replayed, and
// historyMessageLimit how many flattened turns survive into the prompt.
const (
	historyRowLimit     = 10
	historyMessageLimit = 6
)

// ChatService orchestrates the free-chat phase: it assembles the system
// prompt from company context, retrieved excerpts, the document list, and the
// prior assessment summary, then asks the LLM for a reply.
type ChatService struct {
	config       *config.AIConfig
	client       *OpenAIClient
	interactions repository.InteractionRepository
	assessment   *AssessmentService
	retriever    *RetrieverService
}

// NewChatService creates a new chat service.
func NewChatService(cfg *config.AIConfig, client *OpenAIClient, interactions repository.InteractionRepository, assessment *AssessmentService, retriever *RetrieverService) *ChatService {
	return &ChatService{
		config:       cfg,
		client:       client,
		interactions: interactions,
		assessment:   assessment,
		retriever:    retriever,
	}
}

// Chat produces one conversational reply for a session. Free-chat input is
// not validated; retrieval and assessment lookups are best-effort, but a
// failed completion call is surfaced.
func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	assessmentCtx, err := s.assessment.AssessmentContext(ctx, sessionID)
	if err != nil {
		log.Printf("Assessment context lookup failed: %v", err)
		assessmentCtx = nil
	}

	chunks := s.retriever.FindRelevantContext(ctx, message, contextTopK)
	documents := s.retriever.AvailableDocuments(ctx)
	history := s.conversationHistory(ctx, sessionID)

	systemPrompt := buildChatSystemPrompt(documents, chunks, assessmentCtx)

	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	reply, err := s.completeChat(ctx, messages)
	if err != nil {
		return "", err
	}

	contextUsed := len(chunks) > 0
	metadata := model.InteractionMetadata{
		Phase:       model.PhaseFreeChat,
		ContextUsed: &contextUsed,
	}
	if assessmentCtx != nil {
		score := assessmentCtx.TotalScore
		metadata.AssessmentScore = &score
	}

	row := &model.Interaction{
		SessionID:       sessionID,
		UserMessage:     message,
		BotResponse:     reply,
		InteractionType: model.InteractionFreeChat,
		Metadata:        metadata,
	}
	if err := s.interactions.Create(ctx, row); err != nil {
		log.Printf("Failed to record chat interaction: %v", err)
	}

	return reply, nil
}

func (s *ChatService) completeChat(ctx context.Context, messages []ChatMessage) (string, error) {
	if !s.config.IsEnabled() {
		return "Thank you for sharing that. I'd love to hear more about what a workplace that respects your rhythms would look like for you. (The assistant is running without an API key, so replies are canned.)", nil
	}

	return s.client.ChatCompletion(ctx, s.config.Models.Chat, messages, s.config.ChatTemperature, s.config.ChatMaxTokens)
}

// conversationHistory replays the session's recent free-chat rows as
// alternating user/assistant turns, trimmed to the most recent entries.
func (s *ChatService) conversationHistory(ctx context.Context, sessionID string) []ChatMessage {
	rows, err := s.interactions.BySessionAndPhase(ctx, sessionID, model.PhaseFreeChat, historyRowLimit)
	if err != nil {
		log.Printf("Chat history lookup failed: %v", err)
		return nil
	}

	messages := make([]ChatMessage, 0, len(rows)*2)
	for _, row := range rows {
		messages = append(messages,
			ChatMessage{Role: "user", Content: row.UserMessage},
			ChatMessage{Role: "assistant", Content: row.BotResponse},
		)
	}

	if len(messages) > historyMessageLimit {
		messages = messages[len(messages)-historyMessageLimit:]
	}
	return messages
}

func buildChatSystemPrompt(documents []string, chunks []model.ContextChunk, assessment *model.AssessmentContext) string {
	var contextText strings.Builder
	contextText.WriteString("\n\nAvailable Research Documents in Database:\n")
	if len(documents) > 0 {
		for i, doc := range documents {
			if i > 0 {
				contextText.WriteString("\n")
			}
			fmt.Fprintf(&contextText, "%d. %s", i+1, doc)
		}
	} else {
		contextText.WriteString("No documents currently available.")
	}

	if len(chunks) > 0 {
		contextText.WriteString("\n\nRelevant excerpts from research:\n\n")
		for i, chunk := range chunks {
			fmt.Fprintf(&contextText, "[Excerpt %d from %s]\n%s\n\n", i+1, chunk.Filename, chunk.Content)
		}
	}

	assessmentInfo := ""
	if assessment != nil {
		assessmentInfo = fmt.Sprintf(`

Candidate's Assessment Context:
- Total Score: %d/10 (Range: %s)
- This indicates their level of alignment with Cyclica's values

Previous answers from assessment:
%s

Use this context to provide more personalized responses based on their alignment level.`,
			assessment.TotalScore, assessment.FeedbackRange, assessment.Answers)
	}

	return fmt.Sprintf(`You are an empathetic HR professional representing Cyclica, a fictional company created as part of a Master's thesis in Design and Interaction.
All conversations are academic and exploratory in nature and are part of a speculative research project.
The recruitment process presented here is fictional and exists only to support reflection and research.

This chat takes place after an initial conversation where we explored your perspectives on work, well-being, and values.
Never refer to it as an "assessment" or "test" — it was simply a reflective dialogue.
Its purpose is not evaluation, but to offer space for deeper reflection and dialogue around Cyclica's values, ideas, and vision of work.

At Cyclica, we believe that work is shaped by people, rhythms, and relationships. We focus on flexibility, well-being, collaboration, and sustainable growth rather than solely on skills or performance.
Important:
- Never use words like "assessment", "test", "evaluation", or "score" when referring to previous responses
- Instead say: "your previous responses", "what you shared earlier", "our earlier conversation"

Tone of voice: empathetic, warm, respectful, collaborative
Response style: short, clear texts (2-4 sentences), human and conversational
Approach: reflective, non-judgmental, supportive, peer-to-peer (not superior)
Depth: grounded in Designing Futures principles (speculation, critique, rethinking dominant productivity narratives), translated into accessible language
Knowledge base: use the database as a primary reference to connect well-being, bodily rhythms, and cultural perceptions of menstruation, without academic or medical claims

CRITICAL LANGUAGE GUIDELINES:
- AVOID phrases like "We at Cyclica", "At Cyclica we", "Cyclica believes"
- INSTEAD use: "This approach focuses on...", "The idea is that...", "One way to think about it..."
- Speak as equals having a conversation, not as company representatives lecturing
- Frame ideas as invitations to explore, not assertions of superiority
- Use "you might find", "some people experience", "research suggests" instead of "we provide", "we offer"
- When discussing company practices, say "This includes..." not "We have..."

Examples:
❌ "We at Cyclica believe that flexibility is key"
✅ "Flexibility can be key to sustainable work"

❌ "At Cyclica, we provide heating pads"
✅ "Things like heating pads or quiet spaces can make a real difference"

❌ "We value cyclical rhythms"
✅ "Recognizing the body's natural rhythms can reshape how we think about productivity"

Encourage reflection, normalize different experiences, and invite dialogue as peers.
Do not position Cyclica as having all the answers or being superior to other workplaces.
Do not assess, diagnose, persuade, or promise outcomes.
Do not use yes/no questions or technical jargon.

Always prioritize psychological safety and agency.
End reflective explanations by inviting the user to continue the conversation or ask questions about Cyclica's vision.

%s

%s

%s

Your role is to:
- Answer questions about Cyclica's approach to workplace well-being, flexibility, and cyclical work rhythms
- Reference the research documents when relevant to support your explanations
- Explain how our values translate into daily practices
- Be warm, welcoming, and honest about our culture
- Help candidates understand if they would thrive in our environment
- Tailor responses based on their assessment score if available
- Create space for their perspective, not just present Cyclica's view`,
		companyContext, contextText.String(), assessmentInfo)
}

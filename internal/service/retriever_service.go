package service

import (
	"context"
	"log"

	"cyclica-api/internal/cache"
	"cyclica-api/internal/config"
	"cyclica-api/internal/model"
	"cyclica-api/internal/repository"
)

// similarityThreshold gates which document chunks count as relevant context.
const similarityThreshold = 0.7

// maxDocumentList caps the available-document listing.
const maxDocumentList = 100

// RetrieverService finds document passages relevant to a free-chat message.
// Retrieval is best-effort: every failure degrades to an empty result so chat
// keeps working without context.
type RetrieverService struct {
	config   *config.AIConfig
	client   *OpenAIClient
	docRepo  repository.DocumentRepository
	docCache cache.DocumentCache
}

// NewRetrieverService creates a new retriever service.
func NewRetrieverService(cfg *config.AIConfig, client *OpenAIClient, docRepo repository.DocumentRepository, docCache cache.DocumentCache) *RetrieverService {
	return &RetrieverService{
		config:   cfg,
		client:   client,
		docRepo:  docRepo,
		docCache: docCache,
	}
}

// FindRelevantContext embeds the query and returns the top-k chunks above the
// similarity threshold, or nothing on any failure.
func (s *RetrieverService) FindRelevantContext(ctx context.Context, query string, topK int) []model.ContextChunk {
	if !s.config.IsEnabled() {
		return nil
	}

	embedding, err := s.client.Embedding(ctx, query)
	if err != nil {
		log.Printf("Embedding call failed: %v", err)
		return nil
	}

	chunks, err := s.docRepo.SearchSimilar(ctx, embedding, similarityThreshold, topK)
	if err != nil {
		log.Printf("Similarity search failed: %v", err)
		return nil
	}

	return chunks
}

// AvailableDocuments lists the distinct indexed document filenames, cache
// first, empty on failure.
func (s *RetrieverService) AvailableDocuments(ctx context.Context) []string {
	if cached, err := s.docCache.GetFilenames(ctx); err == nil && cached != nil {
		return cached
	}

	filenames, err := s.docRepo.ListFilenames(ctx, maxDocumentList)
	if err != nil {
		log.Printf("Document listing failed: %v", err)
		return nil
	}

	if err := s.docCache.SetFilenames(ctx, filenames); err != nil {
		log.Printf("Document cache write failed: %v", err)
	}

	return filenames
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyclica-api/internal/config"
	"cyclica-api/internal/model"
	"cyclica-api/internal/repository"
	"cyclica-api/internal/service"
)

// maxChunkLen bounds each embedded passage so excerpts stay prompt-sized.
const maxChunkLen = 1500

func main() {
	dir := flag.String("dir", "docs", "directory of .txt/.md research documents to index")
	flag.Parse()

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	if !aiConfig.IsEnabled() {
		log.Fatal("OPENAI_API_KEY must be set to generate embeddings")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	documentRepo := repository.NewDocumentRepository(db)
	openaiClient := service.NewOpenAIClient(aiConfig)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Failed to read document directory: %v", err)
	}

	inserted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(*dir, entry.Name()))
		if err != nil {
			log.Fatalf("Failed to read %s: %v", entry.Name(), err)
		}

		for i, chunk := range chunkText(string(data)) {
			embedding, err := openaiClient.Embedding(ctx, chunk)
			if err != nil {
				log.Fatalf("Embedding failed for %s chunk %d: %v", entry.Name(), i+1, err)
			}

			doc := &model.DocumentChunk{
				Filename:  entry.Name(),
				Content:   chunk,
				Embedding: embedding,
			}
			if err := documentRepo.Insert(ctx, doc); err != nil {
				log.Fatalf("Failed to insert %s chunk %d: %v", entry.Name(), i+1, err)
			}
			inserted++
		}

		log.Printf("Indexed %s", entry.Name())
	}

	fmt.Printf("Successfully indexed %d chunks from %s\n", inserted, *dir)
}

// chunkText splits a document on blank lines and packs paragraphs into
// chunks of at most maxChunkLen characters.
func chunkText(text string) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(p) > maxChunkLen {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

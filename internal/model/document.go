package model

import "time"

// DocumentChunk is one indexed passage of a research document, stored with its
// embedding vector for similarity search.
type DocumentChunk struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Filename  string    `json:"filename" bson:"filename"`
	Content   string    `json:"content" bson:"content"`
	Embedding []float64 `json:"-" bson:"embedding"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ContextChunk is a retrieved passage judged similar to a free-chat message
// above the similarity threshold.
type ContextChunk struct {
	Filename   string  `json:"filename"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

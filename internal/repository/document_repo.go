package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cyclica-api/internal/model"
)

// DocumentRepository stores embedded research document chunks and answers
// similarity queries against them.
type DocumentRepository interface {
	Insert(ctx context.Context, chunk *model.DocumentChunk) error
	ListFilenames(ctx context.Context, limit int) ([]string, error)
	SearchSimilar(ctx context.Context, embedding []float64, threshold float64, limit int) ([]model.ContextChunk, error)
}

type documentRepository struct {
	collection *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) DocumentRepository {
	return &documentRepository{
		collection: db.Collection("documents"),
	}
}

func (r *documentRepository) Insert(ctx context.Context, chunk *model.DocumentChunk) error {
	if chunk.ID == "" {
		chunk.ID = uuid.NewString()
	}
	if chunk.CreatedAt.IsZero() {
		chunk.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, chunk)
	return err
}

// ListFilenames returns the distinct document filenames currently indexed,
// capped at limit.
func (r *documentRepository) ListFilenames(ctx context.Context, limit int) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "filename", bson.M{})
	if err != nil {
		return nil, err
	}

	filenames := make([]string, 0, len(values))
	for _, v := range values {
		name, ok := v.(string)
		if !ok {
			continue
		}
		filenames = append(filenames, name)
		if limit > 0 && len(filenames) >= limit {
			break
		}
	}

	return filenames, nil
}

// SearchSimilar scores every stored chunk against the query embedding and
// returns the best matches at or above the threshold, most similar first.
func (r *documentRepository) SearchSimilar(ctx context.Context, embedding []float64, threshold float64, limit int) ([]model.ContextChunk, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chunks []*model.DocumentChunk
	if err = cursor.All(ctx, &chunks); err != nil {
		return nil, err
	}

	return RankChunks(chunks, embedding, threshold, limit), nil
}

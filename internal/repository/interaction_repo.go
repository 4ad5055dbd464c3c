package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cyclica-api/internal/model"
)

// InteractionRepository is the append-only session ledger. Rows are never
// updated or deleted; current session state is derived by querying the latest
// or matching rows.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *model.Interaction) error
	LatestBySession(ctx context.Context, sessionID string) (*model.Interaction, error)
	BySessionAndPhase(ctx context.Context, sessionID, phase string, limit int64) ([]*model.Interaction, error)
	CompletionRow(ctx context.Context, sessionID string) (*model.Interaction, error)
}

type interactionRepository struct {
	collection *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) InteractionRepository {
	return &interactionRepository{
		collection: db.Collection("chat_interactions"),
	}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *model.Interaction) error {
	if interaction.ID == "" {
		interaction.ID = uuid.NewString()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, interaction)
	return err
}

// LatestBySession returns the most recent ledger row for a session, or nil if
// the session has no rows.
func (r *interactionRepository) LatestBySession(ctx context.Context, sessionID string) (*model.Interaction, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var interaction model.Interaction
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID}, opts).Decode(&interaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &interaction, nil
}

// BySessionAndPhase returns a session's rows for one phase in creation order.
// A positive limit keeps only the most recent rows; 0 means no limit.
func (r *interactionRepository) BySessionAndPhase(ctx context.Context, sessionID, phase string, limit int64) ([]*model.Interaction, error) {
	sortDir := 1
	if limit > 0 {
		sortDir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: sortDir}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	filter := bson.M{
		"session_id":     sessionID,
		"metadata.phase": phase,
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []*model.Interaction
	if err = cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}

	if sortDir == -1 {
		for i, j := 0, len(interactions)-1; i < j; i, j = i+1, j-1 {
			interactions[i], interactions[j] = interactions[j], interactions[i]
		}
	}

	return interactions, nil
}

// CompletionRow returns the QUESTIONNAIRE_COMPLETE sentinel row for a session,
// or nil if the questionnaire was never completed.
func (r *interactionRepository) CompletionRow(ctx context.Context, sessionID string) (*model.Interaction, error) {
	filter := bson.M{
		"session_id":   sessionID,
		"user_message": model.SentinelQuestionnaireComplete,
	}

	var interaction model.Interaction
	err := r.collection.FindOne(ctx, filter).Decode(&interaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &interaction, nil
}

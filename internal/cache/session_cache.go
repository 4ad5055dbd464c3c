package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cyclica-api/internal/model"
)

// SessionCache snapshots the running score sequence for a session so the hot
// path can skip a ledger read. The ledger stays the source of truth; a miss
// or error just falls back to mongo.
type SessionCache interface {
	GetScores(ctx context.Context, sessionID string) ([]model.ScoreEntry, error)
	SetScores(ctx context.Context, sessionID string, scores []model.ScoreEntry) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
	}
}

// GetScores returns (nil, nil) on a cache miss.
func (c *sessionCache) GetScores(ctx context.Context, sessionID string) ([]model.ScoreEntry, error) {
	data, err := c.client.Get(ctx, "assessment:scores:"+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var scores []model.ScoreEntry
	if err := json.Unmarshal([]byte(data), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *sessionCache) SetScores(ctx context.Context, sessionID string, scores []model.ScoreEntry) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:scores:"+sessionID, data, 30*time.Minute).Err()
}

func (c *sessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, "assessment:scores:"+sessionID).Err()
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentCache holds the available-document filename list. The list only
// changes when new documents are seeded, so a short TTL is enough.
type DocumentCache interface {
	GetFilenames(ctx context.Context) ([]string, error)
	SetFilenames(ctx context.Context, filenames []string) error
}

type documentCache struct {
	client *redis.Client
}

func NewDocumentCache(client *redis.Client) DocumentCache {
	return &documentCache{
		client: client,
	}
}

// GetFilenames returns (nil, nil) on a cache miss.
func (c *documentCache) GetFilenames(ctx context.Context) ([]string, error) {
	data, err := c.client.Get(ctx, "documents:filenames").Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var filenames []string
	if err := json.Unmarshal([]byte(data), &filenames); err != nil {
		return nil, err
	}
	return filenames, nil
}

func (c *documentCache) SetFilenames(ctx context.Context, filenames []string) error {
	data, err := json.Marshal(filenames)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "documents:filenames", data, 5*time.Minute).Err()
}

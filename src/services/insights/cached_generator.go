package insights

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"healthgraph/src/domain/entities"
)

// Cache is the subset of the Redis client the generator needs.
type Cache interface {
	GetKey(ctx context.Context, key string) (string, bool, error)
	SetKey(ctx context.Context, key string, value string) error
}

// CachedGenerator serves insights for identical inputs from the cache. Cache
// failures are logged and fall through to the wrapped generator. A nil cache
// disables caching.
type CachedGenerator struct {
	logger    *slog.Logger
	generator Generator
	cache     Cache
}

func NewCachedGenerator(logger *slog.Logger, generator Generator, cache Cache) *CachedGenerator {
	return &CachedGenerator{
		logger:    logger,
		generator: generator,
		cache:     cache,
	}
}

func (g *CachedGenerator) Generate(ctx context.Context, patientID string, treatment entities.Treatment, followUpAction string) (Insight, error) {
	if g.cache == nil {
		return g.generator.Generate(ctx, patientID, treatment, followUpAction)
	}

	cacheKey := g.generateCacheKey(patientID, treatment.Type, followUpAction)

	cached, found, err := g.getFromCache(ctx, cacheKey)
	if err != nil {
		g.logger.Warn("Insight cache read failed", "key", cacheKey, "error", err)
	}
	if found && err == nil {
		g.logger.Debug("Insight cache HIT", "key", cacheKey)
		return cached, nil
	}

	insight, err := g.generator.Generate(ctx, patientID, treatment, followUpAction)
	if err != nil {
		return Insight{}, err
	}

	go func() {
		ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		g.setInCache(ctxWithTimeout, cacheKey, insight)
	}()

	return insight, nil
}

func (g *CachedGenerator) generateCacheKey(patientID string, treatmentType string, followUpAction string) string {
	keyData := fmt.Sprintf("patient:%s:type:%s:followup:%s", patientID, treatmentType, followUpAction)

	hash := md5.Sum([]byte(keyData))
	return fmt.Sprintf("insight:%x", hash)
}

func (g *CachedGenerator) getFromCache(ctx context.Context, cacheKey string) (Insight, bool, error) {
	cachedJSON, found, err := g.cache.GetKey(ctx, cacheKey)
	if !found || err != nil {
		return Insight{}, false, err
	}

	var insight Insight
	if err := json.Unmarshal([]byte(cachedJSON), &insight); err != nil {
		return Insight{}, false, fmt.Errorf("failed to unmarshal cached insight: %w", err)
	}

	return insight, true, nil
}

func (g *CachedGenerator) setInCache(ctx context.Context, cacheKey string, insight Insight) {
	data, err := json.Marshal(insight)
	if err != nil {
		g.logger.Warn("Failed to marshal insight for cache", "key", cacheKey, "error", err)
		return
	}

	if err := g.cache.SetKey(ctx, cacheKey, string(data)); err != nil {
		g.logger.Warn("Insight cache write failed", "key", cacheKey, "error", err)
		return
	}

	g.logger.Debug("Insight cache SET", "key", cacheKey)
}

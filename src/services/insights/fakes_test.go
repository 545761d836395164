package insights_test

import (
	"context"
	"errors"
	"sync"

	"healthgraph/src/domain/entities"
	"healthgraph/src/services/insights"

	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response *llms.ContentResponse
	err      error

	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, option := range options {
		option(&m.options)
	}
	return m.response, m.err
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

type countingGenerator struct {
	mu      sync.Mutex
	calls   int
	insight insights.Insight
	err     error
}

func (g *countingGenerator) Generate(context.Context, string, entities.Treatment, string) (insights.Insight, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.insight, g.err
}

func (g *countingGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type memoryCache struct {
	mu      sync.Mutex
	values  map[string]string
	readErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (c *memoryCache) GetKey(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return "", false, c.readErr
	}
	value, ok := c.values[key]
	return value, ok, nil
}

func (c *memoryCache) SetKey(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

var errBoom = errors.New("boom")

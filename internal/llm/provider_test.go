package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Backend for testing
type mockBackend struct {
	mu           sync.Mutex
	loadFunc     func(ctx context.Context) error
	completeFunc func(ctx context.Context, req CompletionRequest) (string, error)
	loadCalls    int
	requests     []CompletionRequest
}

func (m *mockBackend) Name() string  { return "mock" }
func (m *mockBackend) Model() string { return "mock-model" }

func (m *mockBackend) Load(ctx context.Context) error {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}

	return nil
}

func (m *mockBackend) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}

	return req.Prompt + "def fib(n):\n    return n if n < 2 else fib(n-1) + fib(n-2)\n", nil
}

func TestProvider_InitializeOnce(t *testing.T) {
	backend := &mockBackend{}
	provider := NewProvider(backend)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			provider.Initialize(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, backend.loadCalls)
	assert.True(t, provider.Ready())
}

func TestProvider_LoadFailureIsPermanent(t *testing.T) {
	backend := &mockBackend{
		loadFunc: func(_ context.Context) error {
			return errors.New("artifact missing")
		},
	}
	provider := NewProvider(backend)

	provider.Initialize(context.Background())
	provider.Initialize(context.Background())

	assert.False(t, provider.Ready())
	assert.Equal(t, 1, backend.loadCalls, "failed load must not be retried")

	_, err := provider.Generate(context.Background(), "write a fibonacci function", 64)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Empty(t, backend.requests, "backend must not be called when unready")
}

func TestProvider_GenerateBeforeInitialize(t *testing.T) {
	provider := NewProvider(&mockBackend{})

	_, err := provider.Generate(context.Background(), "write a fibonacci function", 64)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestProvider_GenerateStripsPromptAndUsesFixedSampling(t *testing.T) {
	backend := &mockBackend{}
	provider := NewProvider(backend)
	provider.Initialize(context.Background())

	result, err := provider.Generate(context.Background(), "write a fibonacci function", 128)
	require.NoError(t, err)

	assert.Equal(t, "def fib(n):\n    return n if n < 2 else fib(n-1) + fib(n-2)", result)

	require.Len(t, backend.requests, 1)
	req := backend.requests[0]
	assert.Equal(t, "# Task: write a fibonacci function\n# Solution:\n", req.Prompt)
	assert.Equal(t, 128, req.MaxNewTokens)
	assert.Equal(t, Temperature, req.Temperature)
	assert.Equal(t, TopP, req.TopP)
	assert.Equal(t, MaxInputTokens, req.TruncateTokens)
}

func TestProvider_GenerateDefaultsMaxTokens(t *testing.T) {
	backend := &mockBackend{}
	provider := NewProvider(backend)
	provider.Initialize(context.Background())

	_, err := provider.Generate(context.Background(), "sort a list", 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxNewTokens, backend.requests[0].MaxNewTokens)
}

func TestProvider_GenerateWrapsBackendError(t *testing.T) {
	backend := &mockBackend{
		completeFunc: func(_ context.Context, _ CompletionRequest) (string, error) {
			return "", errors.New("CUDA out of memory")
		},
	}
	provider := NewProvider(backend)
	provider.Initialize(context.Background())

	_, err := provider.Generate(context.Background(), "sort a list", 32)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.NotErrorIs(t, err, ErrNotReady)
	assert.Contains(t, err.Error(), "CUDA out of memory")
	assert.True(t, provider.Ready(), "an inference failure does not unload the model")
}

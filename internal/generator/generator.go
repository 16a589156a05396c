package generator

import (
	"context"
	"sync"

	"github.com/morozai/core/internal/llm"
)

// the subset of llm.Provider the facade relies on
type ModelProvider interface {
	Initialize(ctx context.Context)
	Ready() bool
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// builds the provider on first use
type ProviderFactory func() ModelProvider

// hands out a single lazily initialized model provider and forwards
// generation calls to it. there is no refresh: a provider that failed
// to load stays in place for the life of the service.
type Service struct {
	factory          ProviderFactory
	defaultMaxTokens int

	once     sync.Once
	provider ModelProvider
	built    chan struct{}
}

func New(factory ProviderFactory, defaultMaxTokens int) *Service {
	if defaultMaxTokens <= 0 {
		defaultMaxTokens = llm.DefaultMaxNewTokens
	}

	return &Service{
		factory:          factory,
		defaultMaxTokens: defaultMaxTokens,
		built:            make(chan struct{}),
	}
}

// returns the provider, constructing and initializing it on the first call.
// initialization may take a long time; concurrent callers wait for it.
func (s *Service) Provider(ctx context.Context) ModelProvider {
	s.once.Do(func() {
		// the load outlives the request that triggered it; a failed load is permanent
		p := s.factory()
		p.Initialize(context.WithoutCancel(ctx))

		s.provider = p
		close(s.built)
	})

	return s.provider
}

// forces provider construction ahead of the first request
func (s *Service) Warmup(ctx context.Context) {
	s.Provider(ctx)
}

// reports whether the model is loaded, without triggering a load
func (s *Service) Ready() bool {
	select {
	case <-s.built:
		return s.provider.Ready()
	default:
		return false
	}
}

// generates code for prompt; maxTokens <= 0 selects the default budget
func (s *Service) GenerateCode(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = s.defaultMaxTokens
	}

	return s.Provider(ctx).Generate(ctx, prompt, maxTokens)
}

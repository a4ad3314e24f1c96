package usecase

import (
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
)

type UseCases struct {
	repo     interfaces.Repository
	registry *model.ResourceRegistry
	storage  interfaces.BlobStorage
	notifier interfaces.RegistrationNotifier
	now      func() time.Time

	Resource     *ResourceUseCase
	Registration *RegistrationUseCase
	Page         *PageUseCase
	Agent        *AgentUseCase
	Upload       *UploadUseCase
	Seed         *SeedUseCase
	Auth         AuthUseCaseInterface
}

type Option func(*UseCases)

// WithSchema replaces the built-in resource schema
func WithSchema(schema *config.Schema) Option {
	return func(uc *UseCases) {
		uc.registry = model.NewResourceRegistry(schema)
	}
}

func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

// WithStorage enables file uploads
func WithStorage(storage interfaces.BlobStorage) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

// WithRegistrationNotifier sends new event registrations to an external channel
func WithRegistrationNotifier(n interfaces.RegistrationNotifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithClock overrides the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		registry: model.NewResourceRegistry(config.DefaultSchema()),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Resource = NewResourceUseCase(repo, uc.registry, uc.now)
	uc.Registration = NewRegistrationUseCase(repo, uc.registry, uc.notifier, uc.now)
	uc.Page = NewPageUseCase(repo, uc.now)
	uc.Agent = NewAgentUseCase()
	uc.Upload = NewUploadUseCase(uc.storage)
	uc.Seed = NewSeedUseCase(repo, uc.now)

	return uc
}

// Registry returns the resource schemas served by this instance
func (uc *UseCases) Registry() *model.ResourceRegistry {
	return uc.registry
}

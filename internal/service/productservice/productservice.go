package productservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/pkg/cache"
)

type ProductRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
}

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	productRepo ProductRepo
	cache       *cache.Cache[*domain.Product]
}

func New(productRepo ProductRepo, cacheTTL time.Duration) *Service {
	return &Service{
		productRepo: productRepo,
		cache:       cache.New[*domain.Product](cacheTTL),
	}
}

// Get serves product detail through the TTL cache; concurrent requests for
// the same id share one repository fetch. Task-list rendering hits this for
// every requirement row, so the coalescing matters.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.cache.GetOrLoad(ctx, id, func(ctx context.Context) (*domain.Product, error) {
		p, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductNotFound
		}
		return p, nil
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		zap.L().Error("failed to get product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	created, err := s.productRepo.Create(ctx, p)
	if err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated, err := s.productRepo.Update(ctx, p)
	if err != nil {
		zap.L().Error("failed to update product", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	s.cache.Invalidate(p.ID)
	return updated, nil
}

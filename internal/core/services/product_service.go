package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/google/uuid"
)

// productService implements ProductSvcFacade. Products have no cascade
// relationships so the lifecycle here is the plain single-entity version.
type productService struct {
	repo   portsrepo.ProductRepositoryFacade
	store  *entityStore[domain.Product]
	logger *slog.Logger
	notify func()
}

func newProductService(
	repo portsrepo.ProductRepositoryFacade,
	store *entityStore[domain.Product],
	logger *slog.Logger,
) *productService {
	return &productService{
		repo:   repo,
		store:  store,
		logger: logger,
		notify: func() {},
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) setDeletionNotifier(notify func()) {
	s.notify = notify
}

func (s *productService) Reload(ctx context.Context) error {
	active, err := s.repo.FindProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	deleted, err := s.repo.FindDeletedProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deleted products: %w", err)
	}
	s.store.Replace(active, deleted)
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}
	if req.CostPrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("prices cannot be negative: %w", apperrors.ErrValidation)
	}

	p := domain.Product{
		ProductID:    uuid.NewString(),
		Name:         name,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	s.store.InsertActive(p)
	return &p, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, ok := s.store.GetActive(productID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *productService) ListProducts(ctx context.Context) []domain.Product {
	return s.store.Active()
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	p, ok := s.store.GetActive(productID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("product name cannot be blank: %w", apperrors.ErrValidation)
		}
		p.Name = name
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if p.CostPrice.IsNegative() || p.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("prices cannot be negative: %w", apperrors.ErrValidation)
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.store.ReplaceActive(p)
	return &p, nil
}

func (s *productService) SoftDeleteProduct(ctx context.Context, productID string) error {
	if !s.store.HasActive(productID) {
		return apperrors.ErrNotFound
	}

	deletedAt := time.Now().UTC()
	if err := s.repo.MarkProductDeleted(ctx, productID, deletedAt); err != nil {
		return err
	}
	s.store.MoveToDeleted(productID, func(p *domain.Product) {
		p.DeletedAt = &deletedAt
	})

	s.logger.InfoContext(ctx, "product soft-deleted", slog.String("product_id", productID))
	s.notify()
	return nil
}

func (s *productService) RestoreProduct(ctx context.Context, productID string) error {
	if !s.store.HasDeleted(productID) {
		return apperrors.ErrNotFound
	}

	if err := s.repo.UnmarkProductDeleted(ctx, productID); err != nil {
		return err
	}
	s.store.MoveToActive(productID, func(p *domain.Product) {
		p.DeletedAt = nil
	})
	return nil
}

func (s *productService) PermanentlyDeleteProduct(ctx context.Context, productID string) error {
	if !s.store.HasDeleted(productID) {
		return apperrors.ErrNotFound
	}

	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	s.store.RemoveDeleted(productID)

	s.logger.InfoContext(ctx, "product permanently deleted", slog.String("product_id", productID))
	return nil
}

func (s *productService) ListDeletedProducts(ctx context.Context) []domain.Product {
	return s.store.Deleted()
}

// Sweeper integration.

func (s *productService) purgeName() string { return "products" }

func (s *productService) purgeReady() bool { return s.store.Loaded() }

func (s *productService) expiredIDs(cutoff time.Time) []string {
	var ids []string
	for _, p := range s.store.Deleted() {
		if p.DeletedAt != nil && p.DeletedAt.Before(cutoff) {
			ids = append(ids, p.ProductID)
		}
	}
	return ids
}

func (s *productService) purge(ctx context.Context, productID string) error {
	return s.PermanentlyDeleteProduct(ctx, productID)
}

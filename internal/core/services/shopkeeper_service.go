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

// shopkeeperService implements ShopkeeperSvcFacade on top of the repository
// and the in-memory mirrors. It owns the shopkeeper mirror and shares the
// transaction mirror with the transaction service so cascades keep both
// consistent.
type shopkeeperService struct {
	repo     portsrepo.ShopkeeperRepositoryFacade
	skStore  *entityStore[domain.Shopkeeper]
	txnStore *entityStore[domain.Transaction]
	logger   *slog.Logger
	notify   func()
}

func newShopkeeperService(
	repo portsrepo.ShopkeeperRepositoryFacade,
	skStore *entityStore[domain.Shopkeeper],
	txnStore *entityStore[domain.Transaction],
	logger *slog.Logger,
) *shopkeeperService {
	return &shopkeeperService{
		repo:     repo,
		skStore:  skStore,
		txnStore: txnStore,
		logger:   logger,
		notify:   func() {},
	}
}

var _ portssvc.ShopkeeperSvcFacade = (*shopkeeperService)(nil)

// setDeletionNotifier wires the sweeper kick. Called once by the container
// after the sweeper exists.
func (s *shopkeeperService) setDeletionNotifier(notify func()) {
	s.notify = notify
}

// Reload refreshes the shopkeeper mirror from the repository.
func (s *shopkeeperService) Reload(ctx context.Context) error {
	active, err := s.repo.FindShopkeepers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shopkeepers: %w", err)
	}
	deleted, err := s.repo.FindDeletedShopkeepers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deleted shopkeepers: %w", err)
	}
	s.skStore.Replace(active, deleted)
	return nil
}

func (s *shopkeeperService) GetShopkeeperByID(ctx context.Context, shopkeeperID string) (*domain.Shopkeeper, error) {
	sk, ok := s.skStore.GetActive(shopkeeperID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &sk, nil
}

func (s *shopkeeperService) ListShopkeepers(ctx context.Context) []domain.Shopkeeper {
	return s.skStore.Active()
}

func (s *shopkeeperService) HasActiveShopkeeper(shopkeeperID string) bool {
	return s.skStore.HasActive(shopkeeperID)
}

func (s *shopkeeperService) HasDeletedShopkeeper(shopkeeperID string) bool {
	return s.skStore.HasDeleted(shopkeeperID)
}

func (s *shopkeeperService) CreateShopkeeper(ctx context.Context, req dto.CreateShopkeeperRequest) (*domain.Shopkeeper, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("shopkeeper name is required: %w", apperrors.ErrValidation)
	}

	sk := domain.Shopkeeper{
		ShopkeeperID: uuid.NewString(),
		Name:         name,
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Address:      strings.TrimSpace(req.Address),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.SaveShopkeeper(ctx, sk); err != nil {
		return nil, err
	}
	s.skStore.InsertActive(sk)
	return &sk, nil
}

func (s *shopkeeperService) UpdateShopkeeper(ctx context.Context, shopkeeperID string, req dto.UpdateShopkeeperRequest) (*domain.Shopkeeper, error) {
	sk, ok := s.skStore.GetActive(shopkeeperID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("shopkeeper name cannot be blank: %w", apperrors.ErrValidation)
		}
		sk.Name = name
	}
	if req.MobileNumber != nil {
		sk.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.Address != nil {
		sk.Address = strings.TrimSpace(*req.Address)
	}

	if err := s.repo.UpdateShopkeeper(ctx, sk); err != nil {
		return nil, err
	}
	s.skStore.ReplaceActive(sk)
	return &sk, nil
}

// SoftDeleteShopkeeper moves the shopkeeper and its active transactions to
// the recycle bin. The repository runs both updates in one database
// transaction with a shared timestamp, then the mirrors are updated from the
// returned cascade list.
func (s *shopkeeperService) SoftDeleteShopkeeper(ctx context.Context, shopkeeperID string) error {
	if !s.skStore.HasActive(shopkeeperID) {
		return apperrors.ErrNotFound
	}

	deletedAt := time.Now().UTC()
	cascadedIDs, err := s.repo.MarkShopkeeperDeleted(ctx, shopkeeperID, deletedAt)
	if err != nil {
		return err
	}

	s.skStore.MoveToDeleted(shopkeeperID, func(sk *domain.Shopkeeper) {
		sk.DeletedAt = &deletedAt
	})
	for _, txnID := range cascadedIDs {
		s.txnStore.MoveToDeleted(txnID, func(t *domain.Transaction) {
			t.DeletedAt = &deletedAt
		})
	}

	s.logger.InfoContext(ctx, "shopkeeper soft-deleted",
		slog.String("shopkeeper_id", shopkeeperID),
		slog.Int("cascaded_transactions", len(cascadedIDs)))
	s.notify()
	return nil
}

// RestoreShopkeeper moves the shopkeeper back to the active set along with
// every currently deleted transaction it owns, whether the transaction was
// cascaded or deleted on its own before.
func (s *shopkeeperService) RestoreShopkeeper(ctx context.Context, shopkeeperID string) error {
	if !s.skStore.HasDeleted(shopkeeperID) {
		return apperrors.ErrNotFound
	}

	restoredIDs, err := s.repo.UnmarkShopkeeperDeleted(ctx, shopkeeperID)
	if err != nil {
		return err
	}

	s.skStore.MoveToActive(shopkeeperID, func(sk *domain.Shopkeeper) {
		sk.DeletedAt = nil
	})
	for _, txnID := range restoredIDs {
		s.txnStore.MoveToActive(txnID, func(t *domain.Transaction) {
			t.DeletedAt = nil
		})
	}

	s.logger.InfoContext(ctx, "shopkeeper restored",
		slog.String("shopkeeper_id", shopkeeperID),
		slog.Int("restored_transactions", len(restoredIDs)))
	return nil
}

// PermanentlyDeleteShopkeeper removes a recycle bin shopkeeper for good. The
// FK constraint takes the transaction rows with it; a post-delete count
// verifies that and reports ErrCascadeInconsistency if any row survived.
func (s *shopkeeperService) PermanentlyDeleteShopkeeper(ctx context.Context, shopkeeperID string) error {
	if !s.skStore.HasDeleted(shopkeeperID) {
		return apperrors.ErrNotFound
	}

	if err := s.repo.DeleteShopkeeper(ctx, shopkeeperID); err != nil {
		return err
	}

	s.skStore.RemoveDeleted(shopkeeperID)
	removed := s.txnStore.RemoveDeletedWhere(func(t domain.Transaction) bool {
		return t.ShopkeeperID == shopkeeperID
	})

	s.logger.InfoContext(ctx, "shopkeeper permanently deleted",
		slog.String("shopkeeper_id", shopkeeperID),
		slog.Int("transactions_removed", removed))

	orphans, err := s.repo.CountTransactionsForShopkeeper(ctx, shopkeeperID)
	if err != nil {
		return fmt.Errorf("failed to verify transaction cascade: %w", err)
	}
	if orphans > 0 {
		return fmt.Errorf("%d transaction rows survived the delete of shopkeeper %s: %w",
			orphans, shopkeeperID, apperrors.ErrCascadeInconsistency)
	}
	return nil
}

func (s *shopkeeperService) ListDeletedShopkeepers(ctx context.Context) []domain.Shopkeeper {
	return s.skStore.Deleted()
}

// Sweeper integration.

func (s *shopkeeperService) purgeName() string { return "shopkeepers" }

func (s *shopkeeperService) purgeReady() bool { return s.skStore.Loaded() }

func (s *shopkeeperService) expiredIDs(cutoff time.Time) []string {
	var ids []string
	for _, sk := range s.skStore.Deleted() {
		if sk.DeletedAt != nil && sk.DeletedAt.Before(cutoff) {
			ids = append(ids, sk.ShopkeeperID)
		}
	}
	return ids
}

func (s *shopkeeperService) purge(ctx context.Context, shopkeeperID string) error {
	return s.PermanentlyDeleteShopkeeper(ctx, shopkeeperID)
}

package services

import (
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStoreMembershipIsExclusive(t *testing.T) {
	store := newShopkeeperStore()
	now := time.Now().UTC()
	sk := domain.Shopkeeper{ShopkeeperID: "sk1", Name: "Ravi", CreatedAt: now}
	store.Replace([]domain.Shopkeeper{sk}, nil)

	assert.True(t, store.HasActive("sk1"))
	assert.False(t, store.HasDeleted("sk1"))

	deletedAt := now.Add(time.Minute)
	require.True(t, store.MoveToDeleted("sk1", func(s *domain.Shopkeeper) { s.DeletedAt = &deletedAt }))
	assert.False(t, store.HasActive("sk1"))
	assert.True(t, store.HasDeleted("sk1"))

	got, ok := store.GetDeleted("sk1")
	require.True(t, ok)
	require.NotNil(t, got.DeletedAt)
	assert.True(t, got.DeletedAt.Equal(deletedAt))

	require.True(t, store.MoveToActive("sk1", func(s *domain.Shopkeeper) { s.DeletedAt = nil }))
	got, ok = store.GetActive("sk1")
	require.True(t, ok)
	assert.Nil(t, got.DeletedAt)
}

func TestEntityStoreMoveMissingID(t *testing.T) {
	store := newShopkeeperStore()
	store.Replace(nil, nil)

	assert.False(t, store.MoveToDeleted("nope", func(s *domain.Shopkeeper) {}))
	assert.False(t, store.MoveToActive("nope", func(s *domain.Shopkeeper) {}))
	assert.False(t, store.RemoveDeleted("nope"))
}

func TestEntityStoreActiveOrdering(t *testing.T) {
	store := newShopkeeperStore()
	base := time.Now().UTC()
	old := domain.Shopkeeper{ShopkeeperID: "old", CreatedAt: base.Add(-time.Hour)}
	mid := domain.Shopkeeper{ShopkeeperID: "mid", CreatedAt: base.Add(-time.Minute)}
	store.Replace([]domain.Shopkeeper{old, mid}, nil)

	newest := domain.Shopkeeper{ShopkeeperID: "new", CreatedAt: base}
	store.InsertActive(newest)

	got := store.Active()
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ShopkeeperID)
	assert.Equal(t, "mid", got[1].ShopkeeperID)
	assert.Equal(t, "old", got[2].ShopkeeperID)
}

func TestEntityStoreDeletedOrdering(t *testing.T) {
	store := newShopkeeperStore()
	base := time.Now().UTC()
	olderDel := base.Add(-2 * time.Hour)
	newerDel := base.Add(-time.Minute)
	a := domain.Shopkeeper{ShopkeeperID: "a", CreatedAt: base, DeletedAt: &olderDel}
	b := domain.Shopkeeper{ShopkeeperID: "b", CreatedAt: base, DeletedAt: &newerDel}
	store.Replace(nil, []domain.Shopkeeper{a, b})

	got := store.Deleted()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ShopkeeperID, "most recently deleted first")
	assert.Equal(t, "a", got[1].ShopkeeperID)
}

func TestEntityStoreRemoveDeletedWhere(t *testing.T) {
	store := newTransactionStore()
	now := time.Now().UTC()
	del := now.Add(-time.Hour)
	txns := []domain.Transaction{
		{TransactionID: "t1", ShopkeeperID: "sk1", Date: now, CreatedAt: now, DeletedAt: &del},
		{TransactionID: "t2", ShopkeeperID: "sk1", Date: now, CreatedAt: now, DeletedAt: &del},
		{TransactionID: "t3", ShopkeeperID: "sk2", Date: now, CreatedAt: now, DeletedAt: &del},
	}
	store.Replace(nil, txns)

	removed := store.RemoveDeletedWhere(func(t domain.Transaction) bool { return t.ShopkeeperID == "sk1" })
	assert.Equal(t, 2, removed)
	assert.False(t, store.HasDeleted("t1"))
	assert.False(t, store.HasDeleted("t2"))
	assert.True(t, store.HasDeleted("t3"))
}

func TestEntityStoreSnapshotsAreCopies(t *testing.T) {
	store := newShopkeeperStore()
	now := time.Now().UTC()
	store.Replace([]domain.Shopkeeper{{ShopkeeperID: "sk1", Name: "Ravi", CreatedAt: now}}, nil)

	snapshot := store.Active()
	snapshot[0].Name = "changed"

	got, _ := store.GetActive("sk1")
	assert.Equal(t, "Ravi", got.Name)
}

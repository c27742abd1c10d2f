package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakePurgeTarget is a scriptable purge target for sweeper tests.
type fakePurgeTarget struct {
	mu      sync.Mutex
	name    string
	ready   bool
	expired map[string]time.Time
	failIDs map[string]bool
	purged  []string
}

func newFakePurgeTarget(name string) *fakePurgeTarget {
	return &fakePurgeTarget{
		name:    name,
		ready:   true,
		expired: map[string]time.Time{},
		failIDs: map[string]bool{},
	}
}

func (f *fakePurgeTarget) purgeName() string { return f.name }

func (f *fakePurgeTarget) purgeReady() bool { return f.ready }

func (f *fakePurgeTarget) expiredIDs(cutoff time.Time) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, deletedAt := range f.expired {
		if deletedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (f *fakePurgeTarget) purge(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[id] {
		return errors.New("storage unavailable")
	}
	delete(f.expired, id)
	f.purged = append(f.purged, id)
	return nil
}

func (f *fakePurgeTarget) purgedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.purged...)
}

func newTestSweeper(targets ...purgeTarget) *retentionSweeper {
	return newRetentionSweeper(45*24*time.Hour, time.Hour, time.Second, targets, slog.Default())
}

func TestSweepPurgesOnlyExpiredItems(t *testing.T) {
	target := newFakePurgeTarget("shopkeepers")
	now := time.Now().UTC()
	target.expired["old"] = now.Add(-46 * 24 * time.Hour)
	target.expired["young"] = now.Add(-44 * 24 * time.Hour)

	s := newTestSweeper(target)
	s.sweep(context.Background())

	assert.Equal(t, []string{"old"}, target.purgedIDs())
	_, stillThere := target.expired["young"]
	assert.True(t, stillThere, "items inside the retention window stay")
}

func TestSweepSkipsUnloadedTargets(t *testing.T) {
	target := newFakePurgeTarget("transactions")
	target.ready = false
	target.expired["old"] = time.Now().UTC().Add(-60 * 24 * time.Hour)

	s := newTestSweeper(target)
	s.sweep(context.Background())

	assert.Empty(t, target.purgedIDs(), "nothing purges while the mirror is loading")
}

func TestSweepContinuesPastFailures(t *testing.T) {
	target := newFakePurgeTarget("products")
	now := time.Now().UTC()
	target.expired["bad"] = now.Add(-50 * 24 * time.Hour)
	target.expired["good"] = now.Add(-50 * 24 * time.Hour)
	target.failIDs["bad"] = true

	s := newTestSweeper(target)
	s.sweep(context.Background())

	assert.Equal(t, []string{"good"}, target.purgedIDs())
	_, badRemains := target.expired["bad"]
	assert.True(t, badRemains, "failed purge stays for the next round")
}

func TestSweepCoversEveryTarget(t *testing.T) {
	a := newFakePurgeTarget("shopkeepers")
	b := newFakePurgeTarget("transactions")
	now := time.Now().UTC()
	a.expired["a1"] = now.Add(-90 * 24 * time.Hour)
	b.expired["b1"] = now.Add(-90 * 24 * time.Hour)

	s := newTestSweeper(a, b)
	s.sweep(context.Background())

	assert.Equal(t, []string{"a1"}, a.purgedIDs())
	assert.Equal(t, []string{"b1"}, b.purgedIDs())
}

func TestKickCoalesces(t *testing.T) {
	s := newTestSweeper()

	// Multiple kicks before the loop drains them fold into one
	s.Kick()
	s.Kick()
	s.Kick()
	assert.Len(t, s.kick, 1)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	target := newFakePurgeTarget("shopkeepers")
	s := newRetentionSweeper(45*24*time.Hour, 10*time.Millisecond, time.Second, []purgeTarget{target}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after context cancel")
	}
}

package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"supply_checker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	supply := &fakeSupplyService{report: entity.SupplyReport{Total: big.NewInt(1000), Formatted: "1000"}}

	t.Run("with price", func(t *testing.T) {
		svc := NewSnapshotService(supply, &fakePriceService{price: "1.2345", ok: true}, nopLogger{})
		snap, err := svc.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entity.Snapshot{Total: "1000", LastPrice: "1.2345"}, snap)
	})

	t.Run("price unavailable", func(t *testing.T) {
		svc := NewSnapshotService(supply, &fakePriceService{}, nopLogger{})
		snap, err := svc.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1000", snap.Total)
		assert.Equal(t, entity.PriceNotAvailable, snap.LastPrice)
	})
}

func TestSnapshot_SupplyFailure(t *testing.T) {
	cause := &entity.ChainError{Network: "linea", Kind: entity.NetworkUnreachable, Err: errors.New("dial tcp: i/o timeout")}
	svc := NewSnapshotService(&fakeSupplyService{err: cause}, &fakePriceService{price: "1", ok: true}, nopLogger{})

	snap, err := svc.Snapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, entity.Snapshot{}, snap)
}

func TestSnapshot_RunsConcurrently(t *testing.T) {
	svc := NewSnapshotService(
		&fakeSupplyService{report: entity.SupplyReport{Formatted: "1"}, delay: 200 * time.Millisecond},
		&fakePriceService{price: "2", ok: true, delay: 200 * time.Millisecond},
		nopLogger{},
	)

	start := time.Now()
	_, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 350*time.Millisecond)
}

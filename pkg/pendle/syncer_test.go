package pendle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/harmonixfi/harmonix-api/internal/metrics"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

type fakeSource struct {
	markets map[int64][]*schema.PendleMarket
	errs    map[int64]error
}

func (f *fakeSource) FetchMarkets(_ context.Context, chainID int64) ([]*schema.PendleMarket, error) {
	return f.markets[chainID], f.errs[chainID]
}

type fakeStore struct {
	mu      sync.Mutex
	calls   int
	batches [][]*schema.PendleMarket
	err     error
}

func (f *fakeStore) UpsertPendleMarkets(_ context.Context, markets []*schema.PendleMarket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, markets)
	return nil
}

func (f *fakeStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSyncer_SyncAll(t *testing.T) {
	source := &fakeSource{markets: map[int64][]*schema.PendleMarket{
		1:     {{ID: "0xa", ChainID: 1}},
		42161: {{ID: "0xb", ChainID: 42161}, {ID: "0xc", ChainID: 42161}},
	}}
	store := &fakeStore{}

	before := testutil.ToFloat64(metrics.PendleSyncTotal.WithLabelValues("42161", "success"))

	s := NewSyncer(source, store, []int64{1, 42161}, time.Second, zap.NewNop())
	require.NoError(t, s.SyncAll(context.Background()))

	require.Len(t, store.batches, 2)
	assert.Len(t, store.batches[1], 2)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PendleSyncTotal.WithLabelValues("42161", "success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.PendleMarketsSynced.WithLabelValues("42161")))
}

func TestSyncer_SyncAll_PartialFailure(t *testing.T) {
	upstreamErr := errors.New("upstream 503")
	source := &fakeSource{
		markets: map[int64][]*schema.PendleMarket{10: {{ID: "0xa", ChainID: 10}}},
		errs:    map[int64]error{56: upstreamErr},
	}
	store := &fakeStore{}

	before := testutil.ToFloat64(metrics.PendleSyncTotal.WithLabelValues("56", "error"))

	s := NewSyncer(source, store, []int64{56, 10}, 0, zap.NewNop())
	err := s.SyncAll(context.Background())

	require.ErrorIs(t, err, upstreamErr)
	require.Len(t, store.batches, 1, "healthy chain must still be stored")
	assert.Equal(t, "0xa", store.batches[0][0].ID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PendleSyncTotal.WithLabelValues("56", "error")))
}

func TestSyncer_SyncChain_TruncatedListingStored(t *testing.T) {
	source := &fakeSource{
		markets: map[int64][]*schema.PendleMarket{1: {{ID: "0xa", ChainID: 1}, {ID: "0xb", ChainID: 1}}},
		errs:    map[int64]error{1: fmt.Errorf("%w: chain 1 after 50 pages", ErrListingTruncated)},
	}
	store := &fakeStore{}
	core, logs := observer.New(zapcore.WarnLevel)

	s := NewSyncer(source, store, []int64{1}, 0, zap.New(core))
	n, err := s.SyncChain(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, store.batches, 1)
	assert.Len(t, store.batches[0], 2)
	assert.Equal(t, 1, logs.FilterMessage("Pendle market listing capped, storing partial result").Len())
}

func TestSyncer_SyncChain_StoreError(t *testing.T) {
	storeErr := errors.New("db unavailable")
	source := &fakeSource{markets: map[int64][]*schema.PendleMarket{1: {{ID: "0xa"}}}}

	s := NewSyncer(source, &fakeStore{err: storeErr}, []int64{1}, 0, zap.NewNop())
	n, err := s.SyncChain(context.Background(), 1)

	require.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), "store pendle markets for chain 1")
	assert.Zero(t, n)
}

func TestSyncer_StartStop(t *testing.T) {
	source := &fakeSource{markets: map[int64][]*schema.PendleMarket{1: {{ID: "0xa"}}}}
	store := &fakeStore{}

	s := NewSyncer(source, store, []int64{1}, 0, zap.NewNop())
	s.Start(10 * time.Millisecond)

	require.Eventually(t, func() bool { return store.callCount() >= 2 }, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	calls := store.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, store.callCount(), "no sync may run after Stop returns")

	s.Stop()
}

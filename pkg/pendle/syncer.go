package pendle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/internal/metrics"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

// MarketSource lists the markets of one chain
type MarketSource interface {
	FetchMarkets(ctx context.Context, chainID int64) ([]*schema.PendleMarket, error)
}

// MarketStore persists fetched markets
type MarketStore interface {
	UpsertPendleMarkets(ctx context.Context, markets []*schema.PendleMarket) error
}

// Syncer copies Pendle markets for a fixed set of chains into the store
type Syncer struct {
	source   MarketSource
	store    MarketStore
	chainIDs []int64
	timeout  time.Duration
	logger   *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSyncer creates a Syncer. A positive timeout bounds each chain fetch.
func NewSyncer(source MarketSource, store MarketStore, chainIDs []int64, timeout time.Duration, logger *zap.Logger) *Syncer {
	return &Syncer{
		source:   source,
		store:    store,
		chainIDs: chainIDs,
		timeout:  timeout,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// SyncChain fetches and stores the markets of one chain and returns how many were stored.
func (s *Syncer) SyncChain(ctx context.Context, chainID int64) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	markets, err := s.source.FetchMarkets(ctx, chainID)
	switch {
	case errors.Is(err, ErrListingTruncated):
		s.logger.Warn("Pendle market listing capped, storing partial result",
			zap.Int64("chain_id", chainID),
			zap.Int("markets", len(markets)),
			zap.Error(err))
	case err != nil:
		return 0, err
	}
	if err := s.store.UpsertPendleMarkets(ctx, markets); err != nil {
		return 0, fmt.Errorf("store pendle markets for chain %d: %w", chainID, err)
	}
	return len(markets), nil
}

// SyncAll syncs every configured chain. A failing chain does not stop the
// others; all failures are returned joined.
func (s *Syncer) SyncAll(ctx context.Context) error {
	start := time.Now()
	var errs []error
	total := 0

	for _, chainID := range s.chainIDs {
		label := strconv.FormatInt(chainID, 10)

		n, err := s.SyncChain(ctx, chainID)
		if err != nil {
			metrics.PendleSyncTotal.WithLabelValues(label, "error").Inc()
			s.logger.Warn("Pendle market sync failed", zap.Int64("chain_id", chainID), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		metrics.PendleSyncTotal.WithLabelValues(label, "success").Inc()
		metrics.PendleMarketsSynced.WithLabelValues(label).Set(float64(n))
		total += n
	}

	s.logger.Info("Pendle market sync completed",
		zap.Int("chains", len(s.chainIDs)),
		zap.Int("failed_chains", len(errs)),
		zap.Int("markets", total),
		zap.Duration("duration", time.Since(start)))

	return errors.Join(errs...)
}

// Start runs SyncAll every interval in a background goroutine until Stop is called.
func (s *Syncer) Start(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.logger.Info("Started periodic Pendle sync", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				// errors are already logged per chain
				_ = s.SyncAll(context.Background())
			case <-s.stopCh:
				s.logger.Info("Stopping periodic Pendle sync")
				return
			}
		}
	}()
}

// Stop ends the periodic sync and waits for an in-flight run to finish. Safe to call more than once.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

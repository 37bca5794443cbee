// Package store holds the in-memory snapshot of the user's collections
// and orchestrates the full re-synchronization cycle against the row
// store.
package store

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore"
)

// Snapshot is one consistent view of every collection. It is replaced
// wholesale on refresh, never merged incrementally.
type Snapshot struct {
	Trades        []model.Trade         `json:"trades"`
	Contributions []model.Contribution  `json:"contributions"`
	ExtraIncomes  []model.ExtraIncome   `json:"extraIncomes"`
	Assets        []model.Asset         `json:"assets"`
	Brokers       []model.Broker        `json:"brokers"`
	DiaryEntries  []model.DiaryEntry    `json:"diaryEntries"`
	SavedAnalyses []model.SavedAnalysis `json:"savedAnalyses"`
}

type Store struct {
	rows   rowstore.Store
	logger logger.Logger

	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(rows rowstore.Store, logger logger.Logger) *Store {
	return &Store{
		rows:   rows,
		logger: logger,
	}
}

func records(ctx context.Context, rows rowstore.Store, collection string) ([]mapper.Record, error) {
	recs, err := rows.Select(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: can't fetch %s", err, collection)
	}
	return recs, nil
}

func collect[T any](ctx context.Context, rows rowstore.Store, collection string, from func(mapper.Record) T, out *[]T) func() error {
	return func() error {
		recs, err := records(ctx, rows, collection)
		if err != nil {
			return err
		}
		mapped := make([]T, 0, len(recs))
		for _, r := range recs {
			mapped = append(mapped, from(r))
		}
		*out = mapped
		return nil
	}
}

// Refresh fetches all collections concurrently and replaces the snapshot
// only after every fetch succeeded. The join fails fast on the first
// rejection; on any failure the previous snapshot stays in place
// (stale-but-available). Refresh is idempotent and does not cancel a
// superseded run, so a stale late finisher can overwrite a newer
// snapshot — accepted, the next cycle converges.
func (s *Store) Refresh(ctx context.Context) error {
	var next Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(collect(gctx, s.rows, model.TradesCollection, mapper.TradeFromRecord, &next.Trades))
	g.Go(collect(gctx, s.rows, model.ContributionsCollection, mapper.ContributionFromRecord, &next.Contributions))
	g.Go(collect(gctx, s.rows, model.ExtraIncomesCollection, mapper.ExtraIncomeFromRecord, &next.ExtraIncomes))
	g.Go(collect(gctx, s.rows, model.AssetsCollection, mapper.AssetFromRecord, &next.Assets))
	g.Go(collect(gctx, s.rows, model.BrokersCollection, mapper.BrokerFromRecord, &next.Brokers))
	g.Go(collect(gctx, s.rows, model.DiaryEntriesCollection, mapper.DiaryEntryFromRecord, &next.DiaryEntries))
	g.Go(collect(gctx, s.rows, model.SavedAnalysesCollection, mapper.SavedAnalysisFromRecord, &next.SavedAnalyses))

	if err := g.Wait(); err != nil {
		s.logger.Errorf("%s: snapshot refresh failed, keeping previous data", err)
		return fmt.Errorf("%w: can't refresh snapshot", err)
	}

	s.replace(next)
	return nil
}

func (s *Store) replace(next Snapshot) {
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
}

// Snapshot returns a shallow copy of the current collections; callers
// may iterate it without holding the store's lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := Snapshot{
		Trades:        make([]model.Trade, len(s.snap.Trades)),
		Contributions: make([]model.Contribution, len(s.snap.Contributions)),
		ExtraIncomes:  make([]model.ExtraIncome, len(s.snap.ExtraIncomes)),
		Assets:        make([]model.Asset, len(s.snap.Assets)),
		Brokers:       make([]model.Broker, len(s.snap.Brokers)),
		DiaryEntries:  make([]model.DiaryEntry, len(s.snap.DiaryEntries)),
		SavedAnalyses: make([]model.SavedAnalysis, len(s.snap.SavedAnalyses)),
	}
	copy(cp.Trades, s.snap.Trades)
	copy(cp.Contributions, s.snap.Contributions)
	copy(cp.ExtraIncomes, s.snap.ExtraIncomes)
	copy(cp.Assets, s.snap.Assets)
	copy(cp.Brokers, s.snap.Brokers)
	copy(cp.DiaryEntries, s.snap.DiaryEntries)
	copy(cp.SavedAnalyses, s.snap.SavedAnalyses)
	return cp
}

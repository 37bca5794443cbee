// Package dispatch exposes the per-entity write operations. Every write
// translates the domain object to its persisted shape, invokes the row
// store, and on success triggers a full snapshot refresh — there is no
// optimistic local mutation; read-after-write consistency comes from the
// refetch. Failed writes surface as notifications and leave the
// snapshot untouched.
package dispatch

import (
	"context"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/notify"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/store"
)

type Dispatcher struct {
	rows     rowstore.Store
	store    *store.Store
	notifier *notify.Center
	logger   logger.Logger
}

func NewDispatcher(rows rowstore.Store, st *store.Store, notifier *notify.Center, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		rows:     rows,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

// refresh re-syncs the snapshot after a confirmed write. Refresh errors
// stay at the store boundary (logged, stale snapshot kept); the write
// itself already succeeded.
func (d *Dispatcher) refresh(ctx context.Context) {
	if err := d.store.Refresh(ctx); err != nil {
		d.logger.Warnf("%s: post-write refresh failed", err)
	}
}

func (d *Dispatcher) fail(message string, err error) error {
	d.notifier.Errorf("%s: %s", message, err)
	return err
}

func (d *Dispatcher) SaveTrade(ctx context.Context, t model.Trade) error {
	if err := d.rows.Upsert(ctx, model.TradesCollection, mapper.TradeToRecord(t)); err != nil {
		return d.fail("Can't save order", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) ArchiveTrade(ctx context.Context, id string) error {
	if err := d.rows.Update(ctx, model.TradesCollection, id, mapper.Record{"archived": true}); err != nil {
		return d.fail("Can't archive order", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteTrade(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.TradesCollection, id); err != nil {
		return d.fail("Can't delete order", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) SaveAsset(ctx context.Context, a model.Asset) error {
	if a.Status == "" {
		a.Status = model.Active
	}
	if err := d.rows.Upsert(ctx, model.AssetsCollection, mapper.AssetToRecord(a)); err != nil {
		return d.fail("Can't save asset", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) UpdateAssetStatus(ctx context.Context, id string, status model.AssetStatus) error {
	if err := d.rows.Update(ctx, model.AssetsCollection, id, mapper.Record{"status": string(status)}); err != nil {
		return d.fail("Can't update asset status", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteAsset(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.AssetsCollection, id); err != nil {
		return d.fail("Can't delete asset", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) AddBroker(ctx context.Context, b model.Broker) error {
	if _, err := d.rows.Insert(ctx, model.BrokersCollection, mapper.BrokerToRecord(b)); err != nil {
		return d.fail("Can't register institution", err)
	}
	d.notifier.Successf("Institution linked.")
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteBroker(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.BrokersCollection, id); err != nil {
		return d.fail("Can't unlink institution", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) SaveContribution(ctx context.Context, c model.Contribution) error {
	if err := d.rows.Upsert(ctx, model.ContributionsCollection, mapper.ContributionToRecord(c)); err != nil {
		return d.fail("Cash movement failed", err)
	}
	d.notifier.Successf("Cash movement recorded.")
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteContribution(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.ContributionsCollection, id); err != nil {
		return d.fail("Can't delete cash movement", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) AddIncome(ctx context.Context, i model.ExtraIncome) error {
	if _, err := d.rows.Insert(ctx, model.ExtraIncomesCollection, mapper.ExtraIncomeToRecord(i)); err != nil {
		return d.fail("Can't record income", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) SaveDiaryEntry(ctx context.Context, e model.DiaryEntry) error {
	if e.PostSessionFeeling == "" {
		e.PostSessionFeeling = model.Indifferent
	}
	if e.Status == "" {
		e.Status = model.DiaryOpen
	}
	if err := d.rows.Upsert(ctx, model.DiaryEntriesCollection, mapper.DiaryEntryToRecord(e)); err != nil {
		return d.fail("Diary sync failed", err)
	}
	d.notifier.Successf("Session performance synced with full audit.")
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteDiaryEntry(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.DiaryEntriesCollection, id); err != nil {
		return d.fail("Can't delete diary entry", err)
	}
	d.refresh(ctx)
	return nil
}

// SaveAnalysis is create-only: the analysis service always produces a
// new dossier entry. Returns the stored analysis with its assigned id.
func (d *Dispatcher) SaveAnalysis(ctx context.Context, a model.SavedAnalysis) (model.SavedAnalysis, error) {
	inserted, err := d.rows.Insert(ctx, model.SavedAnalysesCollection, mapper.SavedAnalysisToRecord(a))
	if err != nil {
		return model.SavedAnalysis{}, d.fail("Can't save analysis", err)
	}
	d.notifier.Successf("Analysis for %s added to the dossier.", a.AssetName)
	d.refresh(ctx)
	return mapper.SavedAnalysisFromRecord(inserted), nil
}

func (d *Dispatcher) ToggleArchiveAnalysis(ctx context.Context, id string, archived bool) error {
	if err := d.rows.Update(ctx, model.SavedAnalysesCollection, id, mapper.Record{"archived": archived}); err != nil {
		return d.fail("Can't archive analysis", err)
	}
	d.refresh(ctx)
	return nil
}

func (d *Dispatcher) DeleteAnalysis(ctx context.Context, id string) error {
	if err := d.rows.Delete(ctx, model.SavedAnalysesCollection, id); err != nil {
		return d.fail("Can't delete analysis", err)
	}
	d.refresh(ctx)
	return nil
}

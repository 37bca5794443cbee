package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/notify"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/store"
)

type fakeRows struct {
	data     map[string][]mapper.Record
	failNext error

	upserts []string
	patches []mapper.Record
	deletes []string
}

func newFakeRows() *fakeRows {
	return &fakeRows{data: make(map[string][]mapper.Record)}
}

func (f *fakeRows) take() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeRows) Select(_ context.Context, collection string) ([]mapper.Record, error) {
	return f.data[collection], nil
}

func (f *fakeRows) Insert(_ context.Context, collection string, rec mapper.Record) (mapper.Record, error) {
	if err := f.take(); err != nil {
		return nil, err
	}
	rec["id"] = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	f.data[collection] = append(f.data[collection], rec)
	return rec, nil
}

func (f *fakeRows) Upsert(_ context.Context, collection string, rec mapper.Record) error {
	if err := f.take(); err != nil {
		return err
	}
	f.upserts = append(f.upserts, collection)
	f.data[collection] = append(f.data[collection], rec)
	return nil
}

func (f *fakeRows) Update(_ context.Context, collection, id string, patch mapper.Record) error {
	if err := f.take(); err != nil {
		return err
	}
	f.patches = append(f.patches, patch)
	return nil
}

func (f *fakeRows) Delete(_ context.Context, collection, id string) error {
	if err := f.take(); err != nil {
		return err
	}
	f.deletes = append(f.deletes, collection+"/"+id)
	return nil
}

func newDispatcher(t *testing.T, rows *fakeRows) (*Dispatcher, *store.Store, *notify.Center) {
	t.Helper()
	l, _, err := logger.NewZapLogger(logger.Error)
	require.NoError(t, err)
	st := store.NewStore(rows, l)
	notifier := notify.NewCenter(0)
	return NewDispatcher(rows, st, notifier, l), st, notifier
}

func TestSaveTradeWritesAndRefreshes(t *testing.T) {
	rows := newFakeRows()
	d, st, _ := newDispatcher(t, rows)

	err := d.SaveTrade(context.Background(), model.Trade{Asset: "WINFUT", Contracts: 2, Result: model.Pending})
	require.NoError(t, err)

	assert.Equal(t, []string{model.TradesCollection}, rows.upserts)
	// the write is visible through the refetched snapshot, not a local patch
	snap := st.Snapshot()
	require.Len(t, snap.Trades, 1)
	assert.Equal(t, "WINFUT", snap.Trades[0].Asset)
}

func TestWriteFailureNotifiesAndKeepsSnapshot(t *testing.T) {
	rows := newFakeRows()
	d, st, notifier := newDispatcher(t, rows)

	rows.failNext = errors.New("row level security violation")
	err := d.SaveContribution(context.Background(), model.Contribution{Amount: 100, Type: model.Initial})
	require.Error(t, err)

	assert.Empty(t, st.Snapshot().Contributions)

	list := notifier.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.Error, list[0].Kind)
	assert.Contains(t, list[0].Message, "row level security violation")
}

func TestSaveContributionSuccessNotifies(t *testing.T) {
	rows := newFakeRows()
	d, _, notifier := newDispatcher(t, rows)

	require.NoError(t, d.SaveContribution(context.Background(), model.Contribution{Amount: 100, Type: model.Initial}))

	list := notifier.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.Success, list[0].Kind)
}

func TestSaveAssetDefaultsStatus(t *testing.T) {
	rows := newFakeRows()
	d, _, _ := newDispatcher(t, rows)

	require.NoError(t, d.SaveAsset(context.Background(), model.Asset{Name: "PETR4"}))

	recs := rows.data[model.AssetsCollection]
	require.Len(t, recs, 1)
	assert.Equal(t, string(model.Active), recs[0]["status"])
}

func TestSaveDiaryEntryDefaults(t *testing.T) {
	rows := newFakeRows()
	d, _, _ := newDispatcher(t, rows)

	require.NoError(t, d.SaveDiaryEntry(context.Background(), model.DiaryEntry{Objective: "scalp the open"}))

	recs := rows.data[model.DiaryEntriesCollection]
	require.Len(t, recs, 1)
	assert.Equal(t, string(model.Indifferent), recs[0]["post_session_feeling"])
	assert.Equal(t, string(model.DiaryOpen), recs[0]["status"])
}

func TestArchiveTradePatch(t *testing.T) {
	rows := newFakeRows()
	d, _, _ := newDispatcher(t, rows)

	require.NoError(t, d.ArchiveTrade(context.Background(), "t-1"))
	require.Len(t, rows.patches, 1)
	assert.Equal(t, true, rows.patches[0]["archived"])
}

func TestSaveAnalysisReturnsStoredRow(t *testing.T) {
	rows := newFakeRows()
	d, _, _ := newDispatcher(t, rows)

	saved, err := d.SaveAnalysis(context.Background(), model.SavedAnalysis{AssetName: "PETR4"})
	require.NoError(t, err)
	assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", saved.ID)
	assert.Equal(t, "PETR4", saved.AssetName)
}

func TestDeleteContribution(t *testing.T) {
	rows := newFakeRows()
	d, _, _ := newDispatcher(t, rows)

	require.NoError(t, d.DeleteContribution(context.Background(), "c-1"))
	assert.Equal(t, []string{model.ContributionsCollection + "/c-1"}, rows.deletes)
}

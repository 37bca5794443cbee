package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/config"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/dispatch"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/notify"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rates"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/store"
)

type fakeRows struct {
	data map[string][]mapper.Record
}

func (f *fakeRows) Select(_ context.Context, collection string) ([]mapper.Record, error) {
	return f.data[collection], nil
}

func (f *fakeRows) Insert(_ context.Context, collection string, rec mapper.Record) (mapper.Record, error) {
	rec["id"] = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
	f.data[collection] = append(f.data[collection], rec)
	return rec, nil
}

func (f *fakeRows) Upsert(_ context.Context, collection string, rec mapper.Record) error {
	f.data[collection] = append(f.data[collection], rec)
	return nil
}

func (f *fakeRows) Update(_ context.Context, _, _ string, _ mapper.Record) error { return nil }
func (f *fakeRows) Delete(_ context.Context, _, _ string) error                  { return nil }

func newTestServer(t *testing.T, rows *fakeRows) *httptest.Server {
	t.Helper()
	l, _, err := logger.NewZapLogger(logger.Error)
	require.NoError(t, err)

	st := store.NewStore(rows, l)
	require.NoError(t, st.Refresh(context.Background()))

	notifier := notify.NewCenter(0)
	dispatcher := dispatch.NewDispatcher(rows, st, notifier, l)
	ratesSvc := rates.NewService(config.RatesConfig{Address: "http://127.0.0.1:1", DefaultRate: 5.0}, l)

	cfg := config.ServerConfig{Port: "0", AllowedOrigins: []string{"*"}}
	srv := NewServer(context.Background(), cfg, st, dispatcher, ratesSvc, notifier, l)

	ts := httptest.NewServer(srv.s.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(v))
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, &fakeRows{data: map[string][]mapper.Record{}})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestEquityEndpoint(t *testing.T) {
	rows := &fakeRows{data: map[string][]mapper.Record{
		model.ContributionsCollection: {
			{"id": "c-1", "amount": "1000", "currency": "BRL", "type": "Initial"},
		},
		model.TradesCollection: {
			{"id": "t-1", "result": "Profit", "profit": 200.0, "currency": "BRL"},
			{"id": "t-2", "result": "Pending", "profit": 99999.0, "currency": "BRL"},
		},
		model.ExtraIncomesCollection: {
			{"id": "i-1", "amount": 50.0, "currency": "BRL"},
		},
	}}
	ts := newTestServer(t, rows)

	resp, err := http.Get(ts.URL + "/api/v1/equity")
	require.NoError(t, err)

	var body map[string]float64
	decode(t, resp, &body)
	assert.InDelta(t, 1250, body["equityBRL"], 1e-9)
	assert.Equal(t, 5.0, body["exchangeRate"])
}

func TestSaveTradeEndpoint(t *testing.T) {
	rows := &fakeRows{data: map[string][]mapper.Record{}}
	ts := newTestServer(t, rows)

	resp, err := http.Post(ts.URL+"/api/v1/trades", "application/json",
		strings.NewReader(`{"asset":"WINFUT","direction":"Buy","currency":"BRL","contracts":2,"result":"Pending"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// write landed and the refetched snapshot serves it
	resp, err = http.Get(ts.URL + "/api/v1/snapshot")
	require.NoError(t, err)
	var snap store.Snapshot
	decode(t, resp, &snap)
	require.Len(t, snap.Trades, 1)
	assert.Equal(t, "WINFUT", snap.Trades[0].Asset)
}

func TestSaveTradeBadJSON(t *testing.T) {
	ts := newTestServer(t, &fakeRows{data: map[string][]mapper.Record{}})

	resp, err := http.Post(ts.URL+"/api/v1/trades", "application/json", strings.NewReader(`{broken`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestManualRateLifecycle(t *testing.T) {
	ts := newTestServer(t, &fakeRows{data: map[string][]mapper.Record{}})

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/v1/settings/rate", strings.NewReader(`{"rate":6.25}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	var body map[string]float64
	decode(t, resp, &body)
	assert.Equal(t, 6.25, body["current"])
	assert.Equal(t, 6.25, body["manual"])
	assert.Equal(t, 5.0, body["fetched"])

	req, err = http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/settings/rate", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	decode(t, resp, &body)
	assert.Equal(t, 5.0, body["current"])
}

func TestMacroView(t *testing.T) {
	ts := newTestServer(t, &fakeRows{data: map[string][]mapper.Record{}})

	resp, err := http.Get(ts.URL + "/api/v1/macro")
	require.NoError(t, err)

	var body struct {
		Instruments []model.CorrelationAsset `json:"instruments"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Instruments)
	assert.Equal(t, "IBOV", body.Instruments[0].Ticker)
}

func TestValuationView(t *testing.T) {
	rows := &fakeRows{data: map[string][]mapper.Record{
		model.AssetsCollection: {
			{"id": "a-1", "name": "PETR4", "category": "Stocks/REIT", "status": "ACTIVE"},
			{"id": "a-2", "name": "WINFUT", "category": "CI", "status": "ACTIVE"},
			{"id": "a-3", "name": "MGLU3", "category": "Stocks/REIT", "status": "INACTIVE"},
		},
	}}
	ts := newTestServer(t, rows)

	resp, err := http.Get(ts.URL + "/api/v1/valuation")
	require.NoError(t, err)

	var body struct {
		Assets []model.Asset `json:"assets"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Assets, 1)
	assert.Equal(t, "PETR4", body.Assets[0].Name)
}

func TestDashboardView(t *testing.T) {
	rows := &fakeRows{data: map[string][]mapper.Record{
		model.AssetsCollection: {{"id": "a-1", "name": "PETR4", "status": "ACTIVE"}},
	}}
	ts := newTestServer(t, rows)

	resp, err := http.Get(ts.URL + "/api/v1/dashboard")
	require.NoError(t, err)

	var body struct {
		EquityBRL    float64       `json:"equityBRL"`
		ExchangeRate float64       `json:"exchangeRate"`
		Assets       []model.Asset `json:"assets"`
	}
	decode(t, resp, &body)
	assert.Zero(t, body.EquityBRL)
	assert.Equal(t, 5.0, body.ExchangeRate)
	require.Len(t, body.Assets, 1)
	assert.Equal(t, model.Active, body.Assets[0].Status)
}

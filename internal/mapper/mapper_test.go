package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
)

func TestTradeFromRecordCoercesStrings(t *testing.T) {
	r := Record{
		"id":          "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"asset":       "WINFUT",
		"type":        "Buy",
		"currency":    "BRL",
		"contracts":   "10",
		"entry_price": 128500.0,
		"stop_price":  "128300.50",
		"profit":      "-150.75",
		"timestamp":   "1717171717000",
		"archived":    nil,
		"broker_id":   "b-1",
	}

	trade := TradeFromRecord(r)
	assert.Equal(t, 10.0, trade.Contracts)
	assert.Equal(t, 128300.50, trade.StopPrice)
	assert.Equal(t, -150.75, trade.Profit)
	assert.Equal(t, int64(1717171717000), trade.Timestamp)
	assert.False(t, trade.Archived)
	assert.Equal(t, "b-1", trade.BrokerID)
}

func TestTradeFromRecordDefaultsMissingFields(t *testing.T) {
	trade := TradeFromRecord(Record{"asset": "PETR4"})
	assert.Zero(t, trade.Contracts)
	assert.Zero(t, trade.Costs)
	assert.Zero(t, trade.Timestamp)
	assert.Empty(t, trade.Notes)
	assert.False(t, trade.Archived)
}

func TestContributionFromRecord(t *testing.T) {
	c := ContributionFromRecord(Record{
		"amount":     "1000",
		"currency":   "USD",
		"type":       "Withdrawal",
		"asset_name": "IVVB11",
		"costs":      "garbage",
	})
	assert.Equal(t, 1000.0, c.Amount)
	assert.Equal(t, model.Withdrawal, c.Type)
	assert.Equal(t, "IVVB11", c.AssetName)
	assert.Zero(t, c.Costs)
}

func TestDiaryEntryFromRecordTruthiness(t *testing.T) {
	e := DiaryEntryFromRecord(Record{
		"objective_met":  true,
		"mental_rigor":   1.0,
		"tactical_rigor": 0.0,
		"risk_rigor":     nil,
		"is_closed":      "yes",
	})
	assert.True(t, e.ObjectiveReached)
	assert.True(t, e.EmotionalAudit)
	assert.False(t, e.StrategicAudit)
	assert.False(t, e.FinancialAudit)
	assert.True(t, e.IsClosed)
	assert.Equal(t, model.DiaryOpen, e.Status)
}

func TestSavedAnalysisLegacyColumn(t *testing.T) {
	a := SavedAnalysisFromRecord(Record{"assetname": "PETR4"})
	assert.Equal(t, "PETR4", a.AssetName)

	// camelCase wins when both keys are present
	both := SavedAnalysisFromRecord(Record{"assetname": "old", "assetName": "VALE3"})
	assert.Equal(t, "VALE3", both.AssetName)
}

func TestSavedAnalysisResultPayload(t *testing.T) {
	a := SavedAnalysisFromRecord(Record{
		"assetname": "WDOFUT",
		"result": map[string]any{
			"direction":  "BUY",
			"confidence": 0.82,
			"volatility": "HIGH",
			"reasoning":  "breakout retest",
		},
	})
	assert.Equal(t, model.AnalysisBuy, a.Result.Direction)
	assert.Equal(t, 0.82, a.Result.Confidence)
	assert.Equal(t, model.HighVolatility, a.Result.Volatility)
}

func TestIsStoredID(t *testing.T) {
	assert.True(t, IsStoredID("3fa85f64-5717-4562-b3fc-2c963f66afa6"))
	assert.True(t, IsStoredID("3FA85F64-5717-4562-B3FC-2C963F66AFA6"))
	assert.False(t, IsStoredID("abc"))
	assert.False(t, IsStoredID(""))
	assert.False(t, IsStoredID("3fa85f6457174562b3fc2c963f66afa6"))
	assert.False(t, IsStoredID("urn:uuid:3fa85f64-5717-4562-b3fc-2c963f66afa6"))
}

func TestOutboundIDGate(t *testing.T) {
	rec := ContributionToRecord(model.Contribution{ID: "abc", Amount: 50})
	_, hasID := rec["id"]
	assert.False(t, hasID)

	rec = ContributionToRecord(model.Contribution{ID: "3fa85f64-5717-4562-b3fc-2c963f66afa6", Amount: 50})
	require.Contains(t, rec, "id")
	assert.Equal(t, "3fa85f64-5717-4562-b3fc-2c963f66afa6", rec["id"])
}

func TestTradeToRecordShape(t *testing.T) {
	rec := TradeToRecord(model.Trade{
		Asset:      "WINFUT",
		Direction:  model.Sell,
		Currency:   model.BRL,
		Contracts:  5,
		EntryPrice: 130000,
		Result:     model.Pending,
		BrokerID:   "b-9",
	})

	assert.Equal(t, "Sell", rec["type"])
	assert.Equal(t, 130000.0, rec["entry_price"])
	assert.Equal(t, "b-9", rec["broker_id"])
	assert.NotContains(t, rec, "entryPrice")
	assert.NotContains(t, rec, "brokerId")
	assert.NotContains(t, rec, "id")
	assert.NotContains(t, rec, "user_id")
}

func TestSavedAnalysisToRecordWritesLegacyColumn(t *testing.T) {
	rec := SavedAnalysisToRecord(model.SavedAnalysis{AssetName: "PETR4"})
	assert.Equal(t, "PETR4", rec["assetname"])
	assert.NotContains(t, rec, "assetName")
}

func TestRoundTripTrade(t *testing.T) {
	in := model.Trade{
		ID:         "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		Asset:      "VALE3",
		Direction:  model.Buy,
		Currency:   model.USD,
		Contracts:  3,
		EntryPrice: 61.2,
		Result:     model.Profit,
		Profit:     42.5,
		Timestamp:  1700000000000,
		BrokerID:   "b-2",
	}
	out := TradeFromRecord(TradeToRecord(in))
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Direction, out.Direction)
	assert.Equal(t, in.Profit, out.Profit)
	assert.Equal(t, in.Timestamp, out.Timestamp)
}

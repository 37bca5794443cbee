package mapper

import (
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
)

// Outbound mapping produces the snake_case row shape. The id key is set
// only when the domain id is a stored UUID; otherwise it is left out so
// the backend assigns one on insert.

func withID(r Record, id string) Record {
	if IsStoredID(id) {
		r["id"] = id
	}
	return r
}

func TradeToRecord(t model.Trade) Record {
	return withID(Record{
		"asset":              t.Asset,
		"type":               string(t.Direction),
		"currency":           string(t.Currency),
		"contracts":          t.Contracts,
		"entry_price":        t.EntryPrice,
		"stop_price":         t.StopPrice,
		"initial_stop_price": t.InitialStopPrice,
		"take_profit":        t.TakeProfit,
		"guarantee":          t.Guarantee,
		"result":             string(t.Result),
		"profit":             t.Profit,
		"costs":              t.Costs,
		"date":               t.Date,
		"timestamp":          t.Timestamp,
		"archived":           t.Archived,
		"image":              t.Image,
		"notes":              t.Notes,
		"broker_id":          t.BrokerID,
	}, t.ID)
}

func ContributionToRecord(c model.Contribution) Record {
	return withID(Record{
		"amount":     c.Amount,
		"currency":   string(c.Currency),
		"type":       string(c.Type),
		"date":       c.Date,
		"timestamp":  c.Timestamp,
		"broker_id":  c.BrokerID,
		"asset_name": c.AssetName,
		"costs":      c.Costs,
	}, c.ID)
}

func ExtraIncomeToRecord(i model.ExtraIncome) Record {
	return withID(Record{
		"asset_name": i.AssetName,
		"type":       string(i.Type),
		"amount":     i.Amount,
		"currency":   string(i.Currency),
		"date":       i.Date,
		"timestamp":  i.Timestamp,
		"notes":      i.Notes,
		"broker_id":  i.BrokerID,
	}, i.ID)
}

func AssetToRecord(a model.Asset) Record {
	return withID(Record{
		"name":               a.Name,
		"category":           string(a.Category),
		"currency":           string(a.Currency),
		"calculation_method": string(a.CalculationMethod),
		"point_value":        a.PointValue,
		"min_lots":           a.MinLots,
		"receives_dividends": a.ReceivesDividends,
		"receives_interest":  a.ReceivesInterest,
		"receives_bonus":     a.ReceivesBonus,
		"status":             string(a.Status),
	}, a.ID)
}

func BrokerToRecord(b model.Broker) Record {
	return withID(Record{
		"name": b.Name,
		"type": string(b.Type),
	}, b.ID)
}

func DiaryEntryToRecord(e model.DiaryEntry) Record {
	return withID(Record{
		"date":                 e.Date,
		"timestamp":            e.Timestamp,
		"session":              string(e.Session),
		"emotional_state":      string(e.EmotionalState),
		"post_session_feeling": string(e.PostSessionFeeling),
		"sleep_quality":        string(e.SleepQuality),
		"expectation":          string(e.Expectation),
		"objective":            e.Objective,
		"evaluation":           e.Evaluation,
		"reflection":           e.Reflection,
		"objective_met":        e.ObjectiveReached,
		"mental_rigor":         e.EmotionalAudit,
		"tactical_rigor":       e.StrategicAudit,
		"risk_rigor":           e.FinancialAudit,
		"learning":             e.Learning,
		"is_closed":            e.IsClosed,
		"is_day_sealed":        e.IsDaySealed,
		"status":               string(e.Status),
	}, e.ID)
}

// SavedAnalysisToRecord writes the legacy "assetname" column, which is what
// the saved_analyses table actually has.
func SavedAnalysisToRecord(a model.SavedAnalysis) Record {
	return withID(Record{
		"assetname": a.AssetName,
		"timestamp": a.Timestamp,
		"date":      a.Date,
		"image":     a.Image,
		"result":    a.Result,
		"archived":  a.Archived,
	}, a.ID)
}

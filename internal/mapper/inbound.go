package mapper

import (
	"github.com/bytedance/sonic"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
)

func TradeFromRecord(r Record) model.Trade {
	return model.Trade{
		ID:               r.str("id"),
		UserID:           r.str("user_id"),
		Asset:            r.str("asset"),
		Direction:        model.TradeDirection(r.str("type")),
		Currency:         model.Currency(r.str("currency")),
		Contracts:        r.num("contracts"),
		EntryPrice:       r.num("entry_price"),
		StopPrice:        r.num("stop_price"),
		InitialStopPrice: r.num("initial_stop_price"),
		TakeProfit:       r.num("take_profit"),
		Guarantee:        r.num("guarantee"),
		Result:           model.TradeResult(r.str("result")),
		Profit:           r.num("profit"),
		Costs:            r.num("costs"),
		Date:             r.str("date"),
		Timestamp:        r.integer("timestamp"),
		Archived:         r.boolean("archived"),
		Image:            r.str("image"),
		Notes:            r.str("notes"),
		BrokerID:         r.str("broker_id"),
	}
}

func ContributionFromRecord(r Record) model.Contribution {
	return model.Contribution{
		ID:        r.str("id"),
		UserID:    r.str("user_id"),
		Amount:    r.num("amount"),
		Currency:  model.Currency(r.str("currency")),
		Type:      model.MovementType(r.str("type")),
		Date:      r.str("date"),
		Timestamp: r.integer("timestamp"),
		BrokerID:  r.str("broker_id"),
		AssetName: r.str("asset_name"),
		Costs:     r.num("costs"),
	}
}

func ExtraIncomeFromRecord(r Record) model.ExtraIncome {
	return model.ExtraIncome{
		ID:        r.str("id"),
		UserID:    r.str("user_id"),
		AssetName: r.str("asset_name"),
		Type:      model.IncomeType(r.str("type")),
		Amount:    r.num("amount"),
		Currency:  model.Currency(r.str("currency")),
		Date:      r.str("date"),
		Timestamp: r.integer("timestamp"),
		Notes:     r.str("notes"),
		BrokerID:  r.str("broker_id"),
	}
}

func AssetFromRecord(r Record) model.Asset {
	return model.Asset{
		ID:                r.str("id"),
		UserID:            r.str("user_id"),
		Name:              r.str("name"),
		Category:          model.AssetCategory(r.str("category")),
		Currency:          model.Currency(r.str("currency")),
		CalculationMethod: model.CalculationMethod(r.str("calculation_method")),
		PointValue:        r.num("point_value"),
		MinLots:           r.num("min_lots"),
		ReceivesDividends: r.boolean("receives_dividends"),
		ReceivesInterest:  r.boolean("receives_interest"),
		ReceivesBonus:     r.boolean("receives_bonus"),
		Status:            model.AssetStatus(r.str("status")),
	}
}

func BrokerFromRecord(r Record) model.Broker {
	return model.Broker{
		ID:     r.str("id"),
		UserID: r.str("user_id"),
		Name:   r.str("name"),
		Type:   model.BrokerType(r.str("type")),
	}
}

func DiaryEntryFromRecord(r Record) model.DiaryEntry {
	e := model.DiaryEntry{
		ID:                 r.str("id"),
		UserID:             r.str("user_id"),
		Date:               r.str("date"),
		Timestamp:          r.integer("timestamp"),
		Session:            model.TradingSession(r.str("session")),
		EmotionalState:     model.EmotionalState(r.str("emotional_state")),
		PostSessionFeeling: model.PostSessionFeeling(r.str("post_session_feeling")),
		SleepQuality:       model.SleepQuality(r.str("sleep_quality")),
		Expectation:        model.Expectation(r.str("expectation")),
		Objective:          r.str("objective"),
		Evaluation:         r.str("evaluation"),
		Reflection:         r.str("reflection"),
		ObjectiveReached:   r.boolean("objective_met"),
		EmotionalAudit:     r.boolean("mental_rigor"),
		StrategicAudit:     r.boolean("tactical_rigor"),
		FinancialAudit:     r.boolean("risk_rigor"),
		Learning:           r.str("learning"),
		IsClosed:           r.boolean("is_closed"),
		IsDaySealed:        r.boolean("is_day_sealed"),
		Status:             model.DiaryStatus(r.str("status")),
	}
	if e.Status == "" {
		e.Status = model.DiaryOpen
	}
	return e
}

// SavedAnalysisFromRecord handles the legacy lowercase "assetname" column:
// the camelCase key wins when both are present.
func SavedAnalysisFromRecord(r Record) model.SavedAnalysis {
	a := model.SavedAnalysis{
		ID:        r.str("id"),
		UserID:    r.str("user_id"),
		AssetName: r.str("assetName"),
		Timestamp: r.integer("timestamp"),
		Date:      r.str("date"),
		Image:     r.str("image"),
		Archived:  r.boolean("archived"),
	}
	if a.AssetName == "" {
		a.AssetName = r.str("assetname")
	}

	if raw, ok := r["result"]; ok && raw != nil {
		if b, err := sonic.Marshal(raw); err == nil {
			var result model.AIAnalysisResult
			if err := sonic.Unmarshal(b, &result); err == nil {
				a.Result = result
			}
		}
	}

	return a
}

package model

type TradeResult string

const (
	Pending TradeResult = "Pending"
	Profit  TradeResult = "Profit"
	Loss    TradeResult = "Loss"
)

// Realized reports whether the trade's profit already counts towards equity.
func (r TradeResult) Realized() bool {
	return r != Pending
}

type TradeDirection string

const (
	Buy  TradeDirection = "Buy"
	Sell TradeDirection = "Sell"
)

type Trade struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId,omitempty"`
	Asset            string         `json:"asset"`
	Direction        TradeDirection `json:"direction"`
	Currency         Currency       `json:"currency"`
	Contracts        float64        `json:"contracts"`
	EntryPrice       float64        `json:"entryPrice"`
	StopPrice        float64        `json:"stopPrice"`
	InitialStopPrice float64        `json:"initialStopPrice"`
	TakeProfit       float64        `json:"takeProfit"`
	Guarantee        float64        `json:"guarantee"`
	Result           TradeResult    `json:"result"`
	Profit           float64        `json:"profit"`
	Costs            float64        `json:"costs"`
	Date             string         `json:"date"`
	Timestamp        int64          `json:"timestamp"`
	Archived         bool           `json:"archived"`
	Image            string         `json:"image,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	BrokerID         string         `json:"brokerId"`
}

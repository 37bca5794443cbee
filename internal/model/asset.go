package model

type AssetCategory string

const (
	StocksREIT AssetCategory = "Stocks/REIT"
	CI         AssetCategory = "CI"
)

type CalculationMethod string

const (
	Points     CalculationMethod = "Points"
	Percentage CalculationMethod = "Percentage"
)

type AssetStatus string

const (
	Active   AssetStatus = "ACTIVE"
	Inactive AssetStatus = "INACTIVE"
)

// Asset is a tradeable instrument's configuration. Name is unique per user.
type Asset struct {
	ID                string            `json:"id,omitempty"`
	UserID            string            `json:"userId,omitempty"`
	Name              string            `json:"name"`
	Category          AssetCategory     `json:"category"`
	Currency          Currency          `json:"currency"`
	CalculationMethod CalculationMethod `json:"calculationMethod"`
	PointValue        float64           `json:"pointValue"`
	MinLots           float64           `json:"minLots"`
	ReceivesDividends bool              `json:"receivesDividends"`
	ReceivesInterest  bool              `json:"receivesInterest"`
	ReceivesBonus     bool              `json:"receivesBonus"`
	Status            AssetStatus       `json:"status,omitempty"`
}

type BrokerType string

const (
	Exchange  BrokerType = "Exchange"
	Brokerage BrokerType = "Brokerage"
	Bank      BrokerType = "Bank"
)

type Broker struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId,omitempty"`
	Name   string     `json:"name"`
	Type   BrokerType `json:"type"`
}

package model

type IncomeType string

const (
	Dividend IncomeType = "Dividend"
	Interest IncomeType = "Interest"
)

// ExtraIncome is an asset payout outside regular trading, always additive
// to equity.
type ExtraIncome struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId,omitempty"`
	AssetName string     `json:"assetName"`
	Type      IncomeType `json:"type"`
	Amount    float64    `json:"amount"`
	Currency  Currency   `json:"currency"`
	Date      string     `json:"date"`
	Timestamp int64      `json:"timestamp"`
	Notes     string     `json:"notes,omitempty"`
	BrokerID  string     `json:"brokerId,omitempty"`
}

package model

// MovementType classifies a cash movement and controls its sign in the
// equity aggregation.
type MovementType string

const (
	Initial    MovementType = "Initial"
	Additional MovementType = "Additional"
	Withdrawal MovementType = "Withdrawal"
	Yield      MovementType = "Yield"
	MovCost    MovementType = "Cost"
)

// Debits reports whether the movement takes money out of the portfolio.
func (m MovementType) Debits() bool {
	return m == Withdrawal || m == MovCost
}

type Contribution struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId,omitempty"`
	Amount    float64      `json:"amount"`
	Currency  Currency     `json:"currency"`
	Type      MovementType `json:"type"`
	Date      string       `json:"date"`
	Timestamp int64        `json:"timestamp"`
	BrokerID  string       `json:"brokerId"`
	AssetName string       `json:"assetName,omitempty"`
	Costs     float64      `json:"costs"`
}

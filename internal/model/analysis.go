package model

type AnalysisDirection string

const (
	AnalysisBuy     AnalysisDirection = "BUY"
	AnalysisSell    AnalysisDirection = "SELL"
	AnalysisNeutral AnalysisDirection = "NEUTRAL"
	AnalysisWait    AnalysisDirection = "WAIT"
)

type Volatility string

const (
	LowVolatility    Volatility = "LOW"
	MediumVolatility Volatility = "MEDIUM"
	HighVolatility   Volatility = "HIGH"
)

type StructureStatus string

const (
	StructureUp        StructureStatus = "UP"
	StructureDown      StructureStatus = "DOWN"
	StructureSideways  StructureStatus = "SIDEWAYS"
	StructureExhausted StructureStatus = "EXHAUSTION"
	StructureBreakout  StructureStatus = "BREAKOUT"
)

// AIAnalysisResult is the structured payload produced by the chart-analysis
// service. It is stored and served as-is; nothing here interprets it.
type AIAnalysisResult struct {
	Direction       AnalysisDirection `json:"direction"`
	EntryRegion     string            `json:"entryRegion"`
	MaxSafeBoundary float64           `json:"maxSafeBoundary"`
	StopLoss        float64           `json:"stopLoss"`
	TakeProfit      float64           `json:"takeProfit"`
	Confidence      float64           `json:"confidence"`
	Reasoning       string            `json:"reasoning"`
	Volatility      Volatility        `json:"volatility"`
	RiskScore       float64           `json:"riskScore"`
	RiskMitigation  string            `json:"riskMitigation"`
	StructureStatus StructureStatus   `json:"structureStatus"`
	TrendContext    string            `json:"trendContext"`
	TrendAlert      string            `json:"trendAlert,omitempty"`
}

type SavedAnalysis struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId,omitempty"`
	AssetName string           `json:"assetName"`
	Timestamp int64            `json:"timestamp"`
	Date      string           `json:"date"`
	Image     string           `json:"image,omitempty"`
	Result    AIAnalysisResult `json:"result"`
	Archived  bool             `json:"archived"`
}

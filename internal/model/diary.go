package model

type TradingSession string

const (
	Overnight TradingSession = "Overnight"
	Morning   TradingSession = "Morning"
	Afternoon TradingSession = "Afternoon"
	Evening   TradingSession = "Evening"
)

type EmotionalState string

const (
	Calm       EmotionalState = "Calm"
	Anxious    EmotionalState = "Anxious"
	Euphoric   EmotionalState = "Euphoric"
	Frustrated EmotionalState = "Frustrated"
)

type PostSessionFeeling string

const (
	Disciplined    PostSessionFeeling = "Disciplined"
	PostFrustrated PostSessionFeeling = "Frustrated"
	PostEuphoric   PostSessionFeeling = "Euphoric"
	Drained        PostSessionFeeling = "Drained"
	Indifferent    PostSessionFeeling = "Indifferent"
)

type SleepQuality string

const (
	GoodSleep SleepQuality = "Good"
	FairSleep SleepQuality = "Fair"
	PoorSleep SleepQuality = "Poor"
)

type Expectation string

const (
	Realistic Expectation = "Realistic"
	Positive  Expectation = "Positive"
	Negative  Expectation = "Negative"
)

type DiaryStatus string

const (
	DiaryOpen   DiaryStatus = "open"
	DiaryClosed DiaryStatus = "closed"
)

// DiaryEntry is one trading-session journal record. Timestamp uniquely
// orders entries.
type DiaryEntry struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId,omitempty"`
	Date               string             `json:"date"`
	Timestamp          int64              `json:"timestamp"`
	Session            TradingSession     `json:"session"`
	EmotionalState     EmotionalState     `json:"emotionalState"`
	PostSessionFeeling PostSessionFeeling `json:"postSessionFeeling,omitempty"`
	SleepQuality       SleepQuality       `json:"sleepQuality"`
	Expectation        Expectation        `json:"expectation"`
	Objective          string             `json:"objective"`
	Evaluation         string             `json:"evaluation"`
	Reflection         string             `json:"reflection"`
	ObjectiveReached   bool               `json:"objectiveReached"`
	EmotionalAudit     bool               `json:"emotionalAudit"`
	StrategicAudit     bool               `json:"strategicAudit"`
	FinancialAudit     bool               `json:"financialAudit"`
	Learning           string             `json:"learning"`
	IsClosed           bool               `json:"isClosed"`
	IsDaySealed        bool               `json:"isDaySealed"`
	Status             DiaryStatus        `json:"status,omitempty"`
}

package model

// Currency is one of the two settlement currencies the terminal knows about.
// BRL is the reference currency: equity is always reported in it.
type Currency string

const (
	USD Currency = "USD"
	BRL Currency = "BRL"
)

// ReferenceCurrency is the currency equity is reported in.
const ReferenceCurrency = BRL

// Collection names on the persistence side.
const (
	TradesCollection        = "trades"
	AssetsCollection        = "assets"
	ContributionsCollection = "contributions"
	ExtraIncomesCollection  = "extra_incomes"
	BrokersCollection       = "brokers"
	DiaryEntriesCollection  = "diary_entries"
	SavedAnalysesCollection = "saved_analyses"
)

func Collections() []string {
	return []string{
		TradesCollection,
		AssetsCollection,
		ContributionsCollection,
		ExtraIncomesCollection,
		BrokersCollection,
		DiaryEntriesCollection,
		SavedAnalysesCollection,
	}
}

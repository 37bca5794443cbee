package model

type CorrelationCategory string

const (
	IndexInstrument     CorrelationCategory = "Index"
	CurrencyInstrument  CorrelationCategory = "Currency"
	CommodityInstrument CorrelationCategory = "Commodity"
	FuturesInstrument   CorrelationCategory = "Futures"
)

// CorrelationAsset is one instrument on the macro correlation board.
type CorrelationAsset struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Ticker   string              `json:"ticker"`
	Category CorrelationCategory `json:"category"`
}

// MacroCatalog lists the instruments the macro correlation view tracks.
func MacroCatalog() []CorrelationAsset {
	return []CorrelationAsset{
		{ID: "ibov", Name: "Bovespa Index", Ticker: "IBOV", Category: IndexInstrument},
		{ID: "spx", Name: "S&P 500", Ticker: "SPX", Category: IndexInstrument},
		{ID: "usdbrl", Name: "US Dollar / Real", Ticker: "USD/BRL", Category: CurrencyInstrument},
		{ID: "gold", Name: "Gold", Ticker: "XAUUSD", Category: CommodityInstrument},
		{ID: "wti", Name: "WTI Crude", Ticker: "WTI", Category: CommodityInstrument},
		{ID: "win", Name: "Mini Index Futures", Ticker: "WINFUT", Category: FuturesInstrument},
		{ID: "wdo", Name: "Mini Dollar Futures", Ticker: "WDOFUT", Category: FuturesInstrument},
	}
}

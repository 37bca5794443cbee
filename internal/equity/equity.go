// Package equity derives the portfolio value in the reference currency
// (BRL) from cash movements, realized trade results and extra incomes.
package equity

import (
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
)

// toBRL converts an amount at the given USD/BRL rate. Only USD and BRL
// exist; a new currency must extend this switch, not fall through.
func toBRL(amount float64, currency model.Currency, rate float64) float64 {
	if currency == model.USD {
		return amount * rate
	}
	return amount
}

// Compute reduces the three amount sources into a single BRL total.
// No rounding is applied; display formatting is the caller's problem.
//
// Cash movements: Withdrawal and Cost subtract amount plus costs; every
// other movement adds the amount only. Costs on additive movements are
// intentionally not counted (inherited business rule, pinned by tests —
// do not "fix" without the domain owner's say-so).
//
// Trades with a Pending result are skipped; realized profit may be
// negative. Extra incomes always add.
//
// The rate is taken as-is: zero or negative values degenerate the USD
// conversion arithmetically, validation belongs to the caller.
func Compute(contributions []model.Contribution, trades []model.Trade, incomes []model.ExtraIncome, rate float64) float64 {
	var total float64

	for _, c := range contributions {
		amount := toBRL(c.Amount, c.Currency, rate)
		costs := toBRL(c.Costs, c.Currency, rate)
		if c.Type.Debits() {
			total -= amount + costs
			continue
		}
		total += amount
	}

	for _, t := range trades {
		if !t.Result.Realized() {
			continue
		}
		total += toBRL(t.Profit, t.Currency, rate)
	}

	for _, i := range incomes {
		total += toBRL(i.Amount, i.Currency, rate)
	}

	return total
}

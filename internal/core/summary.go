package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

type (
	// MonthTotal is the summed amount for one month, labelled like "Jan 2024".
	MonthTotal struct {
		Month  string  `json:"month"`
		Amount float64 `json:"amount"`
	}

	// CategoryTotal is the summed amount for one category string.
	CategoryTotal struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
	}

	// Summary is the full derived view of a transaction list.
	Summary struct {
		TotalSpent     float64         `json:"totalSpent"`
		TopCategory    string          `json:"topCategory"`
		Latest         *Transaction    `json:"latestTransaction,omitempty"`
		MonthlyTotals  []MonthTotal    `json:"monthlyTotals"`
		CategoryTotals []CategoryTotal `json:"categoryTotals"`
	}
)

const monthLabelLayout = "Jan 2006"

// MonthlyTotals groups transactions by calendar month and sums their
// amounts. Groups appear in the order they are first encountered while
// scanning the input, not in calendar order: callers pass the
// date-descending list, so the most recent month with entries comes
// first. Sums go through decimal so repeated cents don't drift.
func MonthlyTotals(txns []Transaction) []MonthTotal {
	labels := make([]string, 0, len(txns))
	sums := make(map[string]decimal.Decimal, len(txns))
	for _, t := range txns {
		label := t.Date.Format(monthLabelLayout)
		if _, ok := sums[label]; !ok {
			labels = append(labels, label)
		}
		sums[label] = sums[label].Add(decimal.NewFromFloat(t.Amount))
	}
	out := make([]MonthTotal, 0, len(labels))
	for _, label := range labels {
		out = append(out, MonthTotal{Month: label, Amount: sums[label].InexactFloat64()})
	}
	return out
}

// CategoryTotals groups transactions by their exact category string, no
// normalization. Group order is first-seen in the input list.
func CategoryTotals(txns []Transaction) []CategoryTotal {
	names := make([]string, 0, len(txns))
	sums := make(map[string]decimal.Decimal, len(txns))
	for _, t := range txns {
		if _, ok := sums[t.Category]; !ok {
			names = append(names, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(decimal.NewFromFloat(t.Amount))
	}
	out := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		out = append(out, CategoryTotal{Category: name, Amount: sums[name].InexactFloat64()})
	}
	return out
}

// Summarize derives all report data from a date-descending transaction
// list in one pass over the helpers above. Everything is recomputed on
// each call; there is no incremental state.
func Summarize(txns []Transaction) Summary {
	s := Summary{
		TopCategory:    "N/A",
		MonthlyTotals:  MonthlyTotals(txns),
		CategoryTotals: CategoryTotals(txns),
	}

	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(decimal.NewFromFloat(t.Amount))
	}
	s.TotalSpent = total.InexactFloat64()

	// Largest summed category wins; the stable sort keeps the
	// first-seen one on equal totals.
	ranked := append([]CategoryTotal(nil), s.CategoryTotals...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Amount > ranked[j].Amount })
	if len(ranked) > 0 {
		s.TopCategory = ranked[0].Category
	}

	if len(txns) > 0 {
		latest := txns[0]
		s.Latest = &latest
	}
	return s
}

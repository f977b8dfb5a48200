package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/keihi-dev/keihi/internal/model"
)

// TotalOf sums the amounts of a collection. An empty collection totals 0.
func TotalOf[E model.Record](entries []E) int64 {
	var total int64
	for _, e := range entries {
		total += e.Base().Amount
	}
	return total
}

// GrandTotal sums both collections.
func GrandTotal(store []model.StoreEntry, personal []model.PersonalEntry) int64 {
	return TotalOf(store) + TotalOf(personal)
}

// StoreFrequency counts entries per store name.
func StoreFrequency(store []model.StoreEntry) map[string]int {
	freq := make(map[string]int)
	for _, e := range store {
		freq[e.Store]++
	}
	return freq
}

// StoreCount is the number of entries recorded for one store.
type StoreCount struct {
	Name  string
	Count int
}

// DominantStore returns the store with the most entries. Ties go to the
// lexicographically smallest name. ok is false for an empty collection.
func DominantStore(store []model.StoreEntry) (StoreCount, bool) {
	var best StoreCount
	found := false
	for name, count := range StoreFrequency(store) {
		if !found || count > best.Count || (count == best.Count && name < best.Name) {
			best = StoreCount{Name: name, Count: count}
			found = true
		}
	}
	return best, found
}

// StoreBreakdown is the per-store line of a Summary.
type StoreBreakdown struct {
	Name  string
	Count int
	Total int64
}

// Summary collects the figures shown by `keihi summary`.
type Summary struct {
	StoreCount    int
	PersonalCount int
	StoreTotal    int64
	PersonalTotal int64
	GrandTotal    int64
	// InvoiceTotal sums store entries flagged invoice-eligible.
	InvoiceTotal int64
	// Average is the mean amount over all entries, rounded half-up to whole yen.
	Average  int64
	Dominant *StoreCount
	Stores   []StoreBreakdown
}

// Summarize computes a Summary over both collections.
func Summarize(store []model.StoreEntry, personal []model.PersonalEntry) Summary {
	s := Summary{
		StoreCount:    len(store),
		PersonalCount: len(personal),
		StoreTotal:    TotalOf(store),
		PersonalTotal: TotalOf(personal),
	}
	s.GrandTotal = s.StoreTotal + s.PersonalTotal

	byStore := make(map[string]*StoreBreakdown)
	for _, e := range store {
		if e.IsInvoice {
			s.InvoiceTotal += e.Amount
		}
		b, ok := byStore[e.Store]
		if !ok {
			b = &StoreBreakdown{Name: e.Store}
			byStore[e.Store] = b
		}
		b.Count++
		b.Total += e.Amount
	}
	for _, b := range byStore {
		s.Stores = append(s.Stores, *b)
	}
	sort.Slice(s.Stores, func(i, j int) bool {
		if s.Stores[i].Count != s.Stores[j].Count {
			return s.Stores[i].Count > s.Stores[j].Count
		}
		return s.Stores[i].Name < s.Stores[j].Name
	})

	if d, ok := DominantStore(store); ok {
		s.Dominant = &d
	}

	if n := s.StoreCount + s.PersonalCount; n > 0 {
		avg := decimal.NewFromInt(s.GrandTotal).Div(decimal.NewFromInt(int64(n)))
		s.Average = avg.Round(0).IntPart()
	}
	return s
}

var printer = message.NewPrinter(language.Japanese)

// FormatYen renders an amount with a yen sign and digit grouping, e.g. ¥1,500.
func FormatYen(amount int64) string {
	return printer.Sprintf("¥%d", amount)
}

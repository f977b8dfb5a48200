package export

import (
	"strconv"
	"time"

	"github.com/keihi-dev/keihi/internal/model"
)

// Row labels.
const (
	CategoryStore    = "店舗出金"
	CategoryPersonal = "個人経費"
	InvoiceMarker    = "インボイス"
	DefaultClaimant  = "西村（個人）"
)

// Column indices.
const (
	ColCategory = iota
	ColLabel
	ColDetail
	ColAmount
	ColMemo
	ColInvoice
	ColCreatedAt
	NumColumns
)

// Header is the fixed column order.
var Header = []string{"種別", "店舗_項目", "詳細", "金額", "メモ", "インボイス判定", "登録日時"}

// Row is one exported line, before encoding.
type Row struct {
	Category  string
	Label     string
	Detail    string
	Amount    int64
	Memo      string
	Invoice   string
	CreatedAt time.Time
}

// Rows lists store entries first, then personal entries, each in
// collection order.
func Rows(store []model.StoreEntry, personal []model.PersonalEntry, claimant string) []Row {
	rows := make([]Row, 0, len(store)+len(personal))
	for _, e := range store {
		invoice := ""
		if e.IsInvoice {
			invoice = InvoiceMarker
		}
		rows = append(rows, Row{
			Category:  CategoryStore,
			Label:     e.Store,
			Detail:    e.DisplayItem,
			Amount:    e.Amount,
			Memo:      e.Memo,
			Invoice:   invoice,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, e := range personal {
		rows = append(rows, Row{
			Category:  CategoryPersonal,
			Label:     claimant,
			Detail:    e.DisplayItem,
			Amount:    e.Amount,
			Memo:      e.Memo,
			CreatedAt: e.CreatedAt,
		})
	}
	return rows
}

// Timestamp formats a creation time as exported.
func Timestamp(t time.Time) string {
	return t.UTC().Format(model.TimestampFormat)
}

// MarshalRow converts a row to its CSV fields. Free-text fields are
// sanitized; amount and timestamp are left bare.
func MarshalRow(r Row) []string {
	rec := make([]string, NumColumns)
	rec[ColCategory] = r.Category
	rec[ColLabel] = Sanitize(r.Label)
	rec[ColDetail] = Sanitize(r.Detail)
	rec[ColAmount] = strconv.FormatInt(r.Amount, 10)
	rec[ColMemo] = Sanitize(r.Memo)
	rec[ColInvoice] = r.Invoice
	rec[ColCreatedAt] = Timestamp(r.CreatedAt)
	return rec
}

package export

import (
	"fmt"
	"time"

	"github.com/keihi-dev/keihi/internal/model"
	"github.com/keihi-dev/keihi/internal/report"
)

// FileName derives the CSV file name from the collections and the date of now.
//
//	経費_糸我_他1件_個人2件_20250115.csv
//	経費_個人分のみ_2件_20250115.csv
//	経費データ_20250115.csv
func FileName(store []model.StoreEntry, personal []model.PersonalEntry, now time.Time) string {
	return baseName(store, personal, now) + ".csv"
}

// XLSXFileName is FileName with an .xlsx extension.
func XLSXFileName(store []model.StoreEntry, personal []model.PersonalEntry, now time.Time) string {
	return baseName(store, personal, now) + ".xlsx"
}

func baseName(store []model.StoreEntry, personal []model.PersonalEntry, now time.Time) string {
	date := now.Format("20060102")

	if d, ok := report.DominantStore(store); ok {
		name := "経費_" + d.Name
		if others := len(store) - d.Count; others > 0 {
			name += fmt.Sprintf("_他%d件", others)
		}
		if len(personal) > 0 {
			name += fmt.Sprintf("_個人%d件", len(personal))
		}
		return name + "_" + date
	}
	if len(personal) > 0 {
		return fmt.Sprintf("経費_個人分のみ_%d件_%s", len(personal), date)
	}
	return "経費データ_" + date
}

package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keihi-dev/keihi/internal/model"
)

var exportNow = time.Date(2025, 1, 5, 9, 0, 0, 0, time.Local)

func storeAt(names ...string) []model.StoreEntry {
	var out []model.StoreEntry
	for _, n := range names {
		out = append(out, model.StoreEntry{Store: n, Entry: model.Entry{Amount: 100}})
	}
	return out
}

func personalN(n int) []model.PersonalEntry {
	out := make([]model.PersonalEntry, n)
	for i := range out {
		out[i] = model.PersonalEntry{Entry: model.Entry{Amount: 100}}
	}
	return out
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		store    []model.StoreEntry
		personal []model.PersonalEntry
		want     string
	}{
		{"dominant with others", storeAt("糸我", "貴志川", "糸我"), nil, "経費_糸我_他1件_20250105.csv"},
		{"single store only", storeAt("熊野", "熊野"), nil, "経費_熊野_20250105.csv"},
		{"store and personal", storeAt("和佐"), personalN(2), "経費_和佐_個人2件_20250105.csv"},
		{"all suffixes", storeAt("池田", "池田", "倉吉"), personalN(1), "経費_池田_他1件_個人1件_20250105.csv"},
		{"personal only", nil, personalN(2), "経費_個人分のみ_2件_20250105.csv"},
		{"empty", nil, nil, "経費データ_20250105.csv"},
		{"tie picks smallest name", storeAt("天理", "和佐"), nil, "経費_和佐_他1件_20250105.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.store, tt.personal, exportNow))
		})
	}
}

func TestFileName_Deterministic(t *testing.T) {
	store := storeAt("坂出", "岡南", "坂出", "岡南", "御所")
	first := FileName(store, nil, exportNow)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, FileName(store, nil, exportNow))
	}
}

func TestXLSXFileName(t *testing.T) {
	assert.Equal(t, "経費_個人分のみ_1件_20250105.xlsx", XLSXFileName(nil, personalN(1), exportNow))
}

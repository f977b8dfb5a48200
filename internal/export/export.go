package export

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/keihi-dev/keihi/internal/model"
)

// ErrEmptyDataset is returned when both collections are empty.
var ErrEmptyDataset = errors.New("no entries to export")

// MIME types of the produced documents.
const (
	MIMETypeCSV  = "text/csv;charset=utf-8"
	MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// SheetName names the single XLSX worksheet.
const SheetName = "経費"

const bom = "\uFEFF"

// Document is an export ready to hand to a sink.
type Document struct {
	FileName string
	MIMEType string
	Content  []byte
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Sanitize collapses each run of CR/LF to one space and wraps the value in
// double quotes, doubling inner quotes. The empty string stays empty.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = lineBreaks.ReplaceAllString(s, " ")
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 10},
	{"B", "C", 18},
	{"D", "D", 10},
	{"E", "E", 30},
	{"F", "F", 12},
	{"G", "G", 26},
}

// Exporter renders both collections into a single document.
type Exporter struct {
	// Claimant labels personal rows.
	Claimant string
	Now      func() time.Time
}

// NewExporter returns an Exporter. An empty claimant uses DefaultClaimant.
func NewExporter(claimant string, now func() time.Time) *Exporter {
	if claimant == "" {
		claimant = DefaultClaimant
	}
	if now == nil {
		now = time.Now
	}
	return &Exporter{Claimant: claimant, Now: now}
}

// Export renders the given format.
func (x *Exporter) Export(format string, store []model.StoreEntry, personal []model.PersonalEntry) (Document, error) {
	switch format {
	case FormatCSV, "":
		return x.CSV(store, personal)
	case FormatXLSX:
		return x.XLSX(store, personal)
	default:
		return Document{}, fmt.Errorf("unknown export format %q", format)
	}
}

// CSV renders a BOM-prefixed CSV document. Lines are separated by "\n"
// with no trailing newline.
func (x *Exporter) CSV(store []model.StoreEntry, personal []model.PersonalEntry) (Document, error) {
	if len(store) == 0 && len(personal) == 0 {
		return Document{}, ErrEmptyDataset
	}

	lines := make([]string, 0, 1+len(store)+len(personal))
	lines = append(lines, strings.Join(Header, ","))
	for _, r := range Rows(store, personal, x.Claimant) {
		lines = append(lines, strings.Join(MarshalRow(r), ","))
	}

	return Document{
		FileName: FileName(store, personal, x.Now()),
		MIMEType: MIMETypeCSV,
		Content:  []byte(bom + strings.Join(lines, "\n")),
	}, nil
}

// XLSX renders the same rows as a single-sheet workbook with numeric amounts.
func (x *Exporter) XLSX(store []model.StoreEntry, personal []model.PersonalEntry) (Document, error) {
	if len(store) == 0 && len(personal) == 0 {
		return Document{}, ErrEmptyDataset
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return Document{}, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return Document{}, fmt.Errorf("writing header: %w", err)
	}

	for i, r := range Rows(store, personal, x.Claimant) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return Document{}, err
		}
		row := []any{
			r.Category,
			flatten(r.Label),
			flatten(r.Detail),
			r.Amount,
			flatten(r.Memo),
			r.Invoice,
			Timestamp(r.CreatedAt),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return Document{}, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	for _, w := range columnWidths {
		if err := f.SetColWidth(SheetName, w.from, w.to, w.width); err != nil {
			return Document{}, fmt.Errorf("setting width of %s:%s: %w", w.from, w.to, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Document{}, fmt.Errorf("encoding workbook: %w", err)
	}

	return Document{
		FileName: XLSXFileName(store, personal, x.Now()),
		MIMEType: MIMETypeXLSX,
		Content:  bytes.Clone(buf.Bytes()),
	}, nil
}

// flatten applies the CSV line-break rule without quoting.
func flatten(s string) string {
	return lineBreaks.ReplaceAllString(s, " ")
}

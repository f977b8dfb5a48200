package activity

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Actions recorded in the log.
const (
	ActionAdd    = "add"
	ActionDelete = "delete"
	ActionClear  = "clear"
	ActionExport = "export"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	Action    string
	Kind      string
	EntryID   string
	Amount    int64
	Details   string
}

// Header is the CSV header for activity-log.csv.
const Header = "timestamp,action,kind,entry_id,amount,details"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/activity-log.csv"
	colTimestamp = 0
	colAction    = 1
	colKind      = 2
	colEntryID   = 3
	colAmount    = 4
	colDetails   = 5
)

// Path returns the log location under a project root.
func Path(root string) string {
	return filepath.Join(root, logFile)
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colKind] = e.Kind
	row[colEntryID] = e.EntryID
	row[colAmount] = strconv.FormatInt(e.Amount, 10)
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return Entry{
		Timestamp: ts,
		Action:    record[colAction],
		Kind:      record[colKind],
		EntryID:   record[colEntryID],
		Amount:    amount,
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <root>/logs/activity-log.csv, creating the file
// and header if needed.
func Append(root string, entries ...Entry) error {
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(root)
	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries, oldest first. A missing log yields no entries.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(Path(root))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

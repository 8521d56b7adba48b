package matcher

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const StatusReady = "ready"

// Entry is one row of the service catalog.
type Entry struct {
	Description string
	CTA         string
	Route       string
	Status      string
}

// Ready reports whether the service behind the entry is integrated.
func (e Entry) Ready() bool {
	return strings.EqualFold(strings.TrimSpace(e.Status), StatusReady)
}

// LoadCatalog reads a CSV with a header row. Columns are found by name;
// description, cta and route are required, status defaults to ready.
func LoadCatalog(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, name := range []string{"description", "cta", "route"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("catalog missing column %q", name)
		}
	}
	statusCol, hasStatus := cols["status"]

	var entries []Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}

		e := Entry{
			Description: field(rec, cols["description"]),
			CTA:         field(rec, cols["cta"]),
			Route:       field(rec, cols["route"]),
			Status:      StatusReady,
		}
		if hasStatus {
			if s := field(rec, statusCol); s != "" {
				e.Status = s
			}
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, errors.New("catalog has no entries")
	}
	return entries, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simpletrade/blotter/internal/domain/models"
)

// expectedHeaders enforces strict column ordering for seed files.
// If the header doesn't match EXACTLY (order + count), seeding must fail.
var expectedHeaders = []string{
	"subject",
	"source",
	"counterparty",
	"notional",
	"status",
}

// record is one seed row: the booking fields plus the lifecycle state the
// trade should end up in (LIVE, VERIFIED or CANCELLED).
type record struct {
	Subject      string
	Source       string
	Counterparty string
	Notional     decimal.Decimal
	Status       models.Status
}

// parseFile opens and validates one seed file and returns its rows.
//
// It fails on:
//   - header not matching expected order/length
//   - wrong column count on any row
//   - unparseable notional or unknown status
//
// It tolerates:
//   - an empty notional cell (becomes zero)
//   - an empty status cell (becomes LIVE)
func parseFile(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we check explicitly

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []record
	line := 1 // header already read
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", line, len(expectedHeaders), len(rec))
		}

		row, err := toRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, row)
	}
	return out, nil
}

func toRecord(rec []string) (record, error) {
	notional := decimal.Zero
	if cell := strings.TrimSpace(rec[3]); cell != "" {
		var err error
		notional, err = decimal.NewFromString(cell)
		if err != nil {
			return record{}, fmt.Errorf("parse notional %q: %w", cell, err)
		}
	}

	status := models.StatusLive
	if cell := strings.TrimSpace(rec[4]); cell != "" {
		var ok bool
		status, ok = models.ParseStatus(cell)
		if !ok {
			return record{}, fmt.Errorf("unknown status %q", rec[4])
		}
	}

	return record{
		Subject:      strings.TrimSpace(rec[0]),
		Source:       strings.TrimSpace(rec[1]),
		Counterparty: strings.TrimSpace(rec[2]),
		Notional:     notional,
		Status:       status,
	}, nil
}

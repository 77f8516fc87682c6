// Package airport holds the read-only airport reference table used to resolve an
// airport's local timezone and to back airport search.
package airport

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/flighttime"
)

// DefaultSearchLimit is the number of airports returned for an empty query.
const DefaultSearchLimit = 8

//go:embed airports.csv
var seedCSV []byte

type Airport struct {
	Code     string `csv:"code" json:"code"`
	Name     string `csv:"name" json:"name"`
	City     string `csv:"city" json:"city"`
	Timezone string `csv:"timezone" json:"timezone"`
}

// Directory is an immutable airport table. It is safe for concurrent use.
type Directory struct {
	airports []Airport
	byCode   map[string]Airport
}

var loadSeed = sync.OnceValues(func() (*Directory, error) {
	return LoadDirectory(bytes.NewReader(seedCSV))
})

// Default returns the directory built from the embedded seed list. It is parsed once per
// process.
func Default() (*Directory, error) {
	return loadSeed()
}

// LoadFile reads a directory from a CSV file with a code,name,city,timezone header.
func LoadFile(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airport file: %w", err)
	}
	defer f.Close()

	return LoadDirectory(f)
}

// LoadDirectory parses airport rows and rejects rows with a malformed code, a duplicate
// code or an unknown timezone.
func LoadDirectory(r io.Reader) (*Directory, error) {
	var rows []Airport
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode airport csv: %w", err)
	}

	dir := &Directory{
		airports: make([]Airport, 0, len(rows)),
		byCode:   make(map[string]Airport, len(rows)),
	}

	for i, row := range rows {
		row.Code = strings.ToUpper(strings.TrimSpace(row.Code))
		row.Timezone = strings.TrimSpace(row.Timezone)

		if len(row.Code) != 3 {
			return nil, fmt.Errorf("airport row %d: code %q is not a 3-letter IATA code", i+1, row.Code)
		}

		if _, ok := dir.byCode[row.Code]; ok {
			return nil, fmt.Errorf("airport row %d: duplicate code %s", i+1, row.Code)
		}

		if _, err := flighttime.LoadLocation(row.Timezone); err != nil {
			return nil, fmt.Errorf("airport row %d: timezone %q: %w", i+1, row.Timezone, err)
		}

		dir.airports = append(dir.airports, row)
		dir.byCode[row.Code] = row
	}

	return dir, nil
}

// Lookup finds an airport by IATA code, ignoring case.
func (d *Directory) Lookup(code string) (Airport, bool) {
	a, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Search matches the query as a case-insensitive substring of name, code or city, in
// table order. An empty query returns the first DefaultSearchLimit airports. A limit of
// zero or less means no limit for non-empty queries.
func (d *Directory) Search(query string, limit int) []Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if limit <= 0 || limit > DefaultSearchLimit {
			limit = DefaultSearchLimit
		}
		return d.head(limit)
	}

	results := make([]Airport, 0)
	for _, a := range d.airports {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			results = append(results, a)
			if limit > 0 && len(results) == limit {
				break
			}
		}
	}

	return results
}

// Len returns the number of airports.
func (d *Directory) Len() int {
	return len(d.airports)
}

func (d *Directory) head(n int) []Airport {
	if n > len(d.airports) {
		n = len(d.airports)
	}

	out := make([]Airport, n)
	copy(out, d.airports[:n])

	return out
}

package fbar

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vasi/monarch-fbar/date"
)

const (
	euro = "EUR" // pivot currency of the dataset, implicit and always 1.0
	usd  = "USD" // universal output unit, always required
)

// rateLeadInMonths is how far before January 1 parsing starts, so that
// forward-filling always has a known value on day one of the target year.
// One month is comfortably longer than any publishing gap.
const rateLeadInMonths = 1

// staleCutoff is the earliest acceptable date for the newest row: with no
// row on or after December 28 the dataset has not caught up with the target
// year yet (a year can end on a weekend, eating the last days).
func staleCutoff(year int) date.Date { return date.New(year, time.December, 28) }

// Rates is a gap-free table of daily exchange rates covering one calendar
// year, expressed as currency units per EUR. Once built it is read-only and
// safe for concurrent use.
type Rates struct {
	year int
	days map[date.Date]map[string]float64
}

// NewRates parses a raw daily rate dataset (CSV with a Date column and one
// column per currency code, "NaN" or blank for missing values) into a table
// covering the target year for all the given currencies.
//
// USD is added to the currencies, EUR removed: every conversion is routed
// through the EUR pivot and ends in USD. Rows outside the parsing window
// are discarded. Days without a row (weekends, holidays) are filled with
// the most recent known day. Construction fails loudly rather than
// substituting values: ErrMissingCurrencies when a required currency has no
// value on an in-window row, ErrStaleRates when the dataset has no row near
// the end of the target year.
func NewRates(r io.Reader, year int, currencies []string) (*Rates, error) {
	required := make(map[string]bool, len(currencies)+1)
	for _, c := range currencies {
		required[c] = true
	}
	required[usd] = true
	delete(required, euro)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // the dataset has a trailing empty column on some rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read rate dataset header: %w", err)
	}
	column := make(map[string]int, len(header))
	for i, name := range header {
		column[strings.TrimSpace(name)] = i
	}
	dateCol, ok := column["Date"]
	if !ok {
		return nil, fmt.Errorf("rate dataset has no Date column")
	}

	first := date.New(year, time.January-rateLeadInMonths, 1)
	parsed := make(map[date.Date]map[string]float64)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read rate dataset: %w", err)
		}
		day, err := date.Parse(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("rate dataset: %w", err)
		}
		if day.Before(first) || day.Year() > year {
			continue
		}

		rates := make(map[string]float64, len(required))
		var missing []string
		for c := range required {
			i, ok := column[c]
			if !ok || i >= len(row) {
				missing = append(missing, c)
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil || math.IsNaN(v) {
				missing = append(missing, c)
				continue
			}
			rates[c] = v
		}
		if len(missing) > 0 {
			return nil, &ErrMissingCurrencies{Currencies: missing}
		}
		parsed[day] = rates
	}

	cutoff := staleCutoff(year)
	stale := true
	for day := range parsed {
		if !day.Before(cutoff) {
			stale = false
			break
		}
	}
	if stale {
		return nil, &ErrStaleRates{Year: year}
	}

	// Walk every calendar day in order, remembering the last known row to
	// fill the gaps. The lead-in days only seed the fill and are dropped.
	days := make(map[date.Date]map[string]float64)
	end := date.New(year, time.December, 31)
	var last map[string]float64
	for day := first; !day.After(end); day = day.Add(1) {
		if row, ok := parsed[day]; ok {
			last = row
		}
		if day.Year() == year && last != nil {
			days[day] = last
		}
	}

	return &Rates{year: year, days: days}, nil
}

// Year returns the calendar year the table covers.
func (r *Rates) Year() int { return r.year }

// Len returns the number of days in the table.
func (r *Rates) Len() int { return len(r.days) }

// Has reports whether the table has rates for the given day.
func (r *Rates) Has(day date.Date) bool {
	_, ok := r.days[day]
	return ok
}

// ToUSD converts an amount of the given currency on a given day into USD,
// routing through the EUR pivot. A zero rate in the source data yields an
// infinite result rather than a masked one: it is an upstream data defect.
func (r *Rates) ToUSD(day date.Date, currency string, amount float64) (float64, error) {
	row, ok := r.days[day]
	if !ok {
		return 0, &ErrNoRate{Day: day}
	}
	eur := amount
	if currency != euro {
		rate, ok := row[currency]
		if !ok {
			return 0, &ErrNoRate{Day: day, Currency: currency}
		}
		eur = amount / rate
	}
	usdRate, ok := row[usd]
	if !ok {
		return 0, &ErrNoRate{Day: day, Currency: usd}
	}
	return eur * usdRate, nil
}

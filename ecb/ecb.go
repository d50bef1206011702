// Package ecb downloads the European Central Bank euro foreign exchange
// reference rates, the daily dataset the rate table is built from.
package ecb

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	fbar "github.com/vasi/monarch-fbar"
)

// HistoryURL is the full history of daily reference rates, a zip archive
// holding a single CSV file with a Date column and one column per currency.
const HistoryURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist.zip"

// FetchHistory downloads the full daily history dataset and returns the
// CSV content. Responses are cached on disk for a day: the ECB publishes
// once per business day, around 16:00 CET.
func FetchHistory() ([]byte, error) {
	data, err := fbar.GetBytes(fbar.CachingClient(), HistoryURL)
	if err != nil {
		return nil, fmt.Errorf("cannot download rate dataset: %w", err)
	}
	return unzipFirst(data)
}

// unzipFirst returns the content of the first file of a zip archive.
func unzipFirst(data []byte) ([]byte, error) {
	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("cannot open rate archive: %w", err)
	}
	if len(z.File) == 0 {
		return nil, fmt.Errorf("rate archive is empty")
	}
	f, err := z.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open %q in rate archive: %w", z.File[0].Name, err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q in rate archive: %w", z.File[0].Name, err)
	}
	return content, nil
}

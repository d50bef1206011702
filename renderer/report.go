package renderer

import (
	fbar "github.com/vasi/monarch-fbar"
)

// Report holds the per-account maxima of one year for rendering.
type Report struct {
	Year  int
	Maxes []fbar.AccountMax
}

// Active returns the maxima with activity, in input order.
func (r Report) Active() []fbar.AccountMax {
	active := make([]fbar.AccountMax, 0, len(r.Maxes))
	for _, m := range r.Maxes {
		if m.HasActivity() {
			active = append(active, m)
		}
	}
	return active
}

// Inactive returns the accounts without any balance entry in the year.
func (r Report) Inactive() []fbar.AccountMax {
	inactive := make([]fbar.AccountMax, 0)
	for _, m := range r.Maxes {
		if !m.HasActivity() {
			inactive = append(inactive, m)
		}
	}
	return inactive
}

// ReportMarkdown renders the yearly maximum-balance report to markdown.
func ReportMarkdown(year int, maxes []fbar.AccountMax) string {
	return renderTemplate("report.md", Report{Year: year, Maxes: maxes})
}

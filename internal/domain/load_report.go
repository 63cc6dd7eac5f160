package domain

import "time"

// LoadReport summarizes one completed catalog load, full or partial.
type LoadReport struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	PagesLoaded int       `json:"pages_loaded"`
	TotalPages  int       `json:"total_pages"`
	Characters  int       `json:"characters"`
	Partial     bool      `json:"partial"`
	FailedPage  int       `json:"failed_page,omitempty"`
	Error       string    `json:"error,omitempty"`
}

func (r *LoadReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

package wtt3

import (
	"fmt"
	"time"
)

// Record is a single reservation as the WTT3 API returns it. Fields are kept
// as raw strings; validation and timestamp parsing happen during
// reconciliation so a bad record fails on its own instead of poisoning the
// whole page decode.
type Record struct {
	ID             string `json:"id"`
	ReservableSlug string `json:"reservable_slug"`
	OwnerEmail     string `json:"owner_email,omitempty"`
	Start          string `json:"start"`
	End            string `json:"end"`
	Reason         string `json:"reason,omitempty"`
}

// Page is one page of the paginated reservations listing.
type Page struct {
	Results []Record `json:"results"`
	Next    *string  `json:"next"`
}

func (p *Page) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// FetchRequest describes the first page fetch of an import run.
type FetchRequest struct {
	BaseURL   string
	APIKey    string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransportError aborts an import run. PagesFetched is the number of pages
// fully handed to the caller before the failure, so partial progress can be
// reported.
type TransportError struct {
	PagesFetched int
	Err          error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wtt3 transport failure after %d page(s): %v", e.PagesFetched, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

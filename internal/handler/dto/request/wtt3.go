package request

import "time"

// RunImportRequest overrides the configured WTT3 defaults for a single run.
type RunImportRequest struct {
	APIURL           string     `json:"api_url,omitempty"`
	APIKey           string     `json:"api_key,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	DryRun           bool       `json:"dry_run,omitempty"`
	AllowOwnerCreate bool       `json:"allow_owner_create,omitempty"`
}

package response

import (
	"roomsync/internal/usecase"

	"github.com/jinzhu/copier"
)

type ImportFailureResponse struct {
	ExternalID string `json:"external_id"`
	Slug       string `json:"slug"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason"`
}

type ImportRunResponse struct {
	Created   int                     `json:"created"`
	Updated   int                     `json:"updated"`
	Skipped   int                     `json:"skipped"`
	Failed    []ImportFailureResponse `json:"failed"`
	Pages     int                     `json:"pages"`
	Truncated bool                    `json:"truncated"`
}

type DryRunResponse struct {
	Reachable   bool `json:"reachable"`
	RecordCount int  `json:"record_count"`
	HasMore     bool `json:"has_more"`
}

func FromImportResult(result *usecase.ImportResult) *ImportRunResponse {
	var resp ImportRunResponse
	_ = copier.Copy(&resp, result)

	resp.Failed = make([]ImportFailureResponse, len(result.Failed))
	for i, f := range result.Failed {
		resp.Failed[i] = ImportFailureResponse{
			ExternalID: f.ExternalID,
			Slug:       f.Slug,
			Kind:       string(f.Kind),
			Reason:     f.Reason,
		}
	}
	return &resp
}

func FromDryRunResult(result *usecase.DryRunResult) *DryRunResponse {
	return &DryRunResponse{
		Reachable:   true,
		RecordCount: result.RecordCount,
		HasMore:     result.HasMore,
	}
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"roomsync/internal/infra/wtt3"
	"roomsync/internal/pkg/config"
)

type ImportParams struct {
	APIURL           string
	APIKey           string
	StartDate        *time.Time
	EndDate          *time.Time
	AllowOwnerCreate bool
}

type FailureKind string

const (
	FailureValidation        FailureKind = "VALIDATION"
	FailureUnknownReservable FailureKind = "UNKNOWN_RESERVABLE"
	FailureUnknownOwner      FailureKind = "UNKNOWN_OWNER"
	FailurePersistence       FailureKind = "PERSISTENCE"
)

// FailureRecord carries enough context to diagnose a rejected record without
// re-running the import.
type FailureRecord struct {
	ExternalID string      `json:"external_id"`
	Slug       string      `json:"slug"`
	Kind       FailureKind `json:"kind"`
	Reason     string      `json:"reason"`
}

type ImportResult struct {
	Created   int             `json:"created"`
	Updated   int             `json:"updated"`
	Skipped   int             `json:"skipped"`
	Failed    []FailureRecord `json:"failed"`
	Pages     int             `json:"pages"`
	Truncated bool            `json:"truncated"`
}

type DryRunResult struct {
	RecordCount int  `json:"record_count"`
	HasMore     bool `json:"has_more"`
}

type WTT3ImportUseCase interface {
	// Run imports every page the source serves. Per-record failures are
	// accumulated in the result; only a transport-level failure returns a
	// non-nil error, and the partial result is still returned alongside it.
	Run(ctx context.Context, params ImportParams) (*ImportResult, error)
	// DryRun fetches exactly one page to validate connectivity. Nothing is
	// reconciled or persisted.
	DryRun(ctx context.Context, params ImportParams) (*DryRunResult, error)
}

type wtt3ImportUseCaseImpl struct {
	source           ReservationSource
	reservationRepo  ReservationRepository
	reservationReads ReservationReadStore
	reservableReads  ReservableReadStore
	userReads        UserReadStore
	userRepo         UserRepository
	cfg              config.WTT3Config
	logger           *slog.Logger
}

func NewWTT3ImportUseCase(
	source ReservationSource,
	reservationRepo ReservationRepository,
	reservationReads ReservationReadStore,
	reservableReads ReservableReadStore,
	userReads UserReadStore,
	userRepo UserRepository,
	cfg config.WTT3Config,
	logger *slog.Logger,
) WTT3ImportUseCase {
	return &wtt3ImportUseCaseImpl{
		source:           source,
		reservationRepo:  reservationRepo,
		reservationReads: reservationReads,
		reservableReads:  reservableReads,
		userReads:        userReads,
		userRepo:         userRepo,
		cfg:              cfg,
		logger:           logger,
	}
}

func (u *wtt3ImportUseCaseImpl) Run(ctx context.Context, params ImportParams) (*ImportResult, error) {
	params = u.applyDefaults(params)
	result := &ImportResult{Failed: []FailureRecord{}}
	run := u.newRun(params.AllowOwnerCreate)

	page, err := u.source.FetchFirst(ctx, wtt3.FetchRequest{
		BaseURL:   params.APIURL,
		APIKey:    params.APIKey,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return result, &wtt3.TransportError{PagesFetched: 0, Err: err}
	}

	for {
		for _, rec := range page.Results {
			// The caller may cancel between records; no record is ever
			// partially applied.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			result.tally(run.reconcile(ctx, rec))
		}
		result.Pages++

		if !page.HasNext() {
			break
		}
		if result.Pages >= u.cfg.PageLimit {
			result.Truncated = true
			u.logger.Warn("WTT3 page limit reached, stopping pagination",
				"pages", result.Pages, "limit", u.cfg.PageLimit)
			break
		}

		page, err = u.source.FetchNext(ctx, *page.Next, params.APIKey)
		if err != nil {
			return result, &wtt3.TransportError{PagesFetched: result.Pages, Err: err}
		}
	}

	u.logger.Info("WTT3 import finished",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", len(result.Failed),
		"pages", result.Pages,
	)
	return result, nil
}

func (u *wtt3ImportUseCaseImpl) DryRun(ctx context.Context, params ImportParams) (*DryRunResult, error) {
	params = u.applyDefaults(params)

	page, err := u.source.FetchFirst(ctx, wtt3.FetchRequest{
		BaseURL:   params.APIURL,
		APIKey:    params.APIKey,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return nil, &wtt3.TransportError{PagesFetched: 0, Err: err}
	}

	return &DryRunResult{
		RecordCount: len(page.Results),
		HasMore:     page.HasNext(),
	}, nil
}

func (u *wtt3ImportUseCaseImpl) applyDefaults(params ImportParams) ImportParams {
	if params.APIURL == "" {
		params.APIURL = u.cfg.APIURL
	}
	if params.APIKey == "" {
		params.APIKey = u.cfg.APIKey
	}
	if !params.AllowOwnerCreate {
		params.AllowOwnerCreate = u.cfg.AllowOwnerCreate
	}
	return params
}

func (r *ImportResult) tally(o outcome) {
	switch o.kind {
	case outcomeCreated:
		r.Created++
	case outcomeUpdated:
		r.Updated++
	case outcomeSkipped:
		r.Skipped++
	case outcomeFailed:
		r.Failed = append(r.Failed, *o.failure)
	}
}

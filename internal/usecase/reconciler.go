package usecase

import (
	"context"
	"log/slog"
	"time"

	"roomsync/internal/domain/reservation"
	"roomsync/internal/domain/user"
	"roomsync/internal/infra"
	"roomsync/internal/infra/wtt3"
	"roomsync/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type outcomeKind int

const (
	outcomeCreated outcomeKind = iota
	outcomeUpdated
	outcomeSkipped
	outcomeFailed
)

type outcome struct {
	kind    outcomeKind
	failure *FailureRecord
}

func created() outcome { return outcome{kind: outcomeCreated} }
func updated() outcome { return outcome{kind: outcomeUpdated} }

func failed(rec wtt3.Record, kind FailureKind, reason string) outcome {
	return outcome{
		kind: outcomeFailed,
		failure: &FailureRecord{
			ExternalID: rec.ID,
			Slug:       rec.ReservableSlug,
			Kind:       kind,
			Reason:     reason,
		},
	}
}

// importRun holds the state of a single import: resolver caches are scoped to
// the run and discarded with it, never shared across runs.
type importRun struct {
	reservationRepo  ReservationRepository
	reservationReads ReservationReadStore
	reservableReads  ReservableReadStore
	userReads        UserReadStore
	userRepo         UserRepository
	allowOwnerCreate bool
	logger           *slog.Logger

	// Slugs and emails repeat heavily across a timetable; a nil value records
	// a known miss so the store is asked only once per key.
	reservableCache map[string]*readmodel.ReservableRM
	ownerCache      map[string]*readmodel.UserRM
}

func (u *wtt3ImportUseCaseImpl) newRun(allowOwnerCreate bool) *importRun {
	return &importRun{
		reservationRepo:  u.reservationRepo,
		reservationReads: u.reservationReads,
		reservableReads:  u.reservableReads,
		userReads:        u.userReads,
		userRepo:         u.userRepo,
		allowOwnerCreate: allowOwnerCreate,
		logger:           u.logger,
		reservableCache:  map[string]*readmodel.ReservableRM{},
		ownerCache:       map[string]*readmodel.UserRM{},
	}
}

// reconcile decides create-vs-update for one raw record. Every failure is
// returned as data; nothing escapes as an error, so a bad record never stops
// the records after it.
func (r *importRun) reconcile(ctx context.Context, rec wtt3.Record) outcome {
	if rec.ID == "" {
		return failed(rec, FailureValidation, "missing external id")
	}
	if rec.ReservableSlug == "" {
		return failed(rec, FailureValidation, "missing reservable slug")
	}

	slot, err := parseSlot(rec.Start, rec.End)
	if err != nil {
		return failed(rec, FailureValidation, err.Error())
	}

	reservableRM, oc := r.resolveReservable(ctx, rec)
	if reservableRM == nil {
		return oc
	}

	ownerID, oc, ok := r.resolveOwner(ctx, rec)
	if !ok {
		return oc
	}

	entity, err := reservation.NewImportedReservation(rec.ID, reservableRM.ID, ownerID, slot, rec.Reason)
	if err != nil {
		return failed(rec, FailureValidation, err.Error())
	}

	existing, err := r.reservationReads.FindByExternalID(ctx, rec.ID)
	switch {
	case err == nil:
		// Unconditional overwrite: a re-import of an unchanged record still
		// counts as an update.
		if err := r.reservationRepo.Overwrite(ctx, existing.ID, entity); err != nil {
			return failed(rec, FailurePersistence, err.Error())
		}
		return updated()

	case infra.IsKind(err, infra.KindNotFound):
		if _, err := r.reservationRepo.Create(ctx, entity); err != nil {
			return failed(rec, FailurePersistence, err.Error())
		}
		return created()

	default:
		return failed(rec, FailurePersistence, err.Error())
	}
}

func parseSlot(start, end string) (reservation.TimeSlot, error) {
	if start == "" || end == "" {
		return reservation.TimeSlot{}, reservation.ErrInvalidTimeSlot
	}

	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return reservation.TimeSlot{}, err
	}

	return reservation.NewTimeSlot(startAt, endAt)
}

func (r *importRun) resolveReservable(ctx context.Context, rec wtt3.Record) (*readmodel.ReservableRM, outcome) {
	slug := rec.ReservableSlug

	if cached, seen := r.reservableCache[slug]; seen {
		if cached == nil {
			return nil, failed(rec, FailureUnknownReservable, "no reservable with slug "+slug)
		}
		return cached, outcome{}
	}

	rm, err := r.reservableReads.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			r.reservableCache[slug] = nil
			return nil, failed(rec, FailureUnknownReservable, "no reservable with slug "+slug)
		}
		return nil, failed(rec, FailurePersistence, err.Error())
	}

	r.reservableCache[slug] = rm
	return rm, outcome{}
}

// resolveOwner maps an owner email to a local user. A record without an email
// is valid and yields a nil owner. ok=false means the record failed.
func (r *importRun) resolveOwner(ctx context.Context, rec wtt3.Record) (*uuid.UUID, outcome, bool) {
	email := rec.OwnerEmail
	if email == "" {
		return nil, outcome{}, true
	}

	if cached, seen := r.ownerCache[email]; seen {
		if cached == nil {
			return nil, failed(rec, FailureUnknownOwner, "no user with email "+email), false
		}
		return &cached.ID, outcome{}, true
	}

	rm, err := r.userReads.FindByEmail(ctx, email)
	if err == nil {
		r.ownerCache[email] = rm
		return &rm.ID, outcome{}, true
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, failed(rec, FailurePersistence, err.Error()), false
	}

	if !r.allowOwnerCreate {
		r.ownerCache[email] = nil
		return nil, failed(rec, FailureUnknownOwner, "no user with email "+email), false
	}

	rm, err = r.createPlaceholderOwner(ctx, email)
	if err != nil {
		return nil, failed(rec, FailurePersistence, err.Error()), false
	}

	r.ownerCache[email] = rm
	return &rm.ID, outcome{}, true
}

func (r *importRun) createPlaceholderOwner(ctx context.Context, email string) (*readmodel.UserRM, error) {
	entity, err := user.NewUser(uuid.New(), email, user.PlaceholderDisplayName(email), true)
	if err != nil {
		return nil, err
	}

	id, err := r.userRepo.Create(ctx, entity)
	if err != nil {
		// Lost a race against a concurrent insert for the same email; the
		// existing row wins.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return r.userReads.FindByEmail(ctx, email)
		}
		return nil, err
	}

	r.logger.Info("created placeholder owner for imported reservation", "email", email)
	return &readmodel.UserRM{
		ID:          id,
		Email:       entity.Email(),
		DisplayName: entity.DisplayName(),
		IsActive:    entity.IsActive(),
	}, nil
}

package reservable

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptySlug = errors.New("reservable slug cannot be empty")

// Reservable is anything that can be booked: a room, a lab, a projector.
// The slug is the stable join key against external timetable records.
type Reservable struct {
	id   uuid.UUID
	slug string
	name string
	kind string
}

func NewReservable(id uuid.UUID, slug, name, kind string) (*Reservable, error) {
	if slug == "" {
		return nil, ErrEmptySlug
	}

	return &Reservable{
		id:   id,
		slug: slug,
		name: name,
		kind: kind,
	}, nil
}

func (r *Reservable) ID() uuid.UUID { return r.id }
func (r *Reservable) Slug() string  { return r.slug }
func (r *Reservable) Name() string  { return r.name }
func (r *Reservable) Kind() string  { return r.kind }

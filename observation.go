package plfhelper

import (
	"context"
	"time"
)

// Observation is a value vector recorded after a snapshot changed it.
type Observation struct {
	ID           string    `json:"id"`
	Session      string    `json:"session"`
	Locale       Locale    `json:"locale"`
	Kind         PageKind  `json:"kind"`
	SnapshotHash string    `json:"snapshotHash"`
	Values       []float64 `json:"values"`
	Changed      bool      `json:"changed"`
	ObservedAt   time.Time `json:"observedAt"`
}

// Validate returns an error if the observation contains invalid fields.
func (o *Observation) Validate() error {
	if o.Session == "" {
		return Errorf(EINVALID, "observation session required")
	}
	if !o.Locale.Valid() {
		return Errorf(EINVALID, "observation locale required")
	}
	if len(o.Values) == 0 {
		return Errorf(EINVALID, "observation values required")
	}
	return nil
}

// ObservationService represents a service for managing observations.
type ObservationService interface {
	// CreateObservation records a new observation and assigns its ID.
	CreateObservation(ctx context.Context, obs *Observation) error

	// FindObservationByID retrieves an observation by ID.
	// Returns ENOTFOUND if the observation does not exist.
	FindObservationByID(ctx context.Context, id string) (*Observation, error)

	// FindObservations retrieves observations matching the filter,
	// newest first.
	FindObservations(ctx context.Context, filter ObservationFilter) ([]*Observation, error)

	// DeleteObservationsBySession removes all observations for a session.
	DeleteObservationsBySession(ctx context.Context, session string) error
}

// ObservationFilter represents a filter for FindObservations.
type ObservationFilter struct {
	Session *string   `json:"session"`
	Kind    *PageKind `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

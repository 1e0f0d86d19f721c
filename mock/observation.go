package mock

import (
	"context"

	"github.com/fwojciec/plfhelper"
)

var _ plfhelper.ObservationService = (*ObservationService)(nil)

// ObservationService is a mock implementation of plfhelper.ObservationService.
type ObservationService struct {
	CreateObservationFn           func(ctx context.Context, obs *plfhelper.Observation) error
	FindObservationByIDFn         func(ctx context.Context, id string) (*plfhelper.Observation, error)
	FindObservationsFn            func(ctx context.Context, filter plfhelper.ObservationFilter) ([]*plfhelper.Observation, error)
	DeleteObservationsBySessionFn func(ctx context.Context, session string) error
}

func (s *ObservationService) CreateObservation(ctx context.Context, obs *plfhelper.Observation) error {
	return s.CreateObservationFn(ctx, obs)
}

func (s *ObservationService) FindObservationByID(ctx context.Context, id string) (*plfhelper.Observation, error) {
	return s.FindObservationByIDFn(ctx, id)
}

func (s *ObservationService) FindObservations(ctx context.Context, filter plfhelper.ObservationFilter) ([]*plfhelper.Observation, error) {
	return s.FindObservationsFn(ctx, filter)
}

func (s *ObservationService) DeleteObservationsBySession(ctx context.Context, session string) error {
	return s.DeleteObservationsBySessionFn(ctx, session)
}

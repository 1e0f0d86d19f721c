package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/plfhelper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ plfhelper.ObservationService = (*ObservationService)(nil)

// ObservationService implements plfhelper.ObservationService using SQLite.
type ObservationService struct {
	db *DB
}

// NewObservationService creates a new ObservationService.
func NewObservationService(db *DB) *ObservationService {
	return &ObservationService{db: db}
}

// CreateObservation records an observation. ObservedAt defaults to now.
func (s *ObservationService) CreateObservation(ctx context.Context, obs *plfhelper.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	vals, err := encodeValues(obs.Values)
	if err != nil {
		return err
	}

	obs.ID = uuid.New().String()
	if obs.ObservedAt.IsZero() {
		obs.ObservedAt = time.Now()
	}
	obs.ObservedAt = obs.ObservedAt.UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO observations (id, session, locale, kind, snapshot_hash, vals, changed, observed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, obs.ID, obs.Session, string(obs.Locale), string(obs.Kind), obs.SnapshotHash, vals, obs.Changed,
		obs.ObservedAt.Format(time.RFC3339))

	return err
}

// FindObservationByID retrieves an observation by ID.
func (s *ObservationService) FindObservationByID(ctx context.Context, id string) (*plfhelper.Observation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, session, locale, kind, snapshot_hash, vals, changed, observed_at
		FROM observations
		WHERE id = ?
	`, id)

	obs, err := scanObservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, plfhelper.Errorf(plfhelper.ENOTFOUND, "observation not found")
	}
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// FindObservations retrieves observations matching the filter, newest first.
func (s *ObservationService) FindObservations(ctx context.Context, filter plfhelper.ObservationFilter) ([]*plfhelper.Observation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, session, locale, kind, snapshot_hash, vals, changed, observed_at FROM observations WHERE 1=1")

	if filter.Session != nil {
		query.WriteString(" AND session = ?")
		args = append(args, *filter.Session)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}

	// rowid breaks ties between observations recorded in the same second.
	query.WriteString(" ORDER BY observed_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*plfhelper.Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, err
		}
		observations = append(observations, obs)
	}

	return observations, rows.Err()
}

// DeleteObservationsBySession removes all observations for a session.
// Returns ENOTFOUND if the session has none.
func (s *ObservationService) DeleteObservationsBySession(ctx context.Context, session string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM observations WHERE session = ?", session)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return plfhelper.Errorf(plfhelper.ENOTFOUND, "session %q has no observations", session)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObservation(row scanner) (*plfhelper.Observation, error) {
	var obs plfhelper.Observation
	var locale, kind, vals, observedAt string

	if err := row.Scan(&obs.ID, &obs.Session, &locale, &kind, &obs.SnapshotHash, &vals, &obs.Changed, &observedAt); err != nil {
		return nil, err
	}

	obs.Locale = plfhelper.Locale(locale)
	obs.Kind = plfhelper.PageKind(kind)

	var err error
	if obs.Values, err = decodeValues(vals); err != nil {
		return nil, err
	}
	if obs.ObservedAt, err = parseRFC3339(observedAt, "observed_at"); err != nil {
		return nil, err
	}
	return &obs, nil
}

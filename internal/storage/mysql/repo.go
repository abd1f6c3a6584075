package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"holidaze/internal/domain"
)

func valDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.DateOnly)
}

// Repo is the booking submission audit log.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Record(ctx context.Context, s domain.Submission) error {
	_, err := r.db.ExecContext(ctx, insertSubmissionSQL,
		s.ID,
		s.VenueID,
		s.Customer,
		valDate(s.DateFrom),
		valDate(s.DateTo),
		s.Guests,
		string(s.Outcome),
		s.Reason,
		s.BookingID,
		s.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record submission %s: %w", s.ID, err)
	}
	return nil
}

func (r *Repo) ListByVenue(ctx context.Context, venueID string, limit int) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, listSubmissionsByVenueSQL, venueID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		var (
			s        domain.Submission
			from, to sql.NullTime
			outcome  string
		)
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Customer, &from, &to, &s.Guests, &outcome, &s.Reason, &s.BookingID, &s.CreatedAt); err != nil {
			return nil, err
		}
		if from.Valid {
			s.DateFrom = from.Time.UTC()
		}
		if to.Valid {
			s.DateTo = to.Time.UTC()
		}
		s.Outcome = domain.Outcome(outcome)
		s.CreatedAt = s.CreatedAt.UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountByOutcome tallies a venue's submissions per outcome.
func (r *Repo) CountByOutcome(ctx context.Context, venueID string) (map[domain.Outcome]int, error) {
	rows, err := r.db.QueryContext(ctx, countSubmissionsByOutcomeSQL, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[domain.Outcome]int{}
	for rows.Next() {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[domain.Outcome(outcome)] = n
	}
	return out, rows.Err()
}

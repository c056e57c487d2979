// Package membership implements unit membership lookups using PostgreSQL.
package membership

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/intercom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Repo provides membership queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new membership repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// activeAt restricts a query on unit_memberships (aliased m) to rows that
// grant access at t.
func activeAt(t time.Time) sq.Sqlizer {
	return sq.And{
		sq.Eq{"m.is_active": true},
		sq.Or{sq.Eq{"m.expires_at": nil}, sq.Gt{"m.expires_at": t}},
	}
}

// ListRecipients returns every active member of a unit with the phone
// number stored for the user, if any.
func (r *Repo) ListRecipients(ctx context.Context, unitID uuid.UUID, now time.Time) ([]domain.Recipient, error) {
	query, args, err := postgres.Psql.
		Select("m.user_id", "u.phone").
		From("unit_memberships m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.unit_id": unitID}).
		Where(activeAt(now)).
		OrderBy("m.user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recipients: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipients for unit %s: %w", unitID, err)
	}
	defer rows.Close()

	recipients := make([]domain.Recipient, 0)
	for rows.Next() {
		var rc domain.Recipient
		if err := rows.Scan(&rc.UserID, &rc.Phone); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		recipients = append(recipients, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}
	return recipients, nil
}

// IsActiveMember reports whether userID holds an active membership on unitID.
func (r *Repo) IsActiveMember(ctx context.Context, userID, unitID uuid.UUID, now time.Time) (bool, error) {
	sub, subArgs, err := sq.
		Select("1").
		From("unit_memberships m").
		Where(sq.Eq{"m.user_id": userID, "m.unit_id": unitID}).
		Where(activeAt(now)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build membership check: %w", err)
	}

	query, args, err := postgres.Psql.
		Select().
		Column(sq.Expr("EXISTS("+sub+")", subArgs...)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build membership check: %w", err)
	}

	var ok bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("check membership %s on unit %s: %w", userID, unitID, err)
	}
	return ok, nil
}

// ListActiveUnitIDs returns the units a user may currently watch.
func (r *Repo) ListActiveUnitIDs(ctx context.Context, userID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	query, args, err := postgres.Psql.
		Select("m.unit_id").
		From("unit_memberships m").
		Where(sq.Eq{"m.user_id": userID}).
		Where(activeAt(now)).
		OrderBy("m.unit_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list unit ids: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units for user %s: %w", userID, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unit id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unit ids: %w", err)
	}
	return ids, nil
}

// FindActiveMemberByPhone returns the active member of unitID whose stored
// phone has the given digits, ignoring formatting such as "+" or spaces.
// Returns domain.ErrNotFound when nobody matches.
func (r *Repo) FindActiveMemberByPhone(ctx context.Context, unitID uuid.UUID, digits string, now time.Time) (uuid.UUID, error) {
	query, args, err := postgres.Psql.
		Select("m.user_id").
		From("unit_memberships m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.unit_id": unitID}).
		Where(activeAt(now)).
		Where(sq.Expr(`regexp_replace(u.phone, '\D', '', 'g') = ?`, digits)).
		OrderBy("m.user_id").
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build find member by phone: %w", err)
	}

	var userID uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&userID); err != nil {
		return uuid.Nil, postgres.MapError(err, "member of unit", unitID)
	}
	return userID, nil
}

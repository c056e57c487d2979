// Package accessevent implements the access log repository using PostgreSQL.
// Status changes are conditional updates: callers name the statuses a
// transition may start from and learn whether they won the race.
package accessevent

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/intercom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/intercom-backend/internal/domain"
)

const table = "access_logs"

var columns = []string{
	"id", "unit_id", "photo_url", "visitor_message",
	"status", "response_message", "opened_by", "created_at",
}

// Repo provides access log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new access log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a ringing event and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ev *domain.AccessEvent) (*domain.AccessEvent, error) {
	query, args, err := postgres.Psql.
		Insert(table).
		Columns("id", "unit_id", "photo_url", "visitor_message", "status", "created_at").
		Values(ev.ID, ev.UnitID, ev.PhotoURL, ev.VisitorMessage, string(domain.AccessStatusRinging), ev.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert access_log: %w", err)
	}

	created, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "access_log", ev.ID)
	}
	return &created, nil
}

// Transition sets the status of an event only if its current status is one
// of From. It returns false when no row matched, which means the event does
// not exist or another writer resolved it first.
func (r *Repo) Transition(ctx context.Context, p domain.Transition) (bool, error) {
	if len(p.From) == 0 {
		return false, fmt.Errorf("access_log %s: transition without source status", p.ID)
	}

	from := make([]string, len(p.From))
	for i, s := range p.From {
		from[i] = string(s)
	}

	upd := postgres.Psql.
		Update(table).
		Set("status", string(p.To))
	if p.OpenedBy != nil {
		upd = upd.Set("opened_by", *p.OpenedBy)
	}

	query, args, err := upd.
		Where(sq.Eq{"id": p.ID}).
		Where(sq.Eq{"status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build transition access_log: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "access_log", p.ID)
	}

	return tag.RowsAffected() > 0, nil
}

// SetResponse stores the resident's reply while the event is still ringing.
// Returns false if the event is no longer ringing (or does not exist).
func (r *Repo) SetResponse(ctx context.Context, id uuid.UUID, message string) (bool, error) {
	query, args, err := postgres.Psql.
		Update(table).
		Set("response_message", message).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": string(domain.AccessStatusRinging)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build set response access_log: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "access_log", id)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkMissedBefore moves every event still ringing since before cutoff to
// missed and returns the rows it changed.
func (r *Repo) MarkMissedBefore(ctx context.Context, cutoff time.Time) ([]domain.AccessEvent, error) {
	query, args, err := postgres.Psql.
		Update(table).
		Set("status", string(domain.AccessStatusMissed)).
		Where(sq.Eq{"status": string(domain.AccessStatusRinging)}).
		Where(sq.Lt{"created_at": cutoff}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build mark missed: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("mark missed access_logs: %w", err)
	}
	return collectEvents(rows)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an access event by primary key.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessEvent, error) {
	query, args, err := postgres.Psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get access_log: %w", err)
	}

	ev, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "access_log", id)
	}
	return &ev, nil
}

// GetContext returns an event together with its unit and building.
// Returns domain.ErrNotFound if the event does not exist.
func (r *Repo) GetContext(ctx context.Context, id uuid.UUID) (*domain.AccessEventContext, error) {
	selectCols := make([]string, 0, len(columns)+8)
	for _, c := range columns {
		selectCols = append(selectCols, "l."+c)
	}
	selectCols = append(selectCols,
		"u.building_id", "u.label", "u.hardware_topic",
		"b.name", "b.slug", "b.hardware_topic",
	)

	query, args, err := postgres.Psql.
		Select(selectCols...).
		From(table + " l").
		Join("units u ON u.id = l.unit_id").
		Join("buildings b ON b.id = u.building_id").
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get access_log context: %w", err)
	}

	var (
		out    domain.AccessEventContext
		status string
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&out.Event.ID, &out.Event.UnitID, &out.Event.PhotoURL, &out.Event.VisitorMessage,
		&status, &out.Event.ResponseMessage, &out.Event.OpenedBy, &out.Event.CreatedAt,
		&out.Unit.BuildingID, &out.Unit.Label, &out.Unit.HardwareTopic,
		&out.Building.Name, &out.Building.Slug, &out.Building.HardwareTopic,
	)
	if err != nil {
		return nil, postgres.MapError(err, "access_log", id)
	}

	out.Event.Status = domain.AccessStatus(status)
	out.Unit.ID = out.Event.UnitID
	out.Building.ID = out.Unit.BuildingID

	return &out, nil
}

// ListByUnit returns the newest events of a unit, at most limit of them.
func (r *Repo) ListByUnit(ctx context.Context, unitID uuid.UUID, limit int) ([]domain.AccessEvent, error) {
	query, args, err := postgres.Psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"unit_id": unitID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list access_logs: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list access_logs by unit: %w", err)
	}
	return collectEvents(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanEvent(row pgx.Row) (domain.AccessEvent, error) {
	var (
		ev     domain.AccessEvent
		status string
	)
	err := row.Scan(
		&ev.ID, &ev.UnitID, &ev.PhotoURL, &ev.VisitorMessage,
		&status, &ev.ResponseMessage, &ev.OpenedBy, &ev.CreatedAt,
	)
	if err != nil {
		return domain.AccessEvent{}, err
	}
	ev.Status = domain.AccessStatus(status)
	return ev, nil
}

func collectEvents(rows pgx.Rows) ([]domain.AccessEvent, error) {
	defer rows.Close()

	events := make([]domain.AccessEvent, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan access_log: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access_logs: %w", err)
	}
	return events, nil
}

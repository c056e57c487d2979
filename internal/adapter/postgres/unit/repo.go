// Package unit implements unit and building lookups using PostgreSQL.
package unit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/intercom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Repo provides unit queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new unit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a unit together with its building.
// Returns domain.ErrNotFound if the unit does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UnitDetails, error) {
	query, args, err := postgres.Psql.
		Select(
			"u.id", "u.building_id", "u.label", "u.hardware_topic",
			"b.name", "b.slug", "b.hardware_topic",
		).
		From("units u").
		Join("buildings b ON b.id = u.building_id").
		Where(sq.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get unit: %w", err)
	}

	var d domain.UnitDetails
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&d.Unit.ID, &d.Unit.BuildingID, &d.Unit.Label, &d.Unit.HardwareTopic,
		&d.Building.Name, &d.Building.Slug, &d.Building.HardwareTopic,
	)
	if err != nil {
		return nil, postgres.MapError(err, "unit", id)
	}
	d.Building.ID = d.Unit.BuildingID

	return &d, nil
}

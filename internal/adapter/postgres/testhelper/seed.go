package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUnit creates a building with a single unit. Both hardware topics are left empty.
func SeedUnit(t *testing.T, pool *pgxpool.Pool) domain.UnitDetails {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	d := domain.UnitDetails{
		Building: domain.Building{ID: uuid.New(), Name: "Building " + suffix, Slug: "bldg-" + suffix},
	}
	d.Unit = domain.Unit{ID: uuid.New(), BuildingID: d.Building.ID, Label: "1A"}

	if _, err := pool.Exec(ctx,
		`INSERT INTO buildings (id, name, slug) VALUES ($1, $2, $3)`,
		d.Building.ID, d.Building.Name, d.Building.Slug,
	); err != nil {
		t.Fatalf("testhelper: SeedUnit building: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`INSERT INTO units (id, building_id, label) VALUES ($1, $2, $3)`,
		d.Unit.ID, d.Unit.BuildingID, d.Unit.Label,
	); err != nil {
		t.Fatalf("testhelper: SeedUnit unit: %v", err)
	}

	return d
}

// SeedUser creates a user with an optional phone number.
func SeedUser(t *testing.T, pool *pgxpool.Pool, phone *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if _, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, phone) VALUES ($1, $2, $3)`,
		id, "user-"+uniqueSuffix(), phone,
	); err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedMembership links a user to a unit. A nil expiresAt never expires.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, userID, unitID uuid.UUID, active bool, expiresAt *time.Time) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO unit_memberships (user_id, unit_id, is_active, expires_at) VALUES ($1, $2, $3, $4)`,
		userID, unitID, active, expiresAt,
	); err != nil {
		t.Fatalf("testhelper: SeedMembership: %v", err)
	}
}

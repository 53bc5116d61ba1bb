// Package profile implements the company-settings repository using
// PostgreSQL. The row ID is the user ID from the identity provider; a row
// is created lazily on the first settings save.
package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartonix/inventory-backend/internal/adapter/postgres"
	"github.com/smartonix/inventory-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `id, email, full_name, company_name, company_address,
	license_number, iicrc_certification_number, company_logo_url, created_at`

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1`

const upsertSQL = `
INSERT INTO profiles (
	id, company_name, company_address, license_number, iicrc_certification_number
) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
	company_name               = EXCLUDED.company_name,
	company_address            = EXCLUDED.company_address,
	license_number             = EXCLUDED.license_number,
	iicrc_certification_number = EXCLUDED.iicrc_certification_number
RETURNING ` + profileColumns

// UpsertParams holds the company settings written on save.
type UpsertParams struct {
	CompanyName              *string
	CompanyAddress           *string
	LicenseNumber            *string
	IICRCCertificationNumber *string
}

// GetByID returns the profile for the given user.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, getByIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return p, nil
}

// Upsert creates or updates the user's company settings and returns the row.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, p UpsertParams) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		userID, p.CompanyName, p.CompanyAddress, p.LicenseNumber, p.IICRCCertificationNumber,
	)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return profile, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile

	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.CompanyName, &p.CompanyAddress,
		&p.LicenseNumber, &p.IICRCCertificationNumber, &p.CompanyLogoURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

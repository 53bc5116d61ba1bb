package profile_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/adapter/postgres/testhelper"
	"github.com/smartonix/inventory-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestRepo_GetByID_Missing(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Upsert_CreatesThenUpdates(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	ctx := context.Background()

	userID := uuid.New()

	created, err := repo.Upsert(ctx, userID, profile.UpsertParams{
		CompanyName:   strPtr("Restoration Co"),
		LicenseNumber: strPtr("LIC-100"),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.ID)
	require.NotNil(t, created.CompanyName)
	assert.Equal(t, "Restoration Co", *created.CompanyName)
	assert.Nil(t, created.CompanyAddress)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := repo.Upsert(ctx, userID, profile.UpsertParams{
		CompanyName:              strPtr("Restoration Co Ltd"),
		CompanyAddress:           strPtr("1 Main St"),
		LicenseNumber:            strPtr("LIC-100"),
		IICRCCertificationNumber: strPtr("IICRC-7"),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, updated.ID)
	require.NotNil(t, updated.CompanyName)
	assert.Equal(t, "Restoration Co Ltd", *updated.CompanyName)
	require.NotNil(t, updated.CompanyAddress)
	assert.Equal(t, "1 Main St", *updated.CompanyAddress)
	require.NotNil(t, updated.IICRCCertificationNumber)
	assert.Equal(t, "IICRC-7", *updated.IICRCCertificationNumber)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got.CompanyName)
	assert.Equal(t, "Restoration Co Ltd", *got.CompanyName)
}

func TestRepo_Upsert_ClearsFields(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := profile.New(pool)
	ctx := context.Background()

	userID := uuid.New()

	_, err := repo.Upsert(ctx, userID, profile.UpsertParams{
		CompanyName:    strPtr("Acme"),
		CompanyAddress: strPtr("2 Side St"),
	})
	require.NoError(t, err)

	// A save without an address clears it; the form always submits the
	// complete settings set.
	updated, err := repo.Upsert(ctx, userID, profile.UpsertParams{
		CompanyName: strPtr("Acme"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CompanyAddress)
}

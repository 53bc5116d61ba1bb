package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits for company settings. These appear on generated reports.
const (
	MaxCompanyNameLen   = 200
	MaxCompanyAddrLen   = 500
	MaxLicenseLen       = 100
	MaxCertificationLen = 100
)

// Profile holds per-user company settings. The row ID is the user ID
// assigned by the identity provider; email and full name arrive from the
// provider out of band and may be absent.
type Profile struct {
	ID                      uuid.UUID
	Email                   *string
	FullName                *string
	CompanyName             *string
	CompanyAddress          *string
	LicenseNumber           *string
	IICRCCertificationNumber *string
	CompanyLogoURL          *string
	CreatedAt               time.Time
}

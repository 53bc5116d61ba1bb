package profile

import (
	"fmt"
	"strings"

	profilerepo "github.com/smartonix/inventory-backend/internal/adapter/postgres/profile"
	"github.com/smartonix/inventory-backend/internal/domain"
)

// UpdateProfileInput holds the company settings form. The form submits the
// complete set; omitted fields are cleared.
type UpdateProfileInput struct {
	CompanyName              *string
	CompanyAddress           *string
	LicenseNumber            *string
	IICRCCertificationNumber *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateOptionalText("company_name", i.CompanyName, domain.MaxCompanyNameLen)...)
	errs = append(errs, validateOptionalText("company_address", i.CompanyAddress, domain.MaxCompanyAddrLen)...)
	errs = append(errs, validateOptionalText("license_number", i.LicenseNumber, domain.MaxLicenseLen)...)
	errs = append(errs, validateOptionalText("iicrc_certification_number", i.IICRCCertificationNumber, domain.MaxCertificationLen)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateProfileInput) toUpsertParams() profilerepo.UpsertParams {
	return profilerepo.UpsertParams{
		CompanyName:              trimPtr(i.CompanyName),
		CompanyAddress:           trimPtr(i.CompanyAddress),
		LicenseNumber:            trimPtr(i.LicenseNumber),
		IICRCCertificationNumber: trimPtr(i.IICRCCertificationNumber),
	}
}

func validateOptionalText(field string, val *string, maxLen int) []domain.FieldError {
	if val == nil || len(*val) <= maxLen {
		return nil
	}
	return []domain.FieldError{{
		Field:   field,
		Message: fmt.Sprintf("too long (max %d)", maxLen),
	}}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

package analysis

import (
	"fmt"
	"net/url"

	"github.com/smartonix/inventory-backend/internal/domain"
)

// AnalyzeInput holds the photo URLs submitted for analysis.
type AnalyzeInput struct {
	ImageURLs []string
}

// Validate checks the batch and collects all errors. maxBatch comes from
// config so deployments can tune it.
func (i AnalyzeInput) Validate(maxBatch int) error {
	var errs []domain.FieldError

	if len(i.ImageURLs) == 0 {
		errs = append(errs, domain.FieldError{Field: "imageUrls", Message: "required"})
	}
	if len(i.ImageURLs) > maxBatch {
		errs = append(errs, domain.FieldError{
			Field:   "imageUrls",
			Message: fmt.Sprintf("too many (max %d)", maxBatch),
		})
	}

	for idx, raw := range i.ImageURLs {
		if !isValidHTTPURL(raw) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("imageUrls[%d]", idx),
				Message: "must be a valid HTTP(S) URL",
			})
		}
		if len(raw) > domain.MaxImageURLLen {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("imageUrls[%d]", idx),
				Message: "too long",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func isValidHTTPURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}

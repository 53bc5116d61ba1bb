package rest

import (
	"time"

	"github.com/smartonix/inventory-backend/internal/domain"
)

// ItemResponse is the JSON shape of one inventory item.
type ItemResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description,omitempty"`
	Category       *string    `json:"category,omitempty"`
	EstimatedValue *float64   `json:"estimatedValue,omitempty"`
	Condition      *string    `json:"condition,omitempty"`
	RoomLocation   *string    `json:"roomLocation,omitempty"`
	Brand          *string    `json:"brand,omitempty"`
	Model          *string    `json:"model,omitempty"`
	Color          *string    `json:"color,omitempty"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
	SerialNumber   *string    `json:"serialNumber,omitempty"`
	PurchasePrice  *float64   `json:"purchasePrice,omitempty"`
	PurchaseDate   *time.Time `json:"purchaseDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toItemResponse(item *domain.InventoryItem) ItemResponse {
	var condition *string
	if item.Condition != nil {
		s := item.Condition.String()
		condition = &s
	}

	return ItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Description:    item.Description,
		Category:       item.Category,
		EstimatedValue: item.EstimatedValue,
		Condition:      condition,
		RoomLocation:   item.RoomLocation,
		Brand:          item.Brand,
		Model:          item.Model,
		Color:          item.Color,
		ImageURL:       item.ImageURL,
		SerialNumber:   item.SerialNumber,
		PurchasePrice:  item.PurchasePrice,
		PurchaseDate:   item.PurchaseDate,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func toItemResponses(items []domain.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

// AnalyzeRequest is the body of POST /v1/analyze-items.
type AnalyzeRequest struct {
	ImageURLs []string `json:"imageUrls"`
}

// AnalyzeResponse is the success body of POST /v1/analyze-items.
type AnalyzeResponse struct {
	Success bool           `json:"success"`
	Items   []ItemResponse `json:"items"`
}

// ProfileResponse is the JSON shape of the caller's company settings.
type ProfileResponse struct {
	ID                       string  `json:"id"`
	Email                    *string `json:"email,omitempty"`
	FullName                 *string `json:"fullName,omitempty"`
	CompanyName              *string `json:"companyName,omitempty"`
	CompanyAddress           *string `json:"companyAddress,omitempty"`
	LicenseNumber            *string `json:"licenseNumber,omitempty"`
	IICRCCertificationNumber *string `json:"iicrcCertificationNumber,omitempty"`
	CompanyLogoURL           *string `json:"companyLogoUrl,omitempty"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                       p.ID.String(),
		Email:                    p.Email,
		FullName:                 p.FullName,
		CompanyName:              p.CompanyName,
		CompanyAddress:           p.CompanyAddress,
		LicenseNumber:            p.LicenseNumber,
		IICRCCertificationNumber: p.IICRCCertificationNumber,
		CompanyLogoURL:           p.CompanyLogoURL,
	}
}

// SummaryResponse is the body of GET /v1/reports/summary.
type SummaryResponse struct {
	TotalItems     int     `json:"totalItems"`
	TotalValue     float64 `json:"totalValue"`
	CategoriesUsed int     `json:"categoriesUsed"`
}

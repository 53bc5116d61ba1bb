package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/internal/service/inventory"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	Create(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	Get(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, input inventory.ListItemsInput) ([]domain.InventoryItem, error)
	Update(ctx context.Context, itemID uuid.UUID, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// InventoryHandler serves item CRUD endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type createItemRequest struct {
	Name           string   `json:"name"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	EstimatedValue *float64 `json:"estimatedValue"`
	Condition      *string  `json:"condition"`
	RoomLocation   *string  `json:"roomLocation"`
	SerialNumber   *string  `json:"serialNumber"`
	PurchasePrice  *float64 `json:"purchasePrice"`
	PurchaseDate   *string  `json:"purchaseDate"`
}

type updateItemRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	EstimatedValue *float64 `json:"estimatedValue"`
	Condition      *string  `json:"condition"`
	RoomLocation   *string  `json:"roomLocation"`
	SerialNumber   *string  `json:"serialNumber"`
	PurchasePrice  *float64 `json:"purchasePrice"`
	PurchaseDate   *string  `json:"purchaseDate"`
}

// Create handles POST /v1/items.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "purchaseDate must be YYYY-MM-DD")
		return
	}

	item, err := h.svc.Create(r.Context(), inventory.CreateItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		Condition:      req.Condition,
		RoomLocation:   req.RoomLocation,
		SerialNumber:   req.SerialNumber,
		PurchasePrice:  req.PurchasePrice,
		PurchaseDate:   purchaseDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// List handles GET /v1/items.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := inventory.ListItemsInput{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if s := q.Get("search"); s != "" {
		input.Search = &s
	}
	if c := q.Get("category"); c != "" {
		input.Category = &c
	}

	var err error
	if input.Limit, err = parseIntParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	if input.Offset, err = parseIntParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]ItemResponse{"items": toItemResponses(items)})
}

// Get handles GET /v1/items/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), itemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Update handles PATCH /v1/items/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "purchaseDate must be YYYY-MM-DD")
		return
	}

	item, err := h.svc.Update(r.Context(), itemID, inventory.UpdateItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		Condition:      req.Condition,
		RoomLocation:   req.RoomLocation,
		SerialNumber:   req.SerialNumber,
		PurchasePrice:  req.PurchasePrice,
		PurchaseDate:   purchaseDate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /v1/items/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}

func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package handler

import (
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/service"
	"github.com/lightbnb/lightbnb/internal/validation"

	"github.com/labstack/echo/v4"
)

// PropertiesHandler exposes property search and listing creation.
type PropertiesHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertiesHandler(s *server.Server, properties *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

// SearchPropertiesRequest maps the query parameters of GET /api/properties.
// Absent parameters contribute no filter; prices are in major currency
// units (dollars).
type SearchPropertiesRequest struct {
	City                 string   `query:"city"`
	OwnerID              *int64   `query:"owner_id"`
	MinimumPricePerNight *int64   `query:"minimum_price_per_night" validate:"omitempty,gte=0"`
	MaximumPricePerNight *int64   `query:"maximum_price_per_night" validate:"omitempty,gte=0"`
	MinimumRating        *float64 `query:"minimum_rating" validate:"omitempty,gte=0,max=5"`
	Limit                int      `query:"limit" validate:"omitempty,gte=1,max=100"`
}

func (r *SearchPropertiesRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePropertyRequest is the payload for POST /api/properties.
// CostPerNight is in minor currency units, matching how it is stored.
type CreatePropertyRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required"`
	CostPerNight      int64  `json:"cost_per_night" validate:"required,gt=0"`
	Street            string `json:"street" validate:"required"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province" validate:"required"`
	PostCode          string `json:"post_code" validate:"required"`
	Country           string `json:"country" validate:"required"`
	ParkingSpaces     int32  `json:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms" validate:"gte=0"`
}

func (r *CreatePropertyRequest) Validate() error {
	return validation.Struct(r)
}

// Search lists properties matching the optional filters, cheapest first.
func (h *PropertiesHandler) Search(c echo.Context, req *SearchPropertiesRequest) ([]repository.PropertyWithRating, error) {
	filter := repository.SearchFilter{
		City:                 req.City,
		OwnerID:              req.OwnerID,
		MinimumPricePerNight: req.MinimumPricePerNight,
		MaximumPricePerNight: req.MaximumPricePerNight,
		MinimumRating:        req.MinimumRating,
	}

	return h.properties.Search(c.Request().Context(), filter, req.Limit)
}

// Create adds a listing owned by the authenticated user.
func (h *PropertiesHandler) Create(c echo.Context, req *CreatePropertyRequest) (*repository.Property, error) {
	ownerID := middleware.GetAuthenticatedUserID(c)

	return h.properties.Create(c.Request().Context(), ownerID, repository.CreatePropertyParams{
		Title:             req.Title,
		Description:       req.Description,
		ThumbnailPhotoURL: req.ThumbnailPhotoURL,
		CoverPhotoURL:     req.CoverPhotoURL,
		CostPerNight:      req.CostPerNight,
		Street:            req.Street,
		City:              req.City,
		Province:          req.Province,
		PostCode:          req.PostCode,
		Country:           req.Country,
		ParkingSpaces:     req.ParkingSpaces,
		NumberOfBathrooms: req.NumberOfBathrooms,
		NumberOfBedrooms:  req.NumberOfBedrooms,
	})
}

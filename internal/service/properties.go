package service

import (
	"context"

	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

// DefaultListLimit caps list results when the caller does not specify a
// limit.
const DefaultListLimit = 10

// PropertyStore is the slice of the properties repository the property
// service needs.
type PropertyStore interface {
	Search(ctx context.Context, filter repository.SearchFilter, limit int) ([]repository.PropertyWithRating, error)
	Create(ctx context.Context, params repository.CreatePropertyParams) (*repository.Property, error)
}

// PropertyService implements property search and listing creation.
type PropertyService struct {
	server     *server.Server
	properties PropertyStore
}

func NewPropertyService(s *server.Server, properties PropertyStore) *PropertyService {
	return &PropertyService{
		server:     s,
		properties: properties,
	}
}

// Search lists properties matching the filter, applying the default limit
// when none is given.
func (s *PropertyService) Search(ctx context.Context, filter repository.SearchFilter, limit int) ([]repository.PropertyWithRating, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.properties.Search(ctx, filter, limit)
}

// Create inserts a new listing owned by ownerID. Field-presence validation
// happened at the handler; anything the database still rejects (a missing
// column, a bad reference) surfaces as a driver error.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, params repository.CreatePropertyParams) (*repository.Property, error) {
	params.OwnerID = ownerID
	return s.properties.Create(ctx, params)
}

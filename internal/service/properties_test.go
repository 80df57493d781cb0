package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/repository"
)

type fakePropertyStore struct {
	lastFilter repository.SearchFilter
	lastLimit  int
	created    *repository.CreatePropertyParams
}

func (f *fakePropertyStore) Search(_ context.Context, filter repository.SearchFilter, limit int) ([]repository.PropertyWithRating, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	return []repository.PropertyWithRating{}, nil
}

func (f *fakePropertyStore) Create(_ context.Context, params repository.CreatePropertyParams) (*repository.Property, error) {
	f.created = &params
	return &repository.Property{ID: 1, OwnerID: params.OwnerID, Title: params.Title}, nil
}

func TestSearchAppliesDefaultLimit(t *testing.T) {
	store := &fakePropertyStore{}
	svc := NewPropertyService(newTestServer(), store)

	_, err := svc.Search(context.Background(), repository.SearchFilter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultListLimit, store.lastLimit)
}

func TestSearchKeepsExplicitLimit(t *testing.T) {
	store := &fakePropertyStore{}
	svc := NewPropertyService(newTestServer(), store)

	_, err := svc.Search(context.Background(), repository.SearchFilter{City: "Vancouver"}, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, store.lastLimit)
	assert.Equal(t, "Vancouver", store.lastFilter.City)
}

func TestCreateAssignsAuthenticatedOwner(t *testing.T) {
	store := &fakePropertyStore{}
	svc := NewPropertyService(newTestServer(), store)

	params := repository.CreatePropertyParams{
		Title:   "Cozy cottage",
		OwnerID: 999, // must be overwritten by the authenticated user
	}

	property, err := svc.Create(context.Background(), 12, params)
	require.NoError(t, err)
	assert.Equal(t, int64(12), property.OwnerID)
	require.NotNil(t, store.created)
	assert.Equal(t, int64(12), store.created.OwnerID)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbnb/lightbnb/internal/repository"
)

type fakeReservationStore struct {
	lastGuestID int64
	lastLimit   int
}

func (f *fakeReservationStore) ListForGuest(_ context.Context, guestID int64, limit int) ([]repository.GuestReservation, error) {
	f.lastGuestID = guestID
	f.lastLimit = limit
	return []repository.GuestReservation{}, nil
}

func TestListForGuestAppliesDefaultLimit(t *testing.T) {
	store := &fakeReservationStore{}
	svc := NewReservationService(newTestServer(), store)

	_, err := svc.ListForGuest(context.Background(), 7, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), store.lastGuestID)
	assert.Equal(t, DefaultListLimit, store.lastLimit)
}

func TestListForGuestKeepsExplicitLimit(t *testing.T) {
	store := &fakeReservationStore{}
	svc := NewReservationService(newTestServer(), store)

	_, err := svc.ListForGuest(context.Background(), 7, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, store.lastLimit)
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GuestReservation is a reservation joined with its property and the
// property's average review rating, as shown on a guest's "my reservations"
// page.
type GuestReservation struct {
	Property
	ReservationID int64     `json:"reservation_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	AverageRating float64   `json:"average_rating"`
}

// ReservationsRepository runs reservation queries against the shared pool.
type ReservationsRepository struct {
	db *pgxpool.Pool
}

func NewReservationsRepository(db *pgxpool.Pool) *ReservationsRepository {
	return &ReservationsRepository{db: db}
}

// ListForGuest lists a guest's reservations, earliest start date first,
// capped at limit.
//
// The join to property_reviews is an inner join: reservations for
// properties that have never been reviewed are excluded. Property search
// uses a left join instead; the asymmetry is intentional.
func (r *ReservationsRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]GuestReservation, error) {
	query := fmt.Sprintf(`
SELECT %s, reservations.id, reservations.start_date, reservations.end_date,
avg(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date
LIMIT $2`, propertyColumns)

	rows, err := r.db.Query(ctx, query, guestID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []GuestReservation{}
	for rows.Next() {
		var gr GuestReservation
		err := rows.Scan(
			&gr.ID, &gr.OwnerID, &gr.Title, &gr.Description, &gr.ThumbnailPhotoURL,
			&gr.CoverPhotoURL, &gr.CostPerNight, &gr.ParkingSpaces, &gr.NumberOfBathrooms,
			&gr.NumberOfBedrooms, &gr.Country, &gr.Street, &gr.City, &gr.Province,
			&gr.PostCode, &gr.Active, &gr.ReservationID, &gr.StartDate, &gr.EndDate,
			&gr.AverageRating,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

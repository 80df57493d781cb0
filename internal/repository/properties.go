package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Property is a row in the properties table. CostPerNight is stored in
// minor currency units (cents).
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

// PropertyWithRating is a property plus its computed average review rating.
// AverageRating is nil for properties with no reviews (the search uses a
// left join, so such properties are included).
type PropertyWithRating struct {
	Property
	AverageRating *float64 `json:"average_rating"`
}

// SearchFilter holds the optional property search criteria. Nil / empty
// fields contribute no predicate. Prices are in major currency units
// (dollars); the builder converts to minor units before binding.
type SearchFilter struct {
	// City is matched case-insensitively as a substring.
	City string

	// OwnerID restricts results to one owner's listings.
	OwnerID *int64

	// MinimumPricePerNight and MaximumPricePerNight bound the nightly
	// cost, inclusive, in major units.
	MinimumPricePerNight *int64
	MaximumPricePerNight *int64

	// MinimumRating filters on the per-review rating column, not on the
	// computed average. Switching it to HAVING avg(rating) >= x would
	// change result sets.
	MinimumRating *float64
}

// CreatePropertyParams holds the fourteen caller-supplied columns for a new
// listing. The active flag is not an input: new listings are always active.
type CreatePropertyParams struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      int64
	Street            string
	City              string
	Province          string
	PostCode          string
	Country           string
	ParkingSpaces     int32
	NumberOfBathrooms int32
	NumberOfBedrooms  int32
}

// PropertiesRepository runs property queries against the shared pool.
type PropertiesRepository struct {
	db *pgxpool.Pool
}

func NewPropertiesRepository(db *pgxpool.Pool) *PropertiesRepository {
	return &PropertiesRepository{db: db}
}

const propertyColumns = `properties.id, owner_id, title, description, thumbnail_photo_url,
cover_photo_url, cost_per_night, parking_spaces, number_of_bathrooms,
number_of_bedrooms, country, street, city, province, post_code, active`

// buildSearchQuery assembles the dynamic search statement. Filters are
// applied independently and combined with AND; the limit is bound as the
// final parameter.
func buildSearchQuery(filter SearchFilter, limit int) (string, []any) {
	b := &predicateBuilder{}

	if filter.City != "" {
		b.and("city ILIKE $%d", "%"+filter.City+"%")
	}
	if filter.OwnerID != nil {
		b.and("owner_id = $%d", *filter.OwnerID)
	}
	if filter.MinimumPricePerNight != nil {
		b.and("cost_per_night >= $%d", *filter.MinimumPricePerNight*100)
	}
	if filter.MaximumPricePerNight != nil {
		b.and("cost_per_night <= $%d", *filter.MaximumPricePerNight*100)
	}
	if filter.MinimumRating != nil {
		b.and("property_reviews.rating >= $%d", *filter.MinimumRating)
	}

	query := fmt.Sprintf(`
SELECT %s, avg(property_reviews.rating) AS average_rating
FROM properties
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
%s
GROUP BY properties.id
ORDER BY cost_per_night
LIMIT $%d`, propertyColumns, b.where(), b.bind(limit))

	return query, b.args
}

// Search lists properties matching the filter, cheapest first, together
// with their average review rating. Properties without reviews are included
// (left join) with a nil rating.
func (r *PropertiesRepository) Search(ctx context.Context, filter SearchFilter, limit int) ([]PropertyWithRating, error) {
	query, args := buildSearchQuery(filter, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []PropertyWithRating{}
	for rows.Next() {
		var p PropertyWithRating
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL,
			&p.CoverPhotoURL, &p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms,
			&p.NumberOfBedrooms, &p.Country, &p.Street, &p.City, &p.Province,
			&p.PostCode, &p.Active, &p.AverageRating,
		)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return properties, nil
}

// Create inserts a property with active hardcoded to true and returns the
// inserted row. Missing required fields surface as database errors; this
// layer performs no defaulting.
func (r *PropertiesRepository) Create(ctx context.Context, params CreatePropertyParams) (*Property, error) {
	query := fmt.Sprintf(`
INSERT INTO properties (owner_id, title, description, thumbnail_photo_url,
cover_photo_url, cost_per_night, street, city, province, post_code, country,
parking_spaces, number_of_bathrooms, number_of_bedrooms, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, TRUE)
RETURNING %s`, propertyColumns)

	var p Property
	err := r.db.QueryRow(ctx, query,
		params.OwnerID, params.Title, params.Description, params.ThumbnailPhotoURL,
		params.CoverPhotoURL, params.CostPerNight, params.Street, params.City,
		params.Province, params.PostCode, params.Country, params.ParkingSpaces,
		params.NumberOfBathrooms, params.NumberOfBedrooms,
	).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL,
		&p.CoverPhotoURL, &p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms,
		&p.NumberOfBedrooms, &p.Country, &p.Street, &p.City, &p.Province,
		&p.PostCode, &p.Active,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{}, 10)

	assert.Contains(t, query, "WHERE 1=1")
	assert.NotContains(t, query, "AND")
	assert.Contains(t, query, "LEFT JOIN property_reviews")
	assert.Contains(t, query, "GROUP BY properties.id")
	assert.Contains(t, query, "ORDER BY cost_per_night")
	assert.Contains(t, query, "LIMIT $1")
	assert.Equal(t, []any{10}, args)
}

func TestBuildSearchQuery_CityIsCaseInsensitiveSubstring(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{City: "van"}, 5)

	assert.Contains(t, query, "city ILIKE $1")
	assert.Contains(t, query, "LIMIT $2")
	assert.Equal(t, []any{"%van%", 5}, args)
}

func TestBuildSearchQuery_PricesConvertToMinorUnits(t *testing.T) {
	filter := SearchFilter{
		MinimumPricePerNight: int64Ptr(50),
		MaximumPricePerNight: int64Ptr(100),
	}
	query, args := buildSearchQuery(filter, 10)

	assert.Contains(t, query, "cost_per_night >= $1")
	assert.Contains(t, query, "cost_per_night <= $2")
	assert.Equal(t, []any{int64(5000), int64(10000), 10}, args)
}

func TestBuildSearchQuery_MinimumRatingFiltersPerReviewRow(t *testing.T) {
	query, args := buildSearchQuery(SearchFilter{MinimumRating: float64Ptr(4)}, 10)

	// The filter applies to the raw rating column before aggregation, not
	// to the computed average.
	assert.Contains(t, query, "property_reviews.rating >= $1")
	assert.NotContains(t, query, "HAVING")
	assert.Equal(t, []any{float64(4), 10}, args)
}

func TestBuildSearchQuery_AllFilters_PlaceholdersMatchArgOrder(t *testing.T) {
	filter := SearchFilter{
		City:                 "Vancouver",
		OwnerID:              int64Ptr(7),
		MinimumPricePerNight: int64Ptr(50),
		MaximumPricePerNight: int64Ptr(100),
		MinimumRating:        float64Ptr(4),
	}
	query, args := buildSearchQuery(filter, 20)

	require.Len(t, args, 6)
	assert.Equal(t, []any{"%Vancouver%", int64(7), int64(5000), int64(10000), float64(4), 20}, args)

	// Placeholder index must equal the predicate's position in append order.
	assert.Contains(t, query, "city ILIKE $1")
	assert.Contains(t, query, "owner_id = $2")
	assert.Contains(t, query, "cost_per_night >= $3")
	assert.Contains(t, query, "cost_per_night <= $4")
	assert.Contains(t, query, "property_reviews.rating >= $5")
	assert.Contains(t, query, "LIMIT $6")

	// Filters chain off the always-true base predicate.
	assert.Equal(t, 5, strings.Count(query, "\nAND "))
}

func TestBuildSearchQuery_LimitIsAlwaysFinalParameter(t *testing.T) {
	_, noFilterArgs := buildSearchQuery(SearchFilter{}, 3)
	assert.Equal(t, 3, noFilterArgs[len(noFilterArgs)-1])

	_, filteredArgs := buildSearchQuery(SearchFilter{OwnerID: int64Ptr(1)}, 3)
	assert.Equal(t, 3, filteredArgs[len(filteredArgs)-1])
}

func TestPredicateBuilder_WhereWithoutConditions(t *testing.T) {
	b := &predicateBuilder{}
	assert.Equal(t, "WHERE 1=1", b.where())
}

func TestPredicateBuilder_BindReturnsPlaceholderIndex(t *testing.T) {
	b := &predicateBuilder{}
	b.and("a = $%d", 1)
	b.and("b = $%d", 2)

	idx := b.bind(99)
	assert.Equal(t, 3, idx)
	assert.Equal(t, []any{1, 2, 99}, b.args)
}

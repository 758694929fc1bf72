package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tech(username string, ratings ...float64) Account {
	reviews := make([]Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = Review{Rating: r}
	}
	return Account{
		Username: username,
		Technician: &Technician{
			Services: []Service{{Name: "Servicing and MOT"}},
			Reviews:  reviews,
		},
	}
}

func usernames(accounts []Account) []string {
	names := make([]string, len(accounts))
	for i, acc := range accounts {
		names[i] = acc.Username
	}
	return names
}

func TestCheckSortParams(t *testing.T) {
	assert.NoError(t, checkSortParams("", ""))
	assert.NoError(t, checkSortParams("rating", ""))
	assert.NoError(t, checkSortParams("reviews", "desc"))
	assert.ErrorIs(t, checkSortParams("price", ""), ErrBadRequest)
	assert.ErrorIs(t, checkSortParams("rating", "sideways"), ErrBadRequest)
	assert.ErrorIs(t, checkSortParams("rating", "asc"), ErrBadRequest)
}

func TestFilterByService(t *testing.T) {
	mot := tech("mot-only")
	clutch := tech("clutch-only")
	clutch.Technician.Services = []Service{{Name: "Clutch repairs"}}
	both := tech("both")
	both.Technician.Services = []Service{{Name: "Clutch repairs"}, {Name: "MOT while you wait"}}

	accounts := []Account{mot, clutch, both}

	assert.Equal(t, []string{"mot-only", "clutch-only", "both"}, usernames(filterByService(accounts, "")))
	assert.Equal(t, []string{"mot-only", "both"}, usernames(filterByService(accounts, "mot")))
	assert.Equal(t, []string{"clutch-only", "both"}, usernames(filterByService(accounts, "CLUTCH")))
	assert.Empty(t, filterByService(accounts, "welding"))
}

func TestSortTechniciansByRating(t *testing.T) {
	accounts := []Account{
		tech("middling", 3, 3),
		tech("top", 5, 5),
		tech("low", 1),
	}

	sortTechnicians(accounts, SortByRating, "")
	require.Equal(t, []string{"top", "middling", "low"}, usernames(accounts))

	for i := 1; i < len(accounts); i++ {
		assert.GreaterOrEqual(t,
			accounts[i-1].Technician.AverageRating(),
			accounts[i].Technician.AverageRating())
	}
}

func TestSortTechniciansByReviewCount(t *testing.T) {
	accounts := []Account{
		tech("one", 4),
		tech("three", 4, 4, 4),
		tech("two", 4, 4),
	}

	sortTechnicians(accounts, SortByReviews, "")
	assert.Equal(t, []string{"three", "two", "one"}, usernames(accounts))
}

func TestSortTechniciansOrderReversesApplied(t *testing.T) {
	accounts := []Account{
		tech("middling", 3),
		tech("top", 5),
		tech("low", 1),
	}

	sortTechnicians(accounts, SortByRating, OrderDesc)
	assert.Equal(t, []string{"low", "middling", "top"}, usernames(accounts))
}

func TestSortTechniciansStableTies(t *testing.T) {
	accounts := []Account{
		tech("first", 4),
		tech("second", 4),
		tech("third", 4),
	}

	sortTechnicians(accounts, SortByRating, "")
	assert.Equal(t, []string{"first", "second", "third"}, usernames(accounts))
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, (&Technician{}).AverageRating())
	assert.Equal(t, 4.0, tech("t", 3, 5).Technician.AverageRating())
}

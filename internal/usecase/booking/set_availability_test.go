package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
)

func TestSetAvailabilityReplacesWeek(t *testing.T) {
	repo, _ := fixture(t)

	uc := NewSetAvailability(repo, nil, time.Second)
	windows, err := uc.Execute(context.Background(), SetAvailabilityInput{
		SellerID: sellerID,
		Windows: []WindowInput{
			{Weekday: int(time.Tuesday), StartTime: "08:00", EndTime: "12:00", Active: true},
			{Weekday: int(time.Thursday), StartTime: "13:00", EndTime: "18:00", Active: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, windows, 2)

	// The fixture's Monday window is gone; replacement is whole-week.
	for _, w := range windows {
		assert.NotEqual(t, int(time.Monday), w.Weekday)
		assert.Equal(t, sellerID, w.SellerID)
	}
}

func TestSetAvailabilityEmptyWeekAllowed(t *testing.T) {
	repo, _ := fixture(t)

	uc := NewSetAvailability(repo, nil, time.Second)
	windows, err := uc.Execute(context.Background(), SetAvailabilityInput{
		SellerID: sellerID,
		Windows:  nil,
	})
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestSetAvailabilityBuyerRefused(t *testing.T) {
	repo, _ := fixture(t)

	uc := NewSetAvailability(repo, nil, time.Second)
	_, err := uc.Execute(context.Background(), SetAvailabilityInput{
		SellerID: buyerID,
		Windows:  []WindowInput{{Weekday: 1, StartTime: "09:00", EndTime: "17:00", Active: true}},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSetAvailabilityInvalidWindowLeavesScheduleUntouched(t *testing.T) {
	repo, _ := fixture(t)

	uc := NewSetAvailability(repo, nil, time.Second)
	_, err := uc.Execute(context.Background(), SetAvailabilityInput{
		SellerID: sellerID,
		Windows: []WindowInput{
			{Weekday: 1, StartTime: "09:00", EndTime: "12:00", Active: true},
			{Weekday: 1, StartTime: "13:00", EndTime: "17:00", Active: true},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	kept, err := repo.LoadAvailability(context.Background(), sellerID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, int(time.Monday), kept[0].Weekday)
}

func TestGetAvailability(t *testing.T) {
	repo, _ := fixture(t)

	uc := NewGetAvailability(repo, time.Second)
	windows, err := uc.Execute(context.Background(), sellerID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "09:00", windows[0].StartTime)
}

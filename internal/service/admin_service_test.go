package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fitbelievers/gym-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	bookings := &fakeBookingRepo{}
	subs := &fakeSubscriberRepo{}
	trainers := &fakeTrainerRepo{}
	classes := &fakeClassRepo{}
	svc := NewAdminService(bookings, subs, trainers, classes)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 8; i++ {
		_, err := bookings.Create(ctx, &domain.Booking{
			Email: fmt.Sprintf("buyer%d@gym.io", i),
			Price: 10,
			Date:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := subs.Create(ctx, &domain.Subscriber{Email: "sub@gym.io"})
	require.NoError(t, err)
	_, err = trainers.Create(ctx, &domain.Trainer{Email: "max@gym.io"})
	require.NoError(t, err)
	seedClasses(classes, 3)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 80.0, stats.TotalBalance)
	require.Len(t, stats.LastBookings, recentBookingsLimit)
	assert.Equal(t, "buyer8@gym.io", stats.LastBookings[0].Email, "newest booking first")
	assert.Equal(t, int64(1), stats.TotalTrainers)
	assert.Equal(t, int64(3), stats.TotalClasses)

	require.Len(t, stats.ChartData, 2)
	assert.Equal(t, ChartEntry{Name: "Newsletter Subscribers", Value: 1}, stats.ChartData[0])
	assert.Equal(t, ChartEntry{Name: "Paid Members", Value: 8}, stats.ChartData[1])
}

func TestAdminStatsEmpty(t *testing.T) {
	svc := NewAdminService(&fakeBookingRepo{}, &fakeSubscriberRepo{}, &fakeTrainerRepo{}, &fakeClassRepo{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBalance)
	assert.Empty(t, stats.LastBookings)
	assert.Equal(t, int64(0), stats.TotalTrainers)
}

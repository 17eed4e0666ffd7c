package service

import (
	"context"
	"fmt"
	"testing"

	"fitbelievers/gym-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedClasses(classes *fakeClassRepo, n int) {
	for i := 1; i <= n; i++ {
		classes.classes = append(classes.classes, domain.Class{
			ID:               primitive.NewObjectID(),
			Name:             fmt.Sprintf("Class %02d", i),
			NumberOfBookings: int64(i),
		})
	}
}

func TestListClassesPagination(t *testing.T) {
	classes := &fakeClassRepo{}
	seedClasses(classes, 12)
	svc := NewCatalogService(classes)
	ctx := context.Background()

	// Page 2 with size 5 yields items 6-10.
	got, err := svc.ListClasses(ctx, 2, 5, false)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Class 06", got[0].Name)
	assert.Equal(t, "Class 10", got[4].Name)

	// Size 0 disables the cap.
	got, err = svc.ListClasses(ctx, 1, 0, false)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	// Page below 1 is clamped to the first page.
	got, err = svc.ListClasses(ctx, 0, 5, false)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Class 01", got[0].Name)

	// Beyond the last page is empty, not an error.
	got, err = svc.ListClasses(ctx, 99, 5, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListClassesNamesOnly(t *testing.T) {
	classes := &fakeClassRepo{}
	seedClasses(classes, 3)
	svc := NewCatalogService(classes)

	got, err := svc.ListClasses(context.Background(), 1, 0, true)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.NotEmpty(t, c.Name)
		assert.True(t, c.ID.IsZero(), "projection drops everything but the name")
		assert.Zero(t, c.NumberOfBookings)
	}
}

func TestTopClassesCapped(t *testing.T) {
	classes := &fakeClassRepo{}
	seedClasses(classes, 10)
	svc := NewCatalogService(classes)

	got, err := svc.TopClasses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, topClassesLimit)
	// Ordered by bookings, most popular first.
	assert.Equal(t, "Class 10", got[0].Name)
	assert.Equal(t, "Class 05", got[5].Name)
}

func TestGetClassUnknown(t *testing.T) {
	svc := NewCatalogService(&fakeClassRepo{})

	_, err := svc.GetClass(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestCreateClassRequiresName(t *testing.T) {
	svc := NewCatalogService(&fakeClassRepo{})

	_, err := svc.CreateClass(context.Background(), &domain.Class{})
	assert.Error(t, err)
}

package service

import (
	"context"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"
)

const recentBookingsLimit = 6

// ChartEntry is one name/value pair for the dashboard chart.
type ChartEntry struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// AdminStats is the aggregate snapshot shown on the admin dashboard.
// Every figure comes from an independent read; there is no consistency
// requirement across them.
type AdminStats struct {
	TotalBalance  float64          `json:"totalBalance"`
	LastBookings  []domain.Booking `json:"lastBookings"`
	TotalTrainers int64            `json:"totalTrainers"`
	TotalClasses  int64            `json:"totalClasses"`
	ChartData     []ChartEntry     `json:"chartData"`
}

// AdminService computes the dashboard aggregation.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
}

type adminService struct {
	bookingRepo    repository.BookingRepository
	subscriberRepo repository.SubscriberRepository
	trainerRepo    repository.TrainerRepository
	classRepo      repository.ClassRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	bookingRepo repository.BookingRepository,
	subscriberRepo repository.SubscriberRepository,
	trainerRepo repository.TrainerRepository,
	classRepo repository.ClassRepository,
) AdminService {
	return &adminService{
		bookingRepo:    bookingRepo,
		subscriberRepo: subscriberRepo,
		trainerRepo:    trainerRepo,
		classRepo:      classRepo,
	}
}

// Stats gathers total revenue, the latest bookings and the headline
// counts. Reads run sequentially; each is idempotent.
func (s *adminService) Stats(ctx context.Context) (*AdminStats, error) {
	prices, err := s.bookingRepo.Prices(ctx)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, p := range prices {
		total += p
	}

	recent, err := s.bookingRepo.Recent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subscriberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	paidMembers, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	trainers, err := s.trainerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := s.classRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalBalance:  total,
		LastBookings:  recent,
		TotalTrainers: trainers,
		TotalClasses:  classes,
		ChartData: []ChartEntry{
			{Name: "Newsletter Subscribers", Value: subscribers},
			{Name: "Paid Members", Value: paidMembers},
		},
	}, nil
}

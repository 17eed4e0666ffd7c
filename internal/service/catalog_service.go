package service

import (
	"context"
	"errors"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrClassNotFound = errors.New("class not found")

const topClassesLimit = 6

// CatalogService covers the class catalog: creation, paged listing and
// the landing-page toplist.
type CatalogService interface {
	CreateClass(ctx context.Context, class *domain.Class) (primitive.ObjectID, error)
	GetClass(ctx context.Context, id primitive.ObjectID) (*domain.Class, error)
	// ListClasses pages in natural collection order. Page is 1-based;
	// values below 1 are clamped. A size of 0 disables the cap. Paging
	// past the end yields an empty slice, not an error.
	ListClasses(ctx context.Context, page, size int64, namesOnly bool) ([]domain.Class, error)
	TopClasses(ctx context.Context) ([]domain.Class, error)
	CountClasses(ctx context.Context) (int64, error)
}

type catalogService struct {
	classRepo repository.ClassRepository
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(classRepo repository.ClassRepository) CatalogService {
	return &catalogService{classRepo: classRepo}
}

func (s *catalogService) CreateClass(ctx context.Context, class *domain.Class) (primitive.ObjectID, error) {
	if class.Name == "" {
		return primitive.NilObjectID, errors.New("class name is required")
	}
	return s.classRepo.Create(ctx, class)
}

func (s *catalogService) GetClass(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *catalogService) ListClasses(ctx context.Context, page, size int64, namesOnly bool) ([]domain.Class, error) {
	if page < 1 {
		page = 1
	}
	var skip int64
	if size > 0 {
		skip = (page - 1) * size
	}
	return s.classRepo.List(ctx, repository.ClassListOptions{
		Skip:      skip,
		Limit:     size,
		NamesOnly: namesOnly,
	})
}

func (s *catalogService) TopClasses(ctx context.Context) ([]domain.Class, error) {
	return s.classRepo.TopByBookings(ctx, topClassesLimit)
}

func (s *catalogService) CountClasses(ctx context.Context) (int64, error) {
	return s.classRepo.Count(ctx)
}

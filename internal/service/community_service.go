package service

import (
	"context"
	"errors"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrPostNotFound = errors.New("post not found")

// CommunityService covers posts, newsletter signups and reviews.
type CommunityService interface {
	CreatePost(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	// ListPosts pages like the class catalog: 1-based page, size 0 means
	// no cap, recentFirst orders by timestamp descending.
	ListPosts(ctx context.Context, page, size int64, recentFirst bool) ([]domain.Post, error)
	Upvote(ctx context.Context, id primitive.ObjectID, n int64) error
	Downvote(ctx context.Context, id primitive.ObjectID, n int64) error
	CountPosts(ctx context.Context) (int64, error)

	Subscribe(ctx context.Context, sub *domain.Subscriber) (primitive.ObjectID, error)
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)

	CreateReview(ctx context.Context, review *domain.Review) (primitive.ObjectID, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type communityService struct {
	postRepo       repository.PostRepository
	reviewRepo     repository.ReviewRepository
	subscriberRepo repository.SubscriberRepository
}

// NewCommunityService creates a new instance of communityService.
func NewCommunityService(
	postRepo repository.PostRepository,
	reviewRepo repository.ReviewRepository,
	subscriberRepo repository.SubscriberRepository,
) CommunityService {
	return &communityService{
		postRepo:       postRepo,
		reviewRepo:     reviewRepo,
		subscriberRepo: subscriberRepo,
	}
}

func (s *communityService) CreatePost(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.Title == "" {
		return primitive.NilObjectID, errors.New("post title is required")
	}
	return s.postRepo.Create(ctx, post)
}

func (s *communityService) ListPosts(ctx context.Context, page, size int64, recentFirst bool) ([]domain.Post, error) {
	if page < 1 {
		page = 1
	}
	var skip int64
	if size > 0 {
		skip = (page - 1) * size
	}
	return s.postRepo.List(ctx, repository.PostListOptions{
		Skip:        skip,
		Limit:       size,
		RecentFirst: recentFirst,
	})
}

func (s *communityService) Upvote(ctx context.Context, id primitive.ObjectID, n int64) error {
	err := s.postRepo.AddUpvotes(ctx, id, n)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *communityService) Downvote(ctx context.Context, id primitive.ObjectID, n int64) error {
	err := s.postRepo.AddDownvotes(ctx, id, n)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *communityService) CountPosts(ctx context.Context) (int64, error) {
	return s.postRepo.Count(ctx)
}

func (s *communityService) Subscribe(ctx context.Context, sub *domain.Subscriber) (primitive.ObjectID, error) {
	if sub.Email == "" {
		return primitive.NilObjectID, errors.New("subscriber email is required")
	}
	return s.subscriberRepo.Create(ctx, sub)
}

func (s *communityService) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.subscriberRepo.List(ctx)
}

func (s *communityService) CreateReview(ctx context.Context, review *domain.Review) (primitive.ObjectID, error) {
	if review.Feedback == "" {
		return primitive.NilObjectID, errors.New("review feedback is required")
	}
	return s.reviewRepo.Create(ctx, review)
}

func (s *communityService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}

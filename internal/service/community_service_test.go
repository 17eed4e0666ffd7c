package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fitbelievers/gym-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCommunityFixture() (*fakePostRepo, *fakeReviewRepo, *fakeSubscriberRepo, CommunityService) {
	posts := &fakePostRepo{}
	reviews := &fakeReviewRepo{}
	subs := &fakeSubscriberRepo{}
	svc := NewCommunityService(posts, reviews, subs)
	return posts, reviews, subs, svc
}

func TestVotesMoveIndependently(t *testing.T) {
	posts, _, _, svc := newCommunityFixture()
	ctx := context.Background()

	id, err := posts.Create(ctx, &domain.Post{Title: "Leg day tips"})
	require.NoError(t, err)

	require.NoError(t, svc.Upvote(ctx, id, 1))
	require.NoError(t, svc.Upvote(ctx, id, 1))
	require.NoError(t, svc.Downvote(ctx, id, 1))

	assert.Equal(t, int64(2), posts.posts[0].Upvote)
	assert.Equal(t, int64(1), posts.posts[0].Downvote)
}

func TestVoteUnknownPost(t *testing.T) {
	_, _, _, svc := newCommunityFixture()

	assert.ErrorIs(t, svc.Upvote(context.Background(), primitive.NewObjectID(), 1), ErrPostNotFound)
	assert.ErrorIs(t, svc.Downvote(context.Background(), primitive.NewObjectID(), 1), ErrPostNotFound)
}

func TestListPostsRecentFirst(t *testing.T) {
	posts, _, _, svc := newCommunityFixture()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := posts.Create(ctx, &domain.Post{
			Title:     fmt.Sprintf("Post %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	got, err := svc.ListPosts(ctx, 1, 0, true)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Post 2", got[0].Title)
	assert.Equal(t, "Post 0", got[2].Title)
}

func TestListPostsPagination(t *testing.T) {
	posts, _, _, svc := newCommunityFixture()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := posts.Create(ctx, &domain.Post{Title: fmt.Sprintf("Post %d", i)})
		require.NoError(t, err)
	}

	got, err := svc.ListPosts(ctx, 2, 3, false)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Post 4", got[0].Title)

	got, err = svc.ListPosts(ctx, 5, 3, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubscribeAndReviewValidation(t *testing.T) {
	_, _, subs, svc := newCommunityFixture()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, &domain.Subscriber{Name: "Jane"})
	assert.Error(t, err, "email is mandatory")

	id, err := svc.Subscribe(ctx, &domain.Subscriber{Name: "Jane", Email: "jane@gym.io"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Len(t, subs.subs, 1)

	_, err = svc.CreateReview(ctx, &domain.Review{Name: "Jane"})
	assert.Error(t, err, "feedback is mandatory")

	_, err = svc.CreateReview(ctx, &domain.Review{Name: "Jane", Feedback: "Great classes"})
	require.NoError(t, err)
}

package service

import (
	"context"
	"testing"

	"fitbelievers/gym-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTrainerFixture() (*fakeUserRepo, *fakeApplicationRepo, *fakeTrainerRepo, TrainerService) {
	users := newFakeUserRepo()
	apps := &fakeApplicationRepo{}
	trainers := &fakeTrainerRepo{}
	svc := NewTrainerService(users, apps, trainers)
	return users, apps, trainers, svc
}

func TestPromoteHappyPath(t *testing.T) {
	users, apps, trainers, svc := newTrainerFixture()
	ctx := context.Background()

	users.users["jane@gym.io"] = &domain.User{Email: "jane@gym.io", Role: domain.RoleMember}
	_, err := apps.Create(ctx, &domain.TrainerApplication{Name: "Jane", Email: "jane@gym.io"})
	require.NoError(t, err)

	outcome, err := svc.Promote(ctx, &domain.Trainer{Name: "Jane", Email: "jane@gym.io"})
	require.NoError(t, err)
	assert.Equal(t, Promoted, outcome)

	assert.Equal(t, domain.RoleTrainer, users.users["jane@gym.io"].Role)
	assert.Empty(t, apps.apps, "application should be consumed")
	require.Len(t, trainers.trainers, 1)
	assert.Equal(t, "jane@gym.io", trainers.trainers[0].Email)
}

func TestPromoteUserNotFound(t *testing.T) {
	_, apps, trainers, svc := newTrainerFixture()
	ctx := context.Background()

	outcome, err := svc.Promote(ctx, &domain.Trainer{Email: "ghost@gym.io"})
	require.NoError(t, err)
	assert.Equal(t, UserNotFound, outcome)
	assert.Empty(t, apps.apps)
	assert.Empty(t, trainers.trainers)
}

func TestPromoteAlreadyTrainer(t *testing.T) {
	users, _, trainers, svc := newTrainerFixture()
	ctx := context.Background()

	users.users["max@gym.io"] = &domain.User{Email: "max@gym.io", Role: domain.RoleTrainer}

	outcome, err := svc.Promote(ctx, &domain.Trainer{Email: "max@gym.io"})
	require.NoError(t, err)
	assert.Equal(t, AlreadyTrainer, outcome)
	assert.Empty(t, trainers.trainers, "no second trainer record")
}

func TestPromoteApplicationMissing(t *testing.T) {
	users, _, trainers, svc := newTrainerFixture()
	ctx := context.Background()

	// Member with no pending application: role flips, then the sequence
	// stalls on the missing application. No rollback happens.
	users.users["sam@gym.io"] = &domain.User{Email: "sam@gym.io", Role: domain.RoleMember}

	outcome, err := svc.Promote(ctx, &domain.Trainer{Email: "sam@gym.io"})
	require.NoError(t, err)
	assert.Equal(t, ApplicationMissing, outcome)
	assert.Equal(t, domain.RoleTrainer, users.users["sam@gym.io"].Role, "role flip is not compensated")
	assert.Empty(t, trainers.trainers)
}

func TestPromotionOutcomeString(t *testing.T) {
	assert.Equal(t, "promoted", Promoted.String())
	assert.Equal(t, "already a trainer", AlreadyTrainer.String())
	assert.Equal(t, "user not found", UserNotFound.String())
	assert.Equal(t, "application missing", ApplicationMissing.String())
}

func TestDemote(t *testing.T) {
	users, _, trainers, svc := newTrainerFixture()
	ctx := context.Background()

	users.users["jane@gym.io"] = &domain.User{Email: "jane@gym.io", Role: domain.RoleTrainer}
	id, err := trainers.Create(ctx, &domain.Trainer{Name: "Jane", Email: "jane@gym.io"})
	require.NoError(t, err)

	require.NoError(t, svc.Demote(ctx, id))

	assert.Empty(t, trainers.trainers)
	assert.Equal(t, domain.RoleMember, users.users["jane@gym.io"].Role)
}

func TestDemoteUnknownTrainer(t *testing.T) {
	_, _, _, svc := newTrainerFixture()

	err := svc.Demote(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestApplyMarksUserPending(t *testing.T) {
	users, apps, _, svc := newTrainerFixture()
	ctx := context.Background()

	users.users["jane@gym.io"] = &domain.User{Email: "jane@gym.io", Role: domain.RoleMember}

	id, err := svc.Apply(ctx, &domain.TrainerApplication{Name: "Jane", Email: "jane@gym.io"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	assert.Equal(t, domain.StatusPending, users.users["jane@gym.io"].Status)
	assert.Len(t, apps.apps, 1)
}

func TestApplyUnknownAccountStillStored(t *testing.T) {
	_, apps, _, svc := newTrainerFixture()

	id, err := svc.Apply(context.Background(), &domain.TrainerApplication{Email: "new@gym.io"})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Len(t, apps.apps, 1)
}

func TestRejectApplication(t *testing.T) {
	users, apps, _, svc := newTrainerFixture()
	ctx := context.Background()

	users.users["jane@gym.io"] = &domain.User{Email: "jane@gym.io", Status: domain.StatusPending}
	id, err := apps.Create(ctx, &domain.TrainerApplication{Email: "jane@gym.io"})
	require.NoError(t, err)

	require.NoError(t, svc.RejectApplication(ctx, id))

	assert.Empty(t, apps.apps)
	assert.Empty(t, users.users["jane@gym.io"].Status, "pending flag cleared")

	assert.ErrorIs(t, svc.RejectApplication(ctx, id), ErrApplicationNotFound)
}

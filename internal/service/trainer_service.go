package service

import (
	"context"
	"errors"
	"log"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/metrics"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrApplicationNotFound = errors.New("trainer application not found")
	ErrTrainerNotFound     = errors.New("trainer not found")
)

// PromotionOutcome is the typed result of the promotion workflow. The
// workflow spans three collections with no cross-collection atomicity,
// so a partial outcome is reported instead of silently dropped.
type PromotionOutcome int

const (
	Promoted PromotionOutcome = iota
	AlreadyTrainer
	UserNotFound
	ApplicationMissing
)

func (o PromotionOutcome) String() string {
	switch o {
	case Promoted:
		return "promoted"
	case AlreadyTrainer:
		return "already a trainer"
	case UserNotFound:
		return "user not found"
	case ApplicationMissing:
		return "application missing"
	default:
		return "unknown"
	}
}

// TrainerService covers application intake, the promotion/demotion
// workflows, and trainer listings.
type TrainerService interface {
	// Applications
	Apply(ctx context.Context, app *domain.TrainerApplication) (primitive.ObjectID, error)
	ListApplications(ctx context.Context) ([]domain.TrainerApplication, error)
	GetApplication(ctx context.Context, id primitive.ObjectID) (*domain.TrainerApplication, error)
	RejectApplication(ctx context.Context, id primitive.ObjectID) error

	// Workflows
	Promote(ctx context.Context, trainer *domain.Trainer) (PromotionOutcome, error)
	Demote(ctx context.Context, trainerID primitive.ObjectID) error

	// Listings
	ListTrainers(ctx context.Context, limit int64, teamOnly bool) ([]domain.Trainer, error)
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetTrainerByEmail(ctx context.Context, email string) (*domain.Trainer, error)
}

// trainerService implements the TrainerService interface. All repository
// handles are injected; nothing closes over package-level state.
type trainerService struct {
	userRepo        repository.UserRepository
	applicationRepo repository.ApplicationRepository
	trainerRepo     repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(
	userRepo repository.UserRepository,
	applicationRepo repository.ApplicationRepository,
	trainerRepo repository.TrainerRepository,
) TrainerService {
	return &trainerService{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		trainerRepo:     trainerRepo,
	}
}

// === Applications ===

// Apply stores the application and flags the applicant's account as
// pending. The two writes are independent; a failed status update does
// not remove the stored application.
func (s *trainerService) Apply(ctx context.Context, app *domain.TrainerApplication) (primitive.ObjectID, error) {
	if app.Email == "" {
		return primitive.NilObjectID, errors.New("application email is required")
	}

	if err := s.userRepo.SetStatusByEmail(ctx, app.Email, domain.StatusPending); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, err
		}
		// Unknown account: store the application anyway, matching the
		// intake behavior of the original frontend flow.
		log.Printf("WARN: trainer application for unknown account %s", app.Email)
	}

	return s.applicationRepo.Create(ctx, app)
}

func (s *trainerService) ListApplications(ctx context.Context) ([]domain.TrainerApplication, error) {
	return s.applicationRepo.List(ctx)
}

func (s *trainerService) GetApplication(ctx context.Context, id primitive.ObjectID) (*domain.TrainerApplication, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// RejectApplication removes the application and clears the applicant's
// pending status.
func (s *trainerService) RejectApplication(ctx context.Context, id primitive.ObjectID) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}

	deleted, err := s.applicationRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrApplicationNotFound
	}

	if err := s.userRepo.SetStatusByEmail(ctx, app.Email, ""); err != nil && !errors.Is(err, repository.ErrNotFound) {
		metrics.WorkflowStepFailures.WithLabelValues("rejection", "user_status").Inc()
		log.Printf("ERROR: clearing status for %s after rejection: %v", app.Email, err)
	}
	return nil
}

// === Promotion / Demotion ===

// Promote runs the three-collection promotion sequence: flip the user's
// role, remove the pending application, insert the trainer record. The
// steps are not atomic; each outcome short of Promoted names exactly how
// far the sequence got so the caller can surface it.
func (s *trainerService) Promote(ctx context.Context, trainer *domain.Trainer) (PromotionOutcome, error) {
	if trainer.Email == "" {
		return UserNotFound, errors.New("trainer email is required")
	}

	matched, modified, err := s.userRepo.SetRoleByEmail(ctx, trainer.Email, domain.RoleTrainer)
	if err != nil {
		return UserNotFound, err
	}
	if matched == 0 {
		return UserNotFound, nil
	}
	if modified == 0 {
		// Role was already trainer; nothing further to move.
		return AlreadyTrainer, nil
	}

	deleted, err := s.applicationRepo.DeleteByEmail(ctx, trainer.Email)
	if err != nil {
		// The user is promoted but the application still exists. There is
		// no compensation here; count it and report the gap.
		metrics.WorkflowStepFailures.WithLabelValues("promotion", "application_delete").Inc()
		return ApplicationMissing, err
	}
	if deleted != 1 {
		return ApplicationMissing, nil
	}

	if _, err := s.trainerRepo.Create(ctx, trainer); err != nil {
		// User promoted, application gone, trainer record missing. Left
		// inconsistent on purpose (no rollback); the metric is the flag.
		metrics.WorkflowStepFailures.WithLabelValues("promotion", "trainer_insert").Inc()
		return ApplicationMissing, err
	}

	metrics.TrainerPromotions.Inc()
	return Promoted, nil
}

// Demote deletes the trainer record and moves the matching user back to
// member. The user is matched by the email stored on the trainer record,
// resolved before the delete.
func (s *trainerService) Demote(ctx context.Context, trainerID primitive.ObjectID) error {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	deleted, err := s.trainerRepo.Delete(ctx, trainerID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTrainerNotFound
	}

	if _, _, err := s.userRepo.SetRoleByEmail(ctx, trainer.Email, domain.RoleMember); err != nil {
		metrics.WorkflowStepFailures.WithLabelValues("demotion", "user_role").Inc()
		log.Printf("ERROR: demoting user %s after trainer delete: %v", trainer.Email, err)
		return err
	}
	return nil
}

// === Listings ===

func (s *trainerService) ListTrainers(ctx context.Context, limit int64, teamOnly bool) ([]domain.Trainer, error) {
	return s.trainerRepo.List(ctx, limit, teamOnly)
}

func (s *trainerService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) GetTrainerByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

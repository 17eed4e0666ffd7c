package service

import (
	"context"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests. They mirror the
// observable behavior of the mongo implementations: sentinel errors,
// matched/modified counts, and $in/$push/$pull style updates.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if _, ok := r.users[user.Email]; ok {
		return primitive.NilObjectID, repository.ErrAlreadyExists
	}
	u := *user
	u.ID = primitive.NewObjectID()
	r.users[u.Email] = &u
	return u.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) SetRoleByEmail(_ context.Context, email string, role domain.Role) (int64, int64, error) {
	u, ok := r.users[email]
	if !ok {
		return 0, 0, nil
	}
	if u.Role == role {
		return 1, 0, nil
	}
	u.Role = role
	return 1, 1, nil
}

func (r *fakeUserRepo) SetStatusByEmail(_ context.Context, email, status string) error {
	u, ok := r.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Status = status
	return nil
}

type fakeClassRepo struct {
	classes []domain.Class
}

func (r *fakeClassRepo) Create(_ context.Context, class *domain.Class) (primitive.ObjectID, error) {
	c := *class
	c.ID = primitive.NewObjectID()
	r.classes = append(r.classes, c)
	return c.ID, nil
}

func (r *fakeClassRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Class, error) {
	for i := range r.classes {
		if r.classes[i].ID == id {
			c := r.classes[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClassRepo) GetByName(_ context.Context, name string) (*domain.Class, error) {
	for i := range r.classes {
		if r.classes[i].Name == name {
			c := r.classes[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeClassRepo) List(_ context.Context, opts repository.ClassListOptions) ([]domain.Class, error) {
	if opts.Skip >= int64(len(r.classes)) {
		return []domain.Class{}, nil
	}
	out := r.classes[opts.Skip:]
	if opts.Limit > 0 && opts.Limit < int64(len(out)) {
		out = out[:opts.Limit]
	}
	result := make([]domain.Class, len(out))
	copy(result, out)
	if opts.NamesOnly {
		for i := range result {
			result[i] = domain.Class{Name: result[i].Name}
		}
	}
	return result, nil
}

func (r *fakeClassRepo) TopByBookings(_ context.Context, limit int64) ([]domain.Class, error) {
	sorted := make([]domain.Class, len(r.classes))
	copy(sorted, r.classes)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].NumberOfBookings > sorted[i].NumberOfBookings {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if limit > 0 && limit < int64(len(sorted)) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeClassRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.classes)), nil
}

func (r *fakeClassRepo) AddTrainerToClasses(_ context.Context, names []string, trainer domain.ClassTrainer) (int64, error) {
	var updated int64
	for _, name := range names {
		for i := range r.classes {
			if r.classes[i].Name == name {
				r.classes[i].Trainers = append(r.classes[i].Trainers, trainer)
				updated++
			}
		}
	}
	return updated, nil
}

func (r *fakeClassRepo) IncrementBookings(_ context.Context, names []string) (int64, error) {
	var updated int64
	for _, name := range names {
		for i := range r.classes {
			if r.classes[i].Name == name {
				r.classes[i].NumberOfBookings++
				updated++
			}
		}
	}
	return updated, nil
}

type fakeApplicationRepo struct {
	apps []domain.TrainerApplication
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *domain.TrainerApplication) (primitive.ObjectID, error) {
	a := *app
	a.ID = primitive.NewObjectID()
	r.apps = append(r.apps, a)
	return a.ID, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.TrainerApplication, error) {
	for i := range r.apps {
		if r.apps[i].ID == id {
			a := r.apps[i]
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]domain.TrainerApplication, error) {
	out := make([]domain.TrainerApplication, len(r.apps))
	copy(out, r.apps)
	return out, nil
}

func (r *fakeApplicationRepo) DeleteByEmail(_ context.Context, email string) (int64, error) {
	for i := range r.apps {
		if r.apps[i].Email == email {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeApplicationRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeTrainerRepo struct {
	trainers []domain.Trainer
}

func (r *fakeTrainerRepo) Create(_ context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	t := *trainer
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	r.trainers = append(r.trainers, t)
	return t.ID, nil
}

func (r *fakeTrainerRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	for i := range r.trainers {
		if r.trainers[i].ID == id {
			t := r.trainers[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTrainerRepo) GetByEmail(_ context.Context, email string) (*domain.Trainer, error) {
	for i := range r.trainers {
		if r.trainers[i].Email == email {
			t := r.trainers[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTrainerRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Trainer, error) {
	out := []domain.Trainer{}
	for _, id := range ids {
		for i := range r.trainers {
			if r.trainers[i].ID == id {
				out = append(out, r.trainers[i])
			}
		}
	}
	return out, nil
}

func (r *fakeTrainerRepo) List(_ context.Context, limit int64, _ bool) ([]domain.Trainer, error) {
	out := make([]domain.Trainer, len(r.trainers))
	copy(out, r.trainers)
	if limit > 0 && limit < int64(len(out)) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTrainerRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range r.trainers {
		if r.trainers[i].ID == id {
			r.trainers = append(r.trainers[:i], r.trainers[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeTrainerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.trainers)), nil
}

func (r *fakeTrainerRepo) PushAvailableSlot(_ context.Context, trainerID primitive.ObjectID, summary domain.SlotSummary) error {
	for i := range r.trainers {
		if r.trainers[i].ID == trainerID {
			r.trainers[i].AvailableSlots = append(r.trainers[i].AvailableSlots, summary)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeTrainerRepo) PullAvailableSlot(_ context.Context, slotID primitive.ObjectID) error {
	for i := range r.trainers {
		slots := r.trainers[i].AvailableSlots
		for j := range slots {
			if slots[j].SlotID == slotID {
				r.trainers[i].AvailableSlots = append(slots[:j], slots[j+1:]...)
				return nil
			}
		}
	}
	return nil // a miss is a no-op
}

type fakeSlotRepo struct {
	slots []domain.Slot
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (primitive.ObjectID, error) {
	s := *slot
	s.ID = primitive.NewObjectID()
	r.slots = append(r.slots, s)
	return s.ID, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Slot, error) {
	for i := range r.slots {
		if r.slots[i].ID == id {
			s := r.slots[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSlotRepo) GetByTrainerEmail(_ context.Context, email string) ([]domain.Slot, error) {
	out := []domain.Slot{}
	for i := range r.slots {
		if r.slots[i].Trainer.Email == email {
			out = append(out, r.slots[i])
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range r.slots {
		if r.slots[i].ID == id {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeSlotRepo) AddAttendee(_ context.Context, slotID primitive.ObjectID, attendee domain.Attendee) error {
	for i := range r.slots {
		if r.slots[i].ID == slotID {
			r.slots[i].BookedBy = append(r.slots[i].BookedBy, attendee)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCartRepo struct {
	items []domain.CartItem
}

func (r *fakeCartRepo) Upsert(_ context.Context, item *domain.CartItem) error {
	for i := range r.items {
		if r.items[i].SlotID == item.SlotID {
			r.items[i] = *item
			return nil
		}
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeCartRepo) GetByEmail(_ context.Context, email string) (*domain.CartItem, error) {
	for i := range r.items {
		if r.items[i].Email == email {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCartRepo) DeleteBySlotID(_ context.Context, slotID string) (int64, error) {
	for i := range r.items {
		if r.items[i].SlotID == slotID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (primitive.ObjectID, error) {
	b := *booking
	b.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, b)
	return b.ID, nil
}

func (r *fakeBookingRepo) List(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *fakeBookingRepo) ListByEmail(_ context.Context, email string) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for i := range r.bookings {
		if r.bookings[i].Email == email {
			out = append(out, r.bookings[i])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Recent(_ context.Context, limit int64) ([]domain.Booking, error) {
	sorted := make([]domain.Booking, len(r.bookings))
	copy(sorted, r.bookings)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Date.After(sorted[i].Date) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	if limit > 0 && limit < int64(len(sorted)) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *fakeBookingRepo) Prices(_ context.Context) ([]float64, error) {
	prices := make([]float64, 0, len(r.bookings))
	for i := range r.bookings {
		prices = append(prices, r.bookings[i].Price)
	}
	return prices, nil
}

func (r *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type fakePostRepo struct {
	posts []domain.Post
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) (primitive.ObjectID, error) {
	p := *post
	p.ID = primitive.NewObjectID()
	r.posts = append(r.posts, p)
	return p.ID, nil
}

func (r *fakePostRepo) List(_ context.Context, opts repository.PostListOptions) ([]domain.Post, error) {
	sorted := make([]domain.Post, len(r.posts))
	copy(sorted, r.posts)
	if opts.RecentFirst {
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j].Timestamp.After(sorted[i].Timestamp) {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
	}
	if opts.Skip >= int64(len(sorted)) {
		return []domain.Post{}, nil
	}
	sorted = sorted[opts.Skip:]
	if opts.Limit > 0 && opts.Limit < int64(len(sorted)) {
		sorted = sorted[:opts.Limit]
	}
	return sorted, nil
}

func (r *fakePostRepo) AddUpvotes(_ context.Context, id primitive.ObjectID, n int64) error {
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Upvote += n
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePostRepo) AddDownvotes(_ context.Context, id primitive.ObjectID, n int64) error {
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Downvote += n
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (primitive.ObjectID, error) {
	rev := *review
	rev.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, rev)
	return rev.ID, nil
}

func (r *fakeReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

type fakeSubscriberRepo struct {
	subs []domain.Subscriber
}

func (r *fakeSubscriberRepo) Create(_ context.Context, sub *domain.Subscriber) (primitive.ObjectID, error) {
	s := *sub
	s.ID = primitive.NewObjectID()
	r.subs = append(r.subs, s)
	return s.ID, nil
}

func (r *fakeSubscriberRepo) List(_ context.Context) ([]domain.Subscriber, error) {
	out := make([]domain.Subscriber, len(r.subs))
	copy(out, r.subs)
	return out, nil
}

func (r *fakeSubscriberRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.subs)), nil
}

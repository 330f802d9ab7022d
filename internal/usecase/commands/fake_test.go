//go:build unit

package commands_test

import (
	"context"
	"time"

	"salonbook/internal/domain/review"
	"salonbook/internal/infra"
	"salonbook/internal/infra/db"
	"salonbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type statusTransition struct {
	ReviewID     uuid.UUID
	From         review.Status
	To           review.Status
	RejectReason *string
	Now          time.Time
}

type notificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

// fakeStore backs every repository port with in-memory state so command
// tests can assert side effects without a database. It implements
// CommandReads and all four repositories on a single value.
type fakeStore struct {
	bookings         map[uuid.UUID]*shared.BookingSnapshot
	reviews          map[uuid.UUID]*shared.ReviewSnapshot
	reviewedBookings map[uuid.UUID]bool

	created   []*review.Review
	createErr error
	updated   []*review.Review
	deleted   []uuid.UUID

	transitions  []statusTransition
	transitionOK bool

	salonRecalcs []uuid.UUID
	staffRecalcs []uuid.UUID

	jobs []notificationJob
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings:         make(map[uuid.UUID]*shared.BookingSnapshot),
		reviews:          make(map[uuid.UUID]*shared.ReviewSnapshot),
		reviewedBookings: make(map[uuid.UUID]bool),
		transitionOK:     true,
	}
}

// CommandReads

func (f *fakeStore) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (f *fakeStore) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return r, nil
}

func (f *fakeStore) ReviewExistsForBooking(_ context.Context, bookingID uuid.UUID) (bool, error) {
	return f.reviewedBookings[bookingID], nil
}

// ReviewRepository

func (f *fakeStore) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, rev)
	return rev.ID(), nil
}

func (f *fakeStore) UpdateContent(_ context.Context, _ db.DBTX, rev *review.Review) error {
	f.updated = append(f.updated, rev)
	return nil
}

func (f *fakeStore) TransitionStatus(_ context.Context, _ db.DBTX, reviewID uuid.UUID, from, to review.Status, rejectReason *string, now time.Time) (bool, error) {
	f.transitions = append(f.transitions, statusTransition{
		ReviewID:     reviewID,
		From:         from,
		To:           to,
		RejectReason: rejectReason,
		Now:          now,
	})
	return f.transitionOK, nil
}

func (f *fakeStore) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	f.deleted = append(f.deleted, reviewID)
	return nil
}

// RatingStatsRepository

func (f *fakeStore) RecalcSalonRatingStats(_ context.Context, _ db.DBTX, salonID uuid.UUID) error {
	f.salonRecalcs = append(f.salonRecalcs, salonID)
	return nil
}

func (f *fakeStore) RecalcStaffRatingStats(_ context.Context, _ db.DBTX, staffID uuid.UUID) error {
	f.staffRecalcs = append(f.staffRecalcs, staffID)
	return nil
}

// NotificationRepository

func (f *fakeStore) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	f.jobs = append(f.jobs, notificationJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// UserRepository

func (f *fakeStore) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Reviews() shared.ReviewRepository           { return t.store }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository  { return t.store }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.store }
func (t *fakeTx) Users() shared.UserRepository               { return t.store }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.store }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	store       *fakeStore
	withinCalls int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.withinCalls++
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.store
}

type fakeInvalidator struct {
	salons []uuid.UUID
	staffs []uuid.UUID
}

func (f *fakeInvalidator) InvalidateSalon(_ context.Context, salonID uuid.UUID) {
	f.salons = append(f.salons, salonID)
}

func (f *fakeInvalidator) InvalidateStaff(_ context.Context, staffID uuid.UUID) {
	f.staffs = append(f.staffs, staffID)
}

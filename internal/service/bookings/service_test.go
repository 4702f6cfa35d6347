package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/most-gh/mddroner-booking/internal/domain"
	bookingRepo "github.com/most-gh/mddroner-booking/internal/infra/storage/booking"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
	"github.com/most-gh/mddroner-booking/pkg/logger"
	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

// memoryRepo хранит бронирования в памяти и повторяет семантику PostgreSQL репозитория
type memoryRepo struct {
	rows    map[int64]*domain.Booking
	calls   int
	failure error
}

func newMemoryRepo(bookings ...*domain.Booking) *memoryRepo {
	r := &memoryRepo{rows: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		copied := *b
		r.rows[b.ID] = &copied
	}
	return r
}

func (r *memoryRepo) List(context.Context) ([]*domain.Booking, error) {
	r.calls++
	if r.failure != nil {
		return nil, r.failure
	}
	out := make([]*domain.Booking, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.calls++
	return r.rows[id], r.failure
}

func (r *memoryRepo) Update(_ context.Context, id int64, u domain.BookingUpdate) error {
	r.calls++
	if r.failure != nil {
		return r.failure
	}
	b, ok := r.rows[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Notes != nil {
		b.Notes = u.Notes
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	r.calls++
	if r.failure != nil {
		return r.failure
	}
	delete(r.rows, id)
	return nil
}

var (
	admin = &domain.Identity{ID: 1, Name: "Owner", Role: domain.RoleAdmin}
	user  = &domain.Identity{ID: 2, Name: "Visitor", Role: domain.RoleUser}
)

func seed() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, Route: "經典山道", Name: "李明", Status: domain.StatusPending, BookingDate: "2025-02-15"},
		{ID: 2, Route: "海岸秘境", Name: "陳浩", Status: domain.StatusPending, BookingDate: "2025-03-01", Notes: ptr.Ptr("old")},
	}
}

func TestService_NonAdminIsForbiddenWithoutSideEffects(t *testing.T) {
	callers := map[string]*domain.Identity{"anonymous": nil, "user": user}

	for name, caller := range callers {
		t.Run(name, func(t *testing.T) {
			repo := newMemoryRepo(seed()...)
			svc := NewService(repo, logger.Nop())
			ctx := context.Background()

			_, err := svc.GetByID(ctx, caller, 1)
			assert.ErrorIs(t, err, ErrAccessDenied)

			err = svc.Update(ctx, caller, 1, &models.UpdateBookingRequest{Status: ptr.Ptr("confirmed")})
			assert.ErrorIs(t, err, ErrAccessDenied)

			err = svc.Delete(ctx, caller, 1)
			assert.ErrorIs(t, err, ErrAccessDenied)

			assert.Zero(t, repo.calls)
			assert.Len(t, repo.rows, 2)
			assert.Equal(t, domain.StatusPending, repo.rows[1].Status)
		})
	}
}

func TestService_List_IsPublic(t *testing.T) {
	svc := NewService(newMemoryRepo(seed()...), logger.Nop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_List_EmptyIsNotNil(t *testing.T) {
	svc := NewService(newMemoryRepo(), logger.Nop())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newMemoryRepo(seed()...), logger.Nop())

	got, err := svc.GetByID(context.Background(), admin, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "陳浩", got.Name)
	assert.Equal(t, "old", *got.Notes)

	missing, err := svc.GetByID(context.Background(), admin, 99)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Update_ChangesOnlyTargetRow(t *testing.T) {
	repo := newMemoryRepo(seed()...)
	svc := NewService(repo, logger.Nop())

	err := svc.Update(context.Background(), admin, 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
		Notes:  ptr.Ptr("x"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, repo.rows[1].Status)
	assert.Equal(t, "x", *repo.rows[1].Notes)
	assert.Equal(t, domain.StatusPending, repo.rows[2].Status)
	assert.Equal(t, "old", *repo.rows[2].Notes)
}

func TestService_Update_Errors(t *testing.T) {
	svc := NewService(newMemoryRepo(seed()...), logger.Nop())
	ctx := context.Background()

	err := svc.Update(ctx, admin, 99, &models.UpdateBookingRequest{Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = svc.Update(ctx, admin, 1, &models.UpdateBookingRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := make([]rune, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = '字'
	}
	err = svc.Update(ctx, admin, 1, &models.UpdateBookingRequest{Notes: ptr.Ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_IsIdempotent(t *testing.T) {
	repo := newMemoryRepo(seed()...)
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, admin, 1))
	require.NoError(t, svc.Delete(ctx, admin, 1))
	require.NoError(t, svc.Delete(ctx, admin, 404))

	assert.Len(t, repo.rows, 1)
	assert.Contains(t, repo.rows, int64(2))
}

func TestService_RepositoryFailureIsInternal(t *testing.T) {
	repo := newMemoryRepo(seed()...)
	repo.failure = errors.New("connection reset")
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrInternal)

	err = svc.Delete(ctx, admin, 1)
	assert.ErrorIs(t, err, ErrInternal)
}

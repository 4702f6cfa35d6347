package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"route",
	"name",
	"phone",
	"car_model",
	"car_plate",
	"booking_date",
	"special_requests",
	"multiple_vehicles",
	"video_upgrade",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db  DBExecutor
	now Clock
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// WithClock подменяет источник времени (для тестов)
func (r *Repository) WithClock(now Clock) *Repository {
	r.now = now
	return r
}

// Create создает новое бронирование
// Статус всегда pending, created_at и updated_at берутся из одного значения часов
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	now := r.now().UTC()

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"route",
			"name",
			"phone",
			"car_model",
			"car_plate",
			"booking_date",
			"special_requests",
			"multiple_vehicles",
			"video_upgrade",
			"status",
			"notes",
			"created_at",
			"updated_at",
		).
		Values(
			booking.Route,
			booking.Name,
			booking.Phone,
			booking.CarModel,
			booking.CarPlate,
			booking.BookingDate,
			booking.SpecialRequests,
			booking.MultipleVehicles,
			booking.VideoUpgrade,
			domain.StatusPending,
			booking.Notes,
			now,
			now,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *booking
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created.Status = domain.StatusPending
	created.CreatedAt = now
	created.UpdatedAt = now

	return &created, nil
}

// List возвращает все бронирования, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
// Для неизвестного ID возвращает (nil, nil) - отсутствие записи не ошибка
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Update применяет только переданные поля (status и/или notes) и всегда обновляет updated_at
// Возвращает ErrBookingNotFound, если бронирования с таким ID нет
func (r *Repository) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	if update.Status != nil && !update.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *update.Status)
	}

	builder := psqlbuilder.Update(table)
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	query, args, err := builder.
		Set("updated_at", r.now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление)
// Идемпотентна: удаление несуществующего ID не считается ошибкой
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Route,
		&booking.Name,
		&booking.Phone,
		&booking.CarModel,
		&booking.CarPlate,
		&booking.BookingDate,
		&booking.SpecialRequests,
		&booking.MultipleVehicles,
		&booking.VideoUpgrade,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

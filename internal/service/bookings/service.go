package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/most-gh/mddroner-booking/internal/domain"
	bookingRepo "github.com/most-gh/mddroner-booking/internal/infra/storage/booking"
	"github.com/most-gh/mddroner-booking/internal/service/authz"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает все бронирования, новые первыми
// Доступен без авторизации
func (s *Service) List(ctx context.Context) ([]*models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetByID получает бронирование по ID (только admin)
// Для неизвестного ID возвращает (nil, nil)
func (s *Service) GetByID(ctx context.Context, caller *domain.Identity, id int64) (*models.BookingResponse, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		s.logger.Warn("GetByID: access denied to booking id=%d", id)
		return nil, ErrAccessDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking == nil {
		s.logger.Info("GetByID: booking id=%d not found", id)
		return nil, nil
	}

	return models.FromDomainBooking(booking), nil
}

// Update меняет статус и/или заметку бронирования (только admin)
// Одновременные правки двух администраторов: побеждает последняя запись
func (s *Service) Update(ctx context.Context, caller *domain.Identity, id int64, req *models.UpdateBookingRequest) error {
	if err := authz.RequireAdmin(caller); err != nil {
		s.logger.Warn("Update: access denied to booking id=%d", id)
		return ErrAccessDenied
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid input for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.Update(ctx, id, update); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("Update: booking id=%d not found", id)
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrInvalidStatus):
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: booking id=%d updated by user=%d (status set=%t, notes set=%t)",
		id, caller.ID, update.Status != nil, update.Notes != nil)
	return nil
}

// Delete удаляет бронирование (только admin)
// Удаление несуществующего ID считается успешным
func (s *Service) Delete(ctx context.Context, caller *domain.Identity, id int64) error {
	if err := authz.RequireAdmin(caller); err != nil {
		s.logger.Warn("Delete: access denied to booking id=%d", id)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted by user=%d", id, caller.ID)
	return nil
}

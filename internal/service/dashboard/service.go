package dashboard

import (
	"context"
	"fmt"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/internal/service/authz"
	"github.com/most-gh/mddroner-booking/internal/service/bookings/models"
)

// Service панель администратора: фильтрация, счетчики и выгрузка
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса панели администратора
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// View возвращает отфильтрованный список и счетчики по всему списку
func (s *Service) View(ctx context.Context, caller *domain.Identity, filter Filter) (*Response, error) {
	filter, all, err := s.load(ctx, caller, filter, "View")
	if err != nil {
		return nil, err
	}

	filtered := FilterBookings(all, filter.Month, filter.Status)
	s.logger.Info("View: month=%s status=%s matched %d of %d bookings",
		filter.Month, filter.Status, len(filtered), len(all))

	return &Response{
		Month:    filter.Month,
		Status:   filter.Status,
		Stats:    CountStats(all),
		Bookings: models.FromDomainBookings(filtered),
	}, nil
}

// Export выгружает отфильтрованный список в CSV или XLSX
func (s *Service) Export(ctx context.Context, caller *domain.Identity, filter Filter, format string) (*Export, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, fmt.Errorf("%w: unknown export format %q", ErrInvalidFilter, format)
	}

	filter, all, err := s.load(ctx, caller, filter, "Export")
	if err != nil {
		return nil, err
	}

	filtered := FilterBookings(all, filter.Month, filter.Status)
	export := &Export{Filename: ExportFilename(filter.Month, format)}

	switch format {
	case FormatXLSX:
		body, err := ExportXLSX(filtered)
		if err != nil {
			s.logger.Error("Export: failed to build xlsx for month=%s: %v", filter.Month, err)
			return nil, err
		}
		export.Body = body
		export.ContentType = ContentTypeXLSX
	default:
		export.Body = ExportCSV(filtered)
		export.ContentType = ContentTypeCSV
	}

	s.logger.Info("Export: %s with %d rows", export.Filename, len(filtered))
	return export, nil
}

// load проверяет права и фильтр, затем читает полный список
func (s *Service) load(ctx context.Context, caller *domain.Identity, filter Filter, op string) (Filter, []*domain.Booking, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		s.logger.Warn("%s: access denied", op)
		return filter, nil, ErrAccessDenied
	}

	filter, err := normalizeFilter(filter, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("%s: %v", op, err)
		return filter, nil, err
	}

	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return filter, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return filter, all, nil
}

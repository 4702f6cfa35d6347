package submit_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/most-gh/mddroner-booking/internal/domain"
)

// DefaultNotifyTimeout ограничение на доставку уведомления владельцу
const DefaultNotifyTimeout = 5 * time.Second

// UseCase use case приема публичной заявки на съемку
type UseCase struct {
	bookingRepo   BookingRepository
	notifier      Notifier
	metrics       Metrics
	timeProvider  TimeProvider
	notifyTimeout time.Duration
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics Metrics,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		notifier:      notifier,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет прием заявки
// Сначала заявка сохраняется, затем отправляется уведомление владельцу.
// Ошибка уведомления логируется и учитывается в метриках, но клиенту возвращается успех
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация
	normalized := normalizeRequest(req)
	if err := validateRequest(normalized); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SubmitBooking: route=%q, date=%s, multipleVehicles=%t, videoUpgrade=%t",
		normalized.Route, normalized.BookingDate, normalized.MultipleVehicles, normalized.VideoUpgrade)

	// 2. Сохранение (статус всегда pending)
	created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		Route:            normalized.Route,
		Name:             normalized.Name,
		Phone:            normalized.Phone,
		CarModel:         normalized.CarModel,
		CarPlate:         normalized.CarPlate,
		BookingDate:      normalized.BookingDate,
		SpecialRequests:  normalized.SpecialRequests,
		MultipleVehicles: normalized.MultipleVehicles,
		VideoUpgrade:     normalized.VideoUpgrade,
		Status:           domain.StatusPending,
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsSubmitted()
	uc.logger.Info("SubmitBooking: booking id=%d created", created.ID)

	// 3. Уведомление владельцу
	uc.notifyOwner(ctx, created)

	return &Response{Success: true}, nil
}

// notifyOwner отправляет уведомление синхронно с ограничением по времени
// Контекст отвязан от отмены запроса: клиент мог уже закрыть соединение, а заявка сохранена
func (uc *UseCase) notifyOwner(ctx context.Context, booking *domain.Booking) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	defer cancel()

	content := formatNotification(booking, uc.timeProvider.Now())
	if err := uc.notifier.NotifyOwner(notifyCtx, NotificationTitle, content); err != nil {
		uc.metrics.IncNotificationFailed(uc.notifier.Name())
		uc.logger.Error("SubmitBooking: owner notification via %s failed for booking id=%d: %v",
			uc.notifier.Name(), booking.ID, err)
		return
	}

	uc.logger.Info("SubmitBooking: owner notified via %s for booking id=%d", uc.notifier.Name(), booking.ID)
}

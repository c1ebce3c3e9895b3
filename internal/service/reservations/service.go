package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/client"
	invoiceRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/invoice"
	reservationRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-KartingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	clients         ClientDirectory
	weeklySlots     WeeklySlotTracker
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	clients ClientDirectory,
	weeklySlots WeeklySlotTracker,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		clients:         clients,
		weeklySlots:     weeklySlots,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе с квитанцией, если она есть
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReservation(reservation)

	invoice, err := s.invoiceRepo.GetByReservationID(ctx, id)
	switch {
	case err == nil:
		resp.Invoice = models.FromDomainInvoice(invoice)
	case errors.Is(err, invoiceRepo.ErrInvoiceNotFound):
		// квитанция могла не сохраниться после бронирования
	default:
		s.logger.Warn("GetByID: failed to load invoice for reservation id=%d: %v", id, err)
	}

	return resp, nil
}

// ListBetween возвращает бронирования, начинающиеся в полуинтервале [from, to)
func (s *Service) ListBetween(ctx context.Context, from, to time.Time) (*models.ReservationListResponse, error) {
	if !from.Before(to) {
		s.logger.Warn("ListBetween: empty period from=%s to=%s", from.Format(domain.DateTimeFormat), to.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBetween: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBetween - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBetween: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(from, to, reservations), nil
}

// Cancel удаляет бронирование, затем без гарантий чистит квитанцию и недельные снимки
// Ошибки очистки возвращаются как предупреждения и не восстанавливают бронирование
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	resp := &models.CancelResponse{
		ReservationID: id,
		Cancelled:     true,
		Warnings:      []string{},
	}

	if err := s.invoiceRepo.DeleteByReservationID(ctx, id); err != nil && !errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
		s.logger.Warn("Cancel: failed to delete invoice for reservation id=%d: %v", id, err)
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("invoice cleanup failed: %v", err))
	}

	if _, err := s.weeklySlots.RemoveReservation(ctx, id); err != nil {
		s.logger.Warn("Cancel: failed to remove reservation id=%d from weekly slots: %v", id, err)
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("weekly slot cleanup failed: %v", err))
	}

	s.logger.Info("Cancel: reservation id=%d cancelled with %d warnings", id, len(resp.Warnings))
	return resp, nil
}

// MonthlyCount считает бронирования клиента-титуляра в календарном месяце даты
func (s *Service) MonthlyCount(ctx context.Context, clientID int64, date time.Time) (*models.MonthlyCountResponse, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("MonthlyCount: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("MonthlyCount: client lookup failed for id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: MonthlyCount - client lookup: %v", ErrInternal, err)
	}

	from, to := domain.MonthBounds(date)
	count, err := s.reservationRepo.CountByTitularBetween(ctx, clientID, from, to)
	if err != nil {
		s.logger.Error("MonthlyCount: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: MonthlyCount - repository error: %v", ErrInternal, err)
	}

	return &models.MonthlyCountResponse{
		ClientID: clientID,
		Month:    from.Format("2006-01"),
		Count:    count,
	}, nil
}

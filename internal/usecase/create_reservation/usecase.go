package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/client"
	tariffRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-KartingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-KartingService/internal/service/discounts"
)

// UseCase движок бронирования: участники, тариф, скидки, выделение картов, сохранение
type UseCase struct {
	clients         ClientDirectory
	rates           RateTable
	discounts       DiscountResolver
	karts           KartInventory
	reservationRepo ReservationRepository
	invoiceRepo     InvoiceRepository
	notifier        Notifier
	weeklySlots     WeeklySlotTracker
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clients ClientDirectory,
	rates RateTable,
	discounts DiscountResolver,
	karts KartInventory,
	reservationRepo ReservationRepository,
	invoiceRepo InvoiceRepository,
	notifier Notifier,
	weeklySlots WeeklySlotTracker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:         clients,
		rates:           rates,
		discounts:       discounts,
		karts:           karts,
		reservationRepo: reservationRepo,
		invoiceRepo:     invoiceRepo,
		notifier:        notifier,
		weeklySlots:     weeklySlots,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute создает бронирование
// Проверка пересечений, выделение картов и сохранение выполняются в одной транзакции READ COMMITTED
// под блокировкой шкалы бронирований: каждый запрос после получения блокировки видит всё,
// что зафиксировали предыдущие. Квитанция, уведомление и снимок недели делаются после commit
// и не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: titular=%s, participants=%d, laps=%d, start=%s",
		req.TitularEmail, len(req.ParticipantEmails), req.LapCount, req.StartTime.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.IncReservationRejected(rejectInvalidInput)
		return nil, err
	}

	// 2. Титуляр и участники
	titular, err := uc.resolveClient(ctx, req.TitularEmail)
	if err != nil {
		return nil, err
	}

	participants, err := uc.resolveParticipants(ctx, req.ParticipantEmails)
	if err != nil {
		return nil, err
	}
	headcount := len(participants)

	// 3. Тариф
	rate, err := uc.rates.GetRate(ctx, req.LapCount)
	if err != nil {
		if errors.Is(err, tariffRepo.ErrRateNotFound) {
			uc.logger.Warn("CreateReservation: no rate for laps=%d", req.LapCount)
			uc.metrics.IncReservationRejected(rejectUnknownRate)
			return nil, fmt.Errorf("%w: laps=%d", ErrUnknownRateTier, req.LapCount)
		}
		uc.logger.Error("CreateReservation: failed to get rate for laps=%d: %v", req.LapCount, err)
		return nil, fmt.Errorf("%w: failed to get rate: %v", ErrInternal, err)
	}

	start := req.StartTime
	end := start.Add(rate.Duration())

	// 4. Скидки
	discount, err := uc.resolveDiscount(ctx, titular.ID, headcount, start)
	if err != nil {
		return nil, err
	}

	// 5. Цена
	quote := domain.CalculatePrice(rate.PricePerPerson, headcount, discount)

	// 6. Выделение картов и сохранение под блокировкой шкалы
	var created *domain.Reservation

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 6.1. Блокировка шкалы: конкурентные бронирования проходят этот участок по одному
		if err := uc.reservationRepo.LockTimeline(txCtx); err != nil {
			return fmt.Errorf("%w: lock timeline: %w", ErrInternal, err)
		}

		// 6.2. Пересекающиеся бронирования и занятые ими карты
		overlapping, err := uc.reservationRepo.FindOverlapping(txCtx, start, end)
		if err != nil {
			return fmt.Errorf("%w: find overlapping reservations: %w", ErrInternal, err)
		}

		allKarts, err := uc.karts.ListIDs(txCtx)
		if err != nil {
			return fmt.Errorf("%w: list karts: %w", ErrInternal, err)
		}

		available := domain.AvailableKarts(allKarts, overlapping, start, end)
		if len(available) < headcount {
			uc.logger.Warn("CreateReservation: insufficient karts for %s-%s, need=%d available=%d",
				start.Format(domain.DateTimeFormat), end.Format(domain.TimeFormat), headcount, len(available))
			return fmt.Errorf("%w: need %d, available %d", ErrInsufficientKarts, headcount, len(available))
		}

		// 6.3. Сохраняем бронирование с первыми свободными картами
		reservation := &domain.Reservation{
			TitularID:          titular.ID,
			ParticipantIDs:     clientIDs(participants),
			Headcount:          headcount,
			LapCount:           req.LapCount,
			StartTime:          start,
			EndTime:            end,
			DurationMinutes:    rate.DurationMinutes,
			BasePricePerPerson: rate.PricePerPerson,
			DiscountPercent:    quote.DiscountPercent,
			FinalPrice:         quote.Total,
			KartIDs:            append([]int64(nil), available[:headcount]...),
			Status:             domain.StatusConfirmed,
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: create reservation: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInsufficientKarts) {
			uc.metrics.IncReservationRejected(rejectInsufficientKarts)
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: created reservation id=%d, karts=%v, discount=%d%%, total=%d",
		created.ID, created.KartIDs, quote.DiscountPercent, quote.Total)

	// 7. Побочные действия после commit; запрос мог быть отменён клиентом, бронирование уже есть
	uc.afterCommit(context.WithoutCancel(ctx), created, titular, participants, quote)

	return toResponse(created, quote), nil
}

// resolveClient ищет клиента по email
func (uc *UseCase) resolveClient(ctx context.Context, email string) (*domain.Client, error) {
	client, err := uc.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateReservation: client email=%s not found", email)
			uc.metrics.IncReservationRejected(rejectUnknownClient)
			return nil, fmt.Errorf("%w: %s", ErrUnknownClient, email)
		}
		uc.logger.Error("CreateReservation: failed to get client email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	return client, nil
}

// resolveParticipants ищет участников; разные адреса одного клиента считаются одним участником
func (uc *UseCase) resolveParticipants(ctx context.Context, emails []string) ([]*domain.Client, error) {
	normalized := normalizeEmails(emails)
	participants := make([]*domain.Client, 0, len(normalized))
	seen := make(map[int64]struct{}, len(normalized))

	for _, email := range normalized {
		client, err := uc.resolveClient(ctx, email)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[client.ID]; dup {
			continue
		}
		seen[client.ID] = struct{}{}
		participants = append(participants, client)
	}

	return participants, nil
}

// resolveDiscount считает три кандидата параллельно и выбирает максимальный
func (uc *UseCase) resolveDiscount(ctx context.Context, titularID int64, headcount int, start time.Time) (int, error) {
	var dateSpecial, groupSize, frequency int

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		dateSpecial = uc.discounts.DateSpecial(gctx, titularID, start)
		return nil
	})

	g.Go(func() error {
		var err error
		groupSize, err = uc.discounts.GroupSize(gctx, headcount)
		return err
	})

	g.Go(func() error {
		from, to := domain.MonthBounds(start)
		count, err := uc.reservationRepo.CountByTitularBetween(gctx, titularID, from, to)
		if err != nil {
			return fmt.Errorf("count monthly reservations: %w", err)
		}
		frequency, err = uc.discounts.Frequency(gctx, count)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("CreateReservation: failed to resolve discounts for titular=%d: %v", titularID, err)
		return 0, fmt.Errorf("%w: resolve discounts: %v", ErrInternal, err)
	}

	best := discounts.Best(dateSpecial, groupSize, frequency)
	uc.logger.Info("CreateReservation: discounts date=%d group=%d frequency=%d -> %d",
		dateSpecial, groupSize, frequency, best)

	return best, nil
}

// afterCommit квитанция, событие и снимок недели; ошибки только логируются
func (uc *UseCase) afterCommit(
	ctx context.Context,
	res *domain.Reservation,
	titular *domain.Client,
	participants []*domain.Client,
	quote domain.PriceQuote,
) {
	names := make([]string, 0, len(participants))
	emails := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
		emails = append(emails, p.Email)
	}

	invoice := domain.NewInvoice(res.ID, titular.Name, names, quote)
	if _, err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		uc.logger.Error("CreateReservation: failed to store invoice for reservation id=%d: %v", res.ID, err)
		uc.metrics.IncSideEffectFailure(sideEffectInvoice)
	}

	event := &notifier.ReservationConfirmedEvent{
		ReservationID:     res.ID,
		TitularName:       titular.Name,
		TitularEmail:      titular.Email,
		ParticipantNames:  names,
		ParticipantEmails: emails,
		LapCount:          res.LapCount,
		StartTime:         res.StartTime,
		EndTime:           res.EndTime,
		KartIDs:           res.KartIDs,
		TotalBase:         quote.TotalBase,
		DiscountPercent:   quote.DiscountPercent,
		Subtotal:          quote.Subtotal,
		Tax:               quote.Tax,
		Total:             quote.Total,
		OccurredAt:        time.Now().UTC(),
	}
	if err := uc.notifier.PublishReservationConfirmed(ctx, event); err != nil {
		uc.logger.Error("CreateReservation: failed to publish confirmation for reservation id=%d: %v", res.ID, err)
		uc.metrics.IncSideEffectFailure(sideEffectNotification)
	}

	if _, err := uc.weeklySlots.SnapshotFor(ctx, res.StartTime); err != nil {
		uc.logger.Error("CreateReservation: failed to refresh weekly slot for reservation id=%d: %v", res.ID, err)
		uc.metrics.IncSideEffectFailure(sideEffectWeeklySlot)
	}
}

func clientIDs(clients []*domain.Client) []int64 {
	ids := make([]int64, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	return ids
}

func toResponse(res *domain.Reservation, quote domain.PriceQuote) *Response {
	return &Response{
		ID:                 res.ID,
		TitularID:          res.TitularID,
		ParticipantIDs:     res.ParticipantIDs,
		Headcount:          res.Headcount,
		LapCount:           res.LapCount,
		StartTime:          res.StartTime,
		EndTime:            res.EndTime,
		DurationMinutes:    res.DurationMinutes,
		KartIDs:            res.KartIDs,
		Status:             string(res.Status),
		BasePricePerPerson: res.BasePricePerPerson,
		TotalBase:          quote.TotalBase,
		DiscountPercent:    quote.DiscountPercent,
		Subtotal:           quote.Subtotal,
		Tax:                quote.Tax,
		FinalPrice:         quote.Total,
		CreatedAt:          res.CreatedAt,
	}
}

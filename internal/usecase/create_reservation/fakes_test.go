package create_reservation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-KartingService/internal/domain"
	clientRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/client"
	tariffRepo "github.com/m04kA/SMC-KartingService/internal/infra/storage/tariff"
	"github.com/m04kA/SMC-KartingService/internal/integrations/notifier"
)

// fakeClients справочник клиентов в памяти
type fakeClients struct {
	byEmail map[string]*domain.Client
}

func newFakeClients(clients ...*domain.Client) *fakeClients {
	f := &fakeClients{byEmail: make(map[string]*domain.Client)}
	for _, c := range clients {
		f.byEmail[c.Email] = c
	}
	return f
}

func (f *fakeClients) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	for _, c := range f.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

// fakeTariffs тарифы, скидки и праздники в памяти
type fakeTariffs struct {
	rates    map[int]domain.Rate
	ranges   map[domain.DiscountKind][]domain.DiscountRange
	holidays map[string]bool
}

func newFakeTariffs() *fakeTariffs {
	return &fakeTariffs{
		rates: map[int]domain.Rate{
			10: {LapCount: 10, PricePerPerson: 8000, DurationMinutes: 20},
			15: {LapCount: 15, PricePerPerson: 10000, DurationMinutes: 30},
		},
		ranges: map[domain.DiscountKind][]domain.DiscountRange{
			domain.DiscountKindGroupSize: {
				{Min: 1, Max: 2, Percentage: 0},
				{Min: 3, Max: 5, Percentage: 10},
				{Min: 6, Max: 10, Percentage: 20},
				{Min: 11, Max: 15, Percentage: 30},
			},
			domain.DiscountKindFrequency: {
				{Min: 0, Max: 1, Percentage: 0},
				{Min: 2, Max: 4, Percentage: 10},
				{Min: 5, Max: 6, Percentage: 20},
				{Min: 7, Max: 1000, Percentage: 30},
			},
		},
		holidays: map[string]bool{},
	}
}

func (f *fakeTariffs) GetRate(_ context.Context, lapCount int) (*domain.Rate, error) {
	rate, ok := f.rates[lapCount]
	if !ok {
		return nil, tariffRepo.ErrRateNotFound
	}
	return &rate, nil
}

func (f *fakeTariffs) ListDiscountRanges(_ context.Context, kind domain.DiscountKind) ([]domain.DiscountRange, error) {
	return f.ranges[kind], nil
}

func (f *fakeTariffs) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.holidays[date.Format(domain.DateFormat)], nil
}

type fakeKarts struct {
	ids []int64
}

func (f *fakeKarts) ListIDs(context.Context) ([]int64, error) {
	return append([]int64(nil), f.ids...), nil
}

// fakeStore хранилище бронирований в памяти
// timeline эмулирует advisory-блокировку: она держится до конца транзакции fakeTxManager
type fakeStore struct {
	mu           sync.RWMutex
	timeline     sync.Mutex
	nextID       int64
	reservations []*domain.Reservation

	// unlockedAccess считает чтения и записи шкалы в транзакции без блокировки
	unlockedAccess atomic.Int32
}

func (s *fakeStore) LockTimeline(ctx context.Context) error {
	tx, ok := ctx.Value(fakeTxKey{}).(*fakeTx)
	if !ok {
		return errors.New("LockTimeline outside transaction")
	}
	s.timeline.Lock()
	tx.locked = true
	tx.reservations, tx.nextID = s.snapshot()
	return nil
}

func (s *fakeStore) checkLocked(ctx context.Context) {
	if tx, ok := ctx.Value(fakeTxKey{}).(*fakeTx); ok && !tx.locked {
		s.unlockedAccess.Add(1)
	}
}

func (s *fakeStore) FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	s.checkLocked(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.IsActive() && r.Overlaps(start, end) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *fakeStore) CountByTitularBetween(_ context.Context, titularID int64, from, to time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.reservations {
		if r.TitularID == titularID && !r.StartTime.Before(from) && r.StartTime.Before(to) {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.checkLocked(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	res.ID = s.nextID
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt
	s.reservations = append(s.reservations, res)
	return res, nil
}

func (s *fakeStore) all() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := append([]*domain.Reservation(nil), s.reservations...)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *fakeStore) snapshot() ([]*domain.Reservation, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Reservation(nil), s.reservations...), s.nextID
}

func (s *fakeStore) restore(reservations []*domain.Reservation, nextID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = reservations
	s.nextID = nextID
}

type fakeTxKey struct{}

// fakeTx состояние транзакции: взята ли блокировка шкалы и снимок для отката
type fakeTx struct {
	locked       bool
	reservations []*domain.Reservation
	nextID       int64
}

// fakeTxManager сам транзакции не сериализует: порядок обеспечивает только LockTimeline
// При ошибке хранилище откатывается к состоянию на момент взятия блокировки
type fakeTxManager struct {
	store *fakeStore
	calls atomic.Int32
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls.Add(1)

	tx := &fakeTx{}
	err := fn(context.WithValue(ctx, fakeTxKey{}, tx))

	if tx.locked {
		if err != nil {
			m.store.restore(tx.reservations, tx.nextID)
		}
		m.store.timeline.Unlock()
	}
	return err
}

type fakeInvoices struct {
	mu       sync.Mutex
	err      error
	invoices []*domain.Invoice
}

func (f *fakeInvoices) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	inv.ID = int64(len(f.invoices) + 1)
	f.invoices = append(f.invoices, inv)
	return inv, nil
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishReservationConfirmed(ctx context.Context, event *notifier.ReservationConfirmedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fakeWeeklySlots struct {
	mu    sync.Mutex
	calls []time.Time
}

func (f *fakeWeeklySlots) SnapshotFor(_ context.Context, t time.Time) (*domain.WeeklySlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, t)
	year, week := t.ISOWeek()
	return domain.NewWeeklySlot(year, week)
}

type fakeMetrics struct {
	mu          sync.Mutex
	created     int
	rejected    map[string]int
	sideEffects map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{rejected: map[string]int{}, sideEffects: map[string]int{}}
}

func (m *fakeMetrics) IncReservationCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *fakeMetrics) IncReservationRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *fakeMetrics) IncSideEffectFailure(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sideEffects[kind]++
}

package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtBookingService/pkg/keylock"
)

// memoryStore реализует репозитории в памяти. Проверка слота и вставка
// разнесены паузой, чтобы без блокировки гонка проявлялась в тестах.
type memoryStore struct {
	mu            sync.Mutex
	clients       map[string]*domain.Client
	courts        map[int64]*domain.Court
	bookings      []*domain.Booking
	nextClientID  int64
	nextBookingID int64

	checkDelay    time.Duration
	uniqueIndex   bool
	createErr     error
	hideConflicts bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clients: make(map[string]*domain.Client),
		courts: map[int64]*domain.Court{
			1: {ID: 1, Name: "Cancha A", Kind: "Fútbol 5vs5", HourlyPrice: 70000, IsActive: true},
			2: {ID: 2, Name: "Cancha B", Kind: "Fútbol 7vs7", HourlyPrice: 90000, IsActive: true},
			3: {ID: 3, Name: "Cancha C", Kind: "Fútbol 6vs6", HourlyPrice: 90000, IsActive: false},
		},
		checkDelay: 2 * time.Millisecond,
	}
}

func (s *memoryStore) FindOrCreate(_ context.Context, client *domain.Client) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.clients[client.DocumentNumber]; ok {
		return existing, nil
	}

	s.nextClientID++
	created := *client
	created.ID = s.nextClientID
	created.RegisteredAt = time.Now()
	s.clients[client.DocumentNumber] = &created
	return &created, nil
}

func (s *memoryStore) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	court, ok := s.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	copied := *court
	return &copied, nil
}

func (s *memoryStore) HasActiveBooking(_ context.Context, key domain.SlotKey) (bool, error) {
	s.mu.Lock()
	taken := s.activeCountLocked(key) > 0 && !s.hideConflicts
	s.mu.Unlock()

	time.Sleep(s.checkDelay)
	return taken, nil
}

func (s *memoryStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.uniqueIndex && s.activeCountLocked(booking.Key()) > 0 {
		return nil, bookingRepo.ErrSlotTaken
	}

	s.nextBookingID++
	created := *booking
	created.ID = s.nextBookingID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.bookings = append(s.bookings, &created)
	return &created, nil
}

func (s *memoryStore) setStatus(id int64, status domain.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			b.Status = status
		}
	}
}

func (s *memoryStore) activeCount(key domain.SlotKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCountLocked(key)
}

func (s *memoryStore) activeCountLocked(key domain.SlotKey) int {
	count := 0
	for _, b := range s.bookings {
		if b.Key() == key && b.IsActive() {
			count++
		}
	}
	return count
}

func (s *memoryStore) counts() (clients, bookings int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients), len(s.bookings)
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []int64
	err       error
}

func (p *recordingPublisher) PublishBookingCreated(_ context.Context, booking *domain.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, booking.ID)
	return p.err
}

type recordingMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *recordingMetrics) ObserveReservation(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = make(map[string]int)
	}
	m.results[result]++
}

func (m *recordingMetrics) count(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.results[result]
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	store     *memoryStore
	publisher *recordingPublisher
	metrics   *recordingMetrics
	today     time.Time
}

func newFixture() *fixture {
	store := newMemoryStore()
	publisher := &recordingPublisher{}
	metrics := &recordingMetrics{}

	uc := NewUseCase(store, store, store, passThroughTx{}, keylock.New(), publisher, metrics, time.UTC, nopLogger{})
	now := time.Date(2025, 10, 14, 16, 30, 0, 0, time.UTC)
	uc.timeProvider = fixedClock{now: now}

	return &fixture{
		uc:        uc,
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		today:     domain.DateOnly(now),
	}
}

func (f *fixture) request(courtID int64, date time.Time, slot string) *Request {
	return &Request{
		FirstName:      "Carlos",
		LastName:       "Giménez",
		DocumentNumber: "4567890",
		Phone:          "0981123456",
		Email:          "carlos@example.com",
		CourtID:        courtID,
		Date:           date,
		Slot:           slot,
		PaymentMethod:  "efectivo",
	}
}

package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/service/maintenance/models"
)

type stubRepos struct {
	bookings []*domain.Booking
	clients  []*domain.Client
	courts   []*domain.Court
	listErr  error

	deletedBefore time.Time
}

func (r *stubRepos) ListAll(context.Context) ([]*domain.Booking, error) {
	return r.bookings, r.listErr
}

func (r *stubRepos) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	r.deletedBefore = before
	var deleted int64
	kept := r.bookings[:0]
	for _, b := range r.bookings {
		if b.BookingDate.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, b)
	}
	r.bookings = kept
	return deleted, nil
}

type clientRepo struct{ r *stubRepos }

func (c clientRepo) List(context.Context) ([]*domain.Client, error) { return c.r.clients, nil }

type courtRepo struct{ r *stubRepos }

func (c courtRepo) List(context.Context, bool) ([]*domain.Court, error) { return c.r.courts, nil }

type passThroughTx struct{}

func (passThroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2025, 10, 14, 21, 5, 9, 0, time.UTC)

func day(offset int) time.Time {
	return domain.DateOnly(now).AddDate(0, 0, offset)
}

func newService(t *testing.T, repos *stubRepos, retentionDays int) (*Service, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "backups")
	svc := NewService(repos, clientRepo{repos}, courtRepo{repos}, passThroughTx{}, dir, retentionDays, time.UTC, nopLogger{})
	svc.timeProvider = fixedClock{now: now}
	return svc, dir
}

func fixture() *stubRepos {
	email := "ana@example.com"
	return &stubRepos{
		bookings: []*domain.Booking{
			{ID: 1, ClientID: 1, CourtID: 1, BookingDate: day(-45), Slot: "17:00 - 18:00", Status: domain.StatusCompleted, TotalAmount: 70000},
			{ID: 2, ClientID: 1, CourtID: 2, BookingDate: day(-30), Slot: "18:00 - 19:00", Status: domain.StatusCompleted, TotalAmount: 90000},
			{ID: 3, ClientID: 1, CourtID: 1, BookingDate: day(2), Slot: "19:00 - 20:00", Status: domain.StatusPending, TotalAmount: 70000},
		},
		clients: []*domain.Client{{ID: 1, DocumentNumber: "4567890", FirstName: "Ana", LastName: "Benítez", Phone: "0981123456", Email: &email}},
		courts: []*domain.Court{
			{ID: 1, Name: "Cancha 1", Kind: "Fútbol 5vs5", HourlyPrice: 70000, IsActive: true},
			{ID: 2, Name: "Cancha 2", Kind: "Fútbol 6vs6", HourlyPrice: 90000, IsActive: true},
		},
	}
}

func TestBackup_WritesSnapshot(t *testing.T) {
	svc, dir := newService(t, fixture(), 30)

	resp, err := svc.Backup(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^backup_20251014_210509_[0-9a-f]{8}\.json$`, resp.FileName)
	assert.Equal(t, models.BackupCount{Bookings: 3, Clients: 1, Courts: 2}, resp.Counts)

	data, err := os.ReadFile(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)

	var snapshot models.Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	assert.Len(t, snapshot.Bookings, 3)
	assert.Equal(t, "Benítez", snapshot.Clients[0].LastName)
	assert.Contains(t, string(data), "Benítez")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBackup_StorageFailure(t *testing.T) {
	repos := fixture()
	repos.listErr = errors.New("db down")
	svc, dir := newService(t, repos, 30)

	_, err := svc.Backup(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	assert.NoDirExists(t, dir)
}

func TestPurgeOld(t *testing.T) {
	repos := fixture()
	svc, _ := newService(t, repos, 30)

	resp, err := svc.PurgeOld(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Deleted)
	assert.Equal(t, "2025-09-14", resp.Before)
	assert.Len(t, repos.bookings, 2)
}

func TestPurgeOld_DefaultRetention(t *testing.T) {
	repos := fixture()
	svc, _ := newService(t, repos, 0)

	_, err := svc.PurgeOld(context.Background())
	require.NoError(t, err)
	assert.Equal(t, day(-domain.DefaultRetentionDays), repos.deletedBefore)
}

func TestBackup_SameSecondKeepsBothFiles(t *testing.T) {
	svc, dir := newService(t, fixture(), 30)

	first, err := svc.Backup(context.Background())
	require.NoError(t, err)
	second, err := svc.Backup(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.FileName, second.FileName)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

package courts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtsCache "github.com/m04kA/CourtBookingService/internal/infra/cache/courts"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
)

type stubRepo struct {
	courts  []*domain.Court
	listErr error
	calls   int
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	for _, c := range r.courts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, courtRepo.ErrCourtNotFound
}

func (r *stubRepo) List(_ context.Context, onlyActive bool) ([]*domain.Court, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*domain.Court
	for _, c := range r.courts {
		if !onlyActive || c.IsActive {
			result = append(result, c)
		}
	}
	return result, nil
}

type memoryCache struct {
	courts []*domain.Court
	getErr error
}

func (c *memoryCache) GetActive(context.Context) ([]*domain.Court, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.courts == nil {
		return nil, courtsCache.ErrCacheMiss
	}
	return c.courts, nil
}

func (c *memoryCache) SetActive(_ context.Context, courts []*domain.Court) error {
	c.courts = courts
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo() *stubRepo {
	return &stubRepo{courts: []*domain.Court{
		{ID: 1, Name: "Cancha 1", Kind: "Fútbol 5vs5", HourlyPrice: 70000, IsActive: true},
		{ID: 2, Name: "Cancha 2", Kind: "Fútbol 6vs6", HourlyPrice: 90000, IsActive: false},
	}}
}

func TestListActive_WithoutCache(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, "Cancha 1", resp.Courts[0].Name)
	assert.Equal(t, int64(70000), resp.Courts[0].HourlyPrice)
}

func TestListActive_CacheAside(t *testing.T) {
	repo := newRepo()
	cache := &memoryCache{}
	svc := NewService(repo, cache, nopLogger{})

	_, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	_, err = svc.ListActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Len(t, cache.courts, 1)
}

func TestListActive_CacheFailureFallsBackToRepository(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, &memoryCache{getErr: errors.New("connection refused")}, nopLogger{})

	resp, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Courts, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestListActive_RepositoryFailure(t *testing.T) {
	repo := newRepo()
	repo.listErr = errors.New("db down")

	_, err := NewService(repo, nil, nopLogger{}).ListActive(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	svc := NewService(newRepo(), nil, nopLogger{})

	court, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, court.IsActive)

	_, err = svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

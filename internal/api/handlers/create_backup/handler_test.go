package create_backup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/service/maintenance"
	"github.com/m04kA/CourtBookingService/internal/service/maintenance/models"
)

type stubService struct {
	err error
}

func (s stubService) Backup(_ context.Context) (*models.BackupResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BackupResponse{FileName: "backup_20251020_153000_1a2b3c4d.json"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Created(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/backup", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body models.BackupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "backup_20251020_153000_1a2b3c4d.json", body.FileName)
}

func TestHandle_BackupFailed(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubService{err: maintenance.ErrBackup}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/backup", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

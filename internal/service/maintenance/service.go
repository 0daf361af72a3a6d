package maintenance

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/service/maintenance/models"
)

const backupTimeFormat = "20060102_150405"

// Service сервис обслуживания данных: резервные копии и очистка старых броней
type Service struct {
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	courtRepo     CourtRepository
	txManager     TransactionManager
	backupDir     string
	retentionDays int
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса обслуживания
func NewService(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	backupDir string,
	retentionDays int,
	loc *time.Location,
	logger Logger,
) *Service {
	if retentionDays <= 0 {
		retentionDays = domain.DefaultRetentionDays
	}

	return &Service{
		bookingRepo:   bookingRepo,
		clientRepo:    clientRepo,
		courtRepo:     courtRepo,
		txManager:     txManager,
		backupDir:     backupDir,
		retentionDays: retentionDays,
		timeProvider:  realTimeProvider{loc: loc},
		logger:        logger,
	}
}

// Backup выгружает клиентов, корты и бронирования в
// <backupDir>/backup_YYYYMMDD_HHMMSS.json
func (s *Service) Backup(ctx context.Context) (*models.BackupResponse, error) {
	now := s.timeProvider.Now()

	var (
		bookings []*domain.Booking
		clients  []*domain.Client
		courts   []*domain.Court
	)

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if bookings, err = s.bookingRepo.ListAll(txCtx); err != nil {
			return fmt.Errorf("list bookings: %v", err)
		}
		if clients, err = s.clientRepo.List(txCtx); err != nil {
			return fmt.Errorf("list clients: %v", err)
		}
		if courts, err = s.courtRepo.List(txCtx, false); err != nil {
			return fmt.Errorf("list courts: %v", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Backup: %v", err)
		return nil, fmt.Errorf("%w: Backup - %v", ErrInternal, err)
	}

	snapshot := models.NewSnapshot(now, bookings, clients, courts)
	// суффикс различает копии, снятые в одну секунду
	fileName := fmt.Sprintf("backup_%s_%s.json", now.Format(backupTimeFormat), uuid.NewString()[:8])

	if err := s.writeSnapshot(fileName, snapshot); err != nil {
		s.logger.Error("Backup: failed to write %s: %v", fileName, err)
		return nil, fmt.Errorf("%w: %v", ErrBackup, err)
	}

	resp := &models.BackupResponse{
		FileName: fileName,
		Counts: models.BackupCount{
			Bookings: len(snapshot.Bookings),
			Clients:  len(snapshot.Clients),
			Courts:   len(snapshot.Courts),
		},
	}

	s.logger.Info("Backup: created %s (bookings=%d, clients=%d, courts=%d)",
		fileName, resp.Counts.Bookings, resp.Counts.Clients, resp.Counts.Courts)
	return resp, nil
}

// writeSnapshot пишет во временный файл и переименовывает, чтобы не оставить обрезанную копию
func (s *Service) writeSnapshot(fileName string, snapshot *models.Snapshot) error {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("create dir: %v", err)
	}

	tmp, err := os.CreateTemp(s.backupDir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %v", err)
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(snapshot); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %v", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.backupDir, fileName)); err != nil {
		return fmt.Errorf("rename: %v", err)
	}

	return nil
}

// PurgeOld удаляет бронирования с датой старше retentionDays дней
func (s *Service) PurgeOld(ctx context.Context) (*models.PurgeResponse, error) {
	cutoff := domain.DateOnly(s.timeProvider.Now()).AddDate(0, 0, -s.retentionDays)

	deleted, err := s.bookingRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeOld: repository error: %v", err)
		return nil, fmt.Errorf("%w: PurgeOld - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeOld: deleted %d bookings before %s", deleted, cutoff.Format(domain.DisplayDateFormat))
	return &models.PurgeResponse{
		Deleted: deleted,
		Before:  cutoff.Format(domain.DateFormat),
	}, nil
}

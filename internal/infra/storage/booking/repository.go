package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtBookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.client_id",
	"b.court_id",
	"b.booking_date",
	"b.slot",
	"b.duration_hours",
	"b.status",
	"b.payment_method",
	"b.total_amount",
	"b.notes",
	"b.created_at",
	"b.updated_at",
}

var detailsColumns = append(append([]string{}, bookingColumns...),
	"c.document_number",
	"c.first_name",
	"c.last_name",
	"c.phone",
	"c.email",
	"ct.name",
	"ct.kind",
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Нарушение индекса bookings_active_slot_key возвращается как ErrSlotTaken:
// это значит, что слот успел занять другой процесс.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"court_id",
			"booking_date",
			"slot",
			"duration_hours",
			"status",
			"payment_method",
			"total_amount",
			"notes",
		).
		Values(
			booking.ClientID,
			booking.CourtID,
			booking.BookingDate.Format(domain.DateFormat),
			string(booking.Slot),
			booking.DurationHours,
			string(booking.Status),
			booking.PaymentMethod,
			booking.TotalAmount,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if isActiveSlotViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetDetailsByID получает бронирование вместе с клиентом и кортом
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	details, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan booking: %v", ErrScanRow, err)
	}

	return details, nil
}

// HasActiveBooking проверяет, занят ли слот активной бронью.
// Внутри транзакции найденная строка блокируется (FOR UPDATE), чтобы её статус
// не изменился до конца транзакции.
func (r *Repository) HasActiveBooking(ctx context.Context, key domain.SlotKey) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"court_id":     key.CourtID,
			"booking_date": key.Date.Format(domain.DateFormat),
			"slot":         string(key.Slot),
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveBooking - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveBooking - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListActiveSlots возвращает слоты корта, занятые активными бронями на дату
func (r *Repository) ListActiveSlots(ctx context.Context, courtID int64, date time.Time) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot").
		From("bookings").
		Where(squirrel.Eq{
			"court_id":     courtID,
			"booking_date": date.Format(domain.DateFormat),
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		OrderBy("slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, domain.Slot(slot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListDetails возвращает бронирования с данными клиента и корта.
// Сортировка: сначала более поздние даты, внутри даты - последние созданные.
func (r *Repository) ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(detailsSelect(), filter).
		OrderBy("b.booking_date DESC", "b.created_at DESC", "b.id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDetails(ctx, executor, "ListDetails", query, args)
}

// ListRecent возвращает последние созданные бронирования
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDetails(ctx, executor, "ListRecent", query, args)
}

// ListAll возвращает все бронирования по возрастанию ID
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		OrderBy("b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Count считает бронирования по фильтру (Limit игнорируется)
func (r *Repository) Count(ctx context.Context, filter domain.BookingFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings b"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования.
// Возврат отменённой брони в активный статус на уже занятый слот даёт ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isActiveSlotViolation(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteBefore физически удаляет бронирования с датой раньше before.
// Возвращает количество удалённых строк.
func (r *Repository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Lt{"booking_date": before.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) queryDetails(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.BookingDetails, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

func detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("bookings b").
		Join("clients c ON c.id = b.client_id").
		Join("courts ct ON ct.id = b.court_id")
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.BookingFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": string(*filter.Status)})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"b.booking_date": filter.Date.Format(domain.DateFormat)})
	}
	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func bookingDest(b *domain.Booking, status, slot *string, notes *sql.NullString) []interface{} {
	return []interface{}{
		&b.ID,
		&b.ClientID,
		&b.CourtID,
		&b.BookingDate,
		slot,
		&b.DurationHours,
		status,
		&b.PaymentMethod,
		&b.TotalAmount,
		notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b            domain.Booking
		status, slot string
		notes        sql.NullString
	)

	if err := row.Scan(bookingDest(&b, &status, &slot, &notes)...); err != nil {
		return nil, err
	}

	finishBooking(&b, status, slot, notes)
	return &b, nil
}

func scanDetails(row rowScanner) (*domain.BookingDetails, error) {
	var (
		d            domain.BookingDetails
		status, slot string
		notes        sql.NullString
		email        sql.NullString
	)

	dest := append(bookingDest(&d.Booking, &status, &slot, &notes),
		&d.ClientDocument,
		&d.ClientFirstName,
		&d.ClientLastName,
		&d.ClientPhone,
		&email,
		&d.CourtName,
		&d.CourtKind,
	)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	finishBooking(&d.Booking, status, slot, notes)
	if email.Valid {
		d.ClientEmail = &email.String
	}
	return &d, nil
}

func finishBooking(b *domain.Booking, status, slot string, notes sql.NullString) {
	b.Status = domain.BookingStatus(status)
	b.Slot = domain.Slot(slot)
	b.BookingDate = domain.DateOnly(b.BookingDate)
	if notes.Valid {
		b.Notes = &notes.String
	}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

// isActiveSlotViolation распознаёт нарушение bookings_active_slot_key
func isActiveSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == ActiveSlotConstraint
}

package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtBookingService/pkg/psqlbuilder"
)

var clientColumns = []string{
	"id",
	"document_number",
	"first_name",
	"last_name",
	"phone",
	"email",
	"registered_at",
}

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOrCreate возвращает клиента с данным номером документа, создавая его при первом обращении.
// Существующая запись не изменяется: ON CONFLICT обновляет ключ сам на себя,
// чтобы RETURNING вернул строку в обоих случаях одним запросом.
func (r *Repository) FindOrCreate(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"document_number",
			"first_name",
			"last_name",
			"phone",
			"email",
		).
		Values(
			client.DocumentNumber,
			client.FirstName,
			client.LastName,
			client.Phone,
			client.Email,
		).
		Suffix("ON CONFLICT (document_number) DO UPDATE SET document_number = EXCLUDED.document_number").
		Suffix("RETURNING id, document_number, first_name, last_name, phone, email, registered_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build upsert query: %v", ErrBuildQuery, err)
	}

	found, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - execute upsert: %v", ErrExecQuery, err)
	}

	return found, nil
}

// List возвращает всех клиентов в порядке регистрации
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var (
		c     domain.Client
		email sql.NullString
	)

	if err := row.Scan(
		&c.ID,
		&c.DocumentNumber,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&email,
		&c.RegisteredAt,
	); err != nil {
		return nil, err
	}

	if email.Valid {
		c.Email = &email.String
	}

	return &c, nil
}

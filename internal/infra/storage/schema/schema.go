package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/m04kA/CourtBookingService/pkg/dbmetrics"
)

//go:embed schema.sql
var ddl string

// Apply создает таблицы, индексы и справочник кортов, если их ещё нет.
// Скрипт идемпотентен.
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("schema: apply: %w", err)
	}
	return nil
}

// DDL возвращает текст схемы
func DDL() string {
	return ddl
}

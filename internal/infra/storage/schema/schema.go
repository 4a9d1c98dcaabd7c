// Package schema содержит DDL таблиц сервиса
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/m04kA/SMC-SlotBookingService/pkg/dbmetrics"
)

//go:embed schema.sql
var ddl string

// DDL возвращает SQL создания таблиц
func DDL() string {
	return ddl
}

// Apply создает таблицы и ограничения, если их нет (идемпотентно)
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("schema: apply: %w", err)
	}
	return nil
}

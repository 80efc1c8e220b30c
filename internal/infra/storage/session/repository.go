package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MarketplaceBFF/pkg/psqlbuilder"
)

const table = "sessions"

// Repository репозиторий для хранения токенов сессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет сессию. Существующая сессия с тем же ID перезаписывается
func (r *Repository) Save(ctx context.Context, record *Record) error {
	query, args, err := saveQuery(record)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает сессию по ID
// Истекшие сессии не возвращаются
func (r *Repository) GetByID(ctx context.Context, id string, now time.Time) (*Record, error) {
	query, args, err := getQuery(id, now)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var record Record
	var userID sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.Token,
		&userID,
		&record.CreatedAt,
		&record.ExpiresAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	record.UserID = userID.String
	return &record, nil
}

// Delete удаляет сессию
// Удаление несуществующей сессии не является ошибкой
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет сессии, истекшие к моменту now, и возвращает их количество
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func saveQuery(record *Record) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("id", "token", "user_id", "created_at", "expires_at").
		Values(record.ID, record.Token, nullString(record.UserID), record.CreatedAt, record.ExpiresAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at").
		ToSql()
}

func getQuery(id string, now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "token", "user_id", "created_at", "expires_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

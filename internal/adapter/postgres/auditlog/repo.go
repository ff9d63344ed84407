// Package auditlog implements the audit trail repository using PostgreSQL.
// The audit_log table is append-only; records are never updated or deleted.
package auditlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/glibera/readlogger/internal/adapter/postgres"
	"github.com/glibera/readlogger/internal/domain"
)

// Repo provides audit record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an audit record. The database assigns the record ID and
// happened_at timestamp; the returned record carries them.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	valueJSON, err := json.Marshal(record.Value)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal value: %w", err)
	}

	sql, args, err := postgres.Builder.
		Insert("audit_log").
		Columns("user_id", "action", "table_name", "record_id", "value").
		Values(record.ActorID, string(record.Action), string(record.Table), record.RecordID, valueJSON).
		Suffix("RETURNING id, happened_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.RecordID)
	}

	created := record
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.HappenedAt); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.RecordID)
	}

	return created, nil
}

// ListByRecord returns the audit history of one record in one table,
// newest first.
func (r *Repo) ListByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "user_id", "action", "table_name", "record_id", "value", "happened_at").
		From("audit_log").
		Where(squirrel.Eq{"table_name": string(table), "record_id": recordID}).
		OrderBy("happened_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "audit_record", recordID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit_record", recordID)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var valueJSON []byte
		if err := rows.Scan(&rec.ID, &rec.ActorID, &rec.Action, &rec.Table, &rec.RecordID, &valueJSON, &rec.HappenedAt); err != nil {
			return nil, postgres.MapError(err, "audit_record", recordID)
		}
		if err := json.Unmarshal(valueJSON, &rec.Value); err != nil {
			return nil, fmt.Errorf("audit_record unmarshal value: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "audit_record", recordID)
	}

	return records, nil
}

// CountByRecord returns the total number of audit records for one record
// in one table.
func (r *Repo) CountByRecord(ctx context.Context, table domain.AuditTable, recordID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("count(*)").
		From("audit_log").
		Where(squirrel.Eq{"table_name": string(table), "record_id": recordID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "audit_record", recordID)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "audit_record", recordID)
	}

	return count, nil
}

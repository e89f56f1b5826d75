package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

func (r *auditRepositoryImpl) Create(ctx context.Context, entry audit.Entry) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO audit_logs (id, actor_email, action, resource, record_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := q.Exec(ctx, query, entry.ID, entry.ActorEmail, entry.Action, entry.Resource, entry.RecordID, entry.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.AuditFilter) ([]audit.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.Resource != nil {
		conditions = append(conditions, fmt.Sprintf("resource = $%d", argPos))
		args = append(args, *filter.Resource)
		argPos++
	}
	if filter.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argPos))
		args = append(args, *filter.Action)
		argPos++
	}
	if filter.Actor != nil {
		conditions = append(conditions, fmt.Sprintf("actor_email ILIKE $%d", argPos))
		args = append(args, "%"+*filter.Actor+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM audit_logs " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, actor_email, action, resource, record_id, created_at
		FROM audit_logs
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.ActorEmail, &e.Action, &e.Resource, &e.RecordID, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"controlling_lights/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// Ensure implementation of EventRepo interface at compile time.
var _ EventRepo = (*EventSQLite)(nil)

// sqliteTimeLayout is the TIMESTAMP format SQLite compares lexicographically.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Append inserts a new audit event. If EventID or OccurredAt are empty,
// they're set.
func (r *EventSQLite) Append(ctx context.Context, e models.LightEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	// marshal metadata if present
	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO light_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(sqliteTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		metaPtr,
	)

	return err
}

// List returns events filtered by [from, to] (inclusive) and/or type,
// ordered by occurrence time ascending.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.LightEvent, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimeLayout))
	}
	if typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, strings.ToUpper(strings.TrimSpace(typ)))
	}

	query := "SELECT id, occurred_at, type, message, meta FROM light_events"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []models.LightEvent
	for rows.Next() {
		var (
			e        models.LightEvent
			occurred string
			meta     sql.NullString
		)
		if err := rows.Scan(&e.EventID, &occurred, &e.Type, &e.Description, &meta); err != nil {
			return nil, err
		}
		if ts, perr := time.ParseInLocation(sqliteTimeLayout, occurred, time.UTC); perr == nil {
			e.OccurredAt = ts
		}
		if meta.Valid && meta.String != "" {
			var m any
			if uerr := json.Unmarshal([]byte(meta.String), &m); uerr == nil {
				e.Metadata = m
			}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

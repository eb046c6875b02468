package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/rem/internal/model"
)

// DriverName is the database/sql driver rem opens SQLite with. It is
// mattn/go-sqlite3 with a go_lower(text) function that folds case the way
// strings.ToLower does, since SQLite's lower() only folds ASCII.
const DriverName = "sqlite3_rem"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("go_lower", strings.ToLower, true)
		},
	})
}

// sqliteTimeLayout is fixed width so stored timestamps order as text.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	// foreign_keys is per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", mapAccessError(err))
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// DB exposes the handle for migrations.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateList(ctx context.Context, in List) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lists (id, name, color, created_at)
		VALUES (?, ?, ?, ?)`,
		in.ID, in.Name, in.Color, mustTime(in.CreatedAt),
	)
	return mapAccessError(err)
}

func (r *SQLiteRepository) GetList(ctx context.Context, id string) (List, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT l.id, l.name, l.color, l.created_at,
			(SELECT COUNT(*) FROM reminders WHERE list_id = l.id AND completed = 0)
		FROM lists l WHERE l.id = ?`, id)
	item, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return List{}, ErrNotFound
		}
		return List{}, mapAccessError(err)
	}
	return item, nil
}

func (r *SQLiteRepository) ListLists(ctx context.Context) ([]List, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.id, l.name, l.color, l.created_at, COUNT(r.id)
		FROM lists l
		LEFT JOIN reminders r ON r.list_id = l.id AND r.completed = 0
		GROUP BY l.id
		ORDER BY l.created_at ASC, l.name ASC`)
	if err != nil {
		return nil, mapAccessError(err)
	}
	defer rows.Close()

	out := make([]List, 0)
	for rows.Next() {
		item, scanErr := scanList(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) DeleteList(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return mapAccessError(err)
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) CreateReminder(ctx context.Context, in Reminder) error {
	if in.Priority > model.MaxPriority {
		return fmt.Errorf("%w: %d", model.ErrInvalidPriority, in.Priority)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, list_id, title, notes, due_date, priority, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.ListID, in.Title, nullString(in.Notes), nullString(in.DueDate), int(in.Priority),
		boolInt(in.Completed), mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	return mapAccessError(err)
}

func (r *SQLiteRepository) GetReminder(ctx context.Context, id string) (Reminder, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, list_id, title, notes, due_date, priority, completed, created_at, completed_at
		FROM reminders WHERE id = ?`, id)
	item, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reminder{}, ErrNotFound
		}
		return Reminder{}, mapAccessError(err)
	}
	return item, nil
}

// ToggleReminder flips the completion flag and stamps completed_at with at
// when the reminder becomes completed.
func (r *SQLiteRepository) ToggleReminder(ctx context.Context, id string, at time.Time) (Reminder, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reminders
		SET completed = 1 - completed,
			completed_at = CASE WHEN completed = 0 THEN ? ELSE NULL END
		WHERE id = ?`,
		mustTime(at), id,
	)
	if err != nil {
		return Reminder{}, mapAccessError(err)
	}
	if err := checkRowsAffected(res); err != nil {
		return Reminder{}, err
	}
	return r.GetReminder(ctx, id)
}

func (r *SQLiteRepository) DeleteReminder(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return mapAccessError(err)
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListReminders(ctx context.Context, filter ReminderListFilter) ([]Reminder, error) {
	query := `SELECT id, list_id, title, notes, due_date, priority, completed, created_at, completed_at FROM reminders`
	args := make([]any, 0, 3)
	if filter.ListID != "" {
		query += ` WHERE list_id = ?`
		args = append(args, filter.ListID)
	}
	query += ` ORDER BY created_at ASC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapAccessError(err)
	}
	defer rows.Close()

	out := make([]Reminder, 0)
	for rows.Next() {
		item, scanErr := scanReminder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// SearchReminders matches query against titles and notes of every list,
// ignoring case, including non-ASCII letters. A blank query matches
// everything.
func (r *SQLiteRepository) SearchReminders(ctx context.Context, query string) ([]SearchHit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.list_id, r.title, r.notes, r.due_date, r.priority, r.completed, r.created_at, r.completed_at, l.name
		FROM reminders r
		JOIN lists l ON l.id = r.list_id
		WHERE go_lower(r.title) LIKE ? ESCAPE '\' OR go_lower(coalesce(r.notes, '')) LIKE ? ESCAPE '\'
		ORDER BY l.created_at ASC, r.created_at ASC, r.id ASC`,
		likePattern(query), likePattern(query),
	)
	if err != nil {
		return nil, mapAccessError(err)
	}
	defer rows.Close()

	out := make([]SearchHit, 0)
	for rows.Next() {
		var hit SearchHit
		item, scanErr := scanReminder(rows, &hit.ListName)
		if scanErr != nil {
			return nil, scanErr
		}
		hit.Reminder = item
		out = append(out, hit)
	}
	return out, rows.Err()
}

func likePattern(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}

// mapAccessError reports refused file access as model.ErrPermissionDenied.
func mapAccessError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", model.ErrPermissionDenied, err)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrPerm, sqlite3.ErrReadonly, sqlite3.ErrAuth, sqlite3.ErrCantOpen:
			return fmt.Errorf("%w: %w", model.ErrPermissionDenied, err)
		}
	}
	return err
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			sql += " LIMIT -1"
		}
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanList(s scanner) (List, error) {
	var out List
	var created string
	var open int64
	if err := s.Scan(&out.ID, &out.Name, &out.Color, &created, &open); err != nil {
		return List{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return List{}, err
	}
	out.CreatedAt = createdAt
	out.Open = uint32(open)
	return out, nil
}

// scanReminder reads the reminder columns followed by any extra columns.
func scanReminder(s scanner, extra ...any) (Reminder, error) {
	var out Reminder
	var notes, due, completed sql.NullString
	var priority int64
	var done int
	var created string
	dest := append([]any{&out.ID, &out.ListID, &out.Title, &notes, &due, &priority, &done, &created, &completed}, extra...)
	if err := s.Scan(dest...); err != nil {
		return Reminder{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Reminder{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return Reminder{}, err
	}
	if notes.Valid {
		out.Notes = &notes.String
	}
	if due.Valid {
		out.DueDate = &due.String
	}
	out.Priority = uint8(priority)
	out.Completed = done == 1
	out.CreatedAt = createdAt
	out.CompletedAt = completedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the durable home of all ledger state: the trades table and the
// meta key-value table. It assumes a single logical writer; concurrent
// calls from the same process are serialized by SQLite's transaction
// mechanism. Everything it returns is an independent copy, so callers may
// mutate results freely.
type Store struct {
	db *sql.DB
}

// Open opens the ledger database at path, creating the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open ledger", Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "create schema", Err: err}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// tradeColumns avoids SELECT *; order must match scanTrade.
const tradeColumns = `id, date, pair, side, entry, exit, size, leverage, take_profit, stop_loss, notes, screenshot, profit, roi, created_at, updated_at`

// Create assigns a fresh id, stamps CreatedAt and UpdatedAt with the same
// instant and persists the record. Validation happens before any
// persistence attempt.
func (s *Store) Create(ctx context.Context, in TradeInput) (Trade, error) {
	if err := in.validate(); err != nil {
		return Trade{}, err
	}

	now := time.Now().UTC()
	t := Trade{
		Date:       in.Date,
		Pair:       in.Pair,
		Side:       in.Side,
		Entry:      in.Entry,
		Exit:       in.Exit,
		Size:       in.Size,
		Leverage:   in.Leverage,
		TakeProfit: in.TakeProfit,
		StopLoss:   in.StopLoss,
		Notes:      in.Notes,
		Screenshot: in.Screenshot,
		Profit:     in.Profit,
		ROI:        in.ROI,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if t.Leverage <= 0 {
		t.Leverage = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Trade{}, &StorageError{Op: "create trade", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO trades
		(date, pair, side, entry, exit, size, leverage, take_profit, stop_loss, notes, screenshot, profit, roi, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Date, t.Pair, string(t.Side), t.Entry, t.Exit, t.Size, t.Leverage,
		t.TakeProfit, t.StopLoss, t.Notes, t.Screenshot, t.Profit, t.ROI,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return Trade{}, &StorageError{Op: "create trade", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Trade{}, &StorageError{Op: "create trade", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return Trade{}, &StorageError{Op: "create trade", Err: err}
	}

	t.ID = id
	return t, nil
}

// Update merges patch over the stored record and stamps UpdatedAt. The
// read and the write share one transaction, so no other writer can
// interleave between them. ID and CreatedAt are immutable.
func (s *Store) Update(ctx context.Context, id int64, patch TradePatch) (Trade, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Trade{}, &StorageError{Op: "update trade", Err: err}
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return Trade{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return Trade{}, &StorageError{Op: "update trade", Err: err}
	}

	patch.apply(&t)
	t.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE trades
		SET date = ?, pair = ?, side = ?, entry = ?, exit = ?, size = ?, leverage = ?,
			take_profit = ?, stop_loss = ?, notes = ?, screenshot = ?, profit = ?, roi = ?,
			updated_at = ?
		WHERE id = ?`,
		t.Date, t.Pair, string(t.Side), t.Entry, t.Exit, t.Size, t.Leverage,
		t.TakeProfit, t.StopLoss, t.Notes, t.Screenshot, t.Profit, t.ROI,
		t.UpdatedAt, t.ID,
	)
	if err != nil {
		return Trade{}, &StorageError{Op: "update trade", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return Trade{}, &StorageError{Op: "update trade", Err: err}
	}
	return t, nil
}

// Delete removes a trade. Deleting an id that does not exist is not an
// error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id); err != nil {
		return &StorageError{Op: "delete trade", Err: err}
	}
	return nil
}

// Get returns the trade with the given id, or ok=false when absent.
func (s *Store) Get(ctx context.Context, id int64) (Trade, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return Trade{}, false, nil
	}
	if err != nil {
		return Trade{}, false, &StorageError{Op: "get trade", Err: err}
	}
	return t, true, nil
}

// ListAll returns a snapshot of every trade, ordered by id. The slice and
// its records are copies; mutating them never reaches the store.
func (s *Store) ListAll(ctx context.Context) ([]Trade, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tradeColumns+` FROM trades ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "list trades", Err: err}
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, &StorageError{Op: "list trades", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list trades", Err: err}
	}
	return out, nil
}

// Pairs returns the distinct non-empty pair names in first-insertion
// order. The instrument set is derived from the records; there is no
// separate registry.
func (s *Store) Pairs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pair FROM trades WHERE pair <> '' GROUP BY pair ORDER BY MIN(id)`)
	if err != nil {
		return nil, &StorageError{Op: "list pairs", Err: err}
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, &StorageError{Op: "list pairs", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list pairs", Err: err}
	}
	return out, nil
}

// MetaSet stores value (JSON-encoded) under key, replacing any previous
// value. A nil value deletes the key; deleting an absent key is a no-op.
// The engine imposes no semantics on meta entries.
func (s *Store) MetaSet(ctx context.Context, key string, value any) error {
	if value == nil {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM meta WHERE key = ?`, key); err != nil {
			return &StorageError{Op: "meta delete", Err: err}
		}
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return &ValidationError{Field: "value", Reason: err.Error()}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return &StorageError{Op: "meta set", Err: err}
	}
	return nil
}

// MetaGet returns the value stored under key, or ok=false when absent.
// JSON decoding means numbers come back as float64.
func (s *Store) MetaGet(ctx context.Context, key string) (any, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StorageError{Op: "meta get", Err: err}
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false, &StorageError{Op: "meta get", Err: err}
	}
	return v, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(sc scanner) (Trade, error) {
	var t Trade
	var side string
	err := sc.Scan(
		&t.ID, &t.Date, &t.Pair, &side, &t.Entry, &t.Exit, &t.Size, &t.Leverage,
		&t.TakeProfit, &t.StopLoss, &t.Notes, &t.Screenshot, &t.Profit, &t.ROI,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return Trade{}, err
	}
	t.Side = Side(side)
	return t, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SelectionRepo handles tab_selections.
type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db}
}

func (r *SelectionRepo) Upsert(ctx context.Context, s Selection) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO tab_selections(set_id, set_name, tab_key, tab_index, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(set_id) DO UPDATE SET
	 set_name=excluded.set_name,
	 tab_key=excluded.tab_key,
	 tab_index=excluded.tab_index,
	 updated_at=excluded.updated_at;
	`, s.SetID, s.SetName, s.TabKey, s.TabIndex, s.UpdatedAt)
	return err
}

// Get returns nil, nil when the set has no stored selection.
func (r *SelectionRepo) Get(ctx context.Context, setID string) (*Selection, error) {
	row := r.db.QueryRowContext(ctx, `SELECT set_id, set_name, tab_key, tab_index, updated_at FROM tab_selections WHERE set_id = ?`, setID)
	var s Selection
	if err := row.Scan(&s.SetID, &s.SetName, &s.TabKey, &s.TabIndex, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SelectionRepo) List(ctx context.Context) ([]Selection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT set_id, set_name, tab_key, tab_index, updated_at FROM tab_selections ORDER BY set_name, set_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.SetID, &s.SetName, &s.TabKey, &s.TabIndex, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SelectionRepo) Delete(ctx context.Context, setID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tab_selections WHERE set_id = ?`, setID)
	return err
}

// DeleteAll removes every stored selection and reports how many went.
func (r *SelectionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tab_selections`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

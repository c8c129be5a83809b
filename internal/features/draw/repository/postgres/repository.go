package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/your-org/prizedraw-backend/internal/features/draw/models"
)

// DrawRepository persists draws, entries and winners in PostgreSQL.
type DrawRepository struct {
	db *sql.DB
}

func NewDrawRepository(db *sql.DB) *DrawRepository { return &DrawRepository{db: db} }

func (r *DrawRepository) CreateDraw(ctx context.Context, d *models.Draw) error {
	const q = `
	INSERT INTO draws (id, title, description, prize_description, value, type, status, eligibility_criteria, start_date, end_date, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.ExecContext(ctx, q,
		d.ID, d.Title, d.Description, d.PrizeDescription, d.Value, string(d.Type), string(d.Status), d.EligibilityCriteria, d.StartDate, d.EndDate, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}
	return nil
}

func (r *DrawRepository) GetDraw(ctx context.Context, id string) (*models.Draw, error) {
	const q = `
        SELECT id, title, description, prize_description, value, type, status, eligibility_criteria, start_date, end_date, created_at
        FROM draws WHERE id=$1`
	var d models.Draw
	row := r.db.QueryRowContext(ctx, q, id)
	if err := row.Scan(&d.ID, &d.Title, &d.Description, &d.PrizeDescription, &d.Value, &d.Type, &d.Status, &d.EligibilityCriteria, &d.StartDate, &d.EndDate, &d.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrDrawNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DrawRepository) ListDraws(ctx context.Context, status models.DrawStatus) ([]models.DrawWithEntryCount, error) {
	q := `
        SELECT d.id, d.title, d.description, d.prize_description, d.value, d.type, d.status, d.eligibility_criteria, d.start_date, d.end_date, d.created_at,
               COUNT(e.id) AS entries_count
        FROM draws d
        LEFT JOIN entries e ON e.draw_id = d.id`
	var args []interface{}
	if status != "" {
		q += ` WHERE d.status = $1`
		args = append(args, string(status))
	}
	q += ` GROUP BY d.id ORDER BY d.created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DrawWithEntryCount, 0)
	for rows.Next() {
		var d models.DrawWithEntryCount
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.PrizeDescription, &d.Value, &d.Type, &d.Status, &d.EligibilityCriteria, &d.StartDate, &d.EndDate, &d.CreatedAt, &d.EntriesCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDrawStatus writes the new status only while the draw still carries
// the expected one, so a stale administrative update can never overwrite a
// concurrent transition (a completed draw stays completed).
func (r *DrawRepository) UpdateDrawStatus(ctx context.Context, id string, from, to models.DrawStatus) error {
	const q = `UPDATE draws SET status=$3 WHERE id=$1 AND status=$2`
	res, err := r.db.ExecContext(ctx, q, id, string(from), string(to))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		var current string
		err := r.db.QueryRowContext(ctx, `SELECT status FROM draws WHERE id=$1`, id).Scan(&current)
		if err == sql.ErrNoRows {
			return models.ErrDrawNotFound
		}
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: draw status is %s, not %s", models.ErrInvalidTransition, current, from)
	}
	return nil
}

// CreateEntry inserts an entry; the unique constraint on (draw_id,
// customer_id) makes the duplicate check and the insert one unit.
func (r *DrawRepository) CreateEntry(ctx context.Context, e *models.Entry) error {
	const q = `
        INSERT INTO entries (id, draw_id, customer_id, customer_email, customer_name, entered_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (draw_id, customer_id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, q, e.ID, e.DrawID, e.CustomerID, e.CustomerEmail, e.CustomerName, e.EnteredAt)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return models.ErrDuplicateEntry
	}
	return nil
}

func (r *DrawRepository) ListEntries(ctx context.Context, drawID string) ([]models.Entry, error) {
	const q = `
        SELECT id, draw_id, customer_id, customer_email, customer_name, entered_at
        FROM entries WHERE draw_id=$1 ORDER BY entered_at DESC`
	rows, err := r.db.QueryContext(ctx, q, drawID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Entry, 0)
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.DrawID, &e.CustomerID, &e.CustomerEmail, &e.CustomerName, &e.EnteredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *DrawRepository) ListEntryIDs(ctx context.Context, drawID string) ([]string, error) {
	const q = `SELECT id FROM entries WHERE draw_id=$1 ORDER BY entered_at ASC`
	rows, err := r.db.QueryContext(ctx, q, drawID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CompleteDrawWithWinners finalizes a selection in a single transaction. The
// status update is a compare-and-set: it only matches while the draw is not
// completed, so of two racing selections exactly one inserts winners and the
// other observes models.ErrAlreadyCompleted with nothing written.
func (r *DrawRepository) CompleteDrawWithWinners(ctx context.Context, drawID string, winners []models.Winner) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE draws SET status=$2 WHERE id=$1 AND status <> $2`,
		drawID, string(models.DrawStatusCompleted),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		var current string
		if scanErr := tx.QueryRowContext(ctx, `SELECT status FROM draws WHERE id=$1`, drawID).Scan(&current); scanErr == sql.ErrNoRows {
			err = models.ErrDrawNotFound
		} else {
			err = models.ErrAlreadyCompleted
		}
		return err
	}

	const q = `INSERT INTO winners (id, draw_id, entry_id, kind, rank, created_at) VALUES ($1,$2,$3,$4,$5,$6)`
	for _, w := range winners {
		if _, err = tx.ExecContext(ctx, q, w.ID, w.DrawID, w.EntryID, string(w.Kind), w.Rank, w.CreatedAt); err != nil {
			return fmt.Errorf("insert winner: %w", err)
		}
	}

	return tx.Commit()
}

func (r *DrawRepository) ListWinners(ctx context.Context, drawID string) ([]models.WinnerDetail, error) {
	const q = `
        SELECT w.id, w.draw_id, w.entry_id, w.kind, w.rank, w.created_at, e.customer_name, e.customer_email
        FROM winners w
        JOIN entries e ON e.id = w.entry_id
        WHERE w.draw_id=$1
        ORDER BY w.rank ASC`
	rows, err := r.db.QueryContext(ctx, q, drawID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.WinnerDetail, 0)
	for rows.Next() {
		var w models.WinnerDetail
		if err := rows.Scan(&w.ID, &w.DrawID, &w.EntryID, &w.Kind, &w.Rank, &w.CreatedAt, &w.CustomerName, &w.CustomerEmail); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

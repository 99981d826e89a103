package directory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT region, name, chat_id, email
		FROM managers
		ORDER BY position, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := &Snapshot{}
	for rows.Next() {
		var region string
		var c Contact
		if err := rows.Scan(&region, &c.Name, &c.ChatID, &c.Email); err != nil {
			return nil, err
		}
		if n := len(snap.Regions); n > 0 && snap.Regions[n-1].Name == region {
			snap.Regions[n-1].Managers = append(snap.Regions[n-1].Managers, c)
			continue
		}
		snap.Regions = append(snap.Regions, Region{Name: region, Managers: []Contact{c}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return snap.Normalize(), nil
}

// Save перезаписывает справочник целиком: позиция строки задаёт
// порядок регионов и менеджеров при следующей загрузке.
func (r *Repo) Save(ctx context.Context, s *Snapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `DELETE FROM managers`); err != nil {
		return err
	}

	pos := 0
	for _, region := range s.Regions {
		for _, m := range region.Managers {
			pos++
			if _, err = tx.Exec(ctx, `
				INSERT INTO managers (position, region, name, chat_id, email)
				VALUES ($1,$2,$3,$4,$5)
			`, pos, region.Name, m.Name, m.ChatID, m.Email); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

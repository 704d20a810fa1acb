package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"puppy-service/internal/domain/puppies"

	"github.com/shopspring/decimal"
)

const puppyColumns = `id, name, breed, weight_lbs, arrival_date, vaccinated`

type PuppiesRepo struct {
	db *sql.DB
}

func NewPuppiesRepo(db *sql.DB) *PuppiesRepo {
	return &PuppiesRepo{db: db}
}

func (r *PuppiesRepo) Create(ctx context.Context, p puppies.Puppy) (puppies.Puppy, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO puppies (
			name, breed, weight_lbs, arrival_date, vaccinated
		) VALUES ($1, $2, $3, COALESCE($4::timestamptz, now()), $5)
		RETURNING `+puppyColumns,
		p.Name,
		toNullString(p.Breed),
		p.WeightLbs,
		toNullTime(p.ArrivalDate),
		p.Vaccinated,
	)

	created, err := scanPuppy(row)
	if err != nil {
		return puppies.Puppy{}, fmt.Errorf("postgres: insert puppy: %w", err)
	}
	return created, nil
}

func (r *PuppiesRepo) GetByID(ctx context.Context, id int64) (puppies.Puppy, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+puppyColumns+`
		FROM puppies
		WHERE id = $1
	`, id)

	p, err := scanPuppy(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return puppies.Puppy{}, ErrNotFound
		}
		return puppies.Puppy{}, fmt.Errorf("postgres: get puppy: %w", err)
	}
	return p, nil
}

func (r *PuppiesRepo) List(ctx context.Context) ([]puppies.Puppy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+puppyColumns+`
		FROM puppies
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list puppies: %w", err)
	}
	defer rows.Close()

	out := make([]puppies.Puppy, 0)
	for rows.Next() {
		p, err := scanPuppy(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan puppy: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Update arma el SET solo con los campos presentes en el patch y lo aplica
// en un único UPDATE ... RETURNING, sin read-modify-write.
func (r *PuppiesRepo) Update(ctx context.Context, id int64, patch puppies.Patch) (puppies.Puppy, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query, args := buildUpdate(id, patch)

	p, err := scanPuppy(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return puppies.Puppy{}, ErrNotFound
		}
		return puppies.Puppy{}, fmt.Errorf("postgres: update puppy: %w", err)
	}
	return p, nil
}

func (r *PuppiesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM puppies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete puppy: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func buildUpdate(id int64, patch puppies.Patch) (string, []any) {
	sets := make([]string, 0, 5)
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Breed.Present {
		add("breed", toNullString(patch.Breed.Value))
	}
	if patch.WeightLbs.Present {
		w := decimal.NullDecimal{}
		if patch.WeightLbs.Value != nil {
			w = decimal.NewNullDecimal(*patch.WeightLbs.Value)
		}
		add("weight_lbs", w)
	}
	if patch.ArrivalDate.Present {
		add("arrival_date", toNullTime(patch.ArrivalDate.Value))
	}
	if patch.Vaccinated != nil {
		add("vaccinated", *patch.Vaccinated)
	}

	query := `UPDATE puppies SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + puppyColumns
	return query, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPuppy(s rowScanner) (puppies.Puppy, error) {
	var (
		p       puppies.Puppy
		breed   sql.NullString
		arrival sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&breed,
		&p.WeightLbs,
		&arrival,
		&p.Vaccinated,
	); err != nil {
		return puppies.Puppy{}, err
	}

	if breed.Valid {
		b := breed.String
		p.Breed = &b
	}
	if arrival.Valid {
		t := arrival.Time
		p.ArrivalDate = &t
	}
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

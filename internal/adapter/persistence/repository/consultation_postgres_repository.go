package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"
)

const consultationColumns = `id, name, contact, education, reason, click_source, is_manual_entry,
	status, is_completed, notes, created_at, updated_at`

type ConsultationPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IConsultationRepository = (*ConsultationPostgresRepository)(nil)

func NewConsultationPostgresRepository(db *sql.DB) *ConsultationPostgresRepository {
	return &ConsultationPostgresRepository{db: db}
}

func scanConsultation(row rowScanner, extra ...any) (entities.Consultation, error) {
	var (
		c                               entities.Consultation
		education, reason, click, notes sql.NullString
	)
	dest := []any{
		&c.ID, &c.Name, &c.Contact, &education, &reason, &click, &c.IsManualEntry,
		&c.Status, &c.IsCompleted, &notes, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return entities.Consultation{}, err
	}
	c.Education = education.String
	c.Reason = reason.String
	c.ClickSource = click.String
	c.Notes = notes.String
	return c, nil
}

func (r *ConsultationPostgresRepository) Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO consultations (`+consultationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Name, c.Contact, nullString(c.Education), nullString(c.Reason), nullString(c.ClickSource), c.IsManualEntry,
		string(c.Status), c.IsCompleted, nullString(c.Notes), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return entities.Consultation{}, err
	}
	return c, nil
}

func (r *ConsultationPostgresRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.Consultation, int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+consultationColumns+`, COUNT(*) OVER()
		FROM consultations
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' ESCAPE '\' OR contact LIKE '%' || $2 || '%' ESCAPE '\')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		filter.Status, escapeLike(filter.Query), limitArg(filter), filter.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []entities.Consultation{}
	total := 0
	for rows.Next() {
		c, err := scanConsultation(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

func (r *ConsultationPostgresRepository) Update(ctx context.Context, id string, patch entities.ConsultationPatch) (entities.Consultation, error) {
	sets := []string{"updated_at = $2"}
	args := []any{id, time.Now().UTC()}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.IsCompleted != nil {
		add("is_completed", *patch.IsCompleted)
	}
	if patch.Notes != nil {
		add("notes", nullString(*patch.Notes))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}

	c, err := scanConsultation(r.db.QueryRowContext(ctx, `UPDATE consultations SET `+strings.Join(sets, ", ")+`
		WHERE id = $1
		RETURNING `+consultationColumns, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Consultation{}, nil
	}
	return c, err
}

func (r *ConsultationPostgresRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	return deleteByIDs(ctx, r.db, "consultations", ids)
}

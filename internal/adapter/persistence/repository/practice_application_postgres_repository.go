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

	"github.com/lib/pq"
)

const practiceApplicationColumns = `id, name, gender, contact, birth_date, address, address_detail, zonecode,
	practice_type, desired_job_field, employment_types, has_resume, certifications, payment_amount,
	privacy_agreed, terms_agreed, click_source, status, payment_status, payment_id, created_at, updated_at`

// PracticeApplicationPostgresRepository persists PracticeApplication rows in Postgres.
// Payment transitions are single UPDATE statements guarded in the WHERE clause.
type PracticeApplicationPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IPracticeApplicationRepository = (*PracticeApplicationPostgresRepository)(nil)

func NewPracticeApplicationPostgresRepository(db *sql.DB) *PracticeApplicationPostgresRepository {
	return &PracticeApplicationPostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPracticeApplication(row rowScanner, extra ...any) (entities.PracticeApplication, error) {
	var (
		a                                            entities.PracticeApplication
		addressDetail, zonecode, certs, click, payID sql.NullString
		employment                                   []string
	)
	dest := []any{
		&a.ID, &a.Name, &a.Gender, &a.Contact, &a.BirthDate, &a.Address, &addressDetail, &zonecode,
		&a.PracticeType, &a.DesiredJobField, pq.Array(&employment), &a.HasResume, &certs, &a.PaymentAmount,
		&a.PrivacyAgreed, &a.TermsAgreed, &click, &a.Status, &a.PaymentStatus, &payID, &a.CreatedAt, &a.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return entities.PracticeApplication{}, err
	}
	a.AddressDetail = addressDetail.String
	a.Zonecode = zonecode.String
	a.Certifications = certs.String
	a.ClickSource = click.String
	a.PaymentID = payID.String
	a.EmploymentTypes = employment
	return a, nil
}

// queryOne runs a RETURNING/SELECT statement; no rows yields an empty entity.
func (r *PracticeApplicationPostgresRepository) queryOne(ctx context.Context, query string, args ...any) (entities.PracticeApplication, error) {
	a, err := scanPracticeApplication(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PracticeApplication{}, nil
	}
	return a, err
}

func (r *PracticeApplicationPostgresRepository) Create(ctx context.Context, a entities.PracticeApplication) (entities.PracticeApplication, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO practice_applications (`+practiceApplicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		a.ID, a.Name, a.Gender, a.Contact, a.BirthDate, a.Address, nullString(a.AddressDetail), nullString(a.Zonecode),
		a.PracticeType, a.DesiredJobField, pq.Array(a.EmploymentTypes), a.HasResume, nullString(a.Certifications), a.PaymentAmount,
		a.PrivacyAgreed, a.TermsAgreed, nullString(a.ClickSource), string(a.Status), string(a.PaymentStatus), nullString(a.PaymentID),
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return entities.PracticeApplication{}, err
	}
	return a, nil
}

func (r *PracticeApplicationPostgresRepository) GetByID(ctx context.Context, id string) (entities.PracticeApplication, error) {
	return r.queryOne(ctx, `SELECT `+practiceApplicationColumns+` FROM practice_applications WHERE id = $1`, id)
}

func (r *PracticeApplicationPostgresRepository) List(ctx context.Context, filter entities.ListFilter) ([]entities.PracticeApplication, int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+practiceApplicationColumns+`, COUNT(*) OVER()
		FROM practice_applications
		WHERE ($1 = '' OR status = $1 OR payment_status = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' ESCAPE '\' OR contact LIKE '%' || $2 || '%' ESCAPE '\')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		filter.Status, escapeLike(filter.Query), limitArg(filter), filter.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []entities.PracticeApplication{}
	total := 0
	for rows.Next() {
		a, err := scanPracticeApplication(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *PracticeApplicationPostgresRepository) MarkRequested(ctx context.Context, id string) (entities.PracticeApplication, error) {
	return r.guardedTransition(ctx, id, entities.PaymentStatusRequested)
}

func (r *PracticeApplicationPostgresRepository) MarkPaid(ctx context.Context, id, paymentID string) (entities.PracticeApplication, error) {
	return r.queryOne(ctx, `UPDATE practice_applications
		SET payment_status = $2,
		    status = $3,
		    payment_id = COALESCE(NULLIF(payment_id, ''), $4),
		    updated_at = $5
		WHERE id = $1
		RETURNING `+practiceApplicationColumns,
		id, string(entities.PaymentStatusPaid), string(entities.ApplicationStatusConfirmed),
		nullString(strings.TrimSpace(paymentID)), time.Now().UTC(),
	)
}

func (r *PracticeApplicationPostgresRepository) MarkFailed(ctx context.Context, id string) (entities.PracticeApplication, error) {
	return r.guardedTransition(ctx, id, entities.PaymentStatusFailed)
}

// guardedTransition changes payment_status unless the row is already paid.
func (r *PracticeApplicationPostgresRepository) guardedTransition(ctx context.Context, id string, to entities.PaymentStatus) (entities.PracticeApplication, error) {
	a, err := r.queryOne(ctx, `UPDATE practice_applications
		SET payment_status = $2, updated_at = $3
		WHERE id = $1 AND payment_status <> $4
		RETURNING `+practiceApplicationColumns,
		id, string(to), time.Now().UTC(), string(entities.PaymentStatusPaid),
	)
	if err != nil || a.ID != "" {
		return a, err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM practice_applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return entities.PracticeApplication{}, err
	}
	if exists {
		return entities.PracticeApplication{}, entities.ErrPaymentAlreadyPaid
	}
	return entities.PracticeApplication{}, nil
}

func (r *PracticeApplicationPostgresRepository) Update(ctx context.Context, id string, patch entities.PracticeApplicationPatch) (entities.PracticeApplication, error) {
	sets := []string{"updated_at = $2"}
	args := []any{id, time.Now().UTC()}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.PaymentStatus != nil {
		add("payment_status", string(*patch.PaymentStatus))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Contact != nil {
		add("contact", *patch.Contact)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.AddressDetail != nil {
		add("address_detail", nullString(*patch.AddressDetail))
	}
	if patch.PracticeType != nil {
		add("practice_type", *patch.PracticeType)
	}
	if patch.DesiredJobField != nil {
		add("desired_job_field", *patch.DesiredJobField)
	}
	if patch.Certifications != nil {
		add("certifications", nullString(*patch.Certifications))
	}

	return r.queryOne(ctx, `UPDATE practice_applications SET `+strings.Join(sets, ", ")+`
		WHERE id = $1
		RETURNING `+practiceApplicationColumns, args...)
}

func (r *PracticeApplicationPostgresRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	return deleteByIDs(ctx, r.db, "practice_applications", ids)
}

func deleteByIDs(ctx context.Context, db *sql.DB, table string, ids []string) (int, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a search term match literally inside a LIKE pattern.
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

// limitArg maps an unbounded listing to LIMIT NULL.
func limitArg(f entities.ListFilter) sql.NullInt64 {
	if f.All || f.PageSize <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(f.PageSize), Valid: true}
}

package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neoward/neoward/internal/storage"
)

const recordCols = `id, name, birth_date, weight_grams, gestational_age, origin,
	admission_date, discharge_date, discharge_status, diagnoses,
	created_by, created_at, updated_by, updated_at`

// constraintColumns whitelists the fields the store can filter on. Each is
// backed by a btree (or GIN, for diagnoses) index created by the
// migrations; a constraint on any other field is a query-shape error.
var constraintColumns = map[string]string{
	FieldName:           "name",
	FieldBirthDate:      "birth_date",
	FieldGestationalAge: "gestational_age",
	FieldDiagnoses:      "diagnoses",
}

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the Postgres-backed patient record repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, rec *Record) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO patients
		   (name, birth_date, weight_grams, gestational_age, origin,
		    admission_date, discharge_date, discharge_status, diagnoses,
		    created_by, updated_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		 RETURNING id`,
		rec.Name, rec.BirthDate, rec.WeightGrams, rec.GestationalAge, rec.Origin,
		rec.AdmissionDate, rec.DischargeDate, rec.DischargeStatus, rec.Diagnoses,
		rec.CreatedBy).
		Scan(&id)
	if err != nil {
		return uuid.Nil, storage.Transient(fmt.Errorf("create patient: %w", err))
	}
	return id, nil
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, rec *Record) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patients SET
		   name = $2, birth_date = $3, weight_grams = $4, gestational_age = $5,
		   origin = $6, admission_date = $7, discharge_date = $8,
		   discharge_status = $9, diagnoses = $10,
		   updated_by = $11, updated_at = NOW()
		 WHERE id = $1`,
		id, rec.Name, rec.BirthDate, rec.WeightGrams, rec.GestationalAge,
		rec.Origin, rec.AdmissionDate, rec.DischargeDate, rec.DischargeStatus,
		rec.Diagnoses, rec.UpdatedBy)
	if err != nil {
		return storage.Transient(fmt.Errorf("update patient: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return storage.Transient(fmt.Errorf("update patient: %s not found", id))
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id); err != nil {
		return storage.Transient(fmt.Errorf("delete patient: %w", err))
	}
	return nil
}

// Search translates the conjunctive constraint set into a single WHERE
// clause. An empty constraint set is refused outright: the store never runs
// an unconstrained full-table query.
func (r *repoPG) Search(ctx context.Context, constraints []storage.Constraint) ([]*Record, error) {
	if len(constraints) == 0 {
		return nil, storage.Transient(fmt.Errorf("refusing unconstrained query"))
	}

	var (
		where strings.Builder
		args  []interface{}
	)
	where.WriteString("WHERE 1=1")
	for _, c := range constraints {
		col, ok := constraintColumns[c.Field]
		if !ok {
			return nil, storage.MissingIndex(fmt.Errorf("no index covers field %q", c.Field))
		}
		args = append(args, c.Value)
		switch c.Op {
		case storage.OpContains:
			fmt.Fprintf(&where, " AND $%d = ANY(%s)", len(args), col)
		case storage.OpGte:
			fmt.Fprintf(&where, " AND %s >= $%d", col, len(args))
		case storage.OpLte:
			fmt.Fprintf(&where, " AND %s <= $%d", col, len(args))
		case storage.OpEq:
			fmt.Fprintf(&where, " AND %s = $%d", col, len(args))
		default:
			return nil, storage.MissingIndex(fmt.Errorf("unsupported operator %q on %q", c.Op, c.Field))
		}
	}

	sql := fmt.Sprintf("SELECT %s FROM patients %s ORDER BY name", recordCols, where.String())
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storage.Transient(fmt.Errorf("search patients: %w", err))
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.BirthDate, &rec.WeightGrams, &rec.GestationalAge,
			&rec.Origin, &rec.AdmissionDate, &rec.DischargeDate, &rec.DischargeStatus,
			&rec.Diagnoses, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedBy, &rec.UpdatedAt,
		); err != nil {
			return nil, storage.Transient(err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *repoPG) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n); err != nil {
		return 0, storage.Transient(fmt.Errorf("count patients: %w", err))
	}
	return n, nil
}

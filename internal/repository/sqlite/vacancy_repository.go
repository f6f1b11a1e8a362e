package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/repository"
)

const createVacanciesTable = `
CREATE TABLE IF NOT EXISTS vacancies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	slug TEXT NOT NULL,
	text TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_vacancies_text ON vacancies(text);
CREATE TABLE IF NOT EXISTS vacancy_skills (
	vacancy_id INTEGER NOT NULL,
	skill_id INTEGER NOT NULL,
	PRIMARY KEY (vacancy_id, skill_id),
	FOREIGN KEY(vacancy_id) REFERENCES vacancies(id) ON DELETE CASCADE,
	FOREIGN KEY(skill_id) REFERENCES skills(id) ON DELETE CASCADE
);
`

var vacancyColumns = []string{"id", "user_id", "slug", "text", "status", "created_at"}

type VacancyRepository struct {
	db *sql.DB
}

func NewVacancyRepository(db *sql.DB) repository.VacancyRepository {
	return &VacancyRepository{db: db}
}

func (r *VacancyRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createVacanciesTable); err != nil {
		return fmt.Errorf("create vacancies table: %w", err)
	}
	return nil
}

func (r *VacancyRepository) Create(ctx context.Context, vacancy *domain.Vacancy) (int64, error) {
	vacancy.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO vacancies (user_id, slug, text, status, created_at)
VALUES (?, ?, ?, ?, ?)`,
		vacancy.UserID,
		vacancy.Slug,
		vacancy.Text,
		string(vacancy.Status),
		vacancy.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert vacancy: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("vacancy last insert id: %w", err)
	}
	vacancy.ID = id
	return id, nil
}

func (r *VacancyRepository) Get(ctx context.Context, id int64) (*domain.Vacancy, error) {
	query, args, err := sq.Select(vacancyColumns...).
		From("vacancies").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vacancy query: %w", err)
	}

	vacancy, err := scanVacancy(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vacancy %d: %w", id, domain.ErrVacancyNotFound)
		}
		return nil, err
	}
	return vacancy, nil
}

func (r *VacancyRepository) List(ctx context.Context, filter repository.VacancyFilter, limit, offset int) ([]domain.Vacancy, error) {
	builder := sq.Select(vacancyColumns...).
		From("vacancies").
		OrderBy("text ASC", "id ASC")
	if pred := filterPredicate(filter); pred != nil {
		builder = builder.Where(pred)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vacancy list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vacancies: %w", err)
	}
	defer rows.Close()

	vacancies := []domain.Vacancy{}
	for rows.Next() {
		vacancy, err := scanVacancy(rows)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, *vacancy)
	}

	return vacancies, rows.Err()
}

func (r *VacancyRepository) Count(ctx context.Context, filter repository.VacancyFilter) (int, error) {
	builder := sq.Select("COUNT(*)").From("vacancies")
	if pred := filterPredicate(filter); pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build vacancy count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count vacancies: %w", err)
	}
	return total, nil
}

func (r *VacancyRepository) Update(ctx context.Context, vacancy *domain.Vacancy, addSkillIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // safe no-op on commit

	res, err := tx.ExecContext(ctx, `
UPDATE vacancies
SET slug=?, text=?, status=?
WHERE id=?`,
		vacancy.Slug,
		vacancy.Text,
		string(vacancy.Status),
		vacancy.ID,
	)
	if err != nil {
		return fmt.Errorf("update vacancy: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("vacancy update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("vacancy %d: %w", vacancy.ID, domain.ErrVacancyNotFound)
	}

	if err := insertVacancySkills(ctx, tx, vacancy.ID, addSkillIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vacancy update: %w", err)
	}
	return nil
}

func (r *VacancyRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vacancy_skills WHERE vacancy_id=?`, id); err != nil {
		return fmt.Errorf("delete vacancy skills: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM vacancies WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete vacancy: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("vacancy delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("vacancy %d: %w", id, domain.ErrVacancyNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vacancy delete: %w", err)
	}
	return nil
}

func (r *VacancyRepository) SkillNames(ctx context.Context, vacancyID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT s.name
FROM skills s
JOIN vacancy_skills vs ON vs.skill_id = s.id
WHERE vs.vacancy_id=?
ORDER BY s.name ASC`, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("query vacancy skills: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan skill name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// insertVacancySkills adds join rows; rows that already exist are left alone.
func insertVacancySkills(ctx context.Context, exec execer, vacancyID int64, skillIDs []int64) error {
	for _, skillID := range skillIDs {
		if _, err := exec.ExecContext(ctx, `
INSERT OR IGNORE INTO vacancy_skills (vacancy_id, skill_id)
VALUES (?, ?)`,
			vacancyID,
			skillID,
		); err != nil {
			return fmt.Errorf("insert vacancy skill %d: %w", skillID, err)
		}
	}
	return nil
}

func filterPredicate(filter repository.VacancyFilter) sq.Sqlizer {
	if filter.Text == "" {
		return nil
	}
	return sq.Eq{"text": filter.Text}
}

func scanVacancy(scanner interface {
	Scan(dest ...any) error
}) (*domain.Vacancy, error) {
	var (
		vacancy domain.Vacancy
		status  string
	)
	if err := scanner.Scan(
		&vacancy.ID,
		&vacancy.UserID,
		&vacancy.Slug,
		&vacancy.Text,
		&status,
		&vacancy.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan vacancy: %w", err)
	}
	vacancy.Status = domain.VacancyStatus(status)
	vacancy.CreatedAt = vacancy.CreatedAt.UTC()
	return &vacancy, nil
}

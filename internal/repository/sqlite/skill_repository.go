package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/repository"
)

const createSkillsTable = `
CREATE TABLE IF NOT EXISTS skills (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
`

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) repository.SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSkillsTable); err != nil {
		return fmt.Errorf("create skills table: %w", err)
	}
	return nil
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO skills (name) VALUES (?)`, skill.Name)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("skill %q: %w", skill.Name, domain.ErrSkillAlreadyExists)
		}
		return 0, fmt.Errorf("insert skill: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("skill last insert id: %w", err)
	}
	skill.ID = id
	return id, nil
}

func (r *SkillRepository) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM skills WHERE name = ?`, name).
		Scan(&skill.ID, &skill.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("skill %q: %w", name, domain.ErrSkillNotFound)
		}
		return nil, fmt.Errorf("scan skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

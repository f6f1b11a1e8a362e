package repository

import (
	"context"

	"amazing-hunting/internal/domain"
)

// SkillRepository manages the shared skill dictionary.
type SkillRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, skill *domain.Skill) (int64, error)
	GetByName(ctx context.Context, name string) (*domain.Skill, error)
	List(ctx context.Context) ([]domain.Skill, error)
}

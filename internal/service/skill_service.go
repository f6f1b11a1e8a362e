package service

import (
	"context"
	"fmt"
	"strings"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/repository"
)

// SkillService manages the skill dictionary vacancies refer to.
type SkillService interface {
	CreateSkills(ctx context.Context, names ...string) ([]domain.Skill, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
}

type skillService struct {
	skills repository.SkillRepository
}

func NewSkillService(skills repository.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func (s *skillService) CreateSkills(ctx context.Context, names ...string) ([]domain.Skill, error) {
	created := make([]domain.Skill, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return created, fmt.Errorf("skill name is required")
		}
		skill := domain.Skill{Name: name}
		if _, err := s.skills.Create(ctx, &skill); err != nil {
			return created, err
		}
		created = append(created, skill)
	}
	return created, nil
}

func (s *skillService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx)
}

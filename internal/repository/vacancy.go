package repository

import (
	"context"

	"amazing-hunting/internal/domain"
)

// VacancyFilter narrows vacancy listings. Zero values match everything.
type VacancyFilter struct {
	Text string
}

// VacancyRepository exposes persistence operations for Vacancy records and
// their skill associations.
type VacancyRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, vacancy *domain.Vacancy) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Vacancy, error)
	List(ctx context.Context, filter VacancyFilter, limit, offset int) ([]domain.Vacancy, error)
	Count(ctx context.Context, filter VacancyFilter) (int, error)
	// Update writes the vacancy columns and adds the given skills in one
	// transaction. Existing associations are kept.
	Update(ctx context.Context, vacancy *domain.Vacancy, addSkillIDs []int64) error
	Delete(ctx context.Context, id int64) error
	SkillNames(ctx context.Context, vacancyID int64) ([]string, error)
}

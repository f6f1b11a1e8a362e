package service

import (
	"context"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/pagination"
	"amazing-hunting/internal/repository"
)

// DefaultPageSize is used when Options.PageSize is not positive.
const DefaultPageSize = 10

// Options tunes VacancyService behaviour.
type Options struct {
	PageSize int
}

// CreateVacancyInput carries the fields accepted when a vacancy is created.
// Skills are attached later through UpdateVacancy.
type CreateVacancyInput struct {
	UserID int64
	Slug   string
	Text   string
	Status domain.VacancyStatus
}

// UpdateVacancyInput overwrites the vacancy fields and names skills to attach.
type UpdateVacancyInput struct {
	Fields domain.VacancyFields
	Skills []string
}

// VacancyService coordinates vacancy level operations backed by repositories.
type VacancyService interface {
	ListVacancies(ctx context.Context, text string, page int) (*domain.VacancyPage, error)
	GetVacancy(ctx context.Context, id int64) (*domain.Vacancy, error)
	CreateVacancy(ctx context.Context, in CreateVacancyInput) (*domain.Vacancy, error)
	UpdateVacancy(ctx context.Context, id int64, in UpdateVacancyInput) (*domain.Vacancy, error)
	DeleteVacancy(ctx context.Context, id int64) error
}

type vacancyService struct {
	vacancies repository.VacancyRepository
	skills    repository.SkillRepository
	users     repository.UserRepository
	pageSize  int
}

func NewVacancyService(vacancies repository.VacancyRepository, skills repository.SkillRepository, users repository.UserRepository, opts Options) VacancyService {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &vacancyService{
		vacancies: vacancies,
		skills:    skills,
		users:     users,
		pageSize:  opts.PageSize,
	}
}

func (s *vacancyService) ListVacancies(ctx context.Context, text string, page int) (*domain.VacancyPage, error) {
	filter := repository.VacancyFilter{Text: text}

	total, err := s.vacancies.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	window := pagination.Compute(total, s.pageSize, page)
	result := &domain.VacancyPage{
		Items:    []domain.Vacancy{},
		Page:     window.Number,
		NumPages: window.NumPages,
		Total:    window.Total,
	}
	if window.Empty() {
		return result, nil
	}

	items, err := s.vacancies.List(ctx, filter, window.Limit, window.Offset)
	if err != nil {
		return nil, err
	}
	result.Items = items
	return result, nil
}

func (s *vacancyService) GetVacancy(ctx context.Context, id int64) (*domain.Vacancy, error) {
	return s.vacancies.Get(ctx, id)
}

func (s *vacancyService) CreateVacancy(ctx context.Context, in CreateVacancyInput) (*domain.Vacancy, error) {
	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	vacancy := &domain.Vacancy{
		UserID: in.UserID,
		Slug:   in.Slug,
		Text:   in.Text,
		Status: in.Status,
	}
	if _, err := s.vacancies.Create(ctx, vacancy); err != nil {
		return nil, err
	}
	return vacancy, nil
}

// UpdateVacancy overwrites slug, text and status and attaches the named
// skills. Every name must resolve before anything is written; existing
// associations are never removed.
func (s *vacancyService) UpdateVacancy(ctx context.Context, id int64, in UpdateVacancyInput) (*domain.Vacancy, error) {
	vacancy, err := s.vacancies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Fields.Apply(vacancy)

	skillIDs, err := s.resolveSkills(ctx, in.Skills)
	if err != nil {
		return nil, err
	}

	if err := s.vacancies.Update(ctx, vacancy, skillIDs); err != nil {
		return nil, err
	}

	names, err := s.vacancies.SkillNames(ctx, vacancy.ID)
	if err != nil {
		return nil, err
	}
	vacancy.Skills = names
	return vacancy, nil
}

func (s *vacancyService) DeleteVacancy(ctx context.Context, id int64) error {
	return s.vacancies.Delete(ctx, id)
}

func (s *vacancyService) resolveSkills(ctx context.Context, names []string) ([]int64, error) {
	seen := make(map[int64]struct{}, len(names))
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		skill, err := s.skills.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[skill.ID]; dup {
			continue
		}
		seen[skill.ID] = struct{}{}
		ids = append(ids, skill.ID)
	}
	return ids, nil
}

package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/repository/sqlite"
)

type fixture struct {
	db        *sql.DB
	vacancies VacancyService
	skills    SkillService
	users     UserService
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "hunting.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.InitSchema(context.Background(), db))

	users := sqlite.NewUserRepository(db)
	skills := sqlite.NewSkillRepository(db)
	return &fixture{
		db:        db,
		vacancies: NewVacancyService(sqlite.NewVacancyRepository(db), skills, users, Options{PageSize: pageSize}),
		skills:    NewSkillService(skills),
		users:     NewUserService(users),
	}
}

func (f *fixture) user(t *testing.T) *domain.User {
	t.Helper()

	user, err := f.users.Register(context.Background(), "test", "123qwe")
	require.NoError(t, err)
	return user
}

func (f *fixture) vacancy(t *testing.T, userID int64, text string) *domain.Vacancy {
	t.Helper()

	vacancy, err := f.vacancies.CreateVacancy(context.Background(), CreateVacancyInput{
		UserID: userID,
		Slug:   "test",
		Text:   text,
		Status: domain.VacancyStatusDraft,
	})
	require.NoError(t, err)
	return vacancy
}

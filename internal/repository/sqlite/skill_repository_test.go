package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amazing-hunting/internal/domain"
)

func TestSkillRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	seedSkills(t, db, "sql", "go")

	skill, err := repo.GetByName(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, "go", skill.Name)
	assert.NotZero(t, skill.ID)

	_, err = repo.GetByName(ctx, "Go")
	assert.ErrorIs(t, err, domain.ErrSkillNotFound)

	_, err = repo.Create(ctx, &domain.Skill{Name: "go"})
	assert.ErrorIs(t, err, domain.ErrSkillAlreadyExists)

	skills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "go", skills[0].Name)
	assert.Equal(t, "sql", skills[1].Name)
}

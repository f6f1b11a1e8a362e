package domain

// Skill is a named tag that can be attached to vacancies.
type Skill struct {
	ID   int64
	Name string
}

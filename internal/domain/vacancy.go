package domain

import "time"

type VacancyStatus string

const (
	VacancyStatusDraft  VacancyStatus = "draft"
	VacancyStatusOpen   VacancyStatus = "open"
	VacancyStatusClosed VacancyStatus = "closed"
)

// Vacancy is a job posting owned by exactly one user.
type Vacancy struct {
	ID        int64
	UserID    int64
	Slug      string
	Text      string
	Status    VacancyStatus
	CreatedAt time.Time
	Skills    []string
}

// VacancyFields holds the overwritable columns of a vacancy.
type VacancyFields struct {
	Slug   string
	Text   string
	Status VacancyStatus
}

// Apply overwrites the editable columns of v with f.
func (f VacancyFields) Apply(v *Vacancy) {
	v.Slug = f.Slug
	v.Text = f.Text
	v.Status = f.Status
}

// VacancyPage is one page of a filtered, text-ordered vacancy listing.
type VacancyPage struct {
	Items    []Vacancy
	Page     int
	NumPages int
	Total    int
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"amazing-hunting/internal/domain"
	"amazing-hunting/internal/pagination"
	"amazing-hunting/internal/service"
)

// Keys must be present; empty strings are accepted.
type createVacancyRequest struct {
	UserID *int64  `json:"user_id" binding:"required"`
	Slug   *string `json:"slug" binding:"required"`
	Text   *string `json:"text" binding:"required"`
	Status *string `json:"status" binding:"required"`
}

// Skills must be present but may be an empty list.
type updateVacancyRequest struct {
	Slug   *string  `json:"slug" binding:"required"`
	Text   *string  `json:"text" binding:"required"`
	Status *string  `json:"status" binding:"required"`
	Skills []string `json:"skills" binding:"required"`
}

type VacancyListItem struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type VacancyListResponse struct {
	Items    []VacancyListItem `json:"items"`
	NumPages int               `json:"num_pages"`
	Total    int               `json:"total"`
}

type VacancyResponse struct {
	ID      int64                `json:"id"`
	Text    string               `json:"text"`
	Slug    string               `json:"slug"`
	Status  domain.VacancyStatus `json:"status"`
	Created string               `json:"created"`
	User    int64                `json:"user"`
}

type VacancyWithSkillsResponse struct {
	VacancyResponse
	Skills []string `json:"skills"`
}

func (h *Handler) listVacancies(c *gin.Context) {
	page := pagination.ParseNumber(c.Query("page"))

	result, err := h.vacancies.ListVacancies(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := VacancyListResponse{
		Items:    make([]VacancyListItem, len(result.Items)),
		NumPages: result.NumPages,
		Total:    result.Total,
	}
	for i := range result.Items {
		resp.Items[i] = VacancyListItem{ID: result.Items[i].ID, Text: result.Items[i].Text}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getVacancy(c *gin.Context) {
	id, ok := vacancyID(c)
	if !ok {
		return
	}

	vacancy, err := h.vacancies.GetVacancy(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancyToResponse(*vacancy))
}

func (h *Handler) createVacancy(c *gin.Context) {
	var req createVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	vacancy, err := h.vacancies.CreateVacancy(c.Request.Context(), service.CreateVacancyInput{
		UserID: *req.UserID,
		Slug:   *req.Slug,
		Text:   *req.Text,
		Status: domain.VacancyStatus(*req.Status),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VacancyListItem{ID: vacancy.ID, Text: vacancy.Text})
}

func (h *Handler) updateVacancy(c *gin.Context) {
	id, ok := vacancyID(c)
	if !ok {
		return
	}

	var req updateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	vacancy, err := h.vacancies.UpdateVacancy(c.Request.Context(), id, service.UpdateVacancyInput{
		Fields: domain.VacancyFields{
			Slug:   *req.Slug,
			Text:   *req.Text,
			Status: domain.VacancyStatus(*req.Status),
		},
		Skills: req.Skills,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	skills := vacancy.Skills
	if skills == nil {
		skills = []string{}
	}
	c.JSON(http.StatusOK, VacancyWithSkillsResponse{
		VacancyResponse: vacancyToResponse(*vacancy),
		Skills:          skills,
	})
}

func (h *Handler) deleteVacancy(c *gin.Context) {
	id, ok := vacancyID(c)
	if !ok {
		return
	}

	if err := h.vacancies.DeleteVacancy(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// vacancyID parses the :id segment. An id that cannot exist is reported the
// same way as one that does not.
func vacancyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrVacancyNotFound.Error()})
		return 0, false
	}
	return id, true
}

func vacancyToResponse(vacancy domain.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:      vacancy.ID,
		Text:    vacancy.Text,
		Slug:    vacancy.Slug,
		Status:  vacancy.Status,
		Created: vacancy.CreatedAt.Format(time.RFC3339),
		User:    vacancy.UserID,
	}
}

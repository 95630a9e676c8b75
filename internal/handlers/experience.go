package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type ExperienceHandler struct {
	experienceService services.ExperienceService
}

func NewExperienceHandler(experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

type experienceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	HappenedAt  string `json:"happened_at"`
}

func (er *experienceRequest) toInput() (services.ExperienceInput, error) {
	in := services.ExperienceInput{
		Title:       er.Title,
		Description: er.Description,
		Location:    er.Location,
	}
	if er.HappenedAt != "" {
		happenedAt, err := time.Parse(time.RFC3339, er.HappenedAt)
		if err != nil {
			return in, apierr.InvalidRequest("invalid happened_at")
		}
		in.HappenedAt = happenedAt
	}
	return in, nil
}

func (eh *ExperienceHandler) List(c *gin.Context) {
	experiences, err := eh.experienceService.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (eh *ExperienceHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	experience, err := eh.experienceService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (eh *ExperienceHandler) Create(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apierr.InvalidRequest("invalid request body"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}
	experience, err := eh.experienceService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (eh *ExperienceHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apierr.InvalidRequest("invalid request body"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}
	experience, err := eh.experienceService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (eh *ExperienceHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := eh.experienceService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

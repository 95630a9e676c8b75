package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (eh *EventHandler) List(c *gin.Context) {
	upcomingOnly := c.Query("upcoming") == "true"
	events, err := eh.eventService.List(c.Request.Context(), upcomingOnly)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (eh *EventHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	event, err := eh.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (eh *EventHandler) Create(c *gin.Context) {
	in, err := eh.bindForm(c)
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in.File = file
	in.ContentType = contentType
	event, err := eh.eventService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (eh *EventHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	in, err := eh.bindForm(c)
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in.File = file
	in.ContentType = contentType
	event, err := eh.eventService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (eh *EventHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := eh.eventService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (eh *EventHandler) Register(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, apierr.InvalidRequest("invalid request body"))
		return
	}
	registration, err := eh.eventService.Register(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, registration)
}

func (eh *EventHandler) bindForm(c *gin.Context) (services.EventInput, error) {
	in := services.EventInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
	}
	if raw := c.PostForm("starts_at"); raw != "" {
		startsAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return in, apierr.InvalidRequest("invalid starts_at")
		}
		in.StartsAt = startsAt
	}
	if raw := c.PostForm("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity < 0 {
			return in, apierr.InvalidRequest("invalid capacity")
		}
		in.Capacity = &capacity
	}
	return in, nil
}

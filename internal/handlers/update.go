package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/services"
)

type UpdateHandler struct {
	updateService services.UpdateService
}

func NewUpdateHandler(updateService services.UpdateService) *UpdateHandler {
	return &UpdateHandler{updateService: updateService}
}

func (uh *UpdateHandler) List(c *gin.Context) {
	updates, err := uh.updateService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func (uh *UpdateHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	update, err := uh.updateService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func (uh *UpdateHandler) Create(c *gin.Context) {
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.UpdateInput{
		Title:       c.PostForm("title"),
		Body:        c.PostForm("body"),
		Category:    c.PostForm("category"),
		File:        file,
		ContentType: contentType,
	}
	update, err := uh.updateService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

func (uh *UpdateHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.UpdateInput{
		Title:       c.PostForm("title"),
		Body:        c.PostForm("body"),
		Category:    c.PostForm("category"),
		File:        file,
		ContentType: contentType,
	}
	update, err := uh.updateService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func (uh *UpdateHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := uh.updateService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

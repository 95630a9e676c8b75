package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type DestinationHandler struct {
	destinationService services.DestinationService
}

func NewDestinationHandler(destinationService services.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

func (dh *DestinationHandler) List(c *gin.Context) {
	filter := repos.DestinationFilter{
		Region: c.Query("region"),
		Search: c.Query("search"),
	}
	destinations, err := dh.destinationService.List(c.Request.Context(), filter)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (dh *DestinationHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	destination, err := dh.destinationService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}

func (dh *DestinationHandler) Create(c *gin.Context) {
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.DestinationInput{
		Name:        c.PostForm("name"),
		Region:      c.PostForm("region"),
		Description: c.PostForm("description"),
		Tips:        c.PostForm("tips"),
		File:        file,
		ContentType: contentType,
	}
	destination, err := dh.destinationService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, destination)
}

func (dh *DestinationHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.DestinationInput{
		Name:        c.PostForm("name"),
		Region:      c.PostForm("region"),
		Description: c.PostForm("description"),
		Tips:        c.PostForm("tips"),
		File:        file,
		ContentType: contentType,
	}
	destination, err := dh.destinationService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}

func (dh *DestinationHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := dh.destinationService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/services"
)

type OutfitHandler struct {
	outfitService services.OutfitService
}

func NewOutfitHandler(outfitService services.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfitService: outfitService}
}

func (oh *OutfitHandler) List(c *gin.Context) {
	outfits, err := oh.outfitService.List(c.Request.Context(), c.Query("occasion"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outfits)
}

func (oh *OutfitHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	outfit, err := oh.outfitService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outfit)
}

func (oh *OutfitHandler) Create(c *gin.Context) {
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.OutfitInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Occasion:    c.PostForm("occasion"),
		File:        file,
		ContentType: contentType,
	}
	outfit, err := oh.outfitService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, outfit)
}

func (oh *OutfitHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.OutfitInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Occasion:    c.PostForm("occasion"),
		File:        file,
		ContentType: contentType,
	}
	outfit, err := oh.outfitService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outfit)
}

func (oh *OutfitHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := oh.outfitService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

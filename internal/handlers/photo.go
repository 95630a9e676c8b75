package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type PhotoHandler struct {
	photoService services.PhotoService
}

func NewPhotoHandler(photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

func (ph *PhotoHandler) List(c *gin.Context) {
	filter := repos.PhotoFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	photos, err := ph.photoService.List(c.Request.Context(), filter)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (ph *PhotoHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	photo, err := ph.photoService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (ph *PhotoHandler) Create(c *gin.Context) {
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.PhotoCreateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		File:        file,
		ContentType: contentType,
	}
	photo, err := ph.photoService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (ph *PhotoHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "image")
	defer closeFile()
	in := services.PhotoUpdateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		File:        file,
		ContentType: contentType,
	}
	photo, err := ph.photoService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (ph *PhotoHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := ph.photoService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ph *PhotoHandler) ToggleVote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	principal := requestdata.GetPrincipal(c.Request.Context())
	voted, err := ph.photoService.ToggleVote(c.Request.Context(), id, principal)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"voted": voted})
}

func (ph *PhotoHandler) AddComment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "invalid_request"})
		return
	}
	principal := requestdata.GetPrincipal(c.Request.Context())
	comment, err := ph.photoService.AddComment(c.Request.Context(), id, principal, req.Body)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (ph *PhotoHandler) UpdateComment(c *gin.Context) {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		Fail(c, err)
		return
	}
	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "invalid_request"})
		return
	}
	principal := requestdata.GetPrincipal(c.Request.Context())
	comment, err := ph.photoService.UpdateComment(c.Request.Context(), commentID, principal, req.Body)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (ph *PhotoHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		Fail(c, err)
		return
	}
	principal := requestdata.GetPrincipal(c.Request.Context())
	if err := ph.photoService.DeleteComment(c.Request.Context(), commentID, principal); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

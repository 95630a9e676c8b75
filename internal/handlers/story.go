package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/services"
)

type StoryHandler struct {
	storyService services.StoryService
}

func NewStoryHandler(storyService services.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

func (sh *StoryHandler) List(c *gin.Context) {
	stories, err := sh.storyService.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (sh *StoryHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	story, err := sh.storyService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

func (sh *StoryHandler) Create(c *gin.Context) {
	file, contentType, closeFile := formFile(c, "audio")
	defer closeFile()
	in := services.StoryInput{
		Title:       c.PostForm("title"),
		Body:        c.PostForm("body"),
		File:        file,
		ContentType: contentType,
	}
	story, err := sh.storyService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, story)
}

func (sh *StoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	file, contentType, closeFile := formFile(c, "audio")
	defer closeFile()
	in := services.StoryInput{
		Title:       c.PostForm("title"),
		Body:        c.PostForm("body"),
		File:        file,
		ContentType: contentType,
	}
	story, err := sh.storyService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

func (sh *StoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := sh.storyService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/services"
)

type TravelDiaryHandler struct {
	diaryService services.TravelDiaryService
}

func NewTravelDiaryHandler(diaryService services.TravelDiaryService) *TravelDiaryHandler {
	return &TravelDiaryHandler{diaryService: diaryService}
}

func (th *TravelDiaryHandler) List(c *gin.Context) {
	diaries, err := th.diaryService.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, diaries)
}

func (th *TravelDiaryHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	diary, err := th.diaryService.GetByID(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, diary)
}

func (th *TravelDiaryHandler) Create(c *gin.Context) {
	files, closeFiles, err := diaryFiles(c)
	if err != nil {
		Fail(c, err)
		return
	}
	defer closeFiles()
	in := services.TravelDiaryInput{
		Title:    c.PostForm("title"),
		Body:     c.PostForm("body"),
		Location: c.PostForm("location"),
		Files:    files,
	}
	diary, err := th.diaryService.Create(c.Request.Context(), in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, diary)
}

func (th *TravelDiaryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	files, closeFiles, err := diaryFiles(c)
	if err != nil {
		Fail(c, err)
		return
	}
	defer closeFiles()
	in := services.TravelDiaryInput{
		Title:    c.PostForm("title"),
		Body:     c.PostForm("body"),
		Location: c.PostForm("location"),
		Files:    files,
	}
	diary, err := th.diaryService.Update(c.Request.Context(), id, in)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, diary)
}

func (th *TravelDiaryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := th.diaryService.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (th *TravelDiaryHandler) AddImages(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		Fail(c, err)
		return
	}
	files, closeFiles, err := diaryFiles(c)
	if err != nil {
		Fail(c, err)
		return
	}
	defer closeFiles()
	diary, err := th.diaryService.AddImages(c.Request.Context(), id, files)
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, diary)
}

func (th *TravelDiaryHandler) DeleteImage(c *gin.Context) {
	imageID, err := parseID(c, "imageId")
	if err != nil {
		Fail(c, err)
		return
	}
	if err := th.diaryService.DeleteImage(c.Request.Context(), imageID); err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// diaryFiles opens every uploaded "images" part and pairs it with the
// caption at the same position in the "captions" form values.
func diaryFiles(c *gin.Context) ([]services.DiaryFileInput, func(), error) {
	headers := formFiles(c, "images")
	captions := c.PostFormArray("captions")
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	inputs := make([]services.DiaryFileInput, 0, len(headers))
	for i, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, file)
		caption := ""
		if i < len(captions) {
			caption = captions[i]
		}
		inputs = append(inputs, services.DiaryFileInput{
			File:        file,
			ContentType: header.Header.Get("Content-Type"),
			Caption:     caption,
		})
	}
	return inputs, closeAll, nil
}

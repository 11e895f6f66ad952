package handlers

import (
	"net/http"
	"time"

	"whisperwall/internal/db"
	"whisperwall/internal/models"
	"whisperwall/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoteHandler struct{}

func NewNoteHandler() *NoteHandler {
	return &NoteHandler{}
}

// List 公告列表，时间倒序
func (h *NoteHandler) List(c *gin.Context) {
	var notes []models.Note
	if err := db.DB.Order("timestamp DESC").Find(&notes).Error; err != nil {
		InternalError(c, "fetching notes", err)
		return
	}

	for i := range notes {
		notes[i].TextHTML = utils.RenderMarkdown(notes[i].Text)
	}

	c.JSON(http.StatusOK, notes)
}

// Create 发布公告（管理员）
func (h *NoteHandler) Create(c *gin.Context) {
	var input struct {
		Text      string     `json:"text"`
		Timestamp *time.Time `json:"timestamp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Text == "" {
		JSONError(c, http.StatusBadRequest, "text is required")
		return
	}

	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	note := models.Note{
		ID:        uuid.NewString(),
		Text:      input.Text,
		Timestamp: timestamp,
	}

	if err := db.DB.Create(&note).Error; err != nil {
		InternalError(c, "adding note", err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Delete 删除公告（管理员）
func (h *NoteHandler) Delete(c *gin.Context) {
	result := db.DB.Delete(&models.Note{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		InternalError(c, "deleting note", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		JSONError(c, http.StatusNotFound, "note not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

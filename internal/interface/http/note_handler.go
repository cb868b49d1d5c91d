package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/application"
	"github.com/369Dsharma/Notes-backend/pkg/response"
	"github.com/369Dsharma/Notes-backend/pkg/validation"
)

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

type addNoteRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type editNoteRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

type pinNoteRequest struct {
	IsPinned *bool `json:"isPinned" binding:"required"`
}

// Add POST /add-note
func (h *NoteHandler) Add(c *gin.Context) {
	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	n, err := h.Svc.Create(c.Request.Context(), uid, req.Title, req.Content, req.Tags)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"note": n}, "Note added successfully")
}

// Edit PUT /edit-note/:noteId
func (h *NoteHandler) Edit(c *gin.Context) {
	var req editNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	n, err := h.Svc.Update(c.Request.Context(), uid, c.Param("noteId"), application.UpdateInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"note": n}, "Note updated successfully")
}

// List GET /get-all-notes
func (h *NoteHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	notes, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notes": notes}, "All notes retrieved successfully")
}

// Delete DELETE /delete-note/:noteId
func (h *NoteHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("noteId")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Note deleted successfully")
}

// Pin PUT /update-note-pinned/:noteId
func (h *NoteHandler) Pin(c *gin.Context) {
	var req pinNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPinned == nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString("userID")
	n, err := h.Svc.SetPinned(c.Request.Context(), uid, c.Param("noteId"), *req.IsPinned)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"note": n}, "Note updated successfully")
}

// Search GET /search-notes?query=
func (h *NoteHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Fail(c, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	uid := c.GetString("userID")
	notes, err := h.Svc.Search(c.Request.Context(), uid, query)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notes": notes}, "Notes matching the search query retrieved successfully")
}

func (h *NoteHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNoteNotFound):
		response.Fail(c, http.StatusNotFound, "Note not found", nil)
	case errors.Is(err, application.ErrNoChanges):
		response.Fail(c, http.StatusBadRequest, "No changes provided", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("note operation failed")
		}
		response.Fail(c, http.StatusInternalServerError, "Internal Server Error", nil)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkraj/jobtrack/internal/domain"
	"github.com/mkraj/jobtrack/internal/service"
)

// RecordHandler handles job-record endpoints.
type RecordHandler struct {
	tracker *service.TrackerService
}

// NewRecordHandler creates a new record handler.
// Parameters:
//   - tracker: tracker service instance.
// Returns:
//   - *RecordHandler: initialized handler.
func NewRecordHandler(tracker *service.TrackerService) *RecordHandler {
	return &RecordHandler{
		tracker: tracker,
	}
}

// CreateRecordRequest is the body for POST /api/v1/records.
type CreateRecordRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateStatusRequest is the body for PATCH /api/v1/records/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRoundsRequest is the body for PUT /api/v1/records/:id/rounds.
type UpdateRoundsRequest struct {
	Rounds []domain.Round `json:"rounds"`
}

// UpdateNotesRequest is the body for PUT /api/v1/records/:id/notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// CreateRecord handles POST /api/v1/records. It runs the pasted posting text
// through extraction and persists the resulting record.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Request body must include posting text",
		})
		return
	}

	record, err := h.tracker.AddFromText(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyText):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Posting text is empty",
			})
		case errors.Is(err, service.ErrDuplicateCompany):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Company already exists in tracker",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to parse job details: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListRecords handles GET /api/v1/records. The optional status query filters
// by tracking status; "All" or absent returns everything.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) ListRecords(c *gin.Context) {
	filter := c.DefaultQuery("status", service.StatusFilterAll)

	records, err := h.tracker.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown status filter: " + filter,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list records: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   len(records),
		"records": records,
	})
}

// GetRecord handles GET /api/v1/records/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) GetRecord(c *gin.Context) {
	id := c.Param("id")

	record, err := h.tracker.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch record: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateStatus handles PATCH /api/v1/records/:id/status.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Request body must include status",
		})
		return
	}

	err := h.tracker.UpdateStatus(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		h.writeUpdateError(c, err, "status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"status": req.Status,
	})
}

// UpdateRounds handles PUT /api/v1/records/:id/rounds. The body replaces the
// whole round list.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) UpdateRounds(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rounds payload",
		})
		return
	}

	err := h.tracker.UpdateRounds(c.Request.Context(), id, domain.RoundList(req.Rounds))
	if err != nil {
		h.writeUpdateError(c, err, "rounds")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     id,
		"rounds": req.Rounds,
	})
}

// UpdateNotes handles PUT /api/v1/records/:id/notes.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) UpdateNotes(c *gin.Context) {
	id := c.Param("id")

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notes payload",
		})
		return
	}

	err := h.tracker.UpdateNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		h.writeUpdateError(c, err, "notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    id,
		"notes": req.Notes,
	})
}

// DeleteRecord handles DELETE /api/v1/records/:id. Deletion must be confirmed
// with ?confirm=true; without it the handler answers 409 so a client can show
// a confirmation prompt instead of silently destroying the record.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id := c.Param("id")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "confirmation_required",
			"message": "Re-send the request with ?confirm=true to delete this record",
		})
		return
	}

	if err := h.tracker.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete record: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"deleted": true,
	})
}

// GetStats handles GET /api/v1/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecordHandler) GetStats(c *gin.Context) {
	counts, err := h.tracker.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute stats: " + err.Error(),
		})
		return
	}

	var total int64
	byStatus := make(map[string]int64, len(counts))
	for status, n := range counts {
		byStatus[string(status)] = n
		total += n
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"by_status": byStatus,
	})
}

// writeUpdateError maps tracker update errors onto HTTP responses.
func (h *RecordHandler) writeUpdateError(c *gin.Context, err error, field string) {
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status value",
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Record not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update " + field + ": " + err.Error(),
		})
	}
}

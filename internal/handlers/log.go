package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/constants"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/dto"
	apierrors "github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/errors"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/services"
)

// LogHandler exposes the admin audit-log views. It only ever reads.
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// ViewLogs returns audit entries, newest first, filtered by the optional
// query parameters. user and action match as case-insensitive substrings;
// task_id matches exactly; start_date and end_date bound the covered
// calendar days inclusively. Unparseable filter values are dropped, not
// rejected.
func (h *LogHandler) ViewLogs(c *gin.Context) {
	entries, err := h.logService.Query(services.RawLogFilter{
		Actor:     c.Query("user"),
		Action:    c.Query("action"),
		TaskID:    c.Query("task_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToLogEntryDTOs(entries),
	})
}

// ExportLogs streams the full audit log as a CSV attachment.
func (h *LogHandler) ExportLogs(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", constants.LogExportFilename))
	c.Status(http.StatusOK)

	if err := h.logService.ExportCSV(c.Writer); err != nil {
		// Headers are already out; all we can do is abort the stream.
		c.Abort()
	}
}

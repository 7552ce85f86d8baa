// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/berytech/booking-invite-service/internal/domain"
	"github.com/berytech/booking-invite-service/internal/domain/models"
	"github.com/berytech/booking-invite-service/internal/logging"
	"github.com/berytech/booking-invite-service/internal/service"
)

// OpenWorkbookFunc opens a booking workbook from disk. Injected so handler
// tests can substitute an in-memory sheet.
type OpenWorkbookFunc func(path string) (domain.BookingSheet, error)

// Handler serves the two-step upload flow: POST /upload validates the
// workbook and parks the outcome in a session, POST /process consumes the
// session and books the ready rows.
type Handler struct {
	service   *service.BookingService
	sessions  domain.SessionStore
	open      OpenWorkbookFunc
	uploadDir string
}

func NewHandler(bookings *service.BookingService, sessions domain.SessionStore, open OpenWorkbookFunc, uploadDir string) *Handler {
	return &Handler{
		service:   bookings,
		sessions:  sessions,
		open:      open,
		uploadDir: uploadDir,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.POST("/upload", h.Upload)
	router.POST("/process", h.Process)
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

type validationView struct {
	SessionID            string
	Outcomes             []models.ValidationOutcome
	ReadyCount           int
	RowsFilled           int
	SkippedAlreadyBooked int
	SkippedInvalidDate   int
	HasMissing           bool
}

// Upload runs the validation phase. No invite is sent here; the classified
// rows are stored under a one-shot session id that /process redeems.
func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	file, err := c.FormFile("sheet")
	if err != nil {
		c.String(http.StatusBadRequest, "missing workbook upload")
		return
	}

	dst := filepath.Join(h.uploadDir, uuid.New().String()+".xlsx")
	if err := c.SaveUploadedFile(file, dst); err != nil {
		slog.ErrorContext(ctx, "saving uploaded workbook failed", logging.ErrKey, err)
		c.String(http.StatusInternalServerError, "could not store the uploaded workbook")
		return
	}

	opts := service.BatchOptions{
		MeetingTypeOverride: c.PostForm("meetingType"),
		LocationOverride:    c.PostForm("location"),
	}

	sheet, err := h.open(dst)
	if err != nil {
		h.discardUpload(dst)
		slog.ErrorContext(ctx, "opening uploaded workbook failed", logging.ErrKey, err)
		status := http.StatusInternalServerError
		if domain.GetErrorType(err) == domain.ErrorTypeValidation {
			status = http.StatusBadRequest
		}
		c.String(status, fmt.Sprintf("workbook rejected: %v", err))
		return
	}

	report, err := h.service.Validate(ctx, sheet, opts)
	closeSheet(sheet)
	if err != nil {
		h.discardUpload(dst)
		slog.ErrorContext(ctx, "validating uploaded workbook failed", logging.ErrKey, err)
		c.String(http.StatusInternalServerError, "validation failed, check server log")
		return
	}

	id, err := h.sessions.Put(ctx, &models.UploadSession{
		WorkbookPath: dst,
		Outcomes:     report.Outcomes,
	})
	if err != nil {
		h.discardUpload(dst)
		slog.ErrorContext(ctx, "storing upload session failed", logging.ErrKey, err)
		c.String(http.StatusInternalServerError, "could not store the upload session")
		return
	}

	slog.InfoContext(ctx, "workbook validated",
		"session_id", id,
		"ready_rows", report.ReadyCount(),
		"rows_filled", report.RowsFilled)

	c.HTML(http.StatusOK, "validation.html", validationView{
		SessionID:            id,
		Outcomes:             report.Outcomes,
		ReadyCount:           report.ReadyCount(),
		RowsFilled:           report.RowsFilled,
		SkippedAlreadyBooked: report.SkippedAlreadyBooked,
		SkippedInvalidDate:   report.SkippedInvalidDate,
		HasMissing:           report.HasMissing(),
	})
}

// Process redeems a session and books its ready rows. The session is
// consumed on first use; a replay gets the expired message.
func (h *Handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.sessions.Take(ctx, c.PostForm("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Session expired. Please re-upload.")
		return
	}

	sheet, err := h.open(session.WorkbookPath)
	if err != nil {
		h.discardUpload(session.WorkbookPath)
		slog.ErrorContext(ctx, "reopening session workbook failed", logging.ErrKey, err)
		c.String(http.StatusInternalServerError, "could not reopen the uploaded workbook")
		return
	}

	// Only ready rows are committed; a forced POST past the disabled Send
	// button must not book rows the validation page flagged.
	result := h.service.Commit(ctx, sheet, session.ReadyRows())
	closeSheet(sheet)
	h.discardUpload(session.WorkbookPath)

	slog.InfoContext(ctx, "session processed",
		"sent", result.Sent,
		"failed", result.Failed)

	c.HTML(http.StatusOK, "result.html", result)
}

func (h *Handler) discardUpload(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("removing uploaded workbook failed", "path", path, logging.ErrKey, err)
	}
}

func closeSheet(sheet domain.BookingSheet) {
	if closer, ok := sheet.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("closing workbook failed", logging.ErrKey, err)
		}
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sokopay/sokotrack/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal: http.StatusInternalServerError,

	domain.ErrOrderNotFound: http.StatusNotFound,
	domain.ErrViewNotOpen:   http.StatusNotFound,

	domain.ErrBadRequest: http.StatusBadRequest,
	domain.ErrTransport:  http.StatusBadGateway,

	domain.ErrValidation:    http.StatusUnprocessableEntity,
	domain.ErrStateConflict: http.StatusConflict,
	domain.ErrBusy:          http.StatusTooManyRequests,

	domain.ErrConfirmationRequired: http.StatusPreconditionRequired,
	domain.ErrConfirmationInvalid:  http.StatusForbidden,
}

// statusForError resolves wrapped sentinels too; validation errors carry
// detail around the sentinel.
func statusForError(err error) (int, bool) {
	for sentinel, status := range errorStatusMap {
		if errors.Is(err, sentinel) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type errorResp struct {
	Error string `json:"error"`
}

// handleError sends the mapped status for a failed operation. Nothing in
// this layer panics across the boundary; every outcome is a mapped status.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusForError(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, errorResp{Error: err.Error()})
}

func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

// Stable wire error codes.
const (
	CodeMissingQRCode    = "MISSING_QR_CODE"
	CodeInvalidQRCode    = "INVALID_QR_CODE"
	CodeInvalidSession   = "INVALID_SESSION"
	CodeSessionExpired   = "SESSION_EXPIRED"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeDishNotFound     = "DISH_NOT_FOUND"
	CodeDishUnavailable  = "DISH_UNAVAILABLE"
	CodeOrderNotFound    = "ORDER_NOT_FOUND"
	CodeTableNotFound    = "TABLE_NOT_FOUND"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeMenuNotFound     = "MENU_NOT_FOUND"
	CodeDuplicateEntry   = "DUPLICATE_ENTRY"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeInternalError    = "INTERNAL_SERVER_ERROR"
)

// respondServiceError maps the workflow's typed errors onto HTTP status
// and wire codes. Unrecognized errors become a generic 500; the concrete
// error is logged but never sent to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQRCode):
		utils.RespondError(c, http.StatusUnauthorized, CodeInvalidQRCode, err.Error())
	case errors.Is(err, services.ErrSessionExpired):
		utils.RespondError(c, http.StatusUnauthorized, CodeSessionExpired, err.Error())
	case errors.Is(err, services.ErrSessionNotFound):
		// Outside DELETE /sessions/:id, a missing session reads as an
		// invalid credential.
		utils.RespondError(c, http.StatusUnauthorized, CodeInvalidSession, "invalid or expired session")
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice):
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		utils.RespondError(c, http.StatusBadRequest, CodeInvalidStatus, err.Error())
	case errors.Is(err, services.ErrDishNotFound):
		utils.RespondError(c, http.StatusNotFound, CodeDishNotFound, err.Error())
	case errors.Is(err, services.ErrDishUnavailable):
		utils.RespondError(c, http.StatusBadRequest, CodeDishUnavailable, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, CodeOrderNotFound, err.Error())
	case errors.Is(err, services.ErrTableNotFound):
		utils.RespondError(c, http.StatusNotFound, CodeTableNotFound, err.Error())
	case errors.Is(err, services.ErrCategoryNotFound):
		utils.RespondError(c, http.StatusNotFound, CodeCategoryNotFound, err.Error())
	case errors.Is(err, services.ErrMenuNotFound):
		utils.RespondError(c, http.StatusNotFound, CodeMenuNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateEntry):
		utils.RespondError(c, http.StatusConflict, CodeDuplicateEntry, err.Error())
	default:
		utils.ErrorLogger.WithError(err).Error("unhandled service error")
		utils.RespondError(c, http.StatusInternalServerError, CodeInternalError, "an unexpected error occurred")
	}
}

package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/apperr"
	"github.com/civilapp/user-management/internal/logger"
	"github.com/civilapp/user-management/internal/web/response"
)

const (
	// MsgPermissionDenied is the fixed message for authorization denials.
	MsgPermissionDenied = "You do not have permissions to perform this activity"
	// MsgValidationError is the fixed message for input validation failures.
	MsgValidationError = "Validation error"
	// MsgInternalServerError is the fixed message for unclassified failures.
	MsgInternalServerError = "Internal Server Error"

	// errorHandlerLogger is the logger name of the error handler.
	errorHandlerLogger = "errorhandler"
)

// ErrorHandler is the single interception point for every error escaping a
// handler. It classifies the error most-specific-first and always responds
// with the uniform envelope; raw stack traces never reach the caller.
// Each failure is logged at warn level before the response is built.
func ErrorHandler(c *fiber.Ctx, err error) error {
	warnLog := logger.Named(errorHandlerLogger)

	// declared business exception, checked before any generic branch
	var businessErr *apperr.Error
	if errors.As(err, &businessErr) {
		warnLog.Warn().Msgf("Custom Error: %v", err)

		return response.Error(c, businessErr.Message, businessErr.Data, businessErr.Status)
	}

	// authorization denial
	if errors.Is(err, apperr.ErrPermissionDenied) {
		warnLog.Warn().Msgf("Permission Denied: %v", err)

		return response.Error(c, MsgPermissionDenied, err.Error(), fiber.StatusForbidden)
	}

	// input/domain validation, including constraint violations surfaced by
	// the storage layer
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) ||
		errors.Is(err, apperr.ErrValidation) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) {
		warnLog.Warn().Msgf("Validation Error: %v", err)

		return response.Error(c, MsgValidationError, err.Error(), fiber.StatusBadRequest)
	}

	// router-level errors (404, 405, oversized body, ...) keep their status
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		warnLog.Warn().Msgf("Exception Occured: %v", err)

		return response.Error(c, fiberErr.Message, nil, fiberErr.Code)
	}

	// everything else is an unexpected failure; the error text goes into
	// data as a debug aid, the message stays generic
	warnLog.Warn().Msgf("Exception Occured: %v", err)

	return response.Error(c, MsgInternalServerError, err.Error(), fiber.StatusInternalServerError)
}

package handlers

import (
	"errors"
	"net/http"

	"placement_service/internal/usecase"
	"placement_service/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
}

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrEmptyIDs), errors.Is(err, usecase.ErrInvalidConsultation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPatch):
		return pkg.NewDomainErrorSimple("EMPTY_PATCH", "No fields to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPracticeApplicationNotFound):
		return pkg.NewDomainErrorSimple("PRACTICE_APPLICATION_NOT_FOUND", "Practice application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsultationNotFound):
		return pkg.NewDomainErrorSimple("CONSULTATION_NOT_FOUND", "Consultation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRequestFailed):
		return pkg.NewDomainError("PAYMENT_REQUEST_FAILED", "Payment request could not be created", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

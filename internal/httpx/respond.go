package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps the error taxonomy to HTTP statuses and writes the shared
// error response shape.
func WriteError(w http.ResponseWriter, traceID string, err error) {
	resp := dto.ErrorResponse{
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}

	switch {
	case isValidation(err):
		ve, _ := apperrors.IsValidationError(err)
		resp.Status = http.StatusBadRequest
		if ve.Code == apperrors.CodeAuthRequired {
			resp.Status = http.StatusUnauthorized
		}
		resp.Code = ve.Code
		resp.Message = ve.Message
		resp.Details = ve.Details
	case isNotFound(err):
		nf, _ := apperrors.IsNotFoundError(err)
		resp.Status = http.StatusNotFound
		resp.Message = nf.Message
	case isConflict(err):
		ce, _ := apperrors.IsConflictError(err)
		resp.Status = http.StatusConflict
		resp.Message = ce.Message
	case isForbidden(err):
		fe, _ := apperrors.IsForbiddenError(err)
		resp.Status = http.StatusForbidden
		resp.Message = fe.Message
	case isCollaborator(err):
		ce, _ := apperrors.IsCollaboratorError(err)
		resp.Status = http.StatusBadGateway
		resp.Message = ce.Error()
	case isOrderCreation(err):
		oe, _ := apperrors.IsOrderCreationError(err)
		resp.Status = http.StatusInternalServerError
		resp.Message = oe.Message
	default:
		resp.Status = http.StatusInternalServerError
		resp.Message = "internal server error"
	}

	WriteJSON(w, resp.Status, resp)
}

func isValidation(err error) bool {
	_, ok := apperrors.IsValidationError(err)
	return ok
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}

func isConflict(err error) bool {
	_, ok := apperrors.IsConflictError(err)
	return ok
}

func isForbidden(err error) bool {
	_, ok := apperrors.IsForbiddenError(err)
	return ok
}

func isCollaborator(err error) bool {
	_, ok := apperrors.IsCollaboratorError(err)
	return ok
}

func isOrderCreation(err error) bool {
	_, ok := apperrors.IsOrderCreationError(err)
	return ok
}

package handler

import (
	"errors"
	"net/http"

	"hospital-bed-backend/internal/apperrors"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses: validation failures to
// 400, missing records to 404, duplicate/conflict outcomes to 409 and
// everything else to 500.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	var dupName *apperrors.DuplicateNameError
	var dupAssign *apperrors.DuplicateAssignmentError

	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &dupName), errors.As(err, &dupAssign):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrBedInUse):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

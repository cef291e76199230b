package employeeerrors

import (
	"net/http"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeConflict = apperror.New(
		apperror.CodeConflict,
		"Generated employee code already exists, please retry the registration",
		http.StatusConflict,
	)
	ErrCodeSequenceExhausted = apperror.New(
		apperror.CodeInternalError,
		"Employee code sequence exceeded its padded width",
		http.StatusInternalServerError,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hire date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Active or Inactive",
		http.StatusBadRequest,
	)
)

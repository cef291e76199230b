package inventoryerrors

import (
	"net/http"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Inventory item not found",
		http.StatusNotFound,
	)
	ErrSerialNumberTaken = apperror.New(
		apperror.CodeConflict,
		"An item with this serial number already exists",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Selected employee does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

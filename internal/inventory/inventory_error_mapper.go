package inventory

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	inventoryerrors "github.com/Jamesakeluru/IHRIS/internal/inventory/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inventoryerrors.ErrItemNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_item_serial_number" {
				return inventoryerrors.ErrSerialNumberTaken
			}
		case "23503":
			return inventoryerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_item_serial_number") {
		return inventoryerrors.ErrSerialNumberTaken
	}
	if strings.Contains(errMsg, "foreign key constraint") {
		return inventoryerrors.ErrEmployeeNotFound
	}

	return err
}

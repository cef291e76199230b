package leave

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	leaveerrors "github.com/Jamesakeluru/IHRIS/internal/leave/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return leaveerrors.ErrEmployeeNotFound
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return leaveerrors.ErrEmployeeNotFound
	}

	return err
}

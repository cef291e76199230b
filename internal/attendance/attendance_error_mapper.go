package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	attendanceerrors "github.com/Jamesakeluru/IHRIS/internal/attendance/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	// 23503 = foreign_key_violation: the posted employee id has no row
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return attendanceerrors.ErrEmployeeNotFound
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return attendanceerrors.ErrEmployeeNotFound
	}

	return err
}

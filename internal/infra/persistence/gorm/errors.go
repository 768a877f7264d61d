// Package gormpersistence implements the repository interfaces on GORM and
// MySQL.
package gormpersistence

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/adithya2152/devconnect/internal/repository"
)

const mysqlDuplicateEntry = 1062

// mapWriteError translates driver-level unique-constraint violations into
// repository.ErrDuplicateEntry so callers never match on mysql error codes.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return repository.ErrDuplicateEntry
	}
	return err
}

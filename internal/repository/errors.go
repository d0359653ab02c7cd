package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды из https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

// IsPgErrorWithCode сообщает, является ли err ошибкой постгреса с
// заданным кодом. Репозитории используют это для маппинга кодов БД в
// доменные sentinel-ошибки.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code
}

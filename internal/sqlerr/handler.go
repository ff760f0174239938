package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of err, or Other when err carries no *Error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Classify returns the normalized form of err when it wraps a PostgreSQL
// error, and nil otherwise.
func Classify(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}
	return nil
}

// GenerateErrorCode builds a <DOMAIN>_<ACTION> code such as
// SHOP_ALREADY_EXISTS from the table name and error category.
func GenerateErrorCode(tableName string, code Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// Describe renders a readable summary of a classified error for logs.
//
//	"Shop Title is required"
func Describe(sqlErr *Error) string {
	entity := humanizeText(singular(sqlErr.TableName))
	if entity == "" {
		entity = "Record"
	}
	column := humanizeText(sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("%s references a missing record", entity)
	case UniqueViolation:
		return fmt.Sprintf("%s already exists", entity)
	case NotNullViolation:
		if column == "" {
			column = "Field"
		}
		return fmt.Sprintf("%s %s is required", entity, column)
	case CheckViolation:
		return fmt.Sprintf("%s values do not meet required conditions", entity)
	case InvalidText:
		return fmt.Sprintf("%s input has an invalid format", entity)
	default:
		return "database error"
	}
}

func singular(s string) string {
	if strings.HasSuffix(s, "s") && len(s) > 1 {
		return s[:len(s)-1]
	}
	return s
}

// humanizeText turns snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a database error into the *errs.HTTPError rendered
// to the client.
//
//   - *errs.HTTPError is returned unchanged
//   - no-rows errors become 404 "Shop not found"
//   - PostgreSQL errors become an opaque 500 tagged with a generated code
//   - anything else becomes an opaque 500
func HandleError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Shop not found")
	}

	if sqlErr := Classify(err); sqlErr != nil {
		return errs.NewInternalServerError().WithCode(GenerateErrorCode(sqlErr.TableName, sqlErr.Code))
	}

	return errs.NewInternalServerError()
}

package sqlerr

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23502": NotNullViolation,
		"23514": CheckViolation,
		"22P02": InvalidText,
		"42P01": Other,
		"":      Other,
	}
	for state, want := range tests {
		if got := MapCode(state); got != want {
			t.Errorf("MapCode(%q) = %q, want %q", state, got, want)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	if got := MapSeverity("FATAL"); got != SeverityFatal {
		t.Fatalf("expected FATAL, got %q", got)
	}
	if got := MapSeverity("whatever"); got != SeverityError {
		t.Fatalf("expected unknown severity to fall back to ERROR, got %q", got)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"shops", UniqueViolation, "SHOP_ALREADY_EXISTS"},
		{"shops", NotNullViolation, "SHOP_REQUIRED"},
		{"shops", ForeignKeyViolation, "SHOP_NOT_FOUND"},
		{"shops", CheckViolation, "SHOP_INVALID"},
		{"", Other, "RECORD_ERROR"},
	}
	for _, tt := range tests {
		if got := GenerateErrorCode(tt.table, tt.code); got != tt.want {
			t.Errorf("GenerateErrorCode(%q, %q) = %q, want %q", tt.table, tt.code, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(&Error{Code: NotNullViolation, TableName: "shops", ColumnName: "title"})
	if got != "Shop Title is required" {
		t.Fatalf("unexpected description %q", got)
	}
	got = Describe(&Error{Code: UniqueViolation})
	if got != "Record already exists" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestHandleError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR", TableName: "shops", Message: "duplicate key"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:       "http error passes through",
			err:        pkgerrors.Wrap(errs.NewNotFoundError("Shop not found"), "service"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantBody:   "Shop not found",
		},
		{
			name:       "pgx no rows",
			err:        pkgerrors.Wrap(pgx.ErrNoRows, "query"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantBody:   "Shop not found",
		},
		{
			name:       "database/sql no rows",
			err:        sql.ErrNoRows,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantBody:   "Shop not found",
		},
		{
			name:       "unique violation stays opaque",
			err:        pkgerrors.Wrap(pgErr, "insert shop"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SHOP_ALREADY_EXISTS",
			wantBody:   errs.KindInternal,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantBody:   errs.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HandleError(tt.err)
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Error() != tt.wantBody {
				t.Fatalf("error = %q, want %q", got.Error(), tt.wantBody)
			}
		})
	}
}

func TestClassifyUnwraps(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "shops", ColumnName: "title"}
	sqlErr := Classify(pkgerrors.Wrap(pgErr, "insert"))
	if sqlErr == nil || sqlErr.Code != NotNullViolation {
		t.Fatalf("expected not-null classification, got %+v", sqlErr)
	}
	if !errors.Is(sqlErr, pgErr) {
		t.Fatalf("expected *Error to unwrap to the driver error")
	}
	if ErrCode(sqlErr) != NotNullViolation {
		t.Fatalf("expected ErrCode to read the category")
	}
	if Classify(errors.New("plain")) != nil {
		t.Fatalf("expected nil for non-database errors")
	}
}

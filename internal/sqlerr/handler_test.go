package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/errs"
)

func asHTTP(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	}

	httpErr := asHTTP(t, HandleError(fmt.Errorf("insert user: %w", pgErr)))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", TableName: "resonances", ColumnName: "whisper_id"}

	httpErr := asHTTP(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RESONANCE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Whisper does not exist", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502", TableName: "reflections", ColumnName: "content"}

	httpErr := asHTTP(t, HandleError(pgErr))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "content", httpErr.Errors[0].Field)
	assert.Equal(t, "The Content is required", httpErr.Message)
}

func TestHandleError_NotFound(t *testing.T) {
	httpErr := asHTTP(t, HandleError(NotFound("whispers")))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Whisper not found", httpErr.Message)

	httpErr = asHTTP(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, "Resource not found", httpErr.Message)

	httpErr = asHTTP(t, HandleError(fmt.Errorf("lookup: %w", sql.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_PassThroughAndFallback(t *testing.T) {
	original := errs.NewForbiddenError("not yours", true)
	assert.Same(t, original, HandleError(original))

	httpErr := asHTTP(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	httpErr = asHTTP(t, HandleError(&pgconn.PgError{Code: "40P01"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("XX000"))

	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("weird"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514"})
	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
}

func TestEntityNamesForSchemaTables(t *testing.T) {
	assert.Equal(t, "whisper", entityFor("network_whispers"))
	assert.Equal(t, "session", entityFor("user_sessions"))
	assert.Equal(t, "widget", entityFor("widgets"))

	httpErr := asHTTP(t, HandleError(NotFound("network_whispers")))
	assert.Equal(t, "Whisper not found", httpErr.Message)

	pgErr := &pgconn.PgError{Code: "23505", TableName: "whisper_resonances", ConstraintName: "whisper_resonances_pkey"}
	httpErr = asHTTP(t, HandleError(pgErr))
	assert.Equal(t, "RESONANCE_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Resonance with this identifier already exists", httpErr.Message)
}

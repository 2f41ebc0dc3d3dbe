package service

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/skyless/internal/errs"
)

// actingUser maps a missing acting user to 401. Other errors pass through.
func actingUser(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewUnauthorizedError("User not found", true)
	}
	return err
}

func fieldError(field, message string) *errs.HTTPError {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
		{Field: field, Error: message},
	}, nil)
}

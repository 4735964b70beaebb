package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "calendar-assistant/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewBadRequestError("bad").WithDetails([]string{"x"})
	if err.Code != http.StatusBadRequest || err.Error() != "bad" {
		t.Errorf("unexpected error: %+v", err)
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Details == nil {
		t.Errorf("expected HTTPError through wrapping")
	}
}

package gcalendar

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

var (
	// ErrUnauthorized means the stored credentials are missing, expired or revoked.
	ErrUnauthorized = errors.New("google calendar authorization failed")
	// ErrNoToken means installed-app credentials were given but no token file exists.
	ErrNoToken = errors.New("no OAuth token found")
)

// classify marks authorization failures with ErrUnauthorized and leaves other errors as they are.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		case http.StatusForbidden:
			if !isQuotaError(apiErr) {
				return fmt.Errorf("%w: %w", ErrUnauthorized, err)
			}
		}
	}

	return err
}

func isQuotaError(apiErr *googleapi.Error) bool {
	for _, item := range apiErr.Errors {
		reason := strings.ToLower(item.Reason)
		if strings.Contains(reason, "ratelimit") || strings.Contains(reason, "quota") {
			return true
		}
	}
	return false
}

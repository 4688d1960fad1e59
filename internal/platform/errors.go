package platform

import (
	"errors"
	"fmt"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

// ErrUnknownPlatform is returned when no scraper is registered for a platform.
var ErrUnknownPlatform = errors.New("unknown platform")

// TransientFetchError reports a page that could not be loaded. Callers treat
// it as an empty result for that date.
type TransientFetchError struct {
	Platform domain.PlatformKind
	URL      string
	Err      error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("%s fetch %s: %v", e.Platform, e.URL, e.Err)
}

func (e *TransientFetchError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is or wraps a TransientFetchError.
func IsTransient(err error) bool {
	var tfe *TransientFetchError
	return errors.As(err, &tfe)
}

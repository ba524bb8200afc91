package api

import "errors"

var ErrNotAuthenticated = errors.New("api: not authenticated")

// IsStatus reports whether err is a platform Error with the given
// HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

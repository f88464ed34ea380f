package service

import "errors"

// ErrStoreUnavailable wraps a failed database call. Callers surface it to the
// client without retrying; no retry policy exists anywhere in this system.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrInvalidCredentials is returned on a failed login attempt. Unknown email
// and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrAccessDenied is returned when valid credentials belong to an account
// without the admin role.
var ErrAccessDenied = errors.New("access denied")

// ValidationError rejects a request before any store call is made. Code is a
// short machine-readable identifier for the first failed field, such as
// "email_required", returned verbatim to the client.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func validationErr(code string) error {
	return &ValidationError{Code: code}
}

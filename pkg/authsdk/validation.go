package authsdk

import (
	"fmt"
	"strings"
)

const requiredReason = "required"

// Username and password bounds for signup.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 50
	PasswordMinLen = 8
	PasswordMaxLen = 100
)

// Validate checks the signup request fields. Returns a map of field names to
// error messages, or nil if all fields are valid.
func (r SignupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		errs["username"] = requiredReason
	case len(username) < UsernameMinLen || len(username) > UsernameMaxLen:
		errs["username"] = fmt.Sprintf("must be %d-%d characters", UsernameMinLen, UsernameMaxLen)
	}

	switch {
	case r.Password == "":
		errs["password"] = requiredReason
	case len(r.Password) < PasswordMinLen:
		errs["password"] = fmt.Sprintf("too short (min %d)", PasswordMinLen)
	case len(r.Password) > PasswordMaxLen:
		errs["password"] = fmt.Sprintf("too long (max %d)", PasswordMaxLen)
	}

	if _, ok := errs["password"]; !ok && r.ConfirmPassword != r.Password {
		errs["confirmPassword"] = "Passwords don't match"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the signin request fields. Signin is deliberately laxer
// than signup: it only rejects shapes that could never match a stored
// credential.
func (r SigninRequest) Validate() map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		errs["username"] = requiredReason
	case len(username) < UsernameMinLen:
		errs["username"] = fmt.Sprintf("must be at least %d characters", UsernameMinLen)
	}

	if r.Password == "" {
		errs["password"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

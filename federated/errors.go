package federated

import "errors"

var (
	ErrNotConfigured = errors.New("no identity provider configured, set [federated] in config.toml")
	ErrUnknownState  = errors.New("unknown or expired login request")
	ErrMissingToken  = errors.New("login redirect carries no id_token")
	ErrMissingClaim  = errors.New("id token has no subject")
)

// LoginError is the error a provider reported on the redirect.
type LoginError struct {
	Code        string
	Description string
}

func (e *LoginError) Error() string {
	if e.Description == "" {
		return "login failed: " + e.Code
	}
	return "login failed: " + e.Code + ": " + e.Description
}

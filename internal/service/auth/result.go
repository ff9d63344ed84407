package auth

import "github.com/glibera/readlogger/internal/domain"

// AuthResult is returned by the Login operation.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLen = 32

// Validate checks settings that cleanenv tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", minJWTSecretLen))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("auth.access_token_ttl must be positive"))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.API.PageSize < 1 || c.API.PageSize > c.API.MaxPageSize {
		errs = append(errs, errors.New("api.page_size must be between 1 and api.max_page_size"))
	}

	return errors.Join(errs...)
}

// Addr returns the host:port the HTTP server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

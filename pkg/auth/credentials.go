package auth

import (
	stderrors "errors"
	"fmt"
	"strings"

	"followaudit/pkg/errors"
	"followaudit/pkg/logger"
)

// CredentialSource supplies an access token. Sources are read-only: the
// token is never written anywhere by this package.
type CredentialSource interface {
	// Name identifies the source in logs
	Name() string

	// Token returns the access token, or ErrCredentialsNotFound when the
	// source has none
	Token() (string, error)
}

// Resolver asks each source in order and returns the first token found
type Resolver struct {
	sources []CredentialSource
	logger  logger.Logger
}

// NewResolver creates a resolver over sources, in priority order
func NewResolver(log logger.Logger, sources ...CredentialSource) *Resolver {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Resolver{sources: sources, logger: log}
}

// Resolve returns the first non-empty token. When no source has one the
// error is of type missing_credential.
func (r *Resolver) Resolve() (string, error) {
	for _, source := range r.sources {
		token, err := source.Token()
		if err != nil {
			if !stderrors.Is(err, ErrCredentialsNotFound) && !stderrors.Is(err, ErrNotInteractive) {
				r.logger.WithError(err).WithField("source", source.Name()).Warn("Credential source failed")
			}
			continue
		}

		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		r.logger.DebugWithFields("Access token resolved", map[string]interface{}{
			"source": source.Name(),
			"token":  MaskToken(token),
		})
		return token, nil
	}

	names := make([]string, 0, len(r.sources))
	for _, source := range r.sources {
		names = append(names, source.Name())
	}
	return "", errors.New(errors.ErrorTypeMissingCredential, 0,
		fmt.Sprintf("no access token found (tried: %s)", strings.Join(names, ", ")))
}

// MaskToken masks all but the first 4 and last 4 characters of a token
func MaskToken(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// Errors
var (
	ErrCredentialsNotFound = stderrors.New("credentials not found")
	ErrNotInteractive      = stderrors.New("not an interactive terminal")
)

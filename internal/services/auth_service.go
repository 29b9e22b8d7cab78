package services

import (
	"context"
	"errors"
	"net/http"

	relay_errors "channa-relay/pkg/errors"
	"channa-relay/pkg/logger"
)

// Credentials are forwarded to the auth provider as received.
type Credentials struct {
	Email    string
	Password string
}

// AuthProvider is the external identity service. Responses are opaque.
type AuthProvider interface {
	SignUp(creds Credentials) (any, error)
	SignInWithPassword(creds Credentials) (any, error)
}

type AuthService struct {
	provider AuthProvider
	logger   *logger.Logger
}

func NewAuthService(provider AuthProvider, l *logger.Logger) *AuthService {
	if l == nil {
		l = logger.Nop()
	}
	return &AuthService{provider: provider, logger: l}
}

func (s *AuthService) Register(ctx context.Context, creds Credentials) (any, error) {
	res, err := s.provider.SignUp(creds)
	if err != nil {
		err = asProviderError(err)
		s.logFailure(ctx, "sign up failed", err)
		return nil, err
	}
	return res, nil
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (any, error) {
	res, err := s.provider.SignInWithPassword(creds)
	if err != nil {
		err = asProviderError(err)
		s.logFailure(ctx, "sign in failed", err)
		return nil, err
	}
	return res, nil
}

// asProviderError keeps errors from adapters that did not classify them
// inside the provider kinds, so they still answer 400.
func asProviderError(err error) error {
	var perr *relay_errors.ProviderError
	if errors.As(err, &perr) {
		return err
	}
	return relay_errors.Rejected("auth", err)
}

func (s *AuthService) logFailure(ctx context.Context, msg string, err error) {
	// rejected credentials are routine, a dead provider is not
	if errors.Is(err, relay_errors.ErrProviderUnavailable) {
		s.logger.ErrorCtx(ctx, msg, err)
		return
	}
	s.logger.WarnCtx(ctx, msg, err)
}

// HTTPStatus maps an error to the status the HTTP layer answers with.
// Every provider failure collapses into 400.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, relay_errors.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, relay_errors.ErrProviderRejected),
		errors.Is(err, relay_errors.ErrProviderUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package identity forwards sign up and sign in calls to Supabase Auth.
package identity

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"channa-relay/config"
	"channa-relay/internal/services"
	relay_errors "channa-relay/pkg/errors"

	"github.com/supabase-community/auth-go"
	"github.com/supabase-community/auth-go/types"
	"github.com/tidwall/gjson"
)

const providerName = "supabase"

type Client struct {
	auth auth.Client
}

// NewClient expects the project URL (https://<ref>.supabase.co); the auth
// API lives under /auth/v1 of it.
func NewClient(cfg config.AuthConfig) *Client {
	authURL := strings.TrimRight(cfg.URL, "/") + "/auth/v1"
	return &Client{auth: auth.New("", cfg.Key).WithCustomAuthURL(authURL)}
}

func (c *Client) SignUp(creds services.Credentials) (any, error) {
	res, err := c.auth.Signup(types.SignupRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

func (c *Client) SignInWithPassword(creds services.Credentials) (any, error) {
	res, err := c.auth.SignInWithEmailPassword(creds.Email, creds.Password)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

func classify(err error) error {
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return relay_errors.Unavailable(providerName, err)
	}
	return relay_errors.Rejected(providerName, &apiError{message: errorMessage(err.Error()), cause: err})
}

// GoTrue error bodies put the human readable text under one of these keys,
// depending on the endpoint and server version.
var messageKeys = []string{"msg", "error_description", "message"}

// errorMessage pulls the GoTrue message out of auth-go's
// "response status code N: <body>" text. Anything else comes back as is.
func errorMessage(text string) string {
	idx := strings.Index(text, "{")
	if idx < 0 {
		return text
	}
	body := text[idx:]
	if !gjson.Valid(body) {
		return text
	}
	for _, key := range messageKeys {
		if v := gjson.Get(body, key); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return text
}

// apiError is a GoTrue error answer reduced to its message.
type apiError struct {
	message string
	cause   error
}

func (e *apiError) Error() string {
	return e.message
}

func (e *apiError) Unwrap() error {
	return e.cause
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"guestpass/config"
	"guestpass/internal/domain/constants"
	"guestpass/internal/errors"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// pushAuthenticator checks the OIDC token Google attaches to push requests.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
type pushAuthenticator struct {
	audience string
	validate tokenValidator
}

// newPushAuthenticator returns nil when pushes are not signed: local
// publishers and developer machines.
func newPushAuthenticator(cfg *config.Config) *pushAuthenticator {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderGoogle || cfg.Env.Env == constants.EnvDevelop {
		return nil
	}

	return &pushAuthenticator{audience: cfg.PubSub.PushAudience, validate: idtoken.Validate}
}

func (a *pushAuthenticator) authenticate(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, a.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}

// audienceFor defaults to the URL the push was delivered to.
func (a *pushAuthenticator) audienceFor(req *http.Request) string {
	if a.audience != "" {
		return a.audience
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + req.Host + req.URL.Path
}

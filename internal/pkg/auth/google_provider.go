package auth

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// defaultTokenLifetime is assumed when the provider does not state one.
const defaultTokenLifetime = time.Hour

// GoogleTokenProvider fetches access tokens with Google application default credentials
// or an explicit service account key file.
type GoogleTokenProvider struct {
	scope           string
	credentialsFile string

	once   sync.Once
	source oauth2.TokenSource
	err    error
}

// NewGoogleTokenProvider creates a provider for the given scope. credentialsFile may be empty.
func NewGoogleTokenProvider(scope, credentialsFile string) *GoogleTokenProvider {
	return &GoogleTokenProvider{scope: scope, credentialsFile: credentialsFile}
}

// tokenSource loads credentials once. The oauth2 source outlives any single request,
// so it is bound to the background context.
func (p *GoogleTokenProvider) tokenSource() (oauth2.TokenSource, error) {
	p.once.Do(func() {
		var creds *google.Credentials
		if p.credentialsFile != "" {
			data, err := os.ReadFile(p.credentialsFile)
			if err != nil {
				p.err = fmt.Errorf("failed to read credentials file: %w", err)
				return
			}
			creds, p.err = google.CredentialsFromJSON(context.Background(), data, p.scope)
		} else {
			creds, p.err = google.FindDefaultCredentials(context.Background(), p.scope)
		}
		if p.err != nil {
			p.err = fmt.Errorf("failed to load google credentials: %w", p.err)
			return
		}
		p.source = creds.TokenSource
	})
	return p.source, p.err
}

// FetchToken implements TokenProvider.
func (p *GoogleTokenProvider) FetchToken(_ context.Context) (string, time.Duration, error) {
	source, err := p.tokenSource()
	if err != nil {
		return "", 0, err
	}

	token, err := source.Token()
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch access token: %w", err)
	}

	return token.AccessToken, tokenLifetime(token, time.Now()), nil
}

// tokenLifetime is the time the token has left. Reused tokens keep their
// original expires_in, so Expiry takes precedence.
func tokenLifetime(token *oauth2.Token, now time.Time) time.Duration {
	if !token.Expiry.IsZero() {
		return token.Expiry.Sub(now)
	}
	if token.ExpiresIn > 0 {
		return time.Duration(token.ExpiresIn) * time.Second
	}
	return defaultTokenLifetime
}

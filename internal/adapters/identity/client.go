package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
)

// Identity is the verified profile the auth provider returns for a
// session id, including the opaque token our sessions will be keyed on.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Client exchanges a provider session id for a verified identity.
type Client interface {
	Exchange(ctx context.Context, sessionID string) (*Identity, error)
}

type httpClient struct {
	exchangeURL string
	client      *http.Client
}

func NewHTTPClient(exchangeURL string, timeout time.Duration) Client {
	return &httpClient{exchangeURL: exchangeURL, client: &http.Client{Timeout: timeout}}
}

func (c *httpClient) Exchange(ctx context.Context, sessionID string) (*Identity, error) {
	var identity Identity

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exchangeURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("X-Session-ID", sessionID)

		res, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		// Provider rejection is final; only transport errors retry.
		if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
			return backoff.Permanent(domain.ErrUpstreamAuth)
		}
		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("identity exchange: unexpected status %d", res.StatusCode)
		}
		if err := json.NewDecoder(res.Body).Decode(&identity); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxElapsedTime = 3 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	if identity.Email == "" || identity.SessionToken == "" {
		return nil, domain.ErrUpstreamAuth
	}
	return &identity, nil
}

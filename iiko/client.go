package iiko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 60 * time.Second

// Session tokens are opaque but are always a single hex/UUID-ish word. Anything else
// (HTML error pages, 'wrong login or password', etc.) is an authentication failure.
var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Client is a thin wrapper around the iiko 'resto' REST API. All calls are sequential
// and blocking - the API keys out concurrent sessions for the same account.
type Client struct {
	baseURL  string
	login    string
	password string
	client   *http.Client
}

func NewClient(baseURL, login, password string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		login:    login,
		password: password,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Login authenticates against the /auth endpoint and returns the session token. The
// endpoint replies with the bare token as the response body - a non-200 status or a
// body that does not look like a token is an error, not a token.
func (c *Client) Login(ctx context.Context) (string, error) {
	logrus.Debugf("iiko login: connecting to %s", c.baseURL)

	body, err := c.get(ctx, "/auth", url.Values{
		"login": []string{c.login},
		"pass":  []string{c.password},
	})
	if err != nil {
		return "", fmt.Errorf("iiko login failed (%w)", err)
	}

	token := strings.TrimSpace(string(body))
	if token == "" || !tokenPattern.MatchString(token) {
		return "", fmt.Errorf("iiko auth response is not a session token (%q)", abbreviate(token))
	}

	logrus.Infof("iiko login successful, token length %v", len(token))

	return token, nil
}

// Logout releases the session token against the /logout endpoint. The token must not
// be reused afterwards - iiko licensing counts open sessions and an unreleased token
// blocks a license slot until it expires.
func (c *Client) Logout(ctx context.Context, token string) error {
	logrus.Debugf("iiko logout")

	body, err := c.get(ctx, "/logout", url.Values{
		"key": []string{token},
	})
	if err != nil {
		return fmt.Errorf("iiko logout failed (%w)", err)
	}

	logrus.Infof("iiko logout successful (%v)", abbreviate(strings.TrimSpace(string(body))))

	return nil
}

// Session invokes f with a fresh session token, logging out afterwards whether or not
// f succeeds. Logout failures are logged, not returned - the session will eventually
// expire server-side and the result of f is the interesting error.
func (c *Client) Session(ctx context.Context, f func(token string) error) error {
	token, err := c.Login(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err := c.Logout(ctx, token); err != nil {
			logrus.Warnf("%v", err)
		}
	}()

	return f(token)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	uri := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.client.Do(rq)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %v (%v)", path, response.StatusCode, abbreviate(strings.TrimSpace(string(body))))
	}

	return body, nil
}

func abbreviate(v string) string {
	if len(v) > 64 {
		return v[:64] + "..."
	}

	return v
}

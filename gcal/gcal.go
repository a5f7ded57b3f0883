// Package gcal handles the Google Calendar credential lifecycle for pros:
// exchanging an authorization code for tokens, keeping the stored access
// token fresh, and inserting events into the pro's primary calendar.
package gcal

import (
	"context"
	"errors"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
)

type Client struct {
	db   *gorm.DB
	conf *oauth2.Config
}

// New builds a client from the environment-supplied OAuth credentials.
func New(db *gorm.DB) *Client {
	return NewWithConfig(db, &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	})
}

func NewWithConfig(db *gorm.DB, conf *oauth2.Config) *Client {
	return &Client{db: db, conf: conf}
}

// Exchange trades an authorization code for tokens and stores them on the
// pro row. The provider reports expires_in in seconds; oauth2 computes the
// expiry timestamp from it.
func (c *Client) Exchange(ctx context.Context, pro *models.Pro, code string) (*oauth2.Token, error) {
	tok, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	// Re-consent may omit the refresh token; keep the one already stored.
	if tok.RefreshToken == "" {
		tok.RefreshToken = pro.GoogleRefreshToken
	}
	if err := c.storeToken(pro, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// CreateEvent inserts an event into the pro's primary calendar. An expired
// access token is renewed through the stored refresh token first, and the
// renewed credentials are written back to the pro row.
func (c *Client) CreateEvent(ctx context.Context, pro *models.Pro, event *calendar.Event) (string, error) {
	stored := &oauth2.Token{
		AccessToken:  pro.GoogleAccessToken,
		RefreshToken: pro.GoogleRefreshToken,
		Expiry:       pro.GoogleAccessExpires,
	}
	ts := c.conf.TokenSource(ctx, stored)

	fresh, err := ts.Token()
	if err != nil {
		return "", err
	}
	if fresh.AccessToken != stored.AccessToken {
		if err := c.storeToken(pro, fresh); err != nil {
			return "", err
		}
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return "", err
	}
	created, err := srv.Events.Insert("primary", event).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (c *Client) storeToken(pro *models.Pro, tok *oauth2.Token) error {
	pro.GoogleAccessToken = tok.AccessToken
	pro.GoogleAccessExpires = tok.Expiry
	pro.GoogleRefreshToken = tok.RefreshToken
	return c.db.Model(pro).Updates(map[string]any{
		"google_access_token":   tok.AccessToken,
		"google_access_expires": tok.Expiry,
		"google_refresh_token":  tok.RefreshToken,
	}).Error
}

// ProviderError unpacks the status code and raw body of a provider
// rejection so handlers can pass them through verbatim. ok is false for
// transport-level failures that never reached the provider.
func ProviderError(err error) (status int, body []byte, ok bool) {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		return rErr.Response.StatusCode, rErr.Body, true
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code, []byte(gErr.Body), true
	}
	return 0, nil, false
}

package sdk

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/ONSdigital/dp-applications-api/models"
)

// LoginResponse is the payload returned by a successful login, carrying the
// session token to present on subsequent requests
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// Login exchanges an email and password for a session token
func (c *Client) Login(ctx context.Context, email, password string) (loginResponse LoginResponse, err error) {
	loginResponse = LoginResponse{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "login")
	if err != nil {
		return loginResponse, err
	}

	payload := models.LoginRequest{Email: email, Password: password}

	// Make request
	resp, err := c.DoAuthenticatedPayloadRequest(ctx, Headers{}, http.MethodPost, uri, payload)
	if err != nil {
		return loginResponse, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &loginResponse)

	return loginResponse, err
}

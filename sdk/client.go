package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	service = "dp-applications-api"
)

type Client struct {
	hcCli *health.Client
}

// QueryParams represents the pagination parameters accepted by the list endpoints
type QueryParams struct {
	Offset int
	Limit  int
}

// Validate validates tht no negative values are provided for limit or offset
func (q *QueryParams) Validate() error {
	if q.Offset < 0 || q.Limit < 0 {
		return errors.New("negative offsets or limits are not allowed")
	}
	return nil
}

// Checker calls applications api health endpoint and returns a check object to the caller
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// Health returns the underlying Healthcheck Client for this API client
func (c *Client) Health() *health.Client {
	return c.hcCli
}

// URL returns the URL used by this client
func (c *Client) URL() string {
	return c.hcCli.URL
}

// New creates a new instance of Client for the service
func New(applicationsAPIURL string) *Client {
	return &Client{
		hcCli: health.NewClient(service, applicationsAPIURL),
	}
}

// NewWithHealthClient creates a new instance of service API Client, reusing the URL and Clienter
// from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// DoAuthenticatedGetRequest executes a GET against the full URL held in uri.Path,
// adding the caller's session headers and any query parameters held in uri.RawQuery
func (c *Client) DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (resp *http.Response, err error) {
	target := uri.Path
	if uri.RawQuery != "" {
		target = target + "?" + uri.RawQuery
	}

	req, err := http.NewRequest(http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, err
	}
	headers.add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// DoAuthenticatedPayloadRequest executes a request carrying a JSON body against the
// full URL held in uri.Path, adding the caller's session headers
func (c *Client) DoAuthenticatedPayloadRequest(ctx context.Context, headers Headers, method string, uri *url.URL, payload interface{}) (resp *http.Response, err error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, uri.Path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	headers.add(req)

	return c.hcCli.Client.Do(ctx, req)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}

// Takes the input http response and unmarshalls the body to the input target
func unmarshalResponseBody(response *http.Response, target interface{}) (err error) {
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(response)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, &target)
}

// errorFromResponse reads the error message carried in a non-2xx response body.
// The api writes errors as plain text; a JSON encoded string is accepted too.
func errorFromResponse(response *http.Response) error {
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("applications api returned status %d", response.StatusCode)
	}

	var message string
	if jsonErr := json.Unmarshal(b, &message); jsonErr != nil {
		message = strings.TrimSpace(string(b))
	}
	if message == "" {
		return fmt.Errorf("applications api returned status %d", response.StatusCode)
	}

	return errors.New(message)
}

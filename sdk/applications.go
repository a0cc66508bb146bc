package sdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ONSdigital/dp-applications-api/models"
)

// ApplicationsList represents an object containing a list of paginated applications. This struct is based
// on the `pagination.page` struct which is returned when we call the `api.getApplications` endpoint
type ApplicationsList struct {
	Items      []models.Application `json:"items"`
	Count      int                  `json:"count"`
	Offset     int                  `json:"offset"`
	Limit      int                  `json:"limit"`
	TotalCount int                  `json:"total_count"`
}

// Application is the api's read of a single application. Commission callers
// also receive the applicant's latest scored attempt.
type Application struct {
	models.Application
	LatestAttempt *models.AttemptResult `json:"latest_attempt,omitempty"`
}

// DecisionResponse carries the application state after a decision. A repeated
// same-status decision comes back flagged unchanged.
type DecisionResponse struct {
	models.Application
	Unchanged bool `json:"unchanged,omitempty"`
}

// ApplicationsBatchProcessor is the type corresponding to a batch processing function for an ApplicationsList
type ApplicationsBatchProcessor func(ApplicationsList) (abort bool, err error)

// GetApplications returns the caller's view of the applications list. Applicants
// get their own application only; commission accounts get every application.
func (c *Client) GetApplications(ctx context.Context, headers Headers, queryParams *QueryParams) (applicationsList ApplicationsList, err error) {
	applicationsList = ApplicationsList{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications")
	if err != nil {
		return applicationsList, err
	}

	// Add query parameters to request if valid
	if queryParams != nil {
		if err := queryParams.Validate(); err != nil {
			return applicationsList, err
		}

		// Add query parameters
		query := url.Values{}
		query.Add("limit", strconv.Itoa(queryParams.Limit))
		query.Add("offset", strconv.Itoa(queryParams.Offset))
		uri.RawQuery = query.Encode()
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return applicationsList, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &applicationsList)

	return applicationsList, err
}

// GetApplication returns a single application for a given application id
func (c *Client) GetApplication(ctx context.Context, headers Headers, applicationID string) (application Application, err error) {
	application = Application{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications", applicationID)
	if err != nil {
		return application, err
	}

	// Make request
	resp, err := c.DoAuthenticatedGetRequest(ctx, headers, uri)
	if err != nil {
		return application, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &application)

	return application, err
}

// PostApplication submits the caller's application form. The api holds one
// application per account, so a second submission conflicts.
func (c *Client) PostApplication(ctx context.Context, headers Headers, form models.FormData) (application models.Application, err error) {
	application = models.Application{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications")
	if err != nil {
		return application, err
	}

	payload := models.Application{FormData: form}

	// Make request
	resp, err := c.DoAuthenticatedPayloadRequest(ctx, headers, http.MethodPost, uri, payload)
	if err != nil {
		return application, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &application)

	return application, err
}

// PutDecision applies a commission decision to the given application
func (c *Client) PutDecision(ctx context.Context, headers Headers, applicationID string, decision models.Decision) (decisionResponse DecisionResponse, err error) {
	decisionResponse = DecisionResponse{}

	// Build URI
	uri := &url.URL{}
	uri.Path, err = url.JoinPath(c.hcCli.URL, "applications", applicationID, "decision")
	if err != nil {
		return decisionResponse, err
	}

	// Make request
	resp, err := c.DoAuthenticatedPayloadRequest(ctx, headers, http.MethodPut, uri, decision)
	if err != nil {
		return decisionResponse, err
	}

	defer closeResponseBody(ctx, resp)

	// Unmarshal the response body to target
	err = unmarshalResponseBody(resp, &decisionResponse)

	return decisionResponse, err
}

// GetApplicationsInBatches retrieves all applications in concurrent batches and accumulates the results
func (c *Client) GetApplicationsInBatches(ctx context.Context, headers Headers, batchSize, maxWorkers int) (applications ApplicationsList, err error) {
	// Function to aggregate items.
	// For the first received batch, as we have the total count information, will initialise the final structure of items with a fixed size equal to TotalCount.
	// This serves two purposes:
	//   - We can guarantee, even with concurrent calls, that values are returned in the same order that the api defines them.
	//   - We do a single memory allocation for the final array, making the code more performant.
	var processBatch ApplicationsBatchProcessor = func(batch ApplicationsList) (abort bool, err error) {
		if applications.TotalCount == 0 { // first batch response being handled
			applications.TotalCount = batch.TotalCount
			applications.Items = make([]models.Application, batch.TotalCount)
		}
		for i := 0; i < len(batch.Items); i++ {
			applications.Items[i+batch.Offset] = batch.Items[i]
		}
		return false, nil
	}

	// Call the batch processor with the function to aggregate items
	if err := c.GetApplicationsBatchProcess(ctx, headers, processBatch, batchSize, maxWorkers); err != nil {
		return ApplicationsList{}, err
	}

	applications.Count = len(applications.Items)
	return applications, nil
}

// GetApplicationsBatchProcess gets the applications in batches and calls the provided function for each batch
func (c *Client) GetApplicationsBatchProcess(ctx context.Context, headers Headers, processBatch ApplicationsBatchProcessor, batchSize, maxWorkers int) error {
	// for each batch, obtain the applications starting at the provided offset
	batchGetter := func(offset int) (interface{}, int, error) {
		b, err := c.GetApplications(ctx, headers, &QueryParams{Offset: offset, Limit: batchSize})
		if err != nil {
			return nil, 0, err
		}
		return b, b.TotalCount, nil
	}

	// cast and process the batch according to the provided method
	batchProcessor := func(b interface{}) (abort bool, err error) {
		v, ok := b.(ApplicationsList)
		if !ok {
			return true, errors.New("wrong type passed to applications batch processor")
		}
		return processBatch(v)
	}

	return ProcessInConcurrentBatches(batchGetter, batchProcessor, batchSize, maxWorkers)
}

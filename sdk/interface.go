package sdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

//go:generate moq -out ./mocks/client.go -pkg mocks . Clienter

type Clienter interface {
	Checker(ctx context.Context, check *healthcheck.CheckState) error
	Health() *health.Client
	URL() string
	DoAuthenticatedGetRequest(ctx context.Context, headers Headers, uri *url.URL) (resp *http.Response, err error)
	DoAuthenticatedPayloadRequest(ctx context.Context, headers Headers, method string, uri *url.URL, payload interface{}) (resp *http.Response, err error)
	Login(ctx context.Context, email, password string) (loginResponse LoginResponse, err error)
	GetApplications(ctx context.Context, headers Headers, queryParams *QueryParams) (applicationsList ApplicationsList, err error)
	GetApplication(ctx context.Context, headers Headers, applicationID string) (application Application, err error)
	GetApplicationsInBatches(ctx context.Context, headers Headers, batchSize, maxWorkers int) (applications ApplicationsList, err error)
	GetApplicationsBatchProcess(ctx context.Context, headers Headers, processBatch ApplicationsBatchProcessor, batchSize, maxWorkers int) error
	PostApplication(ctx context.Context, headers Headers, form models.FormData) (application models.Application, err error)
	PutDecision(ctx context.Context, headers Headers, applicationID string, decision models.Decision) (decisionResponse DecisionResponse, err error)
}

package sdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	applicationID = "b7296ba8-1e9b-4f39-b312-0a2058cb7c07"
	userID        = "b0a64a94-0b0d-42b9-be02-a718ff135dcc"
)

var (
	ctx     = context.Background()
	headers = Headers{
		SessionToken: "test-session-token",
	}
)

// Tests for the `GetApplication` client method
func TestGetApplication(t *testing.T) {
	mockGetResponse := Application{
		Application: models.Application{
			ID:       applicationID,
			PublicNo: 42,
			UserID:   userID,
			FormData: models.FormData{"city": "Bristol"},
			Status:   models.StatusPending,
		},
	}

	Convey("If requested application is valid and get request returns 200", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockGetResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedApplication, err := applicationsAPIClient.GetApplication(ctx, headers, applicationID)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			expectedURI := "/applications/" + applicationID
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodGet)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, expectedURI)
		})

		Convey("Test that the caller's session is presented as a bearer token", func() {
			So(httpClient.DoCalls()[0].Req.Header.Get("Authorization"), ShouldEqual, "Bearer test-session-token")
		})

		Convey("Test that the requested application is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedApplication, ShouldResemble, mockGetResponse)
		})
	})

	Convey("If the response carries the applicant's latest scored attempt", t, func() {
		mockViewResponse := mockGetResponse
		mockViewResponse.LatestAttempt = &models.AttemptResult{
			AttemptID:    "attempt-1",
			AssessmentID: "assessment-1",
			Score:        8,
			Total:        10,
			Percent:      80,
			Passed:       true,
		}

		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockViewResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedApplication, err := applicationsAPIClient.GetApplication(ctx, headers, applicationID)

		Convey("Test that the attempt summary is returned alongside the application", func() {
			So(err, ShouldBeNil)
			So(returnedApplication, ShouldResemble, mockViewResponse)
			So(returnedApplication.LatestAttempt.Passed, ShouldBeTrue)
		})
	})

	Convey("If requested application is not valid and get request returns 404", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusNotFound, apierrors.ErrApplicationNotFound.Error(), map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.GetApplication(ctx, headers, applicationID)

		Convey("Test that an error is raised and should contain status code", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrApplicationNotFound.Error())
		})
	})

	Convey("If the request encounters a server error and returns 500", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusInternalServerError, "internal error", map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.GetApplication(ctx, headers, applicationID)

		Convey("Test that an error is raised with the correct message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "internal error")
		})
	})
}

// Tests for the `GetApplications` client method
func TestGetApplications(t *testing.T) {
	mockListResponse := ApplicationsList{
		Items: []models.Application{
			{ID: applicationID, UserID: userID, Status: models.StatusApproved},
		},
		Count:      1,
		Offset:     0,
		Limit:      20,
		TotalCount: 1,
	}

	Convey("If the list request returns 200 without query parameters", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockListResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedList, err := applicationsAPIClient.GetApplications(ctx, headers, nil)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodGet)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, "/applications")
		})

		Convey("Test that the list of applications is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedList, ShouldResemble, mockListResponse)
		})
	})

	Convey("If the list request returns 200 with query parameters", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockListResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.GetApplications(ctx, headers, &QueryParams{Offset: 1, Limit: 5})

		Convey("Test that the pagination parameters are added to the request URI", func() {
			So(err, ShouldBeNil)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, "/applications?limit=5&offset=1")
		})
	})

	Convey("If negative query parameters are provided", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockListResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.GetApplications(ctx, headers, &QueryParams{Offset: -1, Limit: 5})

		Convey("Test that the request is rejected before any call is made", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "negative offsets or limits are not allowed")
			So(httpClient.DoCalls(), ShouldHaveLength, 0)
		})
	})

	Convey("If the caller's session is rejected with 401", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusUnauthorized, apierrors.ErrUnauthorised.Error(), map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.GetApplications(ctx, headers, nil)

		Convey("Test that an error is raised with the correct message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrUnauthorised.Error())
		})
	})
}

// Tests for the `PostApplication` client method
func TestPostApplication(t *testing.T) {
	form := models.FormData{"city": "Bristol", "experience": "3 years"}

	mockCreatedResponse := models.Application{
		ID:       applicationID,
		UserID:   userID,
		FormData: form,
		Status:   models.StatusPending,
	}

	Convey("If the application is accepted and the post request returns 201", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusCreated, mockCreatedResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedApplication, err := applicationsAPIClient.PostApplication(ctx, headers, form)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodPost)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, "/applications")
			So(httpClient.DoCalls()[0].Req.Header.Get("Content-Type"), ShouldEqual, "application/json")
		})

		Convey("Test that the created application is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedApplication, ShouldResemble, mockCreatedResponse)
		})
	})

	Convey("If the caller has already submitted and the post request returns 409", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusConflict, apierrors.ErrApplicationAlreadyExists.Error(), map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.PostApplication(ctx, headers, form)

		Convey("Test that an error is raised with the correct message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrApplicationAlreadyExists.Error())
		})
	})
}

// Tests for the `PutDecision` client method
func TestPutDecision(t *testing.T) {
	decision := models.Decision{Status: models.StatusApproved, Comment: "strong submission"}

	mockDecidedResponse := DecisionResponse{
		Application: models.Application{
			ID:            applicationID,
			UserID:        userID,
			Status:        models.StatusApproved,
			StatusComment: "strong submission",
		},
	}

	Convey("If the decision is applied and the put request returns 200", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockDecidedResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedResponse, err := applicationsAPIClient.PutDecision(ctx, headers, applicationID, decision)

		Convey("Test that the request URI is constructed correctly and the correct method is used", func() {
			expectedURI := "/applications/" + applicationID + "/decision"
			So(httpClient.DoCalls()[0].Req.Method, ShouldEqual, http.MethodPut)
			So(httpClient.DoCalls()[0].Req.URL.RequestURI(), ShouldResemble, expectedURI)
		})

		Convey("Test that the decided application is returned without error", func() {
			So(err, ShouldBeNil)
			So(returnedResponse, ShouldResemble, mockDecidedResponse)
			So(returnedResponse.Unchanged, ShouldBeFalse)
		})
	})

	Convey("If the decision matches the current status", t, func() {
		mockUnchangedResponse := mockDecidedResponse
		mockUnchangedResponse.Unchanged = true

		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusOK, mockUnchangedResponse, map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		returnedResponse, err := applicationsAPIClient.PutDecision(ctx, headers, applicationID, decision)

		Convey("Test that the response is flagged unchanged", func() {
			So(err, ShouldBeNil)
			So(returnedResponse.Unchanged, ShouldBeTrue)
		})
	})

	Convey("If a rejection is submitted without a reason and the put request returns 400", t, func() {
		httpClient := createHTTPClientMock(MockedHTTPResponse{http.StatusBadRequest, apierrors.ErrRejectionReasonRequired.Error(), map[string]string{}})
		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)
		_, err := applicationsAPIClient.PutDecision(ctx, headers, applicationID, models.Decision{Status: models.StatusRejected})

		Convey("Test that an error is raised with the correct message", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, apierrors.ErrRejectionReasonRequired.Error())
		})
	})
}

func TestClient_GetApplicationsInBatches(t *testing.T) {
	applicationsResponse1 := ApplicationsList{
		Items:      []models.Application{{ID: "testApplication1"}},
		TotalCount: 2, // Total count is read from the first response to determine how many batches are required
		Offset:     0,
		Count:      1,
	}

	applicationsResponse2 := ApplicationsList{
		Items:      []models.Application{{ID: "testApplication2"}},
		TotalCount: 2,
		Offset:     1,
		Count:      1,
	}

	expectedApplications := ApplicationsList{
		Items: []models.Application{
			applicationsResponse1.Items[0],
			applicationsResponse2.Items[0],
		},
		Count:      2,
		TotalCount: 2,
	}

	batchSize := 1
	maxWorkers := 1

	Convey("When a 200 OK status is returned in 2 consecutive calls", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{http.StatusOK, applicationsResponse1, nil},
			MockedHTTPResponse{http.StatusOK, applicationsResponse2, nil})

		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)

		processedBatches := []ApplicationsList{}
		var testProcess ApplicationsBatchProcessor = func(batch ApplicationsList) (abort bool, err error) {
			processedBatches = append(processedBatches, batch)
			return false, nil
		}

		Convey("then GetApplicationsInBatches succeeds and returns the accumulated items from all the batches", func() {
			applications, err := applicationsAPIClient.GetApplicationsInBatches(ctx, headers, batchSize, maxWorkers)

			So(err, ShouldBeNil)
			So(applications, ShouldResemble, expectedApplications)
		})

		Convey("then GetApplicationsBatchProcess calls the batchProcessor function twice, with the expected batches", func() {
			err := applicationsAPIClient.GetApplicationsBatchProcess(ctx, headers, testProcess, batchSize, maxWorkers)
			So(err, ShouldBeNil)
			So(processedBatches, ShouldResemble, []ApplicationsList{applicationsResponse1, applicationsResponse2})
			So(httpClient.DoCalls(), ShouldHaveLength, 2)
			So(httpClient.DoCalls()[0].Req.URL.String(), ShouldResemble,
				"http://localhost:25700/applications?limit=1&offset=0")
			So(httpClient.DoCalls()[1].Req.URL.String(), ShouldResemble,
				"http://localhost:25700/applications?limit=1&offset=1")
		})
	})

	Convey("When a 400 error status is returned in the first call", t, func() {
		httpClient := createHTTPClientMock(
			MockedHTTPResponse{http.StatusBadRequest, "invalid query parameter", nil})

		applicationsAPIClient := newApplicationsAPIHealthcheckClient(t, httpClient)

		processedBatches := []ApplicationsList{}
		var testProcess ApplicationsBatchProcessor = func(batch ApplicationsList) (abort bool, err error) {
			processedBatches = append(processedBatches, batch)
			return false, nil
		}

		Convey("then GetApplicationsInBatches fails with the expected error and the process is aborted", func() {
			_, err := applicationsAPIClient.GetApplicationsInBatches(ctx, headers, batchSize, maxWorkers)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "invalid query parameter")
		})

		Convey("then GetApplicationsBatchProcess fails with the expected error and doesn't call the batchProcessor", func() {
			err := applicationsAPIClient.GetApplicationsBatchProcess(ctx, headers, testProcess, batchSize, maxWorkers)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "invalid query parameter")
			So(processedBatches, ShouldResemble, []ApplicationsList{})
		})
	})
}

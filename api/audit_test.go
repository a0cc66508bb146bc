package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ONSdigital/dp-applications-api/mocks"
	"github.com/ONSdigital/dp-applications-api/models"
	storetest "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	. "github.com/smartystreets/goconvey/convey"
)

func commissionEvent() *models.CommissionEvent {
	return &models.CommissionEvent{
		ID:            "event-1",
		ApplicationID: "application-1",
		ActorID:       "commission-1",
		ActorEmail:    "chair@example.com",
		Action:        models.AuditActionDecision,
		OldStatus:     models.StatusPending,
		NewStatus:     models.StatusApproved,
		Comment:       "strong application",
		IP:            "10.0.0.5",
		UserAgent:     "portal-console",
		CreatedAt:     time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
	}
}

func TestGetCommissionEvents(t *testing.T) {
	t.Parallel()
	Convey("Given a recorded audit trail", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetCommissionEventsFunc: func(ctx context.Context, filter models.CommissionEventsFilter, offset, limit int) ([]models.CommissionEvent, int, error) {
				return []models.CommissionEvent{*commissionEvent()}, 1, nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The console filters reach the store", func() {
			target := host + "/commission-events?q=иванов&action=decision&status_after=approved&actor=commission-1&date_from=2024-05-01&date_to=2024-05-31"
			r := createRequestWithCaller(http.MethodGet, target, nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.GetCommissionEventsCalls()), ShouldEqual, 1)

			filter := mockedDataStore.GetCommissionEventsCalls()[0].Filter
			So(filter.Query, ShouldEqual, "иванов")
			So(filter.Action, ShouldEqual, "decision")
			So(filter.NewStatus, ShouldEqual, "approved")
			So(filter.ActorID, ShouldEqual, "commission-1")
			So(filter.From, ShouldNotBeNil)
			So(filter.From.Format(time.RFC3339), ShouldEqual, "2024-05-01T00:00:00Z")
			So(filter.To, ShouldNotBeNil)
			So(filter.To.Format(time.RFC3339), ShouldEqual, "2024-05-31T23:59:59Z")

			So(w.Body.String(), ShouldContainSubstring, `"total_count":1`)
			So(w.Body.String(), ShouldContainSubstring, "event-1")
		})

		Convey("Unknown query parameters are ignored", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events?utm_source=mail", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("A malformed date filter is refused", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events?date_from=01.05.2024", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(len(mockedDataStore.GetCommissionEventsCalls()), ShouldEqual, 0)
		})
	})
}

func TestGetCommissionEventCounts(t *testing.T) {
	t.Parallel()
	Convey("Given events across several actions", t, func() {
		mockedDataStore := &storetest.StorerMock{
			CountCommissionEventsByActionFunc: func(ctx context.Context, filter models.CommissionEventsFilter) (map[string]int, error) {
				return map[string]int{
					models.AuditActionDecision: 4,
					models.AuditActionView:     10,
				}, nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The counts are summed per action", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events/counts", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)

			var counts commissionEventCounts
			So(json.Unmarshal(w.Body.Bytes(), &counts), ShouldBeNil)
			So(counts.Total, ShouldEqual, 14)
			So(counts.Counts[models.AuditActionDecision], ShouldEqual, 4)
			So(counts.Counts[models.AuditActionView], ShouldEqual, 10)
		})
	})
}

func TestExportCommissionEvents(t *testing.T) {
	t.Parallel()
	Convey("Given a recorded audit trail", t, func() {
		second := commissionEvent()
		second.ID = "event-2"
		second.Action = models.AuditActionView
		second.OldStatus = ""
		second.NewStatus = ""
		second.Comment = ""

		mockedDataStore := &storetest.StorerMock{
			StreamCommissionEventsFunc: func(ctx context.Context, filter models.CommissionEventsFilter, fn func(*models.CommissionEvent) error) error {
				if err := fn(commissionEvent()); err != nil {
					return err
				}
				return fn(second)
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The default export is a CSV download", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events/export", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "text/csv; charset=utf-8")
			So(w.Header().Get("Content-Disposition"), ShouldContainSubstring, "commission-events-")
			So(w.Header().Get("Content-Disposition"), ShouldContainSubstring, ".csv")

			lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
			So(len(lines), ShouldEqual, 3)
			So(lines[0], ShouldEqual, "created_at,application_id,actor_email,action,old_status,new_status,comment,ip,user_agent")
			So(lines[1], ShouldContainSubstring, "2024-05-20T14:30:00Z")
			So(lines[1], ShouldContainSubstring, "chair@example.com")
			So(lines[1], ShouldContainSubstring, "decision")
			So(lines[2], ShouldContainSubstring, "view")
		})

		Convey("An NDJSON export writes one event per line", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events/export?format=ndjson", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldEqual, "application/x-ndjson")

			lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
			So(len(lines), ShouldEqual, 2)

			var event models.CommissionEvent
			So(json.Unmarshal([]byte(lines[0]), &event), ShouldBeNil)
			So(event.ID, ShouldEqual, "event-1")
			So(event.Action, ShouldEqual, models.AuditActionDecision)
		})

		Convey("The filters also apply to an export", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events/export?action=view", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(mockedDataStore.StreamCommissionEventsCalls()[0].Filter.Action, ShouldEqual, "view")
		})

		Convey("An unknown format is refused", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/commission-events/export?format=xml", nil, provisionerCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(len(mockedDataStore.StreamCommissionEventsCalls()), ShouldEqual, 0)
		})
	})
}

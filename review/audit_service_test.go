package review

import (
	"context"
	"errors"
	"testing"

	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/dp-applications-api/store"
	storetest "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	. "github.com/smartystreets/goconvey/convey"
)

// This test covers RecordDecisionEvent, RecordViewEvent, RecordAttachEvent,
// and indirectly recordCommissionEvent
func TestAuditServiceRecordCommissionEvents(t *testing.T) {
	Convey("Given a mocked DataStore", t, func() {
		mockDataStore := &storetest.StorerMock{
			CreateCommissionEventFunc: func(ctx context.Context, event *models.CommissionEvent) error {
				return nil
			},
		}

		auditService := NewAuditService(store.DataStore{Backend: mockDataStore})

		Convey("When RecordDecisionEvent is called successfully", func() {
			decision := &models.Decision{Status: models.StatusRejected, Comment: "incomplete form"}
			err := auditService.RecordDecisionEvent(context.Background(), commissionActor, testPendingApplication(), models.StatusPending, decision, testRequestMeta)

			Convey("Then the stored event carries the decision and request details", func() {
				So(err, ShouldBeNil)
				So(len(mockDataStore.CreateCommissionEventCalls()), ShouldEqual, 1)

				event := mockDataStore.CreateCommissionEventCalls()[0].Event
				So(event.ID, ShouldNotBeEmpty)
				So(event.ApplicationID, ShouldEqual, "app-1")
				So(event.ActorID, ShouldEqual, commissionActor.ID)
				So(event.Action, ShouldEqual, models.AuditActionDecision)
				So(event.OldStatus, ShouldEqual, models.StatusPending)
				So(event.NewStatus, ShouldEqual, models.StatusRejected)
				So(event.Comment, ShouldEqual, "incomplete form")
				So(event.IP, ShouldEqual, testRequestMeta.IP)
				So(event.UserAgent, ShouldEqual, testRequestMeta.UserAgent)
				So(event.Meta["session_id"], ShouldEqual, testRequestMeta.SessionID)
				So(event.CreatedAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When RecordViewEvent is called without request metadata", func() {
			err := auditService.RecordViewEvent(context.Background(), commissionActor, "app-1", nil)

			Convey("Then the event is stored with no request details", func() {
				So(err, ShouldBeNil)

				event := mockDataStore.CreateCommissionEventCalls()[0].Event
				So(event.Action, ShouldEqual, models.AuditActionView)
				So(event.IP, ShouldBeEmpty)
				So(event.UserAgent, ShouldBeEmpty)
			})
		})

		Convey("When RecordAttachEvent is called successfully", func() {
			err := auditService.RecordAttachEvent(context.Background(), commissionActor, "app-1", "passport.pdf", testRequestMeta)

			Convey("Then the attachment name lands in the event metadata", func() {
				So(err, ShouldBeNil)

				event := mockDataStore.CreateCommissionEventCalls()[0].Event
				So(event.Action, ShouldEqual, models.AuditActionAttach)
				So(event.Meta["attachment"], ShouldEqual, "passport.pdf")
				So(event.Meta["session_id"], ShouldEqual, testRequestMeta.SessionID)
			})
		})

		Convey("When RecordViewEvent is called and the DataStore returns an error", func() {
			mockDataStore.CreateCommissionEventFunc = func(ctx context.Context, event *models.CommissionEvent) error {
				return errors.New("datastore error")
			}

			err := auditService.RecordViewEvent(context.Background(), commissionActor, "app-1", testRequestMeta)

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "recordCommissionEvent: failed to create audit event in store: datastore error")
			})
		})
	})
}

func TestAuditServiceRecordProvisioningEvent(t *testing.T) {
	Convey("Given a mocked DataStore", t, func() {
		mockDataStore := &storetest.StorerMock{
			CreateProvisioningEventFunc: func(ctx context.Context, event *models.ProvisioningEvent) error {
				return nil
			},
		}

		auditService := NewAuditService(store.DataStore{Backend: mockDataStore})

		Convey("When RecordProvisioningEvent is called successfully", func() {
			meta := models.EventMeta{
				"target_email": "newstaff@example.com",
				"access_until": "2026-12-31T00:00:00Z",
			}
			err := auditService.RecordProvisioningEvent(context.Background(), "provisioner-1", "staff-1", models.ProvisionActionCreate, meta, "203.0.113.7")

			Convey("Then the stored event masks the target email", func() {
				So(err, ShouldBeNil)
				So(len(mockDataStore.CreateProvisioningEventCalls()), ShouldEqual, 1)

				event := mockDataStore.CreateProvisioningEventCalls()[0].Event
				So(event.ActorID, ShouldEqual, "provisioner-1")
				So(event.TargetID, ShouldEqual, "staff-1")
				So(event.Action, ShouldEqual, models.ProvisionActionCreate)
				So(event.IP, ShouldEqual, "203.0.113.7")
				So(event.Meta["target_email"], ShouldEqual, "n***@example.com")
				So(event.Meta["access_until"], ShouldEqual, "2026-12-31T00:00:00Z")
			})
		})

		Convey("When RecordProvisioningEvent is called and the DataStore returns an error", func() {
			mockDataStore.CreateProvisioningEventFunc = func(ctx context.Context, event *models.ProvisioningEvent) error {
				return errors.New("datastore error")
			}

			err := auditService.RecordProvisioningEvent(context.Background(), "provisioner-1", "staff-1", models.ProvisionActionExtend, nil, "")

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "recordProvisioningEvent: failed to create audit event in store: datastore error")
			})
		})
	})
}

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/mocks"
	"github.com/ONSdigital/dp-applications-api/models"
	storetest "github.com/ONSdigital/dp-applications-api/store/datastoretest"
	. "github.com/smartystreets/goconvey/convey"
)

func publishedAssessment() *models.Assessment {
	return &models.Assessment{
		ID:              "assessment-1",
		Title:           "Qualifying test",
		Description:     "Core knowledge check",
		DurationMinutes: 60,
		State:           models.PublishedState,
		Questions: models.Questions{
			{Text: "2+2", Options: []string{"3", "4", "5"}, Correct: []int{1}},
			{Text: "Pick the primes", Options: []string{"2", "3", "4", "9"}, Multiple: true, Correct: []int{0, 1}},
		},
		CreatedBy: "commission-1",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func createdAssessment() *models.Assessment {
	assessment := publishedAssessment()
	assessment.State = models.CreatedState
	return assessment
}

func approvedApplicationStore(mockedDataStore *storetest.StorerMock) {
	mockedDataStore.GetApplicationByUserFunc = func(ctx context.Context, userID string) (*models.Application, error) {
		application := pendingApplication()
		application.Status = models.StatusApproved
		return application, nil
	}
}

func TestAddAssessment(t *testing.T) {
	t.Parallel()
	Convey("Given a working datastore", t, func() {
		mockedDataStore := &storetest.StorerMock{
			CreateAssessmentFunc: func(ctx context.Context, assessment *models.Assessment) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("A commission member creates an unpublished assessment", func() {
			payload := `{"title":"Qualifying test","duration_minutes":45,"questions":[{"text":"2+2","options":["3","4"],"correct":1}]}`
			r := createRequestWithCaller(http.MethodPost, host+"/assessments", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusCreated)
			So(len(mockedDataStore.CreateAssessmentCalls()), ShouldEqual, 1)

			created := mockedDataStore.CreateAssessmentCalls()[0].Assessment
			So(created.State, ShouldEqual, models.CreatedState)
			So(created.DurationMinutes, ShouldEqual, 45)
			So(created.CreatedBy, ShouldEqual, "commission-1")
			So(len(created.Questions), ShouldEqual, 1)
			So(created.Questions[0].Correct, ShouldResemble, []int{1})
		})

		Convey("Questions in the older author shapes are canonicalised", func() {
			payload := `{"title":"Qualifying test","questions":[{"q":"Pick one","answers":"a;b;c","correct_index":"2"}]}`
			r := createRequestWithCaller(http.MethodPost, host+"/assessments", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusCreated)

			created := mockedDataStore.CreateAssessmentCalls()[0].Assessment
			So(created.DurationMinutes, ShouldEqual, 60)
			So(created.Questions[0].Text, ShouldEqual, "Pick one")
			So(created.Questions[0].Options, ShouldResemble, []string{"a", "b", "c"})
			So(created.Questions[0].Correct, ShouldResemble, []int{2})
		})

		Convey("An assessment without a title is refused", func() {
			payload := `{"questions":[{"text":"2+2","options":["3","4"],"correct":1}]}`
			r := createRequestWithCaller(http.MethodPost, host+"/assessments", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrInvalidAssessment.Error())
			So(len(mockedDataStore.CreateAssessmentCalls()), ShouldEqual, 0)
		})

		Convey("An assessment whose questions all fail validation is refused", func() {
			payload := `{"title":"Qualifying test","questions":[{"text":"2+2","options":["4"],"correct":0}]}`
			r := createRequestWithCaller(http.MethodPost, host+"/assessments", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrInvalidQuestions.Error())
		})
	})
}

func TestGetAssessments(t *testing.T) {
	t.Parallel()
	Convey("Given assessments in both states", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetAssessmentsFunc: func(ctx context.Context, includeUnpublished bool, offset, limit int) ([]models.Assessment, int, error) {
				if includeUnpublished {
					return []models.Assessment{*publishedAssessment(), *createdAssessment()}, 2, nil
				}
				return []models.Assessment{*publishedAssessment()}, 1, nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The commission sees every state with the full question set", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/assessments", nil, adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(mockedDataStore.GetAssessmentsCalls()[0].IncludeUnpublished, ShouldBeTrue)
			So(w.Body.String(), ShouldContainSubstring, `"total_count":2`)
			So(w.Body.String(), ShouldContainSubstring, `"correct"`)
		})

		Convey("An approved applicant sees published assessments without questions", func() {
			approvedApplicationStore(mockedDataStore)
			r := createRequestWithCaller(http.MethodGet, host+"/assessments", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(mockedDataStore.GetAssessmentsCalls()[0].IncludeUnpublished, ShouldBeFalse)
			So(w.Body.String(), ShouldContainSubstring, `"total_count":1`)
			So(w.Body.String(), ShouldNotContainSubstring, `"correct"`)
			So(w.Body.String(), ShouldNotContainSubstring, `"created_by"`)
		})

		Convey("An applicant whose application is still pending is refused", func() {
			mockedDataStore.GetApplicationByUserFunc = func(ctx context.Context, userID string) (*models.Application, error) {
				return pendingApplication(), nil
			}
			r := createRequestWithCaller(http.MethodGet, host+"/assessments", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusForbidden)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrApplicationNotApproved.Error())
		})

		Convey("An applicant who never applied is refused", func() {
			mockedDataStore.GetApplicationByUserFunc = func(ctx context.Context, userID string) (*models.Application, error) {
				return nil, errs.ErrApplicationNotFound
			}
			r := createRequestWithCaller(http.MethodGet, host+"/assessments", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}

func TestGetAssessment(t *testing.T) {
	t.Parallel()
	Convey("Given a published assessment", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetAssessmentFunc: func(ctx context.Context, ID string) (*models.Assessment, error) {
				return publishedAssessment(), nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The commission gets the stored document with the answers", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/assessments/assessment-1", nil, adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"correct"`)
		})

		Convey("An approved applicant gets the questions with the answers withheld", func() {
			approvedApplicationStore(mockedDataStore)
			r := createRequestWithCaller(http.MethodGet, host+"/assessments/assessment-1", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"questions"`)
			So(w.Body.String(), ShouldContainSubstring, "Pick the primes")
			So(w.Body.String(), ShouldNotContainSubstring, `"correct"`)
		})
	})

	Convey("Given the assessment is not yet published", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetAssessmentFunc: func(ctx context.Context, ID string) (*models.Assessment, error) {
				return createdAssessment(), nil
			},
		}
		approvedApplicationStore(mockedDataStore)
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("An applicant cannot see it", func() {
			r := createRequestWithCaller(http.MethodGet, host+"/assessments/assessment-1", nil, applicantCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestPutAssessment(t *testing.T) {
	t.Parallel()
	Convey("Given an unpublished assessment", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetAssessmentFunc: func(ctx context.Context, ID string) (*models.Assessment, error) {
				return createdAssessment(), nil
			},
			UpdateAssessmentFunc: func(ctx context.Context, assessment *models.Assessment) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("A content update keeps the current state", func() {
			payload := `{"title":"Qualifying test v2","duration_minutes":90}`
			r := createRequestWithCaller(http.MethodPut, host+"/assessments/assessment-1", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.UpdateAssessmentCalls()), ShouldEqual, 1)

			updated := mockedDataStore.UpdateAssessmentCalls()[0].Assessment
			So(updated.Title, ShouldEqual, "Qualifying test v2")
			So(updated.DurationMinutes, ShouldEqual, 90)
			So(updated.State, ShouldEqual, models.CreatedState)
			So(len(updated.Questions), ShouldEqual, 2)
		})

		Convey("Requesting the published state publishes the assessment", func() {
			payload := `{"state":"published"}`
			r := createRequestWithCaller(http.MethodPut, host+"/assessments/assessment-1", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.UpdateAssessmentCalls()), ShouldEqual, 2)
			So(mockedDataStore.UpdateAssessmentCalls()[1].Assessment.State, ShouldEqual, models.PublishedState)
			So(w.Body.String(), ShouldContainSubstring, `"state":"published"`)
		})

		Convey("Any other target state is refused", func() {
			payload := `{"state":"archived"}`
			r := createRequestWithCaller(http.MethodPut, host+"/assessments/assessment-1", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(w.Body.String(), ShouldContainSubstring, errs.ErrAssessmentStateInvalid.Error())
		})

		Convey("A negative duration is refused", func() {
			payload := `{"duration_minutes":-5}`
			r := createRequestWithCaller(http.MethodPut, host+"/assessments/assessment-1", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(len(mockedDataStore.UpdateAssessmentCalls()), ShouldEqual, 0)
		})
	})

	Convey("Given a published assessment", t, func() {
		mockedDataStore := &storetest.StorerMock{
			GetAssessmentFunc: func(ctx context.Context, ID string) (*models.Assessment, error) {
				return publishedAssessment(), nil
			},
			UpdateAssessmentFunc: func(ctx context.Context, assessment *models.Assessment) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("Requesting the published state again is a no-op update", func() {
			payload := `{"state":"published","description":"Updated wording"}`
			r := createRequestWithCaller(http.MethodPut, host+"/assessments/assessment-1", bytes.NewBufferString(payload), adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(len(mockedDataStore.UpdateAssessmentCalls()), ShouldEqual, 1)
			So(mockedDataStore.UpdateAssessmentCalls()[0].Assessment.Description, ShouldEqual, "Updated wording")
		})
	})
}

func TestDeleteAssessment(t *testing.T) {
	t.Parallel()
	Convey("Given an assessment", t, func() {
		mockedDataStore := &storetest.StorerMock{
			DeleteAssessmentFunc: func(ctx context.Context, ID string) error {
				return nil
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("A commission member can delete it", func() {
			r := createRequestWithCaller(http.MethodDelete, host+"/assessments/assessment-1", nil, adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNoContent)
			So(mockedDataStore.DeleteAssessmentCalls()[0].ID, ShouldEqual, "assessment-1")
		})
	})

	Convey("Given the assessment does not exist", t, func() {
		mockedDataStore := &storetest.StorerMock{
			DeleteAssessmentFunc: func(ctx context.Context, ID string) error {
				return errs.ErrAssessmentNotFound
			},
		}
		api := GetAPIWithMocks(mockedDataStore, workingSender(), &mocks.LifecycleEventsMock{})

		Convey("The delete returns 404", func() {
			r := createRequestWithCaller(http.MethodDelete, host+"/assessments/missing", nil, adminCaller())
			w := httptest.NewRecorder()
			api.Router.ServeHTTP(w, r)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

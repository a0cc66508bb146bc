package url_test

import (
	"fmt"
	neturl "net/url"
	"testing"

	"github.com/ONSdigital/dp-applications-api/url"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	websiteURL    = "http://localhost:20000"
	resetToken    = "0Wh4ZEmMNhLfo_fuZWDMaYq_p9BeDTJnmUeyMT9Cy5s"
	assessmentID  = "c733bd67-5a9a-4e3c-b2b1-d3a938573ec1"
	applicationID = "1f4f1f8f-66a6-46ed-9a34-8f0eec27a2de"
)

func TestBuilder_BuildPasswordResetURL(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		parsed, err := neturl.Parse(websiteURL)
		So(err, ShouldBeNil)
		urlBuilder := url.NewBuilder(parsed)

		Convey("When BuildPasswordResetURL is called", func() {
			builtURL := urlBuilder.BuildPasswordResetURL(resetToken)

			expectedURL := fmt.Sprintf("%s/password-resets/%s", websiteURL, resetToken)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, expectedURL)
			})
		})
	})
}

func TestBuilder_BuildAssessmentURL(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		parsed, err := neturl.Parse(websiteURL)
		So(err, ShouldBeNil)
		urlBuilder := url.NewBuilder(parsed)

		Convey("When BuildAssessmentURL is called", func() {
			builtURL := urlBuilder.BuildAssessmentURL(assessmentID)

			expectedURL := fmt.Sprintf("%s/assessments/%s", websiteURL, assessmentID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, expectedURL)
			})
		})
	})
}

func TestBuilder_BuildApplicationURL(t *testing.T) {
	Convey("Given a URL builder", t, func() {
		parsed, err := neturl.Parse(websiteURL)
		So(err, ShouldBeNil)
		urlBuilder := url.NewBuilder(parsed)

		Convey("When BuildApplicationURL is called", func() {
			builtURL := urlBuilder.BuildApplicationURL(applicationID)

			expectedURL := fmt.Sprintf("%s/applications/%s", websiteURL, applicationID)

			Convey("Then the expected URL is returned", func() {
				So(builtURL, ShouldEqual, expectedURL)
			})
		})
	})
}

package url

import (
	"fmt"
	"net/url"
)

// Builder encapsulates the building of urls in a central place, with knowledge of the url structures and base host names.
type Builder struct {
	websiteURL *url.URL
}

// NewBuilder returns a new instance of url.Builder
func NewBuilder(websiteURL *url.URL) *Builder {
	return &Builder{
		websiteURL: websiteURL,
	}
}

func (builder *Builder) GetWebsiteURL() *url.URL {
	return builder.websiteURL
}

// BuildPasswordResetURL returns the website URL an applicant follows to choose a new password
func (builder *Builder) BuildPasswordResetURL(token string) string {
	return fmt.Sprintf("%s/password-resets/%s", builder.websiteURL.String(), token)
}

// BuildAssessmentURL returns the website URL for taking a specific assessment
func (builder *Builder) BuildAssessmentURL(assessmentID string) string {
	return fmt.Sprintf("%s/assessments/%s", builder.websiteURL.String(), assessmentID)
}

// BuildApplicationURL returns the website URL for viewing a specific application
func (builder *Builder) BuildApplicationURL(applicationID string) string {
	return fmt.Sprintf("%s/applications/%s", builder.websiteURL.String(), applicationID)
}

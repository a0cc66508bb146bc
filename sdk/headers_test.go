package sdk

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func Test_AddHeaders(t *testing.T) {
	testCases := []struct {
		name     string
		headers  Headers
		expected http.Header
	}{
		{
			name: "session token set",
			headers: Headers{
				SessionToken: "test-session-token",
			},
			expected: http.Header{
				"Authorization": []string{"Bearer test-session-token"},
			},
		},
		{
			name:     "no headers set",
			headers:  Headers{},
			expected: http.Header{},
		},
		{
			name: "session token with Bearer prefix",
			headers: Headers{
				SessionToken: "Bearer test-session-token",
			},
			expected: http.Header{
				"Authorization": []string{"Bearer test-session-token"},
			},
		},
	}

	for _, tc := range testCases {
		Convey("When add is called with "+tc.name, t, func() {
			req, err := http.NewRequest("GET", "http://example.com", nil)
			So(err, ShouldBeNil)

			tc.headers.add(req)

			So(req.Header, ShouldResemble, tc.expected)
		})
	}
}

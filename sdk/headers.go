package sdk

import (
	"net/http"
	"strings"

	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
)

// Contains the headers to be added to any request
type Headers struct {
	SessionToken string
}

// Adds headers to the input request
func (h *Headers) add(request *http.Request) {
	// Adding the service token header appends the Bearer prefix to the value submitted
	// If it's present this needs to be removed as otherwise the token provided is not valid
	if strings.Contains(h.SessionToken, "Bearer ") {
		h.SessionToken = strings.ReplaceAll(h.SessionToken, "Bearer ", "")
	}

	dpNetRequest.AddServiceTokenHeader(request, h.SessionToken)
}

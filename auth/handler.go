package auth

import (
	"net/http"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/log.go/v2/log"
)

// Require wraps an endpoint so only authenticated callers holding the given
// role reach it. An empty role admits any authenticated caller. Callers with
// an outstanding forced password change are turned away, so the only things
// a freshly provisioned account can do are change the password and log out.
func Require(role string, endpoint http.HandlerFunc) http.HandlerFunc {
	return gate(role, false, endpoint)
}

// RequirePendingPassword wraps the endpoints that stay usable while a forced
// password change is outstanding
func RequirePendingPassword(role string, endpoint http.HandlerFunc) http.HandlerFunc {
	return gate(role, true, endpoint)
}

func gate(role string, allowPendingPassword bool, endpoint http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller := GetCaller(ctx)
		if caller == nil {
			log.Error(ctx, "rejecting unauthenticated request", errs.ErrNoAuthHeader, log.Data{"requested_uri": r.URL.RequestURI()})
			http.Error(w, errs.ErrUnauthorised.Error(), http.StatusUnauthorized)
			return
		}

		if role != "" && caller.Role != role {
			log.Error(ctx, "rejecting caller without the required role", errs.ErrForbidden, log.Data{"requested_uri": r.URL.RequestURI(), "caller_role": caller.Role})
			http.Error(w, errs.ErrForbidden.Error(), http.StatusForbidden)
			return
		}

		if caller.MustChangePassword && !allowPendingPassword {
			log.Error(ctx, "rejecting caller with an outstanding password change", errs.ErrPasswordChangeRequired, log.Data{"requested_uri": r.URL.RequestURI()})
			http.Error(w, errs.ErrPasswordChangeRequired.Error(), http.StatusForbidden)
			return
		}

		endpoint(w, r)
	}
}

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/ONSdigital/dp-applications-api/models"
	"github.com/ONSdigital/log.go/v2/log"
)

// BearerPrefix is the authorization scheme accepted on the Authorization header
const BearerPrefix = "Bearer "

type contextKey string

const callerContextKey = contextKey("caller")

// SessionStore is the subset of the datastore the authenticator needs
type SessionStore interface {
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	GetUser(ctx context.Context, ID string) (*models.User, error)
	TouchSession(ctx context.Context, sessionID string) error
}

// Caller is the authenticated identity attached to a request context,
// together with the session that authenticated it
type Caller struct {
	*models.Identity
	SessionID          string
	MustChangePassword bool
}

// GetCaller returns the authenticated caller, or nil on an anonymous request
func GetCaller(ctx context.Context) *Caller {
	caller, _ := ctx.Value(callerContextKey).(*Caller)
	return caller
}

// WithCaller attaches a caller to the context
func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

// Authenticator resolves bearer tokens and session cookies into callers
type Authenticator struct {
	Store      SessionStore
	CookieName string
	Now        func() time.Time
}

// New returns an authenticator backed by the given session store
func New(store SessionStore, cookieName string) *Authenticator {
	return &Authenticator{
		Store:      store,
		CookieName: cookieName,
		Now:        time.Now,
	}
}

// Identity is middleware that authenticates a request when credentials are
// presented. Requests without credentials pass through anonymously; the role
// gates decide which endpoints need a caller. Presenting an invalid or
// expired token is rejected outright rather than downgraded to anonymous.
func (a *Authenticator) Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := a.requestToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := a.Now()

			session, err := a.Store.GetSessionByTokenHash(ctx, HashToken(token))
			if err != nil {
				if errors.Is(err, errs.ErrSessionNotFound) {
					unauthorised(ctx, w, err)
				} else {
					internalError(ctx, w, err)
				}
				return
			}
			if session.HasExpired(now) {
				unauthorised(ctx, w, errs.ErrSessionNotFound)
				return
			}

			user, err := a.Store.GetUser(ctx, session.UserID)
			if err != nil {
				if errors.Is(err, errs.ErrUserNotFound) {
					unauthorised(ctx, w, err)
				} else {
					internalError(ctx, w, err)
				}
				return
			}
			if !user.IsActive {
				unauthorised(ctx, w, errs.ErrAccountDeactivated)
				return
			}
			if user.IsStaff() && user.HasExpiredAccess(now) {
				unauthorised(ctx, w, errs.ErrAccountAccessExpired)
				return
			}

			if err := a.Store.TouchSession(ctx, session.ID); err != nil {
				log.Warn(ctx, "failed to record session activity", log.Data{"session_id": session.ID, "error": err.Error()})
			}

			caller := &Caller{
				Identity:           user.Identity(),
				SessionID:          session.ID,
				MustChangePassword: user.MustChangePassword,
			}
			next.ServeHTTP(w, r.WithContext(WithCaller(ctx, caller)))
		})
	}
}

// requestToken extracts the bearer token from the Authorization header,
// falling back to the session cookie the portal's web frontend sets
func (a *Authenticator) requestToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimPrefix(header, BearerPrefix)
	}
	if a.CookieName != "" {
		if cookie, err := r.Cookie(a.CookieName); err == nil {
			return cookie.Value
		}
	}
	return ""
}

func unauthorised(ctx context.Context, w http.ResponseWriter, err error) {
	log.Error(ctx, "request authentication failed", err)
	http.Error(w, errs.ErrUnauthorised.Error(), http.StatusUnauthorized)
}

func internalError(ctx context.Context, w http.ResponseWriter, err error) {
	log.Error(ctx, "failed to authenticate request", err)
	http.Error(w, errs.ErrInternalServer.Error(), http.StatusInternalServerError)
}

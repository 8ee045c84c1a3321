package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/givehubapp/givehub/internal/app/system/auth"
)

// TestUser represents member data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
}

// MemberUser returns a TestUser with a fresh member ID.
func MemberUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Member",
		Email: "member@test.com",
	}
}

// UserFor returns a TestUser for an existing member ID, so the session
// identity lines up with fixture data.
func UserFor(memberID primitive.ObjectID, name, email string) TestUser {
	return TestUser{ID: memberID.Hex(), Name: name, Email: email}
}

// WithUser adds a member to the request context for testing authenticated
// handlers. This bypasses the session middleware and injects the user
// directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request carrying a JSON body.
func NewJSONRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedRequest creates an HTTP request with a member in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

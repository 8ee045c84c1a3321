// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "We couldn't find what you were looking for."
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Not found",
		Message: msg,
		BackURL: "/",
	})
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", pageData{
		Title:   "Something went wrong",
		Message: "An unexpected error occurred. Please try again.",
		BackURL: "/",
	})
}

// JSON helpers for the /data and /favorites APIs.

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes {"error": msg} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

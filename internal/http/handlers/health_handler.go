package handlers

import "net/http"

const healthBanner = "✅ To-Do Manager Backend is running!"

// GET /
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(healthBanner))
}

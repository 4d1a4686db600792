package httpapi

import "net/http"

// healthCheck godoc
// @Description Check if the server is up and running
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse "Server is up and running"
// @Router /health-check [get]
func (h *Handler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Server is up and running"})
}

// about godoc
// @Description Get information about the About page
// @Tags About
// @Produce plain
// @Success 200 {string} string "Information about the About page"
// @Router /about [get]
func (h *Handler) about(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "about")
}

// abcd godoc
// @Description This endpoint is valid for /abcd and /acd
// @Tags About
// @Produce plain
// @Success 200 {string} string "ab?cd"
// @Router /abcd [get]
// @Router /acd [get]
func (h *Handler) abcd(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "ab?cd")
}

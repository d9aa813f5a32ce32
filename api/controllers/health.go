package controllers

import (
	"net/http"

	"github.com/stockroomhq/inventory-backend/api/responses"
)

type healthBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /health for liveness probes.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, healthBody{
			Status:  http.StatusOK,
			Message: "Healthy",
		})
	}
}

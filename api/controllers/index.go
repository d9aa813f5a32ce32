package controllers

import (
	"net/http"

	"github.com/stockroomhq/inventory-backend/api/responses"
)

type indexBody struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

// Index handles GET / with service metadata so the root URL is not a
// dead end.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, indexBody{
			Name:    "Inventory REST API Service",
			Version: "1.0",
			Paths:   "/api/inventory",
		})
	}
}

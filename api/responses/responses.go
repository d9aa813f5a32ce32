package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
	"github.com/stockroomhq/inventory-backend/pkg/logger"
)

// ErrorBody is the wire shape every failure surfaces with.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError maps the error's code onto an HTTP status and the
// {status, error, message} body. Expected failures (validation,
// not-found, conflict, unsupported media) are logged at warning level;
// anything else is a 500 with a generic message, logged at error level.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if !meta.LogAsError {
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"error_code": string(typed.Code()),
			"status":     meta.HTTPStatus,
		})
		if details := typed.Details(); details != nil {
			ctx = logg.WithField(ctx, "error_details", details)
		}
		if meta.LogAsError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, typed.Message())
		}
	}

	writeJSON(w, meta.HTTPStatus, ErrorBody{
		Status:  meta.HTTPStatus,
		Error:   meta.ErrorText,
		Message: msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

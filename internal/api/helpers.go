package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, errCode, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "http_code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", errCode, "http_code", code)
	}

	SendJSON(ctx, w, code, ErrorResponse{Error: errCode, Message: msgToSend})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendServiceErr maps domain errors onto HTTP statuses. Internal failures
// never leak their text to the client.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "validation_error", err.Error())
	case errors.Is(err, entity.ErrInvalidToken), errors.Is(err, entity.ErrUnauthorized):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "unauthorized", "authentication required")
	case errors.Is(err, entity.ErrUserSuspended):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "user_suspended", "user is suspended")
	case errors.Is(err, entity.ErrCannotDeleteSelf):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "cannot_delete_self", err.Error())
	case errors.Is(err, entity.ErrCannotDeleteRoot):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "cannot_delete_root", err.Error())
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "forbidden", "insufficient permissions")
	case errors.Is(err, entity.ErrUnknownProvider):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "unknown_provider", err.Error())
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "not_found", "resource not found")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendJSONErr(ctx, w, http.StatusConflict, err, "already_exists", err.Error())
	case errors.Is(err, entity.ErrOAuthNotConfigured):
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, entity.OAuthErrNotConfigured, "integration is not configured")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "internal_error", "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func sendBadBody(ctx context.Context, w http.ResponseWriter, err error) {
	SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid_body", "request body is not valid JSON")
}

// parsePage falls back to defaults on malformed values; Normalize clamps the rest.
func parsePage(q url.Values) entity.Page {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		limit = entity.DefaultPageLimit
	}

	return entity.Page{Page: page, Limit: limit}.Normalize()
}

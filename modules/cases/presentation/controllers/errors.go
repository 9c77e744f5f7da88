package controllers

import (
	"errors"
	"net/http"

	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/httpapi"
	"github.com/claimdesk/claimdesk/pkg/serrors"
)

// writeError translates service errors into the JSON failure envelope. Raw
// error text never crosses the boundary; unexpected errors become a generic
// 500 and are logged server-side.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs serrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		_ = httpapi.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":  validationErrs.Error(),
			"code":   serrors.CodeValidation,
			"fields": fieldMessages(validationErrs),
		})
		return
	}

	var base *serrors.BaseError
	if errors.As(err, &base) {
		switch base.Code {
		case serrors.CodeValidation:
			_ = httpapi.WriteFailure(w, http.StatusBadRequest, base.Code, base.Message)
		case serrors.CodeNotFound:
			_ = httpapi.WriteFailure(w, http.StatusNotFound, base.Code, base.Message)
		default:
			_ = httpapi.WriteFailure(w, http.StatusInternalServerError, base.Code, base.Message)
		}
		return
	}

	switch {
	case errors.Is(err, composables.ErrNoActor):
		_ = httpapi.WriteFailure(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, persistence.ErrInteractionNotFound),
		errors.Is(err, persistence.ErrCaseNotFound),
		errors.Is(err, persistence.ErrWorkspaceNotFound),
		errors.Is(err, persistence.ErrContactNotFound):
		_ = httpapi.WriteFailure(w, http.StatusNotFound, serrors.CodeNotFound, "resource not found")
	default:
		composables.UseLogger(r.Context()).WithError(err).Error("request failed")
		_ = httpapi.WriteFailure(w, http.StatusInternalServerError, serrors.CodeDataAccess, "internal error")
	}
}

func fieldMessages(errs serrors.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		out[field] = err.Error()
	}
	return out
}

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/scope"
	"github.com/siddhivinayaka18/afh-crm/pkg/middleware"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

// identityFrom pulls the resolved actor out of the request context. The
// auth middleware guarantees it on protected routes; the guard covers
// misuse on unprotected ones.
func identityFrom(w http.ResponseWriter, r *http.Request) (scope.Identity, bool) {
	ident, ok := middleware.GetIdentity(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "No token provided")
	}
	return ident, ok
}

func decode(r *http.Request, into any) error {
	rawJSON, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(rawJSON, into); err != nil {
		return xerrors.NewValidation("invalid request body")
	}
	return nil
}

// respondError maps the error taxonomy onto HTTP statuses. Unexpected
// errors are logged with their cause and surface as a generic 500.
func respondError(w http.ResponseWriter, log *zap.SugaredLogger, op string, err error) {
	var ve *xerrors.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, xerrors.ErrInvalidCredentials),
		errors.Is(err, xerrors.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, xerrors.ErrForbidden),
		errors.Is(err, xerrors.ErrAccountDeactivated):
		response.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, xerrors.ErrNotFound),
		errors.Is(err, xerrors.ErrUserNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrEmailAlreadyInUse),
		errors.Is(err, xerrors.ErrStaleRevision),
		errors.Is(err, xerrors.ErrUserHasRecords):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		log.Errorw(op, "error", err)
		response.Error(w, http.StatusInternalServerError, "Server error")
	}
}

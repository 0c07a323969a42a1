package controllers

import (
	"errors"
	"net/http"

	"authboard/app/apperr"
	"authboard/app/dto"

	"github.com/rs/zerolog"
)

// respondError maps service errors to the response envelope. Internal
// failures are logged with full detail and reported with a generic message.
func respondError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind != apperr.KindInternal {
		dto.WriteError(w, ae.Kind.HTTPStatus(), ae.Message)
		return
	}
	logger.Error().Err(err).Msg("internal error")
	dto.WriteError(w, http.StatusInternalServerError, "Internal server error")
}

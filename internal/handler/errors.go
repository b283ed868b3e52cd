package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
)

var notFoundErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrProductNotFound,
	entities.ErrUserNotFound,
	entities.ErrCartNotFound,
}

// writeServiceError maps domain errors to responses. Unexpected errors are
// logged with attrs and answered with a generic message.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, attrs ...any) {
	var ve *entities.ValidationError
	var ext *entities.ExternalServiceError

	switch {
	case errors.As(err, &ve):
		utils.WriteError(w, ve.Message, http.StatusBadRequest)

	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, entities.ErrDuplicateKey):
		utils.WriteError(w, "resource already exists", http.StatusBadRequest)

	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, notFoundMessage(err), http.StatusNotFound)

	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)

	case errors.Is(err, entities.ErrAccountLocked):
		utils.WriteError(w, entities.ErrAccountLocked.Error(), http.StatusForbidden)

	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)

	case errors.As(err, &ext):
		logger.ErrorContext(ctx, "external service error", append(attrs, slog.Any("error", err))...)
		message := "payment provider error"
		if ext.Safe && ext.Message != "" {
			message = ext.Message
		}
		utils.WriteError(w, message, http.StatusBadGateway)

	default:
		logger.ErrorContext(ctx, "internal error", append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func notFoundMessage(err error) string {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return entities.ErrNotFound.Error()
}

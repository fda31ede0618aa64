// Package apierr turns service errors into HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/pkg/utils"
)

const internalMessage = "Internal server error"

// Status maps err to an HTTP status code and a message safe to show the client.
func Status(err error) (int, string) {
	var (
		validationErr *domain.ValidationError
		authErr       *domain.AuthorizationError
		notFoundErr   *domain.NotFoundError
		stateErr      *domain.InvalidStateError
		balanceErr    *domain.InsufficientBalanceError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &authErr):
		return http.StatusForbidden, authErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &stateErr):
		return http.StatusConflict, stateErr.Error()
	case errors.As(err, &balanceErr):
		return http.StatusPaymentRequired, balanceErr.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

func Respond(w http.ResponseWriter, err error) {
	code, message := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}
	utils.RespondWithError(w, code, message)
}

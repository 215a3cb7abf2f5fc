package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "workorder-system/pkg/errors"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	withPagination, _ := strconv.ParseBool(ctx.QueryParam("withPagination"))
	if withPagination && len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		totalPages := 0
		if filter.Limit > 0 {
			totalPages = int(total[0]+uint64(filter.Limit)-1) / filter.Limit
		}
		pagination := map[string]interface{}{
			"total_count": total[0],
			"page":        filter.Page,
			"limit":       filter.Limit,
			"total_pages": totalPages,
		}
		response.Body = map[string]interface{}{"list": body, "pagination": pagination}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

// ErrorResponse translates the domain error taxonomy into an HTTP reply.
func ErrorResponse(ctx echo.Context, err error) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return respondError(ctx, httpErr.Code, httpErr.Message, nil)
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return respondError(ctx, http.StatusBadRequest, validationErr.Message, nil)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, e := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
		}
		return respondError(ctx, http.StatusBadRequest, "Validation failed: "+strings.Join(msgs, "; "), nil)
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return respondError(ctx, http.StatusNotFound, apperrors.ErrNotFound.Error(), nil)
	}

	switch {
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		return respondError(ctx, http.StatusUnauthorized, err.Error(), nil)
	}

	var storeErr *apperrors.StoreError
	if errors.As(err, &storeErr) {
		return respondError(ctx, http.StatusInternalServerError, storeErr.Error(), nil)
	}

	return respondError(ctx, http.StatusInternalServerError, "internal server error", nil)
}

func respondError(ctx echo.Context, code int, message string, body interface{}) error {
	return ctx.JSON(code, &HTTPResponse{Status: false, Message: message, Body: body})
}

// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"german-tagger/internal/common/errors"
	"german-tagger/internal/common/validation"
	"german-tagger/internal/models"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware attaches a request ID to every call for log correlation.
func (s *Server) requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set("requestID", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			return next(c)
		}
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, s.service.Health())
}

func (s *Server) handleTag(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return s.respondError(c, errors.NewInvalidRequestError("failed to read request body"))
	}

	// Schema validation first, so type errors surface as 400 rather than
	// silently zeroing fields on decode.
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return s.respondError(c, errors.NewInvalidRequestError("request body must be a JSON object"))
	}
	result, err := validation.ValidateTagRequest(raw)
	if err != nil {
		return s.respondError(c, errors.NewInvalidRequestError("request validation failed"))
	}
	if !result.Valid {
		return s.respondError(c, errors.NewInvalidRequestError(result.ErrorMessage()))
	}

	var req models.TagRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return s.respondError(c, errors.NewInvalidRequestError("request body must be a JSON object"))
	}

	resp, stdErr := s.service.Tag(c.Request().Context(), &req)
	if stdErr != nil {
		return s.respondError(c, stdErr)
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) respondError(c echo.Context, stdErr *errors.StandardError) error {
	s.logger.Warn("request failed", map[string]interface{}{
		"requestID": c.Get("requestID"),
		"errorCode": string(stdErr.Code),
		"detail":    stdErr.Details,
	})
	return c.JSON(errors.HTTPStatus(stdErr.Code), models.ErrorResponse{
		Detail: errors.Detail(stdErr),
	})
}

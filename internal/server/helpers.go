package server

import (
	"errors"
	"strings"
	"unicode"

	"careerflow/internal/middleware"
	"careerflow/internal/models"
	"careerflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "jobId" -> "job ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// identity returns the caller attached by the auth middleware.
// On failure it writes a 401 and returns errResponseWritten.
func (s *Server) identity(c *fiber.Ctx) (models.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Not authorized, no token"))
		return models.Identity{}, errResponseWritten
	}
	return id, nil
}

// bindJSON parses and validates the request body into req.
// On failure it writes a 400 and returns errResponseWritten.
func bindJSON(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return errResponseWritten
	}
	if err := validation.Struct(req); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest, err)
		return errResponseWritten
	}
	return nil
}

// mapServiceError maps an AppError code to its HTTP status. Duplicate
// applications (Conflict) are reported as 400.
func mapServiceError(err error) int {
	switch models.ErrorCode(err) {
	case models.CodeValidation, models.CodeConflict:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError writes err with the status mapped from its code.
// Unclassified errors are wrapped as internal errors so the cause lands in details.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := mapServiceError(err)
	if status == fiber.StatusInternalServerError && models.ErrorCode(err) == "" {
		err = models.NewInternalError(err)
	}
	return models.RespondWithError(c, status, err)
}

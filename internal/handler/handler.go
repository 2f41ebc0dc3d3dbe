// Package handler is the HTTP layer.
//
// Handlers bind and validate requests through the validation package, call
// the service layer and shape its results into the public JSON responses.
package handler

import (
	"strconv"

	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/service"
	"github.com/deppfellow/skyless/internal/validation"
)

type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Registration *RegistrationHandler
	Dashboard    *DashboardHandler
	Reflection   *ReflectionHandler
	Whisper      *WhisperHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Registration: NewRegistrationHandler(s, services.Registration),
		Dashboard:    NewDashboardHandler(s, services.Dashboard),
		Reflection:   NewReflectionHandler(s, services.Reflection),
		Whisper:      NewWhisperHandler(s, services.Whisper),
	}
}

// parseID reads a positive integer path parameter.
func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.CustomValidationErrors{{Field: field, Message: "must be a positive integer"}}
	}
	return id, nil
}

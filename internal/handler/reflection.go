package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/service"
	"github.com/deppfellow/skyless/internal/validation"
)

type ReflectionHandler struct {
	Handler
	reflection service.Reflections
}

func NewReflectionHandler(s *server.Server, reflection service.Reflections) *ReflectionHandler {
	return &ReflectionHandler{
		Handler:    NewHandler(s),
		reflection: reflection,
	}
}

type CreateReflectionRequest struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,max=500"`

	// IsAnonymous defaults to true when omitted.
	IsAnonymous *bool `json:"isAnonymous"`
}

func (r *CreateReflectionRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	return validation.Struct(r)
}

type CreateReflectionResponse struct {
	ReflectionID int64  `json:"reflectionId"`
	Message      string `json:"message"`
}

func (h *ReflectionHandler) Create(c echo.Context, req *CreateReflectionRequest) (*CreateReflectionResponse, error) {
	isAnonymous := true
	if req.IsAnonymous != nil {
		isAnonymous = *req.IsAnonymous
	}

	reflection, err := h.reflection.Submit(c.Request().Context(), service.SubmitReflectionInput{
		UserID:      req.UserID,
		Content:     req.Content,
		IsAnonymous: isAnonymous,
	})
	if err != nil {
		return nil, err
	}

	return &CreateReflectionResponse{
		ReflectionID: reflection.ID,
		Message:      "Reflection saved and shared with the network",
	}, nil
}

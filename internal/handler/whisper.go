package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/service"
	"github.com/deppfellow/skyless/internal/validation"
)

type WhisperHandler struct {
	Handler
	whisper service.Whispers
}

func NewWhisperHandler(s *server.Server, whisper service.Whispers) *WhisperHandler {
	return &WhisperHandler{
		Handler: NewHandler(s),
		whisper: whisper,
	}
}

type ListWhispersRequest struct {
	Limit  int   `query:"limit" validate:"omitempty,gte=1,lte=50"`
	UserID int64 `query:"userId" validate:"omitempty,gt=0"`
}

func (r *ListWhispersRequest) Validate() error {
	return validation.Struct(r)
}

type ListWhispersResponse struct {
	Whispers []model.Whisper `json:"whispers"`
}

func (h *WhisperHandler) List(c echo.Context, req *ListWhispersRequest) (*ListWhispersResponse, error) {
	var userID *int64
	if req.UserID != 0 {
		userID = &req.UserID
	}

	whispers, err := h.whisper.List(c.Request().Context(), req.Limit, userID)
	if err != nil {
		return nil, err
	}
	if whispers == nil {
		whispers = []model.Whisper{}
	}

	return &ListWhispersResponse{Whispers: whispers}, nil
}

// WhisperActionRequest identifies the acting user and the whisper in the
// path. userId may come from the body or, for DELETE, the query string.
type WhisperActionRequest struct {
	RawWhisperID string `param:"whisperId"`
	UserID       int64  `json:"userId" query:"userId" validate:"required,gt=0"`

	whisperID int64
}

func (r *WhisperActionRequest) Validate() error {
	id, err := parseID("whisperId", r.RawWhisperID)
	if err != nil {
		return err
	}
	r.whisperID = id
	return validation.Struct(r)
}

type ResonateResponse struct {
	Success   bool   `json:"success"`
	Resonated bool   `json:"resonated"`
	NewCount  int    `json:"newCount"`
	Message   string `json:"message"`
}

func (h *WhisperHandler) Resonate(c echo.Context, req *WhisperActionRequest) (*ResonateResponse, error) {
	result, err := h.whisper.ToggleResonance(c.Request().Context(), req.UserID, req.whisperID)
	if err != nil {
		return nil, err
	}

	message := "Resonance removed"
	if result.Resonated {
		message = "Resonated with whisper"
	}

	return &ResonateResponse{
		Success:   true,
		Resonated: result.Resonated,
		NewCount:  result.NewCount,
		Message:   message,
	}, nil
}

func (h *WhisperHandler) Withdraw(c echo.Context, req *WhisperActionRequest) error {
	return h.whisper.Withdraw(c.Request().Context(), req.UserID, req.whisperID)
}

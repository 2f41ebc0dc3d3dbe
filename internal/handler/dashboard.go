package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/service"
	"github.com/deppfellow/skyless/internal/validation"
)

type DashboardHandler struct {
	Handler
	dashboard service.Dashboards
}

func NewDashboardHandler(s *server.Server, dashboard service.Dashboards) *DashboardHandler {
	return &DashboardHandler{
		Handler:   NewHandler(s),
		dashboard: dashboard,
	}
}

type GetDashboardRequest struct {
	RawUserID string `param:"userId"`

	userID int64
}

func (r *GetDashboardRequest) Validate() error {
	id, err := parseID("userId", r.RawUserID)
	if err != nil {
		return err
	}
	r.userID = id
	return nil
}

type DashboardUser struct {
	ID             int64                `json:"id"`
	IdentityVector model.Vector         `json:"identityVector"`
	PreferredMood  model.Mood           `json:"preferredMood"`
	ConnectionType model.ConnectionType `json:"connectionType"`
}

type DashboardResponse struct {
	User            DashboardUser   `json:"user"`
	GrowthSinceLast int             `json:"growthSinceLast"`
	NetworkWhispers []model.Whisper `json:"networkWhispers"`
	LastVisit       *time.Time      `json:"lastVisit"`
}

func (h *DashboardHandler) GetDashboard(c echo.Context, req *GetDashboardRequest) (*DashboardResponse, error) {
	dashboard, err := h.dashboard.Get(c.Request().Context(), req.userID)
	if err != nil {
		return nil, err
	}

	whispers := dashboard.Whispers
	if whispers == nil {
		whispers = []model.Whisper{}
	}

	return &DashboardResponse{
		User: DashboardUser{
			ID:             dashboard.User.ID,
			IdentityVector: dashboard.User.IdentityVector.Normalize(),
			PreferredMood:  dashboard.User.PreferredMood,
			ConnectionType: dashboard.User.ConnectionType,
		},
		GrowthSinceLast: dashboard.GrowthSinceLast,
		NetworkWhispers: whispers,
		LastVisit:       dashboard.LastVisit,
	}, nil
}

type SessionRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

func (r *SessionRequest) Validate() error {
	return validation.Struct(r)
}

type StartSessionResponse struct {
	SessionID int64 `json:"sessionId"`
}

func (h *DashboardHandler) StartSession(c echo.Context, req *SessionRequest) (*StartSessionResponse, error) {
	session, err := h.dashboard.StartSession(c.Request().Context(), req.UserID)
	if err != nil {
		return nil, err
	}
	return &StartSessionResponse{SessionID: session.ID}, nil
}

type EndSessionResponse struct {
	SessionID int64  `json:"sessionId"`
	Message   string `json:"message"`
}

func (h *DashboardHandler) EndSession(c echo.Context, req *SessionRequest) (*EndSessionResponse, error) {
	session, err := h.dashboard.EndSession(c.Request().Context(), req.UserID)
	if err != nil {
		return nil, err
	}
	return &EndSessionResponse{SessionID: session.ID, Message: "Session ended"}, nil
}

type UpdateMoodRequest struct {
	UserID int64  `json:"userId" validate:"required,gt=0"`
	Mood   string `json:"mood" validate:"required"`
}

func (r *UpdateMoodRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if !model.Mood(r.Mood).Valid() {
		return validation.CustomValidationErrors{{Field: "mood", Message: "must be one of: " + model.MoodOneOf()}}
	}
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *DashboardHandler) UpdateMood(c echo.Context, req *UpdateMoodRequest) (*MessageResponse, error) {
	if err := h.dashboard.UpdateMood(c.Request().Context(), req.UserID, model.Mood(req.Mood)); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Mood updated"}, nil
}

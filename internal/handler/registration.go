package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/skyless/internal/model"
	"github.com/deppfellow/skyless/internal/server"
	"github.com/deppfellow/skyless/internal/service"
	"github.com/deppfellow/skyless/internal/validation"
)

type RegistrationHandler struct {
	Handler
	registration service.Registration
}

func NewRegistrationHandler(s *server.Server, registration service.Registration) *RegistrationHandler {
	return &RegistrationHandler{
		Handler:      NewHandler(s),
		registration: registration,
	}
}

type ConnectWalletRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,eth_addr"`
}

func (r *ConnectWalletRequest) Validate() error {
	return validation.Struct(r)
}

type ConnectWalletResponse struct {
	UserID         int64                `json:"user_id"`
	WalletAddress  string               `json:"wallet_address"`
	ConnectionType model.ConnectionType `json:"connection_type"`
	Message        string               `json:"message"`
}

func (h *RegistrationHandler) ConnectWallet(c echo.Context, req *ConnectWalletRequest) (*ConnectWalletResponse, error) {
	user, created, err := h.registration.ConnectWallet(c.Request().Context(), req.WalletAddress)
	if err != nil {
		return nil, err
	}

	message := "Wallet already connected"
	if created {
		message = "Wallet connected successfully"
	}

	return &ConnectWalletResponse{
		UserID:         user.ID,
		WalletAddress:  deref(user.WalletAddress),
		ConnectionType: user.ConnectionType,
		Message:        message,
	}, nil
}

type SignupEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *SignupEmailRequest) Validate() error {
	return validation.Struct(r)
}

type SignupEmailResponse struct {
	UserID         int64                `json:"user_id"`
	Email          string               `json:"email"`
	ConnectionType model.ConnectionType `json:"connection_type"`
	Message        string               `json:"message"`
}

func (h *RegistrationHandler) SignupEmail(c echo.Context, req *SignupEmailRequest) (*SignupEmailResponse, error) {
	user, created, err := h.registration.SignupEmail(c.Request().Context(), req.Email)
	if err != nil {
		return nil, err
	}

	message := "Email already registered"
	if created {
		message = "Email registered successfully"
	}

	return &SignupEmailResponse{
		UserID:         user.ID,
		Email:          deref(user.Email),
		ConnectionType: user.ConnectionType,
		Message:        message,
	}, nil
}

type AnonymousSessionRequest struct{}

func (r *AnonymousSessionRequest) Validate() error {
	return nil
}

type AnonymousSessionResponse struct {
	UserID         int64                `json:"user_id"`
	AnonymousID    uuid.UUID            `json:"anonymous_id"`
	ConnectionType model.ConnectionType `json:"connection_type"`
	Message        string               `json:"message"`
}

func (h *RegistrationHandler) CreateAnonymousSession(c echo.Context, _ *AnonymousSessionRequest) (*AnonymousSessionResponse, error) {
	user, err := h.registration.CreateAnonymous(c.Request().Context())
	if err != nil {
		return nil, err
	}

	resp := &AnonymousSessionResponse{
		UserID:         user.ID,
		ConnectionType: user.ConnectionType,
		Message:        "Anonymous session created",
	}
	if user.AnonymousID != nil {
		resp.AnonymousID = *user.AnonymousID
	}
	return resp, nil
}

type GetUserByWalletRequest struct {
	Address string `param:"address" validate:"required"`
}

func (r *GetUserByWalletRequest) Validate() error {
	return validation.Struct(r)
}

type UserResponse struct {
	User *model.User `json:"user"`
}

func (h *RegistrationHandler) GetUserByWallet(c echo.Context, req *GetUserByWalletRequest) (*UserResponse, error) {
	user, err := h.registration.GetByWallet(c.Request().Context(), req.Address)
	if err != nil {
		return nil, err
	}
	return &UserResponse{User: user}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/supermall/internal/entities"
	"github.com/SergeyBogomolovv/supermall/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role entities.Role) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (entities.TokenPair, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
	limit    func(http.Handler) http.Handler
}

// NewAuthHandler builds the handler. limit guards every /auth route.
func NewAuthHandler(logger *slog.Logger, svc AuthService, limit func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: utils.NewValidator(),
		svc:      svc,
		limit:    limit,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(h.limit)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
	})
}

// Register creates an account.
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Param        body  body      RegisterRequest  true  "Account; role defaults to customer"
// @Success      201   {object}  User
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      429   {object}  utils.ErrorResponse
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	role := entities.RoleCustomer
	if req.Role != "" {
		role = entities.Role(req.Role)
	}

	user, err := h.svc.Register(ctx, req.Name, req.Email, req.Password, role)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusCreated)
}

// Login exchanges credentials for a token pair.
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  TokenPair
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      403   {object}  utils.ErrorResponse "Account locked"
// @Failure      429   {object}  utils.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	pair, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteJSON(w, TokenPairEntityToJSON(pair), http.StatusOK)
}

// Refresh rotates the token pair.
// @Summary      Refresh tokens
// @Description  Each refresh token can be used once
// @Tags         auth
// @Accept       json
// @Param        body  body      RefreshRequest  true  "Refresh token"
// @Success      200   {object}  TokenPair
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      401   {object}  utils.ErrorResponse
// @Failure      429   {object}  utils.ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefreshRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	pair, err := h.svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	utils.WriteJSON(w, TokenPairEntityToJSON(pair), http.StatusOK)
}

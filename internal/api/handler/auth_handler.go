package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northstar/goals-api/internal/api/metrics"
	"github.com/northstar/goals-api/internal/core/domain"
	"github.com/northstar/goals-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Email and password"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "email already registered"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login with form-encoded credentials
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  tokenResponse
// @Failure      401       {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}

	token, err := h.authService.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many login attempts"})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Unknown email and wrong password are deliberately indistinguishable.
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated caller.
//
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, email, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{ID: id, Email: email})
}

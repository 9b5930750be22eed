package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
)

// LoginRecorder counts login outcomes.
type LoginRecorder interface {
	LoginAttempt(outcome string)
}

// AuthHandler handles registration, login and logout pages.
type AuthHandler struct {
	responder
	authService service.AuthService
	logins      LoginRecorder
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, logins LoginRecorder, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		responder:   responder{log: log},
		authService: authService,
		logins:      logins,
	}
}

// LoginPage godoc
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "login page"
// @Router /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if session.CurrentUser(c) != nil {
		return redirect(c, "/dashboard")
	}
	return h.render(c, "login", "Login", nil)
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "redirect to /dashboard"
// @Failure 303 "redirect to /login with an error flash"
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	id, err := h.authService.Authenticate(c.Request().Context(), c.FormValue("email"), c.FormValue("password"))
	if err != nil {
		h.recordLogin(err)
		return h.fail(c, err, "/login")
	}
	if err := session.Login(c, id); err != nil {
		h.recordLogin(err)
		return h.fail(c, err, "/login")
	}
	h.recordLogin(nil)
	return h.success(c, fmt.Sprintf("Welcome back, %s!", id.Username), "/dashboard")
}

// RegisterPage godoc
// @Summary Registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "register page"
// @Router /register [get]
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.render(c, "register", "Register", nil)
}

// Register godoc
// @Summary Create a user account
// @Description Any role field is ignored; new accounts are always regular users.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 6 characters)"
// @Success 303 "redirect to /login"
// @Failure 303 "redirect to /register with an error flash"
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	in := service.RegisterInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if _, err := h.authService.Register(c.Request().Context(), in); err != nil {
		return h.fail(c, err, "/register")
	}
	return h.success(c, "Registration successful! Please log in.", "/login")
}

// Logout godoc
// @Summary Log out and destroy the session
// @Tags auth
// @Success 303 "redirect to /login"
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Logout(c); err != nil {
		h.log.Error("logout failed", zap.Error(err))
	}
	return h.success(c, "You have been logged out.", "/login")
}

func (h *AuthHandler) recordLogin(err error) {
	if h.logins == nil {
		return
	}
	switch {
	case err == nil:
		h.logins.LoginAttempt("success")
	case errors.Is(err, errors.ErrInvalidCredentials):
		h.logins.LoginAttempt("invalid")
	default:
		h.logins.LoginAttempt("error")
	}
}

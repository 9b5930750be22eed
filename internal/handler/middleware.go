package handler

import (
	"github.com/labstack/echo/v4"

	"hawkerhero/internal/auth"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/session"
)

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := auth.RequireAuthenticated(session.CurrentUser(c)); err != nil {
			session.Flash(c, session.FlashError, errors.MsgLoginRequired)
			return redirect(c, "/login")
		}
		return next(c)
	}
}

// RequireAdmin lets only admins through; other logged in users go home.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, err := auth.RequireAdmin(session.CurrentUser(c))
		switch {
		case errors.Is(err, errors.ErrNotAuthenticated):
			session.Flash(c, session.FlashError, errors.MsgLoginRequired)
			return redirect(c, "/login")
		case err != nil:
			session.Flash(c, session.FlashError, errors.MsgUnavailable)
			return redirect(c, "/")
		}
		return next(c)
	}
}

package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
)

const homeFeatured = 6

// DashboardHandler serves the home page, the user dashboard and the admin overview.
type DashboardHandler struct {
	responder
	dashboard service.DashboardService
	stalls    service.StallService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboard service.DashboardService, stalls service.StallService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{log: log},
		dashboard: dashboard,
		stalls:    stalls,
	}
}

// Home godoc
// @Summary Landing page with the newest stalls
// @Tags pages
// @Produce html
// @Success 200 {string} string "home page"
// @Router / [get]
func (h *DashboardHandler) Home(c echo.Context) error {
	page := repository.Page{Number: 1, Size: homeFeatured}
	listing, err := h.stalls.List(c.Request().Context(), repository.StallFilter{}, page)
	if err != nil {
		h.log.Error("load featured stalls", zap.Error(err))
		listing = &service.StallListing{Result: repository.NewResult[model.StallRow](nil, 0, page)}
	}
	return h.render(c, "home", "Hawker Hero", Data{"Stalls": listing})
}

// Dashboard godoc
// @Summary Personal counters and recent activity
// @Tags pages
// @Produce html
// @Success 200 {string} string "dashboard page"
// @Failure 303 "redirect to /login"
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboard.UserStats(c.Request().Context(), session.CurrentUser(c))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "dashboard", "Dashboard", Data{"Stats": stats})
}

// Admin godoc
// @Summary Site-wide counters for administrators
// @Tags pages
// @Produce html
// @Success 200 {string} string "admin page"
// @Failure 303 "redirect to / or /login"
// @Router /admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	stats, err := h.dashboard.AdminStats(c.Request().Context(), session.CurrentUser(c))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "admin", "Admin", Data{"Stats": stats})
}

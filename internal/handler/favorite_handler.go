package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
)

// FavoriteHandler handles a user's saved stalls and dishes.
type FavoriteHandler struct {
	responder
	favorites service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favorites service.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		responder: responder{log: log},
		favorites: favorites,
	}
}

// List godoc
// @Summary List favorites
// @Description Regular users always see their own favorites. Admins may pass user or view=all.
// @Tags favorites
// @Produce html
// @Param search query string false "Stall, food or notes substring"
// @Param view query string false "all (admin only)"
// @Param user query int false "User id (admin only)"
// @Param page query int false "Page number"
// @Success 200 {string} string "favorite listing"
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	q := service.FavoriteQuery{
		Search: c.QueryParam("search"),
		View:   c.QueryParam("view"),
		UserID: optionalUint(c.QueryParam("user")),
	}
	page := repository.ParsePage(c.QueryParam("page"), service.FavoritePageSize)
	listing, err := h.favorites.List(c.Request().Context(), session.CurrentUser(c), q, page)
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "favorites/index", "My Favorites", Data{"Favorites": listing, "Filter": q})
}

// New godoc
// @Summary Add favorite form
// @Tags favorites
// @Produce html
// @Param stall_id query int false "Preselected stall"
// @Param food_id query int false "Preselected food item"
// @Router /favorites/add [get]
func (h *FavoriteHandler) New(c echo.Context) error {
	opts, err := h.favorites.FormOptions(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "/favorites")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 {
		form = map[string]string{
			"stall_id": c.QueryParam("stall_id"),
			"food_id":  c.QueryParam("food_id"),
		}
	}
	return h.render(c, "favorites/form", "Add Favorite", Data{"Options": opts, "Form": form})
}

// Create godoc
// @Summary Add a stall and/or food item to favorites
// @Description Adding an item that is already a favorite leaves a single row.
// @Tags favorites
// @Accept x-www-form-urlencoded
// @Param stall_id formData int false "Stall id"
// @Param food_id formData int false "Food item id"
// @Param notes formData string false "Notes"
// @Param redirect_to formData string false "Local path to return to"
// @Success 303 "redirect to redirect_to or /favorites"
// @Router /favorites/add [post]
func (h *FavoriteHandler) Create(c echo.Context) error {
	to := returnTo(c, "/favorites")
	in := service.FavoriteInput{
		StallID: optionalUint(c.FormValue("stall_id")),
		FoodID:  optionalUint(c.FormValue("food_id")),
		Notes:   c.FormValue("notes"),
	}
	created, err := h.favorites.Add(c.Request().Context(), session.CurrentUser(c), in)
	if err != nil {
		return h.fail(c, err, to)
	}
	if !created {
		session.Flash(c, session.FlashInfo, "This item is already in your favorites.")
		return redirect(c, to)
	}
	return h.success(c, "Successfully added to favorites!", to)
}

// Edit godoc
// @Summary Edit favorite notes form (owner or admin)
// @Tags favorites
// @Produce html
// @Param id path int true "Favorite id"
// @Router /favorites/edit/{id} [get]
func (h *FavoriteHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/favorites")
	}
	fav, err := h.favorites.Get(c.Request().Context(), session.CurrentUser(c), id)
	if err != nil {
		return h.fail(c, err, "/favorites")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 {
		form = map[string]string{}
		if fav.Notes != nil {
			form["notes"] = *fav.Notes
		}
	}
	return h.render(c, "favorites/edit", "Edit Favorite", Data{"Favorite": fav, "Form": form})
}

// Update godoc
// @Summary Update favorite notes (owner or admin)
// @Tags favorites
// @Accept x-www-form-urlencoded
// @Param id path int true "Favorite id"
// @Param notes formData string false "Notes; blank clears them"
// @Param redirect_to formData string false "Local path to return to"
// @Success 303 "redirect to redirect_to or /favorites"
// @Router /favorites/update/{id} [post]
func (h *FavoriteHandler) Update(c echo.Context) error {
	to := returnTo(c, "/favorites")
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, to)
	}
	if err := h.favorites.UpdateNotes(c.Request().Context(), session.CurrentUser(c), id, c.FormValue("notes")); err != nil {
		return h.fail(c, err, retryOr(err, fmt.Sprintf("/favorites/edit/%d", id), to))
	}
	return h.success(c, "Favorite updated successfully!", to)
}

// Delete godoc
// @Summary Remove a favorite (owner or admin)
// @Tags favorites
// @Param id path int true "Favorite id"
// @Param redirect_to formData string false "Local path to return to"
// @Success 303 "redirect to redirect_to or /favorites"
// @Router /favorites/delete/{id} [post]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	to := returnTo(c, "/favorites")
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, to)
	}
	if err := h.favorites.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, to)
	}
	return h.success(c, "Favorite removed successfully.", to)
}

// Others godoc
// @Summary What other users favorite
// @Description Aggregated counts only; owners are never shown.
// @Tags favorites
// @Produce html
// @Success 200 {string} string "popular favorites"
// @Router /favorites/others [get]
func (h *FavoriteHandler) Others(c echo.Context) error {
	items, err := h.favorites.Popular(c.Request().Context(), session.CurrentUser(c))
	if err != nil {
		return h.fail(c, err, "/favorites")
	}
	return h.render(c, "favorites/others", "Popular Favorites", Data{"Items": items})
}

package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
)

// RecommendationHandler handles admin tips about stalls and dishes.
type RecommendationHandler struct {
	responder
	recs     service.RecommendationService
	stalls   service.StallService
	foods    service.FoodItemService
	pageSize int
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(recs service.RecommendationService, stalls service.StallService, foods service.FoodItemService, pageSize int, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		responder: responder{log: log},
		recs:      recs,
		stalls:    stalls,
		foods:     foods,
		pageSize:  pageSize,
	}
}

// List godoc
// @Summary Browse recommendations
// @Tags recommendations
// @Produce html
// @Param search query string false "Tip, stall or username substring"
// @Param stall query int false "Stall id"
// @Param user query int false "Author id"
// @Param page query int false "Page number"
// @Success 200 {string} string "recommendation listing"
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c echo.Context) error {
	f := repository.RecommendationFilter{
		Search:  c.QueryParam("search"),
		StallID: optionalUint(c.QueryParam("stall")),
		UserID:  optionalUint(c.QueryParam("user")),
	}
	listing, err := h.recs.List(c.Request().Context(), f, repository.ParsePage(c.QueryParam("page"), h.pageSize))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "recommendations/index", "Recommendations", Data{"Recommendations": listing, "Filter": f})
}

// New godoc
// @Summary New recommendation form (admin)
// @Tags recommendations
// @Produce html
// @Router /recommendations/add [get]
func (h *RecommendationHandler) New(c echo.Context) error {
	return h.form(c, "Add Recommendation", nil)
}

// Create godoc
// @Summary Add a recommendation (admin)
// @Tags recommendations
// @Accept x-www-form-urlencoded
// @Param stall_id formData int true "Stall id"
// @Param food_id formData int false "Food item id sold at the stall"
// @Param tip formData string true "Tip"
// @Success 303 "redirect to /recommendations"
// @Router /recommendations/add [post]
func (h *RecommendationHandler) Create(c echo.Context) error {
	if _, err := h.recs.Create(c.Request().Context(), session.CurrentUser(c), recommendationInput(c)); err != nil {
		return h.fail(c, err, retryOr(err, "/recommendations/add", "/recommendations"))
	}
	return h.success(c, "Recommendation added successfully!", "/recommendations")
}

// Edit godoc
// @Summary Edit recommendation form (admin)
// @Tags recommendations
// @Produce html
// @Param id path int true "Recommendation id"
// @Router /recommendations/edit/{id} [get]
func (h *RecommendationHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/recommendations")
	}
	rec, err := h.recs.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "/recommendations")
	}
	return h.form(c, "Edit Recommendation", rec)
}

// Update godoc
// @Summary Update a recommendation (admin)
// @Tags recommendations
// @Accept x-www-form-urlencoded
// @Param id path int true "Recommendation id"
// @Success 303 "redirect to /recommendations"
// @Router /recommendations/edit/{id} [post]
func (h *RecommendationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/recommendations")
	}
	if _, err := h.recs.Update(c.Request().Context(), session.CurrentUser(c), id, recommendationInput(c)); err != nil {
		return h.fail(c, err, retryOr(err, fmt.Sprintf("/recommendations/edit/%d", id), "/recommendations"))
	}
	return h.success(c, fmt.Sprintf("Recommendation %d updated successfully!", id), "/recommendations")
}

// Delete godoc
// @Summary Delete a recommendation (admin)
// @Tags recommendations
// @Param id path int true "Recommendation id"
// @Success 303 "redirect to /recommendations"
// @Router /recommendations/delete/{id} [post]
func (h *RecommendationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/recommendations")
	}
	if err := h.recs.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/recommendations")
	}
	return h.success(c, fmt.Sprintf("Recommendation %d deleted successfully!", id), "/recommendations")
}

func (h *RecommendationHandler) form(c echo.Context, title string, rec *model.Recommendation) error {
	var stalls, foods []model.Option
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		stalls, err = h.stalls.Options(ctx)
		return err
	})
	g.Go(func() (err error) {
		foods, err = h.foods.Options(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return h.fail(c, err, "/recommendations")
	}

	form := session.From(c).TakeForm()
	if len(form) == 0 && rec != nil {
		form = map[string]string{
			"stall_id": strconv.FormatUint(uint64(rec.StallID), 10),
			"tip":      rec.Tip,
		}
		if rec.FoodID != nil {
			form["food_id"] = strconv.FormatUint(uint64(*rec.FoodID), 10)
		}
	}
	return h.render(c, "recommendations/form", title, Data{
		"Recommendation": rec,
		"Stalls":         stalls,
		"Foods":          foods,
		"Form":           form,
	})
}

func recommendationInput(c echo.Context) service.RecommendationInput {
	return service.RecommendationInput{
		StallID: formUint(c, "stall_id"),
		FoodID:  optionalUint(c.FormValue("food_id")),
		Tip:     c.FormValue("tip"),
	}
}

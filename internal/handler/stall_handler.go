package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
	"hawkerhero/internal/upload"
)

const stallReviewsShown = 5

// StallHandler handles stall pages.
type StallHandler struct {
	responder
	stalls   service.StallService
	centers  service.HawkerCenterService
	reviews  service.ReviewService
	uploads  *upload.Store
	pageSize int
}

// NewStallHandler creates a new stall handler.
func NewStallHandler(stalls service.StallService, centers service.HawkerCenterService, reviews service.ReviewService, uploads *upload.Store, pageSize int, log *zap.Logger) *StallHandler {
	return &StallHandler{
		responder: responder{log: log},
		stalls:    stalls,
		centers:   centers,
		reviews:   reviews,
		uploads:   uploads,
		pageSize:  pageSize,
	}
}

// List godoc
// @Summary Browse stalls
// @Tags stalls
// @Produce html
// @Param search query string false "Name substring"
// @Param cuisine query string false "Cuisine"
// @Param location query string false "Location substring"
// @Param center query int false "Hawker center id"
// @Param sort query string false "recent, oldest or name"
// @Param page query int false "Page number"
// @Success 200 {string} string "stall listing"
// @Router /stalls [get]
func (h *StallHandler) List(c echo.Context) error {
	f := repository.StallFilter{
		Search:   c.QueryParam("search"),
		Cuisine:  c.QueryParam("cuisine"),
		Location: c.QueryParam("location"),
		CenterID: optionalUint(c.QueryParam("center")),
		Sort:     c.QueryParam("sort"),
	}
	listing, err := h.stalls.List(c.Request().Context(), f, repository.ParsePage(c.QueryParam("page"), h.pageSize))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "stalls/index", "Stalls", Data{"Stalls": listing, "Filter": f})
}

// Show godoc
// @Summary Stall details with menu and latest reviews
// @Tags stalls
// @Produce html
// @Param id path int true "Stall id"
// @Success 200 {string} string "stall page"
// @Failure 303 "redirect to /stalls"
// @Router /stalls/{id} [get]
func (h *StallHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	ctx := c.Request().Context()
	detail, err := h.stalls.Get(ctx, id)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	reviews, err := h.reviews.List(ctx, repository.ReviewFilter{StallID: &id}, repository.Page{Number: 1, Size: stallReviewsShown})
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	return h.render(c, "stalls/show", detail.Stall.Name, Data{"Detail": detail, "Reviews": reviews})
}

// New godoc
// @Summary New stall form
// @Tags stalls
// @Produce html
// @Success 200 {string} string "stall form"
// @Router /stalls/new [get]
func (h *StallHandler) New(c echo.Context) error {
	return h.form(c, "Add Stall", nil)
}

// Create godoc
// @Summary Create a stall (admin)
// @Tags stalls
// @Accept multipart/form-data
// @Param name formData string true "Name"
// @Param location formData string true "Location"
// @Param cuisine formData string true "Cuisine"
// @Param center_id formData int false "Hawker center id"
// @Param image formData file false "Image"
// @Success 303 "redirect to /stalls"
// @Router /stalls [post]
func (h *StallHandler) Create(c echo.Context) error {
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, "/stalls/new")
	}
	if _, err := h.stalls.Create(c.Request().Context(), session.CurrentUser(c), in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, "/stalls/new")
	}
	return h.success(c, "Stall added successfully.", "/stalls")
}

// Edit godoc
// @Summary Edit stall form (admin)
// @Tags stalls
// @Produce html
// @Param id path int true "Stall id"
// @Success 200 {string} string "stall form"
// @Router /stalls/{id}/edit [get]
func (h *StallHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	stall, err := h.stalls.Find(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	return h.form(c, "Edit Stall", stall)
}

// Update godoc
// @Summary Update a stall (admin)
// @Tags stalls
// @Accept multipart/form-data
// @Param id path int true "Stall id"
// @Success 303 "redirect to the stall page"
// @Router /stalls/{id} [put]
func (h *StallHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	back := fmt.Sprintf("/stalls/%d/edit", id)
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, back)
	}
	if _, err := h.stalls.Update(c.Request().Context(), session.CurrentUser(c), id, in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, retryOr(err, back, "/stalls"))
	}
	return h.success(c, "Stall updated successfully.", fmt.Sprintf("/stalls/%d", id))
}

// Delete godoc
// @Summary Delete a stall (admin)
// @Tags stalls
// @Param id path int true "Stall id"
// @Success 303 "redirect to /stalls"
// @Router /stalls/{id} [delete]
func (h *StallHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	if err := h.stalls.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/stalls")
	}
	return h.success(c, "Stall deleted successfully.", "/stalls")
}

func (h *StallHandler) form(c echo.Context, title string, stall *model.Stall) error {
	centers, err := h.centers.Options(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "/stalls")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 && stall != nil {
		form = map[string]string{
			"name":     stall.Name,
			"location": stall.Location,
			"cuisine":  stall.Cuisine,
		}
		if stall.CenterID != nil {
			form["center_id"] = strconv.FormatUint(uint64(*stall.CenterID), 10)
		}
	}
	return h.render(c, "stalls/form", title, Data{"Stall": stall, "Centers": centers, "Form": form})
}

func (h *StallHandler) input(c echo.Context) (service.StallInput, error) {
	image, err := imageField(c, h.uploads)
	if err != nil {
		return service.StallInput{}, err
	}
	return service.StallInput{
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Cuisine:  c.FormValue("cuisine"),
		CenterID: optionalUint(c.FormValue("center_id")),
		ImageURL: image,
	}, nil
}

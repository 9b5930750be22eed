package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/model"
	"hawkerhero/internal/repository"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
	"hawkerhero/internal/upload"
)

// HawkerCenterHandler handles hawker center pages.
type HawkerCenterHandler struct {
	responder
	centers  service.HawkerCenterService
	uploads  *upload.Store
	pageSize int
}

// NewHawkerCenterHandler creates a new hawker center handler.
func NewHawkerCenterHandler(centers service.HawkerCenterService, uploads *upload.Store, pageSize int, log *zap.Logger) *HawkerCenterHandler {
	return &HawkerCenterHandler{
		responder: responder{log: log},
		centers:   centers,
		uploads:   uploads,
		pageSize:  pageSize,
	}
}

// List godoc
// @Summary Browse hawker centers
// @Tags hawker-centers
// @Produce html
// @Param search query string false "Name or address substring"
// @Param facilities query string false "Facilities substring"
// @Param sort query string false "name, recent or stalls"
// @Param page query int false "Page number"
// @Success 200 {string} string "hawker center listing"
// @Router /hawker-centers [get]
func (h *HawkerCenterHandler) List(c echo.Context) error {
	f := repository.CenterFilter{
		Search:     c.QueryParam("search"),
		Facilities: c.QueryParam("facilities"),
		Sort:       c.QueryParam("sort"),
	}
	res, err := h.centers.List(c.Request().Context(), f, repository.ParsePage(c.QueryParam("page"), h.pageSize))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "centers/index", "Hawker Centers", Data{"Centers": res, "Filter": f})
}

// Show godoc
// @Summary Hawker center with its stalls
// @Tags hawker-centers
// @Produce html
// @Param id path int true "Hawker center id"
// @Success 200 {string} string "hawker center page"
// @Router /hawker-centers/{id} [get]
func (h *HawkerCenterHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	detail, err := h.centers.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	return h.render(c, "centers/show", detail.Center.Name, Data{"Detail": detail})
}

// New godoc
// @Summary New hawker center form (admin)
// @Tags hawker-centers
// @Produce html
// @Router /hawker-centers/new [get]
func (h *HawkerCenterHandler) New(c echo.Context) error {
	return h.form(c, "Add Hawker Center", nil)
}

// Create godoc
// @Summary Create a hawker center (admin)
// @Tags hawker-centers
// @Accept multipart/form-data
// @Param name formData string true "Name"
// @Param address formData string true "Address"
// @Param facilities formData string false "Facilities"
// @Param image formData file false "Image"
// @Success 303 "redirect to /hawker-centers"
// @Router /hawker-centers [post]
func (h *HawkerCenterHandler) Create(c echo.Context) error {
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, "/hawker-centers/new")
	}
	if _, err := h.centers.Create(c.Request().Context(), session.CurrentUser(c), in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, "/hawker-centers/new")
	}
	return h.success(c, "Hawker center added successfully.", "/hawker-centers")
}

// Edit godoc
// @Summary Edit hawker center form (admin)
// @Tags hawker-centers
// @Produce html
// @Param id path int true "Hawker center id"
// @Router /hawker-centers/{id}/edit [get]
func (h *HawkerCenterHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	center, err := h.centers.Find(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	return h.form(c, "Edit Hawker Center", center)
}

// Update godoc
// @Summary Update a hawker center (admin)
// @Tags hawker-centers
// @Accept multipart/form-data
// @Param id path int true "Hawker center id"
// @Success 303 "redirect to the hawker center page"
// @Router /hawker-centers/{id} [put]
func (h *HawkerCenterHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	back := fmt.Sprintf("/hawker-centers/%d/edit", id)
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, back)
	}
	if _, err := h.centers.Update(c.Request().Context(), session.CurrentUser(c), id, in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, retryOr(err, back, "/hawker-centers"))
	}
	return h.success(c, "Hawker center updated successfully.", fmt.Sprintf("/hawker-centers/%d", id))
}

// Delete godoc
// @Summary Delete a hawker center (admin)
// @Description Refused while any stall still references the center.
// @Tags hawker-centers
// @Param id path int true "Hawker center id"
// @Success 303 "redirect to /hawker-centers"
// @Router /hawker-centers/{id} [delete]
func (h *HawkerCenterHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	if err := h.centers.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/hawker-centers")
	}
	return h.success(c, "Hawker center deleted successfully.", "/hawker-centers")
}

func (h *HawkerCenterHandler) form(c echo.Context, title string, center *model.HawkerCenter) error {
	form := session.From(c).TakeForm()
	if len(form) == 0 && center != nil {
		form = map[string]string{
			"name":       center.Name,
			"address":    center.Address,
			"facilities": center.Facilities,
		}
	}
	return h.render(c, "centers/form", title, Data{"Center": center, "Form": form})
}

func (h *HawkerCenterHandler) input(c echo.Context) (service.CenterInput, error) {
	image, err := imageField(c, h.uploads)
	if err != nil {
		return service.CenterInput{}, err
	}
	return service.CenterInput{
		Name:       c.FormValue("name"),
		Address:    c.FormValue("address"),
		Facilities: c.FormValue("facilities"),
		ImageURL:   image,
	}, nil
}

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

// FoodItemHandler handles food item pages.
type FoodItemHandler struct {
	responder
	foods    service.FoodItemService
	stalls   service.StallService
	uploads  *upload.Store
	pageSize int
}

// NewFoodItemHandler creates a new food item handler.
func NewFoodItemHandler(foods service.FoodItemService, stalls service.StallService, uploads *upload.Store, pageSize int, log *zap.Logger) *FoodItemHandler {
	return &FoodItemHandler{
		responder: responder{log: log},
		foods:     foods,
		stalls:    stalls,
		uploads:   uploads,
		pageSize:  pageSize,
	}
}

// List godoc
// @Summary Browse food items
// @Tags food-items
// @Produce html
// @Param name query string false "Name substring"
// @Param min_price query number false "Lowest price"
// @Param max_price query number false "Highest price"
// @Param stall query int false "Stall id"
// @Param sort query string false "recent, name, price_asc or price_desc"
// @Param page query int false "Page number"
// @Success 200 {string} string "food item listing"
// @Router /food-items [get]
func (h *FoodItemHandler) List(c echo.Context) error {
	f := repository.FoodItemFilter{
		Name:     c.QueryParam("name"),
		MinPrice: optionalDecimal(c.QueryParam("min_price")),
		MaxPrice: optionalDecimal(c.QueryParam("max_price")),
		StallID:  optionalUint(c.QueryParam("stall")),
		Sort:     c.QueryParam("sort"),
	}
	listing, err := h.foods.List(c.Request().Context(), f, repository.ParsePage(c.QueryParam("page"), h.pageSize))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "foods/index", "Food Items", Data{"Foods": listing, "Filter": f})
}

// Show godoc
// @Summary Food item details
// @Tags food-items
// @Produce html
// @Param id path int true "Food item id"
// @Router /food-items/{id} [get]
func (h *FoodItemHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	ctx := c.Request().Context()
	item, err := h.foods.Get(ctx, id)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	stall, err := h.stalls.Find(ctx, item.StallID)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	return h.render(c, "foods/show", item.Name, Data{"Item": item, "Stall": stall})
}

// New godoc
// @Summary New food item form (admin)
// @Tags food-items
// @Produce html
// @Router /food-items/new [get]
func (h *FoodItemHandler) New(c echo.Context) error {
	return h.form(c, "Add Food Item", nil)
}

// Create godoc
// @Summary Create a food item (admin)
// @Tags food-items
// @Accept multipart/form-data
// @Param name formData string true "Name"
// @Param price formData number true "Price"
// @Param stall_id formData int true "Stall id"
// @Param description formData string false "Description"
// @Param image formData file false "Image"
// @Success 303 "redirect to /food-items"
// @Router /food-items [post]
func (h *FoodItemHandler) Create(c echo.Context) error {
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, "/food-items/new")
	}
	if _, err := h.foods.Create(c.Request().Context(), session.CurrentUser(c), in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, "/food-items/new")
	}
	return h.success(c, "Food item added successfully.", "/food-items")
}

// Edit godoc
// @Summary Edit food item form (admin)
// @Tags food-items
// @Produce html
// @Param id path int true "Food item id"
// @Router /food-items/{id}/edit [get]
func (h *FoodItemHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	item, err := h.foods.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	return h.form(c, "Edit Food Item", item)
}

// Update godoc
// @Summary Update a food item (admin)
// @Tags food-items
// @Accept multipart/form-data
// @Param id path int true "Food item id"
// @Success 303 "redirect to /food-items"
// @Router /food-items/{id} [put]
func (h *FoodItemHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	back := fmt.Sprintf("/food-items/%d/edit", id)
	in, err := h.input(c)
	if err != nil {
		return h.fail(c, err, back)
	}
	if _, err := h.foods.Update(c.Request().Context(), session.CurrentUser(c), id, in); err != nil {
		h.discard(h.uploads, in.ImageURL)
		return h.fail(c, err, retryOr(err, back, "/food-items"))
	}
	return h.success(c, "Food item updated successfully.", "/food-items")
}

// Delete godoc
// @Summary Delete a food item (admin)
// @Tags food-items
// @Param id path int true "Food item id"
// @Success 303 "redirect to /food-items"
// @Router /food-items/{id} [delete]
func (h *FoodItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	if err := h.foods.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/food-items")
	}
	return h.success(c, "Food item deleted successfully.", "/food-items")
}

func (h *FoodItemHandler) form(c echo.Context, title string, item *model.FoodItem) error {
	stalls, err := h.stalls.Options(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "/food-items")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 {
		form = map[string]string{}
		if item != nil {
			form["name"] = item.Name
			form["price"] = item.Price.StringFixed(2)
			form["description"] = item.Description
			form["stall_id"] = strconv.FormatUint(uint64(item.StallID), 10)
		} else if stall := c.QueryParam("stall_id"); stall != "" {
			form["stall_id"] = stall
		}
	}
	return h.render(c, "foods/form", title, Data{"Item": item, "Stalls": stalls, "Form": form})
}

func (h *FoodItemHandler) input(c echo.Context) (service.FoodItemInput, error) {
	price, err := priceField(c)
	if err != nil {
		return service.FoodItemInput{}, err
	}
	image, err := imageField(c, h.uploads)
	if err != nil {
		return service.FoodItemInput{}, err
	}
	return service.FoodItemInput{
		Name:        c.FormValue("name"),
		Price:       price,
		Description: c.FormValue("description"),
		StallID:     formUint(c, "stall_id"),
		ImageURL:    image,
	}, nil
}

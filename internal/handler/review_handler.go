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
)

// ReviewHandler handles reviews and the comments posted under them.
type ReviewHandler struct {
	responder
	reviews  service.ReviewService
	stalls   service.StallService
	pageSize int
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews service.ReviewService, stalls service.StallService, pageSize int, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		responder: responder{log: log},
		reviews:   reviews,
		stalls:    stalls,
		pageSize:  pageSize,
	}
}

// List godoc
// @Summary Browse reviews
// @Description Lists reviews with the average rating of every match and the comments of each listed review.
// @Tags reviews
// @Produce html
// @Param rating query int false "Exact rating"
// @Param stall query string false "Stall name"
// @Param search query string false "Comment, stall or username substring"
// @Param min_price query number false "Stall sells an item at or above this price"
// @Param max_price query number false "Stall sells an item at or below this price"
// @Param sort query string false "recent, oldest, highest or lowest"
// @Param page query int false "Page number"
// @Success 200 {string} string "review listing"
// @Router /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	f := repository.ReviewFilter{
		Rating:    optionalInt(c.QueryParam("rating")),
		StallName: c.QueryParam("stall"),
		Search:    c.QueryParam("search"),
		MinPrice:  optionalDecimal(c.QueryParam("min_price")),
		MaxPrice:  optionalDecimal(c.QueryParam("max_price")),
		Sort:      c.QueryParam("sort"),
	}
	listing, err := h.reviews.List(c.Request().Context(), f, repository.ParsePage(c.QueryParam("page"), h.pageSize))
	if err != nil {
		return h.fail(c, err, "/")
	}
	return h.render(c, "reviews/index", "Reviews", Data{"Reviews": listing, "Filter": f})
}

// New godoc
// @Summary New review form
// @Tags reviews
// @Produce html
// @Param stall_id query int false "Preselected stall"
// @Router /addReviews [get]
func (h *ReviewHandler) New(c echo.Context) error {
	return h.form(c, "Add Review", nil)
}

// Create godoc
// @Summary Post a review
// @Tags reviews
// @Accept x-www-form-urlencoded
// @Param stall_id formData int true "Stall id"
// @Param rating formData int true "Rating 1-5"
// @Param comment formData string true "Review text"
// @Success 303 "redirect to /reviews"
// @Failure 303 "redirect to /addReviews with an error flash"
// @Router /addReviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	in := service.ReviewInput{
		StallID: formUint(c, "stall_id"),
		Comment: c.FormValue("comment"),
	}
	if rating := optionalInt(c.FormValue("rating")); rating != nil {
		in.Rating = *rating
	}
	if _, err := h.reviews.Create(c.Request().Context(), session.CurrentUser(c), in); err != nil {
		return h.fail(c, err, "/addReviews")
	}
	return h.success(c, "Review added successfully!", "/reviews")
}

// Edit godoc
// @Summary Edit review form (owner or admin)
// @Tags reviews
// @Produce html
// @Param id path int true "Review id"
// @Router /editReviews/{id} [get]
func (h *ReviewHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	review, err := h.reviews.GetForEdit(c.Request().Context(), session.CurrentUser(c), id)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	return h.form(c, "Edit Review", review)
}

// Update godoc
// @Summary Update a review (owner or admin)
// @Description Fields left out of the form keep their stored values.
// @Tags reviews
// @Accept x-www-form-urlencoded
// @Param id path int true "Review id"
// @Success 303 "redirect to /reviews"
// @Router /editReviews/{id} [post]
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	patch, err := reviewPatch(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	if _, err := h.reviews.Update(c.Request().Context(), session.CurrentUser(c), id, patch); err != nil {
		return h.fail(c, err, retryOr(err, fmt.Sprintf("/editReviews/%d", id), "/reviews"))
	}
	return h.success(c, "Review updated successfully!", "/reviews")
}

// Delete godoc
// @Summary Delete a review (owner or admin)
// @Tags reviews
// @Param id path int true "Review id"
// @Success 303 "redirect to /reviews"
// @Router /reviews/delete/{id} [get]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	if err := h.reviews.Delete(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/reviews")
	}
	return h.success(c, "Review deleted successfully!", "/reviews")
}

// AddComment godoc
// @Summary Comment on a review
// @Tags comments
// @Accept x-www-form-urlencoded
// @Param id path int true "Review id"
// @Param comment formData string true "Comment text"
// @Success 303 "redirect to /reviews"
// @Router /reviews/{id}/comments [post]
func (h *ReviewHandler) AddComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	in := service.CommentInput{Comment: c.FormValue("comment")}
	if _, err := h.reviews.AddComment(c.Request().Context(), session.CurrentUser(c), id, in); err != nil {
		return h.fail(c, err, "/reviews")
	}
	return h.success(c, "Comment added successfully!", "/reviews")
}

// EditComment godoc
// @Summary Edit comment form (author or admin)
// @Tags comments
// @Produce html
// @Param id path int true "Comment id"
// @Router /comments/edit/{id} [get]
func (h *ReviewHandler) EditComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	comment, err := h.reviews.GetCommentForEdit(c.Request().Context(), session.CurrentUser(c), id)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 {
		form = map[string]string{"comment": comment.Comment}
	}
	return h.render(c, "comments/form", "Edit Comment", Data{"Comment": comment, "Form": form})
}

// UpdateComment godoc
// @Summary Update a comment (author or admin)
// @Tags comments
// @Accept x-www-form-urlencoded
// @Param id path int true "Comment id"
// @Param comment formData string true "Comment text"
// @Success 303 "redirect to /reviews"
// @Router /comments/edit/{id} [post]
func (h *ReviewHandler) UpdateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	in := service.CommentInput{Comment: c.FormValue("comment")}
	if _, err := h.reviews.UpdateComment(c.Request().Context(), session.CurrentUser(c), id, in); err != nil {
		return h.fail(c, err, retryOr(err, fmt.Sprintf("/comments/edit/%d", id), "/reviews"))
	}
	return h.success(c, "Comment updated successfully!", "/reviews")
}

// DeleteComment godoc
// @Summary Delete a comment (author or admin)
// @Tags comments
// @Param id path int true "Comment id"
// @Success 303 "redirect to /reviews"
// @Router /comments/delete/{id} [get]
func (h *ReviewHandler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	if _, err := h.reviews.DeleteComment(c.Request().Context(), session.CurrentUser(c), id); err != nil {
		return h.fail(c, err, "/reviews")
	}
	return h.success(c, "Comment deleted successfully!", "/reviews")
}

func (h *ReviewHandler) form(c echo.Context, title string, review *model.Review) error {
	stalls, err := h.stalls.Options(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "/reviews")
	}
	form := session.From(c).TakeForm()
	if len(form) == 0 {
		form = map[string]string{}
		if review != nil {
			form["stall_id"] = strconv.FormatUint(uint64(review.StallID), 10)
			form["rating"] = strconv.Itoa(review.Rating)
			form["comment"] = review.Comment
		} else if stall := c.QueryParam("stall_id"); stall != "" {
			form["stall_id"] = stall
		}
	}
	return h.render(c, "reviews/form", title, Data{"Review": review, "Stalls": stalls, "Form": form})
}

// reviewPatch collects the submitted review fields. A submitted but
// unparsable rating becomes 0 so it fails the range check.
func reviewPatch(c echo.Context) (service.ReviewPatch, error) {
	params, err := c.FormParams()
	if err != nil {
		return service.ReviewPatch{}, err
	}
	var patch service.ReviewPatch
	if _, ok := params["stall_id"]; ok {
		stall := formUint(c, "stall_id")
		patch.StallID = &stall
	}
	if _, ok := params["rating"]; ok {
		rating := 0
		if v := optionalInt(params.Get("rating")); v != nil {
			rating = *v
		}
		patch.Rating = &rating
	}
	if _, ok := params["comment"]; ok {
		comment := params.Get("comment")
		patch.Comment = &comment
	}
	return patch, nil
}

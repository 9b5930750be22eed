package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
	"hawkerhero/internal/service"
	"hawkerhero/internal/session"
)

func newReviewApp(t *testing.T) (*testApp, *MockReviewService, *MockStallService) {
	app := newTestApp(t)
	reviews := new(MockReviewService)
	stalls := new(MockStallService)
	h := NewReviewHandler(reviews, stalls, 10, zap.NewNop())

	app.pages.GET("/addReviews", h.New, RequireLogin)
	app.pages.POST("/addReviews", h.Create, RequireLogin)
	app.pages.GET("/editReviews/:id", h.Edit, RequireLogin)
	app.pages.POST("/editReviews/:id", h.Update, RequireLogin)
	app.pages.GET("/reviews/delete/:id", h.Delete, RequireLogin)
	app.pages.GET("/comments/edit/:id", h.EditComment, RequireLogin)
	app.pages.POST("/comments/edit/:id", h.UpdateComment, RequireLogin)
	return app, reviews, stalls
}

func TestReviewHandler_EditFormOnlyForOwnerOrAdmin(t *testing.T) {
	app, reviews, stalls := newReviewApp(t)
	review := &model.Review{ID: 5, UserID: alice.ID, StallID: 3, Rating: 4, Comment: "Great laksa"}
	reviews.On("GetForEdit", mock.Anything, actor(bob), uint(5)).Return(nil, errors.ErrNotAuthorized)
	reviews.On("GetForEdit", mock.Anything, actor(alice), uint(5)).Return(review, nil)
	reviews.On("GetForEdit", mock.Anything, actor(admin), uint(5)).Return(review, nil)
	stalls.On("Options", mock.Anything).Return([]model.Option{{ID: 3, Name: "Laksa King"}}, nil)

	app.loginAs(t, bob)
	assertRedirect(t, app.get("/editReviews/5"), "/reviews")
	assert.Equal(t, []string{errors.MsgUnavailable}, flashes(app.page(t), session.FlashError))

	for _, who := range []*model.Identity{alice, admin} {
		app.loginAs(t, who)
		rec := app.get("/editReviews/5")
		require.Equal(t, http.StatusOK, rec.Code, who.Username)
		assert.Equal(t, "reviews/form", app.view.name)
		form := savedForm(app.view.data)
		assert.Equal(t, "3", form["stall_id"])
		assert.Equal(t, "4", form["rating"])
		assert.Equal(t, "Great laksa", form["comment"])
	}
}

func TestReviewHandler_UpdateByOtherUserRejected(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	hijack := "hijacked"
	reviews.On("Update", mock.Anything, actor(bob), uint(5), service.ReviewPatch{Comment: &hijack}).
		Return(nil, errors.ErrNotAuthorized)

	app.loginAs(t, bob)
	rec := app.post("/editReviews/5", url.Values{"comment": {"hijacked"}})

	assertRedirect(t, rec, "/reviews")
	assert.Equal(t, []string{errors.MsgUnavailable}, flashes(app.page(t), session.FlashError))
	reviews.AssertExpectations(t)
}

func TestReviewHandler_UpdateByOwnerAndAdmin(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	reviews.On("Update", mock.Anything, mock.Anything, uint(5), mock.AnythingOfType("service.ReviewPatch")).
		Return(&model.Review{ID: 5}, nil)

	for _, who := range []*model.Identity{alice, admin} {
		app.loginAs(t, who)
		rec := app.post("/editReviews/5", url.Values{"rating": {"5"}, "comment": {"Even better"}})

		assertRedirect(t, rec, "/reviews")
		assert.Equal(t, []string{"Review updated successfully!"}, flashes(app.page(t), session.FlashSuccess))
	}
	reviews.AssertNumberOfCalls(t, "Update", 2)
}

func TestReviewHandler_UpdateValidationReturnsToForm(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	zero := 0
	comment := "meh"
	reviews.On("Update", mock.Anything, actor(alice), uint(5), service.ReviewPatch{Rating: &zero, Comment: &comment}).
		Return(nil, errors.NewValidationError("rating", "Rating must be between 1 and 5."))

	app.loginAs(t, alice)
	rec := app.post("/editReviews/5", url.Values{"rating": {"abc"}, "comment": {"meh"}})

	assertRedirect(t, rec, "/editReviews/5")
	data := app.page(t)
	assert.Equal(t, []string{"Rating must be between 1 and 5."}, flashes(data, session.FlashError))
	assert.Equal(t, "meh", savedForm(data)["comment"])
	reviews.AssertExpectations(t)
}

func TestReviewHandler_CreateRequiresLogin(t *testing.T) {
	app, reviews, _ := newReviewApp(t)

	assertRedirect(t, app.post("/addReviews", url.Values{"stall_id": {"3"}, "rating": {"5"}, "comment": {"Shiok"}}), "/login")
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_Create(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	in := service.ReviewInput{StallID: 3, Rating: 5, Comment: "Shiok"}
	reviews.On("Create", mock.Anything, actor(alice), in).Return(&model.Review{ID: 11}, nil)

	app.loginAs(t, alice)
	rec := app.post("/addReviews", url.Values{"stall_id": {"3"}, "rating": {"5"}, "comment": {"Shiok"}})

	assertRedirect(t, rec, "/reviews")
	assert.Equal(t, []string{"Review added successfully!"}, flashes(app.page(t), session.FlashSuccess))
	reviews.AssertExpectations(t)
}

func TestReviewHandler_NewPrefillsStallFromQuery(t *testing.T) {
	app, _, stalls := newReviewApp(t)
	stalls.On("Options", mock.Anything).Return([]model.Option{{ID: 3, Name: "Laksa King"}}, nil)

	app.loginAs(t, alice)
	rec := app.get("/addReviews?stall_id=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reviews/form", app.view.name)
	assert.Equal(t, "3", savedForm(app.view.data)["stall_id"])
	assert.Len(t, app.view.data["Stalls"], 1)
}

func TestReviewHandler_DeleteMissing(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	reviews.On("Delete", mock.Anything, actor(alice), uint(404)).Return(errors.ErrNotFound)

	app.loginAs(t, alice)
	assertRedirect(t, app.get("/reviews/delete/404"), "/reviews")
	assert.Equal(t, []string{errors.MsgUnavailable}, flashes(app.page(t), session.FlashError))
}

func TestReviewHandler_EditCommentPrefill(t *testing.T) {
	app, reviews, _ := newReviewApp(t)
	reviews.On("GetCommentForEdit", mock.Anything, actor(alice), uint(8)).
		Return(&model.Comment{ID: 8, UserID: alice.ID, ReviewID: 5, Comment: "Agree!"}, nil)

	app.loginAs(t, alice)
	rec := app.get("/comments/edit/8")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "comments/form", app.view.name)
	assert.Equal(t, "Agree!", savedForm(app.view.data)["comment"])
}

func TestReviewPatch(t *testing.T) {
	app := newTestApp(t)
	var got service.ReviewPatch
	app.pages.POST("/patch", func(c echo.Context) error {
		patch, err := reviewPatch(c)
		got = patch
		return err
	})

	app.post("/patch", url.Values{"rating": {"x"}})
	require.NotNil(t, got.Rating)
	assert.Equal(t, 0, *got.Rating)
	assert.Nil(t, got.StallID)
	assert.Nil(t, got.Comment)

	app.post("/patch", url.Values{"stall_id": {"4"}, "comment": {""}})
	require.NotNil(t, got.StallID)
	assert.Equal(t, uint(4), *got.StallID)
	require.NotNil(t, got.Comment)
	assert.Empty(t, *got.Comment)
	assert.Nil(t, got.Rating)
}

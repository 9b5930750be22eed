package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/session"
	"hawkerhero/internal/upload"
)

const (
	// CSRFField is the form field, or query parameter on GET links, carrying
	// the CSRF token.
	CSRFField = "_csrf"
	// CSRFContextKey is where the CSRF middleware stores the expected token.
	CSRFContextKey = "csrf"
)

// Data is the bag handed to a view.
type Data map[string]interface{}

// responder holds the rendering and error-to-redirect helpers shared by all
// page handlers.
type responder struct {
	log *zap.Logger
}

// render fills the common keys (title, user, flashes, saved form, query) and
// renders view.
func (r responder) render(c echo.Context, view, title string, data Data) error {
	if data == nil {
		data = Data{}
	}
	sess := session.From(c)
	data["Title"] = title
	data["User"] = sess.User
	data["Flash"] = sess.AllFlashes()
	if _, ok := data["Form"]; !ok {
		data["Form"] = sess.TakeForm()
	}
	data["Query"] = c.QueryParams()
	data["Path"] = c.Request().URL.Path
	data["CSRF"], _ = c.Get(CSRFContextKey).(string)
	return c.Render(http.StatusOK, view, data)
}

// fail turns err into a flash message and a redirect. Validation and conflict
// failures keep the submitted form for the next render of back.
func (r responder) fail(c echo.Context, err error, back string) error {
	if ve, ok := errors.IsValidation(err); ok {
		session.Flash(c, session.FlashError, ve.Message)
		saveForm(c)
		return redirect(c, back)
	}

	he := errors.MapErrorToHTTP(err)
	switch {
	case errors.Is(err, errors.ErrNotAuthenticated):
		session.Flash(c, session.FlashError, he.Message)
		return redirect(c, "/login")
	case errors.Is(err, errors.ErrConflict), errors.Is(err, errors.ErrInvalidCredentials):
		saveForm(c)
	}
	fields := []zap.Field{
		zap.String("method", c.Request().Method),
		zap.String("path", c.Request().URL.Path),
		zap.String("code", he.Code),
		zap.Error(err),
	}
	if he.StatusCode >= http.StatusInternalServerError {
		r.log.Error("request failed", fields...)
	} else {
		r.log.Debug("request rejected", fields...)
	}
	session.Flash(c, session.FlashError, he.Message)
	return redirect(c, back)
}

func (r responder) success(c echo.Context, msg, to string) error {
	session.Flash(c, session.FlashSuccess, msg)
	return redirect(c, to)
}

func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}

// saveForm keeps the submitted values, minus secrets, for the next render.
func saveForm(c echo.Context) {
	params, err := c.FormParams()
	if err != nil {
		return
	}
	values := make(map[string]string, len(params))
	for key, vals := range params {
		if key == "password" || key == "_method" || key == CSRFField || len(vals) == 0 {
			continue
		}
		values[key] = vals[0]
	}
	session.From(c).SetForm(values)
}

// pathID parses the :id route parameter. Malformed ids behave like missing rows.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.ErrNotFound
	}
	return uint(id), nil
}

func optionalUint(raw string) *uint {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

func optionalInt(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

func optionalDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// formUint reads a required numeric form field; anything unparsable is zero
// and fails the service's required check.
func formUint(c echo.Context, name string) uint {
	if v := optionalUint(c.FormValue(name)); v != nil {
		return *v
	}
	return 0
}

// priceField parses the price form field, rejecting text that is not a number.
func priceField(c echo.Context) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.FormValue("price"))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.NewValidationError("price", "Price must be a non-negative number.")
	}
	return &d, nil
}

// imageField stores an uploaded image, if any, and returns its filename.
func imageField(c echo.Context, store *upload.Store) (string, error) {
	fh, err := c.FormFile(upload.FieldName)
	if err != nil {
		// no file submitted
		return "", nil
	}
	if store == nil || fh.Size == 0 {
		return "", nil
	}
	return store.Save(fh)
}

// discard removes an image saved for a request the service then rejected.
func (r responder) discard(store *upload.Store, name string) {
	if name == "" {
		return
	}
	if err := store.Remove(name); err != nil {
		r.log.Warn("remove rejected upload", zap.String("file", name), zap.Error(err))
	}
}

// returnTo reads the redirect_to form field, accepting only local paths.
func returnTo(c echo.Context, fallback string) string {
	to := strings.TrimSpace(c.FormValue("redirect_to"))
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") || strings.Contains(to, `\`) {
		return fallback
	}
	return to
}

// retryOr sends validation and conflict failures back to the form and
// everything else to the listing.
func retryOr(err error, form, listing string) string {
	if _, ok := errors.IsValidation(err); ok || errors.Is(err, errors.ErrConflict) {
		return form
	}
	return listing
}

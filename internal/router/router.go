package router

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"hawkerhero/internal/config"
	"hawkerhero/internal/errors"
	"hawkerhero/internal/handler"
	"hawkerhero/internal/metrics"
	"hawkerhero/internal/session"
)

const (
	loginBurst     = 5
	loginLimiterGC = 3 * time.Minute
	bodyLimit      = "6M"
)

// Handlers groups the page handlers mounted by Register.
type Handlers struct {
	Auth            *handler.AuthHandler
	Dashboard       *handler.DashboardHandler
	Stalls          *handler.StallHandler
	Centers         *handler.HawkerCenterHandler
	Foods           *handler.FoodItemHandler
	Reviews         *handler.ReviewHandler
	Favorites       *handler.FavoriteHandler
	Recommendations *handler.RecommendationHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	sessions *session.Manager,
	m *metrics.Metrics,
	h Handlers,
) {
	// forms send PUT and DELETE through a hidden _method field
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm("_method"),
	}))
	e.Use(middleware.RequestID())
	e.Use(m.Middleware())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.HTTPErrorHandler = errorHandler(log)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/images", cfg.UploadDir)

	pages := e.Group("", sessions.Middleware(), csrf(cfg.CookieSecure))
	login := handler.RequireLogin
	admin := handler.RequireAdmin
	token := requireToken

	pages.GET("/", h.Dashboard.Home)
	pages.GET("/login", h.Auth.LoginPage)
	pages.POST("/login", h.Auth.Login, loginLimiter(cfg.LoginRateLimit))
	pages.GET("/register", h.Auth.RegisterPage)
	pages.POST("/register", h.Auth.Register)
	pages.GET("/logout", h.Auth.Logout, token)
	pages.GET("/dashboard", h.Dashboard.Dashboard, login)
	pages.GET("/admin", h.Dashboard.Admin, admin)

	// Hawker centers
	pages.GET("/hawker-centers", h.Centers.List)
	pages.GET("/hawker-centers/new", h.Centers.New, admin)
	pages.GET("/hawker-centers/:id", h.Centers.Show)
	pages.POST("/hawker-centers", h.Centers.Create, admin)
	pages.POST("/hawker-centers/add", h.Centers.Create, admin)
	pages.GET("/hawker-centers/:id/edit", h.Centers.Edit, admin)
	pages.GET("/hawker-centers/edit/:id", h.Centers.Edit, admin)
	pages.PUT("/hawker-centers/:id", h.Centers.Update, admin)
	pages.POST("/hawker-centers/edit/:id", h.Centers.Update, admin)
	pages.DELETE("/hawker-centers/:id", h.Centers.Delete, admin)
	pages.POST("/hawker-centers/delete/:id", h.Centers.Delete, admin)

	// Stalls
	pages.GET("/stalls", h.Stalls.List)
	pages.GET("/stalls/new", h.Stalls.New, admin)
	pages.GET("/stalls/:id", h.Stalls.Show)
	pages.POST("/stalls", h.Stalls.Create, admin)
	pages.GET("/stalls/:id/edit", h.Stalls.Edit, admin)
	pages.PUT("/stalls/:id", h.Stalls.Update, admin)
	pages.DELETE("/stalls/:id", h.Stalls.Delete, admin)

	// Food items
	pages.GET("/food-items", h.Foods.List)
	pages.GET("/food-items/new", h.Foods.New, admin)
	pages.GET("/food-items/:id", h.Foods.Show)
	pages.POST("/food-items", h.Foods.Create, admin)
	pages.POST("/food-items/add", h.Foods.Create, admin)
	pages.GET("/food-items/:id/edit", h.Foods.Edit, admin)
	pages.GET("/food-items/edit/:id", h.Foods.Edit, admin)
	pages.PUT("/food-items/:id", h.Foods.Update, admin)
	pages.POST("/food-items/edit/:id", h.Foods.Update, admin)
	pages.DELETE("/food-items/:id", h.Foods.Delete, admin)
	pages.POST("/food-items/delete/:id", h.Foods.Delete, admin)

	// Reviews and comments
	pages.GET("/reviews", h.Reviews.List)
	pages.GET("/addReviews", h.Reviews.New, login)
	pages.POST("/addReviews", h.Reviews.Create, login)
	pages.GET("/editReviews/:id", h.Reviews.Edit, login)
	pages.POST("/editReviews/:id", h.Reviews.Update, login)
	pages.GET("/reviews/delete/:id", h.Reviews.Delete, login, token)
	pages.POST("/reviews/:id/comments", h.Reviews.AddComment, login)
	pages.GET("/comments/edit/:id", h.Reviews.EditComment, login)
	pages.POST("/comments/edit/:id", h.Reviews.UpdateComment, login)
	pages.GET("/comments/delete/:id", h.Reviews.DeleteComment, login, token)

	// Favorites
	favorites := pages.Group("/favorites", login)
	favorites.GET("", h.Favorites.List)
	favorites.GET("/add", h.Favorites.New)
	favorites.POST("/add", h.Favorites.Create)
	favorites.GET("/edit/:id", h.Favorites.Edit)
	favorites.POST("/edit/:id", h.Favorites.Update)
	favorites.POST("/update/:id", h.Favorites.Update)
	favorites.POST("/delete/:id", h.Favorites.Delete)
	favorites.GET("/others", h.Favorites.Others)

	// Recommendations
	pages.GET("/recommendations", h.Recommendations.List)
	pages.GET("/recommendations/add", h.Recommendations.New, admin)
	pages.POST("/recommendations/add", h.Recommendations.Create, admin)
	pages.GET("/recommendations/edit/:id", h.Recommendations.Edit, admin)
	pages.POST("/recommendations/edit/:id", h.Recommendations.Update, admin)
	pages.POST("/recommendations/delete/:id", h.Recommendations.Delete, admin)
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// csrf checks the token of every unsafe request against the _csrf cookie.
// Failures render the forbidden page.
func csrf(secure bool) echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:" + handler.CSRFField,
		ContextKey:     handler.CSRFContextKey,
		CookieName:     handler.CSRFField,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden, "invalid csrf token").SetInternal(err)
		},
	})
}

// requireToken guards the GET links that change state. They carry the token
// in the query string.
func requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		want, _ := c.Get(handler.CSRFContextKey).(string)
		got := c.QueryParam(handler.CSRFField)
		if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
			return echo.NewHTTPError(http.StatusForbidden, "invalid csrf token")
		}
		return next(c)
	}
}

// loginLimiter throttles login attempts per client IP. limit is the number
// of attempts per second; zero or less disables throttling.
func loginLimiter(limit float64) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     loginBurst,
		ExpiresIn: loginLimiterGC,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			session.Flash(c, session.FlashError, errors.MsgTooManyAttempts)
			return c.Redirect(http.StatusSeeOther, "/login")
		},
	})
}

// errorHandler renders unmatched routes and unexpected failures as the error
// page.
func errorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := errors.MsgGenericFailure
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = http.StatusText(code)
			if code == http.StatusNotFound {
				msg = errors.MsgUnavailable
			}
		} else {
			log.Error("unhandled error", zap.String("path", c.Request().URL.Path), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.Render(code, "error", map[string]interface{}{
				"Title":   http.StatusText(code),
				"Code":    code,
				"Message": msg,
				"User":    session.CurrentUser(c),
				"Flash":   map[string][]string{},
				"Form":    map[string]string{},
				"Query":   c.QueryParams(),
				"Path":    c.Request().URL.Path,
				"CSRF":    c.Get(handler.CSRFContextKey),
			})
		}
		if err != nil {
			log.Error("render error page", zap.Error(err))
		}
	}
}

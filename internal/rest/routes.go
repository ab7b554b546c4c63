package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	pagePath              = "/pages/:slug"
	menuPath              = "/menu"
	expertiseAreasPath    = "/expertise-areas"
	expertiseAreaPath     = "/expertise-areas/:slug"
	treatmentCategoryPath = "/treatment-categories/:slug"
	procedurePath         = "/procedures/:slug"
	faqsPath              = "/faqs"
	postsPath             = "/posts"
	postPath              = "/posts/:slug"
	categoriesPath        = "/categories"

	// Site paths
	sitemapPath = "/sitemap.xml"
	robotsPath  = "/robots.txt"
	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	metricsPath = "/metrics"

	rpcPath = "/v1/rpc/"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "cms",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of public HTTP requests by route and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// RegisterRoutes returns an echo instance with all public routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(observeDuration)

	api := e.Group(apiV1Prefix)
	api.GET(pagePath, h.PageBySlug)
	api.GET(menuPath, h.Menu)
	api.GET(expertiseAreasPath, h.ExpertiseAreas)
	api.GET(expertiseAreaPath, h.ExpertiseAreaBySlug)
	api.GET(treatmentCategoryPath, h.TreatmentCategoryBySlug)
	api.GET(procedurePath, h.ProcedureBySlug)
	api.GET(faqsPath, h.Faqs)
	api.GET(postsPath, h.Posts)
	api.GET(postPath, h.PostBySlug)
	api.GET(categoriesPath, h.Categories)

	e.GET(sitemapPath, h.Sitemap)
	e.GET(robotsPath, h.Robots)
	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.swaggerDoc)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	return e
}

// RegisterRPC mounts the back-office JSON-RPC handler.
func RegisterRPC(e *echo.Echo, rpc http.Handler) {
	e.Any(rpcPath, echo.WrapHandler(rpc))
}

func (h *Handler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api description is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	})
}

func observeDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unknown"
		}
		requestDuration.WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).
			Observe(time.Since(start).Seconds())

		return nil
	}
}

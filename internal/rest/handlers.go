package rest

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/daniilsolovey/clinic-cms/internal/db"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

type PostsRequest struct {
	CategoryID *string `urlstruct:"categoryId"`
	Page       *int    `urlstruct:"page"`
	PageSize   *int    `urlstruct:"pageSize"`
}

type FaqsRequest struct {
	Global *bool `urlstruct:"global"`
}

type Handler struct {
	cms     *cms.Manager
	log     *slog.Logger
	baseURL string
}

// NewHandler returns the public site handler. baseURL prefixes sitemap locations.
func NewHandler(manager *cms.Manager, log *slog.Logger, baseURL string) *Handler {
	return &Handler{
		cms:     manager,
		log:     log,
		baseURL: baseURL,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": what + " not found"})
}

// PageBySlug handles GET /api/v1/pages/:slug
// @Summary Get page by slug
// @Description Returns a published page with rendered HTML and SEO settings
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} rest.Page
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/pages/{slug} [get]
func (h *Handler) PageBySlug(c echo.Context) error {
	page, err := h.cms.PageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if page == nil {
		return notFound(c, "page")
	}

	return c.JSON(http.StatusOK, NewPage(*page))
}

// Menu handles GET /api/v1/menu
// @Summary Get site menu
// @Description Returns the menu tree ordered by order and label
// @Tags menu
// @Produce json
// @Success 200 {array} rest.MenuItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/menu [get]
func (h *Handler) Menu(c echo.Context) error {
	tree, err := h.cms.MenuTree(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(tree, NewMenuItem))
}

// ExpertiseAreas handles GET /api/v1/expertise-areas
// @Summary Get expertise areas
// @Description Returns all expertise areas with their treatment categories
// @Tags catalog
// @Produce json
// @Success 200 {array} rest.ExpertiseArea
// @Failure 500 {object} map[string]string
// @Router /api/v1/expertise-areas [get]
func (h *Handler) ExpertiseAreas(c echo.Context) error {
	areas, err := h.cms.ExpertiseAreas(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(areas, NewExpertiseArea))
}

// ExpertiseAreaBySlug handles GET /api/v1/expertise-areas/:slug
// @Summary Get expertise area by slug
// @Description Returns an area with its categories and their published procedures
// @Tags catalog
// @Produce json
// @Param slug path string true "Expertise area slug"
// @Success 200 {object} rest.ExpertiseArea
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/expertise-areas/{slug} [get]
func (h *Handler) ExpertiseAreaBySlug(c echo.Context) error {
	area, err := h.cms.ExpertiseAreaBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if area == nil {
		return notFound(c, "expertise area")
	}

	return c.JSON(http.StatusOK, NewExpertiseAreaDetails(*area))
}

// TreatmentCategoryBySlug handles GET /api/v1/treatment-categories/:slug
// @Summary Get treatment category by slug
// @Description Returns a category with its expertise area and published procedures
// @Tags catalog
// @Produce json
// @Param slug path string true "Treatment category slug"
// @Success 200 {object} rest.TreatmentCategory
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/treatment-categories/{slug} [get]
func (h *Handler) TreatmentCategoryBySlug(c echo.Context) error {
	tc, err := h.cms.TreatmentCategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if tc == nil {
		return notFound(c, "treatment category")
	}

	return c.JSON(http.StatusOK, NewTreatmentCategoryDetails(*tc))
}

// ProcedureBySlug handles GET /api/v1/procedures/:slug
// @Summary Get procedure by slug
// @Description Returns a published procedure with methods, FAQs, category and SEO settings
// @Tags catalog
// @Produce json
// @Param slug path string true "Procedure slug"
// @Success 200 {object} rest.Procedure
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/procedures/{slug} [get]
func (h *Handler) ProcedureBySlug(c echo.Context) error {
	p, err := h.cms.ProcedureBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if p == nil {
		return notFound(c, "procedure")
	}

	return c.JSON(http.StatusOK, NewProcedure(*p))
}

// Faqs handles GET /api/v1/faqs
// @Summary Get global FAQs
// @Description Returns global FAQs ordered by creation time. FAQs of a procedure come with the procedure.
// @Tags catalog
// @Produce json
// @Param global query bool false "Must be true when given"
// @Success 200 {array} rest.Faq
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/faqs [get]
func (h *Handler) Faqs(c echo.Context) error {
	var req FaqsRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if req.Global != nil && !*req.Global {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only global faqs are listed"})
	}

	global := true
	faqs, err := h.cms.Faqs(c.Request().Context(), cms.FaqFilter{IsGlobal: &global})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(faqs, NewFaq))
}

// Posts handles GET /api/v1/posts
// @Summary Get blog posts
// @Description Returns published posts without content, newest first, with optional category filter and pagination
// @Tags blog
// @Produce json
// @Param categoryId query string false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} rest.PostList
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	pager := db.NewPager(req.Page, req.PageSize)
	posts, total, err := h.cms.PublishedPosts(c.Request().Context(), req.CategoryID, pager)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, PostList{
		Posts:    Map(posts, NewPostSummary),
		Total:    total,
		Page:     pager.Page,
		PageSize: pager.PageSize,
	})
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get blog post by slug
// @Description Returns a published post with rendered HTML, category and SEO settings
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	post, err := h.cms.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if post == nil {
		return notFound(c, "post")
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// Categories handles GET /api/v1/categories
// @Summary Get blog categories
// @Description Returns all categories ordered by name with the number of published posts
// @Tags blog
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.cms.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if err := h.cms.Ping(c.Request().Context()); err != nil {
		return h.handleError(c, err, http.StatusServiceUnavailable, "database unavailable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

package adminrouter

import (
	"bytes"
	"net/http"

	errorslib "github.com/goliatone/go-errors"
	"github.com/goliatone/go-exportable-admin/admin"
	"github.com/goliatone/go-router"
)

// Config configures the go-router adapter.
type Config struct {
	Site     *admin.Site
	Template *admin.ChangelistTemplate
	Logger   admin.Logger
}

// Handler exposes changelist and export routes for go-router.
type Handler struct {
	site     *admin.Site
	template *admin.ChangelistTemplate
	logger   admin.Logger
}

// NewHandler creates a go-router handler.
func NewHandler(cfg Config) *Handler {
	template := cfg.Template
	if template == nil {
		template = admin.NewChangelistTemplate()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = admin.NopLogger{}
	}
	return &Handler{site: cfg.Site, template: template, logger: logger}
}

// RegisterRoutes registers routes on a compatible go-router router.
// Export routes are registered before each changelist mount so they
// match first.
func (h *Handler) RegisterRoutes(r any) {
	reg, ok := r.(routeRegistrar)
	if !ok || h == nil || h.site == nil {
		return
	}
	for _, route := range h.site.BoundRoutes() {
		reg.Get(route.AbsolutePath, h.exportHandler(route))
	}
	for _, a := range h.site.Admins() {
		mount := h.site.MountPath(a.Meta)
		reg.Get(mount, h.changelistHandler(a))
		reg.Get(mount+"/", h.changelistHandler(a))
	}
}

func (h *Handler) exportHandler(route admin.BoundRoute) router.HandlerFunc {
	return func(c router.Context) error {
		req := admin.ListRequestFromValues(queryValues(c), *route.Admin)

		buf := &bytes.Buffer{}
		result, err := h.site.Export(c.Context(), route.Admin.Meta.AppLabel, route.Admin.Meta.ModelName, route.Format, req, buf)
		if err != nil {
			return writeError(c, err)
		}

		c.SetHeader("Content-Type", result.ContentType)
		c.SetHeader("Content-Disposition", `attachment; filename=`+result.Filename)
		return c.Send(buf.Bytes())
	}
}

func (h *Handler) changelistHandler(a *admin.ModelAdmin) router.HandlerFunc {
	return func(c router.Context) error {
		req := admin.ListRequestFromValues(queryValues(c), *a)

		cl, err := h.site.Changelist(c.Context(), a.Meta.AppLabel, a.Meta.ModelName, req)
		if err != nil {
			return writeError(c, err)
		}

		buf := &bytes.Buffer{}
		if err := h.template.Render(buf, cl); err != nil {
			return writeError(c, err)
		}

		c.SetHeader("Content-Type", "text/html; charset=utf-8")
		return c.Send(buf.Bytes())
	}
}

func writeError(c router.Context, err error) error {
	ge := admin.AsGoError(err)
	return c.JSON(statusForError(ge), map[string]any{
		"error": map[string]any{
			"message": ge.Message,
			"code":    ge.TextCode,
		},
	})
}

func statusForError(err *errorslib.Error) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	switch err.Category {
	case errorslib.CategoryValidation:
		return http.StatusBadRequest
	case errorslib.CategoryNotFound:
		return http.StatusNotFound
	case errorslib.CategoryOperation:
		if err.TextCode == "canceled" {
			return http.StatusConflict
		}
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

type routeRegistrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}

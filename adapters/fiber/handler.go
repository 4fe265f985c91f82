package adminfiber

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	errorslib "github.com/goliatone/go-errors"
	"github.com/goliatone/go-exportable-admin/admin"
)

// Config configures the fiber adapter.
type Config struct {
	Site     *admin.Site
	Template *admin.ChangelistTemplate
	Logger   admin.Logger
}

// Handler exposes changelist and export routes directly on a fiber app.
type Handler struct {
	site     *admin.Site
	template *admin.ChangelistTemplate
	logger   admin.Logger
}

// NewHandler creates a fiber handler.
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

// RegisterRoutes registers routes on a fiber router. Export routes are
// registered before each changelist mount so they match first.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	if h == nil || h.site == nil {
		return
	}
	for _, route := range h.site.BoundRoutes() {
		r.Get(route.AbsolutePath, h.exportHandler(route))
	}
	for _, a := range h.site.Admins() {
		mount := h.site.MountPath(a.Meta)
		r.Get(mount, h.changelistHandler(a))
		r.Get(mount+"/", h.changelistHandler(a))
	}
}

func (h *Handler) exportHandler(route admin.BoundRoute) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := admin.ListRequestFromValues(queryValues(c), *route.Admin)

		buf := &bytes.Buffer{}
		result, err := h.site.Export(c.UserContext(), route.Admin.Meta.AppLabel, route.Admin.Meta.ModelName, route.Format, req, buf)
		if err != nil {
			return writeError(c, err)
		}

		c.Set(fiber.HeaderContentType, result.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+result.Filename)
		return c.Send(buf.Bytes())
	}
}

func (h *Handler) changelistHandler(a *admin.ModelAdmin) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := admin.ListRequestFromValues(queryValues(c), *a)

		cl, err := h.site.Changelist(c.UserContext(), a.Meta.AppLabel, a.Meta.ModelName, req)
		if err != nil {
			return writeError(c, err)
		}

		buf := &bytes.Buffer{}
		if err := h.template.Render(buf, cl); err != nil {
			return writeError(c, err)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}

func queryValues(c *fiber.Ctx) url.Values {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return values
}

func writeError(c *fiber.Ctx, err error) error {
	ge := admin.AsGoError(err)
	return c.Status(statusForError(ge)).JSON(fiber.Map{
		"error": fiber.Map{
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

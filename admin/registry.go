package admin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// RendererRegistry stores renderers by export kind.
type RendererRegistry struct {
	mu        sync.RWMutex
	renderers map[ExportKind]Renderer
}

// NewRendererRegistry creates a registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{renderers: make(map[ExportKind]Renderer)}
}

// Register adds a renderer for an export kind, replacing any default.
func (r *RendererRegistry) Register(kind ExportKind, renderer Renderer) error {
	if kind == "" {
		return NewError(KindValidation, "renderer kind is required", nil)
	}
	if renderer == nil {
		return NewError(KindValidation, "renderer is required", nil)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[kind] = renderer
	return nil
}

// Resolve returns the renderer for the export kind.
func (r *RendererRegistry) Resolve(kind ExportKind) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[kind]
	return renderer, ok
}

// SiteConfig configures an admin site.
type SiteConfig struct {
	BasePath string
	Logger   Logger
}

// Site is the admin registry: it owns the registered model admins, the
// generated export route table, and the renderer registry.
type Site struct {
	mu        sync.RWMutex
	basePath  string
	admins    map[string]*ModelAdmin
	renderers *RendererRegistry
	routes    *RouteTable
	logger    Logger
	idGen     func() string
}

// NewSite creates a site with the default renderers registered.
func NewSite(cfg SiteConfig) *Site {
	basePath := strings.TrimRight(cfg.BasePath, "/")
	if basePath == "" {
		basePath = "/admin"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	renderers := NewRendererRegistry()
	_ = renderers.Register(KindDelimited, DelimitedRenderer{})
	_ = renderers.Register(KindSpreadsheet, SpreadsheetRenderer{})

	return &Site{
		basePath:  basePath,
		admins:    make(map[string]*ModelAdmin),
		renderers: renderers,
		routes:    NewRouteTable(),
		logger:    logger,
		idGen:     uuid.NewString,
	}
}

// BasePath returns the mount prefix for the site.
func (s *Site) BasePath() string {
	return s.basePath
}

// Renderers exposes the renderer registry for overrides.
func (s *Site) Renderers() *RendererRegistry {
	return s.renderers
}

// MountPath returns the changelist mount for a model.
func (s *Site) MountPath(meta ModelMeta) string {
	return s.basePath + "/" + meta.AppLabel + "/" + meta.ModelName
}

// Register validates and registers a model admin, appending its export
// routes to the site route table. Duplicate registration is an error.
func (s *Site) Register(a ModelAdmin) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := a.Meta.Key()
	if _, exists := s.admins[key]; exists {
		return NewError(KindValidation, fmt.Sprintf("admin %q already registered", key), nil)
	}

	mount := s.MountPath(a.Meta)
	routes := ExportRoutes(a)
	added := make([]string, 0, len(routes))
	for _, route := range routes {
		if err := s.routes.Add(route.Name, mount+"/"+route.Path); err != nil {
			for _, name := range added {
				s.routes.Remove(name)
			}
			return err
		}
		added = append(added, route.Name)
	}

	registered := a
	s.admins[key] = &registered
	s.logger.Debugf("registered admin %s with %d export routes", key, len(a.ExportFormats)+len(a.ExportTypes))
	return nil
}

// Resolve finds a registered admin by app label and model name.
func (s *Site) Resolve(appLabel, modelName string) (*ModelAdmin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[appLabel+"."+modelName]
	if !ok {
		return nil, NewError(KindNotFound, fmt.Sprintf("admin %q not registered", appLabel+"."+modelName), nil)
	}
	return a, nil
}

// Admins returns the registered admins in deterministic order.
func (s *Site) Admins() []*ModelAdmin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.admins))
	for key := range s.admins {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	admins := make([]*ModelAdmin, 0, len(keys))
	for _, key := range keys {
		admins = append(admins, s.admins[key])
	}
	return admins
}

// BoundRoutes returns every export route bound to its admin with an
// absolute path, in registration-table order per admin.
func (s *Site) BoundRoutes() []BoundRoute {
	bound := []BoundRoute{}
	for _, a := range s.Admins() {
		mount := s.MountPath(a.Meta)
		for _, route := range ExportRoutes(*a) {
			bound = append(bound, BoundRoute{
				Route:        route,
				Admin:        a,
				AbsolutePath: mount + "/" + route.Path,
			})
		}
	}
	return bound
}

// Reverse resolves a route name to its URL.
func (s *Site) Reverse(name string) (string, error) {
	return s.routes.Reverse(name)
}

// RouteTable exposes the generated route table.
func (s *Site) RouteTable() *RouteTable {
	return s.routes
}

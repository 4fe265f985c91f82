package admin

import (
	"fmt"
	"strings"
	"sync"
)

// Route is one generated export endpoint, relative to the admin's
// changelist mount.
type Route struct {
	Name       string
	Path       string
	Format     string
	Kind       ExportKind
	Delimiter  rune
	SheetName  string
	ButtonText string
}

// BoundRoute is a route bound to its admin with an absolute path.
type BoundRoute struct {
	Route
	Admin        *ModelAdmin
	AbsolutePath string
}

func routeFormatName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RouteName builds the namespaced route name for an export format,
// e.g. "admin:shop_product_export_csv".
func RouteName(meta ModelMeta, formatName string) string {
	return fmt.Sprintf("admin:%s_%s_export_%s", meta.AppLabel, meta.ModelName, routeFormatName(formatName))
}

// ExportRoutes generates the export route table for an admin: one route
// per delimited format, then one per export type. Callers register these
// ahead of the changelist route so they are matched first.
func ExportRoutes(a ModelAdmin) []Route {
	routes := make([]Route, 0, len(a.ExportFormats)+len(a.ExportTypes))
	for _, format := range a.ExportFormats {
		name := routeFormatName(format.Name)
		routes = append(routes, Route{
			Name:       RouteName(a.Meta, format.Name),
			Path:       "export/" + name,
			Format:     name,
			Kind:       KindDelimited,
			Delimiter:  format.Delimiter,
			ButtonText: "Export " + format.Name,
		})
	}
	for _, typeName := range a.ExportTypes {
		kind, ok := NormalizeExportType(typeName)
		if !ok {
			continue
		}
		name := routeFormatName(typeName)
		routes = append(routes, Route{
			Name:       RouteName(a.Meta, typeName),
			Path:       "export/" + name,
			Format:     name,
			Kind:       kind,
			SheetName:  a.Meta.VerboseNamePlural,
			ButtonText: "Export " + strings.ToUpper(typeName),
		})
	}
	return routes
}

// RouteTable maps route names to absolute URLs for reverse lookup.
type RouteTable struct {
	mu   sync.RWMutex
	urls map[string]string
}

// NewRouteTable creates an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{urls: make(map[string]string)}
}

// Add records a named route. Duplicate names are an error.
func (t *RouteTable) Add(name, url string) error {
	if name == "" {
		return NewError(KindValidation, "route name is required", nil)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.urls[name]; exists {
		return NewError(KindValidation, fmt.Sprintf("route %q already registered", name), nil)
	}
	t.urls[name] = url
	return nil
}

// Remove drops a named route. Unknown names are a no-op.
func (t *RouteTable) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.urls, name)
}

// Reverse resolves a route name to its URL.
func (t *RouteTable) Reverse(name string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	url, ok := t.urls[name]
	if !ok {
		return "", NewError(KindNotFound, fmt.Sprintf("route %q not found", name), nil)
	}
	return url, nil
}

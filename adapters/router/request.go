package adminrouter

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-router"
)

// queryValues recovers the full query string from a router context.
// router.Context only exposes single-value lookups, so we parse the
// original URL the same way the HTTP context fallback does.
func queryValues(c router.Context) url.Values {
	if c == nil {
		return url.Values{}
	}
	if httpCtx, ok := router.AsHTTPContext(c); ok {
		if httpReq := httpCtx.Request(); httpReq != nil && httpReq.URL != nil {
			return httpReq.URL.Query()
		}
	}
	raw := strings.TrimSpace(c.OriginalURL())
	if raw == "" {
		return url.Values{}
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return url.Values{}
	}
	return parsed.Query()
}

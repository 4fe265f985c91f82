package admin

import (
	"net/url"
	"strconv"
	"strings"
)

// ListRequestFromValues maps query parameters onto a changelist request:
// page/per_page pagination, q search, o sort directives ("-" prefix for
// descending), and one equality filter per display field present in the
// query string. Unknown sort fields are dropped.
func ListRequestFromValues(values url.Values, a ModelAdmin) ListRequest {
	req := ListRequest{
		Search: strings.TrimSpace(values.Get("q")),
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		req.Page = page
	}
	if perPage, err := strconv.Atoi(values.Get("per_page")); err == nil {
		req.PerPage = perPage
	}

	if ordering := strings.TrimSpace(values.Get("o")); ordering != "" {
		for _, part := range strings.Split(ordering, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			sort := Sort{Field: part}
			if strings.HasPrefix(part, "-") {
				sort = Sort{Field: part[1:], Desc: true}
			}
			if fieldKnown(a, sort.Field) {
				req.Sort = append(req.Sort, sort)
			}
		}
	}

	for _, field := range a.Fields {
		if value := values.Get(field.Name); value != "" {
			req.Filters = append(req.Filters, Filter{Field: field.Name, Value: value})
		}
	}
	return req
}

func fieldKnown(a ModelAdmin, name string) bool {
	for _, field := range a.Fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

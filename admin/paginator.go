package admin

// Pagination is the resolved limit/offset window for a changelist query.
type Pagination struct {
	Page    int
	PerPage int
	Limit   int
	Offset  int
}

// Paginate resolves the query window for a request. Export requests
// always use the admin's export queryset limit from offset zero; the
// client-supplied page size never applies to an export.
func Paginate(req ListRequest, a ModelAdmin) Pagination {
	if req.Export {
		limit := a.exportLimit()
		return Pagination{Page: 1, PerPage: limit, Limit: limit}
	}

	perPage := req.PerPage
	if perPage <= 0 || perPage > a.perPage() {
		perPage = a.perPage()
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Limit:   perPage,
		Offset:  (page - 1) * perPage,
	}
}

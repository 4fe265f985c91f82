package admin

import (
	"net/url"
	"testing"
)

func TestListRequestFromValues(t *testing.T) {
	a := newUserAdmin(&stubSource{iter: &stubIterator{}})

	values := url.Values{}
	values.Set("page", "3")
	values.Set("per_page", "25")
	values.Set("q", " alice ")
	values.Set("o", "name,-email")
	values.Set("email", "alice@example.com")
	values.Set("unknown", "ignored")

	req := ListRequestFromValues(values, a)
	if req.Page != 3 || req.PerPage != 25 {
		t.Fatalf("unexpected pagination %d/%d", req.Page, req.PerPage)
	}
	if req.Search != "alice" {
		t.Fatalf("expected trimmed search, got %q", req.Search)
	}
	if len(req.Sort) != 2 {
		t.Fatalf("expected 2 sort directives, got %d", len(req.Sort))
	}
	if req.Sort[0].Field != "name" || req.Sort[0].Desc {
		t.Fatalf("unexpected first sort %v", req.Sort[0])
	}
	if req.Sort[1].Field != "email" || !req.Sort[1].Desc {
		t.Fatalf("unexpected second sort %v", req.Sort[1])
	}
	if len(req.Filters) != 1 || req.Filters[0].Field != "email" {
		t.Fatalf("unexpected filters %v", req.Filters)
	}
}

func TestListRequestFromValues_DropsUnknownSort(t *testing.T) {
	a := newUserAdmin(&stubSource{iter: &stubIterator{}})

	values := url.Values{}
	values.Set("o", "password,-email")

	req := ListRequestFromValues(values, a)
	if len(req.Sort) != 1 {
		t.Fatalf("expected unknown sort field dropped, got %v", req.Sort)
	}
	if req.Sort[0].Field != "email" {
		t.Fatalf("unexpected sort %v", req.Sort[0])
	}
}

func TestListRequestFromValues_Empty(t *testing.T) {
	a := newUserAdmin(&stubSource{iter: &stubIterator{}})
	req := ListRequestFromValues(url.Values{}, a)
	if req.Page != 0 || req.Search != "" || len(req.Filters) != 0 || len(req.Sort) != 0 {
		t.Fatalf("expected zero request, got %+v", req)
	}
}

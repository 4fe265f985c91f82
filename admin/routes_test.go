package admin

import "testing"

func TestExportRoutes_FormatsThenTypes(t *testing.T) {
	a := ModelAdmin{
		Meta: ModelMeta{AppLabel: "shop", ModelName: "product", VerboseName: "product", VerboseNamePlural: "products"},
		ExportFormats: []DelimitedFormat{
			{Name: "CSV", Delimiter: ','},
			{Name: "Pipe", Delimiter: '|'},
		},
		ExportTypes: []string{"xlsx"},
	}

	routes := ExportRoutes(a)
	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}

	if routes[0].Name != "admin:shop_product_export_csv" {
		t.Fatalf("unexpected route name %q", routes[0].Name)
	}
	if routes[0].Path != "export/csv" {
		t.Fatalf("unexpected route path %q", routes[0].Path)
	}
	if routes[0].Delimiter != ',' {
		t.Fatalf("expected comma delimiter, got %q", routes[0].Delimiter)
	}
	if routes[1].Delimiter != '|' {
		t.Fatalf("expected pipe delimiter, got %q", routes[1].Delimiter)
	}
	if routes[2].Kind != KindSpreadsheet {
		t.Fatalf("expected spreadsheet kind, got %q", routes[2].Kind)
	}
	if routes[2].SheetName != "products" {
		t.Fatalf("expected sheet name from plural, got %q", routes[2].SheetName)
	}
	if routes[2].ButtonText != "Export XLSX" {
		t.Fatalf("expected upper-cased type button, got %q", routes[2].ButtonText)
	}
}

func TestExportRoutes_XLSAliasNormalizes(t *testing.T) {
	a := ModelAdmin{
		Meta:        ModelMeta{AppLabel: "shop", ModelName: "product", VerboseNamePlural: "products"},
		ExportTypes: []string{"xls"},
	}
	routes := ExportRoutes(a)
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].Kind != KindSpreadsheet {
		t.Fatalf("expected xls to normalize to spreadsheet, got %q", routes[0].Kind)
	}
	if routes[0].Path != "export/xls" {
		t.Fatalf("expected path to keep configured name, got %q", routes[0].Path)
	}
}

func TestRouteTable_Reverse(t *testing.T) {
	table := NewRouteTable()
	if err := table.Add("admin:shop_product_export_csv", "/admin/shop/product/export/csv"); err != nil {
		t.Fatalf("add: %v", err)
	}

	url, err := table.Reverse("admin:shop_product_export_csv")
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if url != "/admin/shop/product/export/csv" {
		t.Fatalf("unexpected url %q", url)
	}

	if _, err := table.Reverse("admin:missing"); err == nil {
		t.Fatalf("expected not found error")
	}
}

func TestRouteTable_DuplicateName(t *testing.T) {
	table := NewRouteTable()
	if err := table.Add("dup", "/a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := table.Add("dup", "/b"); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

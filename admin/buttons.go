package admin

// BuildExportButtons derives the changelist export buttons for an admin:
// one per delimited format, then one per export type, each resolved
// against the route table.
func BuildExportButtons(table *RouteTable, a ModelAdmin) ([]ExportButton, error) {
	routes := ExportRoutes(a)
	buttons := make([]ExportButton, 0, len(routes))
	for _, route := range routes {
		url, err := table.Reverse(route.Name)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, ExportButton{
			Label:     route.ButtonText,
			RouteName: route.Name,
			URL:       url,
		})
	}
	return buttons, nil
}

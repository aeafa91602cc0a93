package catalog

// Fixed category ids used by the storefront landing view.
const (
	CategoryPhones     = 1
	CategoryElectronic = 2
	CategoryAppliances = 3
)

// Info is the display metadata for a category. A single table replaces the
// per-view switch statements the views used to carry.
type Info struct {
	Name string
	Icon string
}

var categories = map[int]Info{
	CategoryPhones:     {Name: "Téléphones", Icon: "📱"},
	CategoryElectronic: {Name: "Électronique", Icon: "💻"},
	CategoryAppliances: {Name: "Électroménager", Icon: "❄️"},
}

var defaultInfo = Info{Name: "Autres", Icon: "🛍️"}

// CategoryInfo returns the display metadata for a category id, falling back
// to a generic entry for unknown ids.
func CategoryInfo(id int) Info {
	if info, ok := categories[id]; ok {
		return info
	}
	return defaultInfo
}

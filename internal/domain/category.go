package domain

// Category is one of the four classification buckets used to partition the
// attendance history. The string values are also the keys of the persisted
// history JSON document, so they must stay exactly as written here.
type Category string

const (
	CategoryEmergency   Category = "Emergenciais"
	CategoryCommercial  Category = "Comerciais"
	CategoryInformation Category = "Informação"
	CategoryComplaint   Category = "Reclamações"
)

// AllCategories lists the categories in their canonical display order.
var AllCategories = []Category{
	CategoryEmergency,
	CategoryCommercial,
	CategoryInformation,
	CategoryComplaint,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEmergency, CategoryCommercial, CategoryInformation, CategoryComplaint:
		return true
	}
	return false
}

package entity

// Categories is the fixed catalog taxonomy. Menu items outside this set
// are rejected on upsert.
var Categories = []string{
	"Hamburguesas",
	"Carnes",
	"Papas Fritas",
	"Bebidas",
	"Postres",
}

func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

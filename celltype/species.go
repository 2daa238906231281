package celltype

// Species is the organism whose gene nomenclature the marker genes follow.
type Species string

// Supported species. The string values are part of the external contract
// and must not be renamed.
const (
	SpeciesHuman      Species = "human"
	SpeciesMouse      Species = "mouse"
	SpeciesRat        Species = "rat"
	SpeciesZebrafish  Species = "zebrafish"
	SpeciesDrosophila Species = "drosophila"
)

// AllSpecies returns every supported species in a fixed order.
func AllSpecies() []Species {
	return []Species{SpeciesHuman, SpeciesMouse, SpeciesRat, SpeciesZebrafish, SpeciesDrosophila}
}

// Valid reports whether s names a supported species.
func (s Species) Valid() bool {
	switch s {
	case SpeciesHuman, SpeciesMouse, SpeciesRat, SpeciesZebrafish, SpeciesDrosophila:
		return true
	}
	return false
}

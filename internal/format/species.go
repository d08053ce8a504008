package format

// Species group labels assigned by the on-board train classifier.
const (
	SpeciesNBHF      = "NBHF"
	SpeciesOtherCet  = "OtherCet"
	SpeciesUnclassed = "Unclassed"
	SpeciesSonar     = "Sonar"
)

// cpodSpecies maps CP3 species codes (0-7, two codes per group).
var cpodSpecies = [8]string{
	SpeciesNBHF, SpeciesNBHF,
	SpeciesOtherCet, SpeciesOtherCet,
	SpeciesUnclassed, SpeciesUnclassed,
	SpeciesSonar, SpeciesSonar,
}

// fpodSpecies maps FP3 species codes (0-3).
var fpodSpecies = [4]string{
	SpeciesNBHF, SpeciesOtherCet, SpeciesUnclassed, SpeciesSonar,
}

// SpeciesFromCode maps a raw species code to its group label. Codes outside
// the valid range for the format yield an empty label, never an error;
// firmware revisions may emit codes this table does not know about.
func SpeciesFromCode(code uint8, f Format) string {
	switch {
	case f == CP3 && int(code) < len(cpodSpecies):
		return cpodSpecies[code]
	case f == FP3 && int(code) < len(fpodSpecies):
		return fpodSpecies[code]
	}
	return ""
}

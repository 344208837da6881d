package applicant

import "strconv"

// Editions that kept the pre-2024 field shapes despite their year suffix.
var namedLegacyEditions = map[string]bool{
	"frosthacks2024": true,
}

// IsLegacyEdition reports whether an edition stores its edition-sensitive
// fields (major, engagement source) in the pre-2024 scalar shape. The year
// is the trailing digits of the edition id; ids without a parseable year are
// treated as legacy, matching how the oldest documents were written.
func IsLegacyEdition(editionID string) bool {
	if namedLegacyEditions[editionID] {
		return true
	}
	year, ok := editionYear(editionID)
	if !ok {
		return true
	}
	return year < 2024
}

func editionYear(editionID string) (int, bool) {
	i := len(editionID)
	for i > 0 && editionID[i-1] >= '0' && editionID[i-1] <= '9' {
		i--
	}
	digits := editionID[i:]
	if len(digits) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return year, true
}

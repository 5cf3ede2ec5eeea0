package suggest

import "unicode"

// CapitalPositions marks which runes of s are upper case.
func CapitalPositions(s string) []bool {
	var positions []bool
	upperSeen := false
	for _, r := range s {
		upper := unicode.IsUpper(r)
		upperSeen = upperSeen || upper
		positions = append(positions, upper)
	}
	if !upperSeen {
		return nil
	}
	return positions
}

// ApplyCapitalization upper-cases the runes of word at the marked positions.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
		}
	}
	return string(wordRunes)
}

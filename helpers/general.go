package helpers

// UniqueStringsReuse returns a slice with any duplicates removed.
// It will modify the input slice.
func UniqueStringsReuse(s []string) []string {
	seen := make(map[string]bool, len(s))
	result := s[:0]
	for _, val := range s {
		if seen[val] {
			continue
		}
		seen[val] = true
		result = append(result, val)
	}
	return result
}

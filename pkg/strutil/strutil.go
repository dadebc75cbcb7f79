package strutil

// DedupeStrSlice removes duplicate entries from a slice of strings,
// preserving the order of first appearance.
func DedupeStrSlice(in []string) []string {
	m := make(map[string]struct{})

	var res []string

	for _, s := range in {
		if _, ok := m[s]; !ok {
			res = append(res, s)
			m[s] = struct{}{}
		}
	}

	return res
}

package catalog

import "strings"

// NormalizeSpecialties trims entries and drops blanks and repeats, keeping
// the first occurrence order.
func NormalizeSpecialties(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))

	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

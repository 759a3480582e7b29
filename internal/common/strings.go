// internal/common/strings.go
package common

// Unique de-duplicates strings, preserving first-seen order. Values are
// compared byte-exact, the same way map keys are looked up, so a list never
// loses an entry that some lookup could still hit.
func Unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

package dotenv

import "strings"

// NeedsInterpolation is a coarse pre-check: the value contains '$', '{' and
// '}' somewhere, in any order.
func NeedsInterpolation(value string) bool {
	return strings.Contains(value, "$") &&
		strings.Contains(value, "{") &&
		strings.Contains(value, "}")
}

// Interpolate replaces every ${NAME} in value with NAME's current value in
// env. Names that are not set contribute nothing and are returned in missing.
// An unmatched "${" keeps the '$' literally and scanning resumes at the next
// byte.
//
// The output holds at most max-1 bytes. Literal bytes are copied while there
// is room; a variable's value is copied only if it fits whole. Scanning stops
// once the output is full.
func Interpolate(value string, env Environment, max int) (out string, missing []string) {
	if max < 2 {
		max = DefaultMaxLineLength
	}
	limit := max - 1

	var b strings.Builder
	i := 0
	for i < len(value) && b.Len() < limit {
		if value[i] == '$' && i+1 < len(value) && value[i+1] == '{' {
			start := i + 2
			if end := strings.IndexByte(value[start:], '}'); end >= 0 {
				name := value[start : start+end]
				if v, ok := env.Lookup(name); ok {
					if b.Len()+len(v) <= limit {
						b.WriteString(v)
					}
				} else {
					missing = append(missing, name)
				}
				i = start + end + 1
				continue
			}
		}
		b.WriteByte(value[i])
		i++
	}
	return b.String(), missing
}

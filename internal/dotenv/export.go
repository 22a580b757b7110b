package dotenv

import (
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Marshal renders the final values as KEY="value" lines sorted by key, with
// interpolation already resolved. Values are written verbatim: the loader
// strips only the outer quote pair, so every value reads back unchanged.
func (r *Report) Marshal() string {
	values := r.Values()
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(exportLine(key, values[key]))
		b.WriteByte('\n')
	}
	return b.String()
}

// Export writes Marshal's output to path.
func (r *Report) Export(path string) error {
	return os.WriteFile(path, []byte(r.Marshal()), 0o600)
}

// NonPortable returns, sorted, the keys whose exported line a godotenv-style
// reader would parse to a different value. Backslash escapes, $ expansion
// and inner double quotes all change meaning there.
func (r *Report) NonPortable() []string {
	var keys []string
	for key, value := range r.Values() {
		parsed, err := godotenv.Unmarshal(exportLine(key, value))
		if err != nil || parsed[key] != value {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func exportLine(key, value string) string {
	return key + `="` + value + `"`
}

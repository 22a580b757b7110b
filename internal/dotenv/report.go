package dotenv

type Assignment struct {
	Line  int
	Key   string
	Value string
}

// Warning is a non-fatal per-line diagnostic. Err wraps one of the Err*
// sentinels.
type Warning struct {
	Line int
	Err  error
}

func (w Warning) Error() string {
	return w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}

// Report is the outcome of one load.
type Report struct {
	ID       string
	Path     string
	Applied  []Assignment
	Warnings []Warning
}

func (r *Report) warn(line int, err error) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Err: err})
}

// Keys returns the applied keys in first-seen order, without duplicates.
func (r *Report) Keys() []string {
	seen := make(map[string]struct{}, len(r.Applied))
	keys := make([]string, 0, len(r.Applied))
	for _, a := range r.Applied {
		if _, ok := seen[a.Key]; ok {
			continue
		}
		seen[a.Key] = struct{}{}
		keys = append(keys, a.Key)
	}
	return keys
}

// Values returns the final value of every applied key; later lines win.
func (r *Report) Values() map[string]string {
	values := make(map[string]string, len(r.Applied))
	for _, a := range r.Applied {
		values[a.Key] = a.Value
	}
	return values
}

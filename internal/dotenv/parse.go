package dotenv

import (
	"strings"
	"unicode"
)

type LineKind int

const (
	LineSkip LineKind = iota
	LineAssignment
	LineMalformed
)

func (k LineKind) String() string {
	switch k {
	case LineSkip:
		return "skip"
	case LineAssignment:
		return "assignment"
	case LineMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Line is one classified input line. Key and Value are set only for
// assignments; Value has its surrounding double quotes already removed.
type Line struct {
	Kind  LineKind
	Text  string
	Key   string
	Value string
}

// ParseLine classifies a single raw line.
func ParseLine(raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return Line{Kind: LineSkip, Text: text}
	}

	key, value, ok := strings.Cut(text, "=")
	if !ok {
		return Line{Kind: LineMalformed, Text: text}
	}

	return Line{
		Kind:  LineAssignment,
		Text:  text,
		Key:   strings.TrimSpace(key),
		Value: unquote(strings.TrimLeftFunc(value, unicode.IsSpace)),
	}
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// Package output provides query result formatting.
package output

import (
	"encoding/json"
	"strings"
)

// Format represents the output format type.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Formatter is the interface for output formatters.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
}

// FormatOutput formats the given Formatter based on the specified format.
func FormatOutput(f Formatter, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := f.FormatJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return f.FormatText(), nil
	}
}

// Match is one query result.
type Match struct {
	Tag     string   `json:"tag,omitempty"`
	ID      string   `json:"id,omitempty"`
	Classes []string `json:"classes,omitempty"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

// MatchList is the result set for one query.
type MatchList struct {
	Selector string  `json:"selector"`
	Count    int     `json:"count"`
	Matches  []Match `json:"matches"`

	// TextOnly switches the text rendering to inner text per match
	// instead of serialized HTML.
	TextOnly bool `json:"-"`
}

// FormatText renders one line per match.
func (l *MatchList) FormatText() string {
	var sb strings.Builder
	for i, m := range l.Matches {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if l.TextOnly {
			sb.WriteString(m.Text)
		} else {
			sb.WriteString(m.HTML)
		}
	}
	return sb.String()
}

// FormatJSON renders the full result set.
func (l *MatchList) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

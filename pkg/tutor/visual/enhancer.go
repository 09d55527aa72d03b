package visual

import (
	"regexp"
	"strings"
)

// Marker glyphs for visually-enhanced responses.
const (
	listMarker    = "📌"
	defaultMarker = "🔍"
	divider       = "\n\n---\n\n"
)

var (
	listItemRe   = regexp.MustCompile(`(?m)^- `)
	headingRe    = regexp.MustCompile(`(?m)^(#{1,3}) (.+)$`)
	subHeadingRe = regexp.MustCompile(`\n(#{2,3} )`)
)

// topicMarkers maps heading keywords to a topical glyph. Checked in order;
// first match wins.
var topicMarkers = []struct {
	keywords []string
	marker   string
}{
	{[]string{"math", "equation", "calculation", "number"}, "🧮"},
	{[]string{"history", "past", "ancient", "timeline"}, "📜"},
	{[]string{"science", "physics", "chemistry", "biology"}, "🔬"},
	{[]string{"step", "how to", "process", "procedure"}, "📋"},
	{[]string{"example", "sample", "instance"}, "💡"},
	{[]string{"summary", "conclusion", "recap"}, "📝"},
}

// Enhance decorates markdown for visual learners: a marker glyph on list
// items, a topic glyph on headings, and a divider before second and third
// level headings. Text without list or heading markers passes through
// unchanged.
func Enhance(text string) string {
	text = listItemRe.ReplaceAllString(text, listMarker+" ")

	text = headingRe.ReplaceAllStringFunc(text, func(line string) string {
		m := headingRe.FindStringSubmatch(line)
		return m[1] + " " + markerFor(m[2]) + " " + m[2]
	})

	text = subHeadingRe.ReplaceAllString(text, divider+"$1")

	return text
}

func markerFor(heading string) string {
	lower := strings.ToLower(heading)
	for _, tm := range topicMarkers {
		for _, kw := range tm.keywords {
			if strings.Contains(lower, kw) {
				return tm.marker
			}
		}
	}
	return defaultMarker
}

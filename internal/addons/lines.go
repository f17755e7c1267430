package addons

import (
	"strings"
)

// DefaultLanguages are the languages counted in module reports unless
// configured otherwise.
var DefaultLanguages = []string{"Python", "XML", "CSS", "JavaScript"}

// languageByExt maps a file extension to its counted language.
var languageByExt = map[string]string{
	".py":  "Python",
	".xml": "XML",
	".css": "CSS",
	".js":  "JavaScript",
}

type commentStyle struct {
	line       string
	blockOpen  string
	blockClose string
}

var commentStyles = map[string]commentStyle{
	"Python":     {line: "#"},
	"XML":        {blockOpen: "<!--", blockClose: "-->"},
	"CSS":        {blockOpen: "/*", blockClose: "*/"},
	"JavaScript": {line: "//", blockOpen: "/*", blockClose: "*/"},
}

// countCodeLines counts the lines of source that are neither blank nor
// pure comment. It is a rough classifier: a line is a comment line when,
// after trimming, it starts a line comment or sits entirely inside a
// block comment. Mixed code-and-comment lines count as code.
func countCodeLines(source string, lang string) int {
	style := commentStyles[lang]
	count := 0
	inBlock := false
	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if inBlock {
			if idx := strings.Index(line, style.blockClose); idx >= 0 {
				inBlock = false
				rest := strings.TrimSpace(line[idx+len(style.blockClose):])
				if rest != "" {
					count++
				}
			}
			continue
		}
		if style.line != "" && strings.HasPrefix(line, style.line) {
			continue
		}
		if style.blockOpen != "" && strings.HasPrefix(line, style.blockOpen) {
			if idx := strings.Index(line[len(style.blockOpen):], style.blockClose); idx >= 0 {
				rest := line[len(style.blockOpen)+idx+len(style.blockClose):]
				if strings.TrimSpace(rest) != "" {
					count++
				}
			} else {
				inBlock = true
			}
			continue
		}
		count++
		if style.blockOpen != "" {
			// A block comment opened mid-line and left unclosed swallows
			// the following lines.
			if idx := strings.LastIndex(line, style.blockOpen); idx >= 0 {
				if !strings.Contains(line[idx:], style.blockClose) {
					inBlock = true
				}
			}
		}
	}
	return count
}

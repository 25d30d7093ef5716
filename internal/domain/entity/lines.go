package entity

import "strings"

// Bullet glyphs users paste into services/notes text. A single leading glyph
// per line is stripped before re-rendering.
var bulletGlyphs = []string{"•", "●", "-"}

// SplitBulletLines prepares free-form bullet text: split on newline, trim each
// line, drop blank lines, and strip one leading bullet glyph per line.
func SplitBulletLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		for _, glyph := range bulletGlyphs {
			if rest, ok := strings.CutPrefix(line, glyph); ok {
				line = strings.TrimSpace(rest)

				break
			}
		}

		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// SplitContactLines splits free-form contact text on "/" so each segment
// renders on its own line.
func SplitContactLines(contact string) []string {
	var lines []string
	for _, seg := range strings.Split(contact, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		lines = append(lines, seg)
	}

	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package junit

import (
	"encoding/xml"
	"strings"
	"unicode/utf8"
)

const cdataEnd = "]]>"

// writeAttr writes s escaped for use inside a double-quoted attribute value.
func writeAttr(b *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(b, []byte(s))
}

// cdataSafe prepares s for a CDATA section. Invalid UTF-8 and characters
// outside the XML Char range become U+FFFD, matching xml.EscapeText for
// attributes. Every "]]>" is split so it cannot close the section.
func cdataSafe(s string) string {
	if !utf8.ValidString(s) || strings.IndexFunc(s, isIllegalXMLChar) >= 0 {
		s = strings.Map(func(r rune) rune {
			if isIllegalXMLChar(r) {
				return '\uFFFD'
			}
			return r
		}, s)
	}
	if !strings.Contains(s, cdataEnd) {
		return s
	}
	return strings.ReplaceAll(s, cdataEnd, "]]]]><![CDATA[>")
}

// isIllegalXMLChar reports whether r falls outside the XML 1.0 Char production.
func isIllegalXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return false
	case r >= 0x20 && r <= 0xD7FF:
		return false
	case r >= 0xE000 && r <= 0xFFFD:
		return false
	case r >= 0x10000 && r <= 0x10FFFF:
		return false
	}
	return true
}

package branding

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Schemes that turn a stored logo URL into a script or local-resource
// vector. Matched case-insensitively against the raw input before any URL
// parsing.
var blockedSchemes = []string{"data:", "javascript:", "vbscript:", "file:", "about:", "blob:"}

// ValidateHexColor accepts #rgb, #rrggbb, rgb and rrggbb and normalizes to
// a lowercase 6-digit #rrggbb. Everything else is rejected, keeping
// tenant-controlled color values out of generated CSS.
func ValidateHexColor(input string) (string, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")

	switch len(s) {
	case 3:
		var expanded strings.Builder
		for _, r := range s {
			if !isHexDigit(r) {
				return "", false
			}
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		return "#" + strings.ToLower(expanded.String()), true
	case 6:
		for _, r := range s {
			if !isHexDigit(r) {
				return "", false
			}
		}
		return "#" + strings.ToLower(s), true
	default:
		return "", false
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ValidateLogoURL accepts https absolute URLs and same-origin relative
// paths. Dangerous schemes, protocol-relative URLs and parent-directory
// traversal are rejected.
func ValidateLogoURL(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	lower := strings.ToLower(s)
	for _, scheme := range blockedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	if u, err := url.Parse(s); err == nil && u.IsAbs() {
		if u.Scheme == "https" {
			return s, true
		}
		return "", false
	}

	if strings.HasPrefix(s, "//") {
		return "", false
	}
	if strings.Contains(s, "..") {
		return "", false
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") {
		return s, true
	}
	return "", false
}

// HoverColor derives the rgba hover tint used by the login page from a
// validated primary color.
func HoverColor(hexColor string) (string, bool) {
	normalized, ok := ValidateHexColor(hexColor)
	if !ok {
		return "", false
	}

	r, _ := strconv.ParseUint(normalized[1:3], 16, 8)
	g, _ := strconv.ParseUint(normalized[3:5], 16, 8)
	b, _ := strconv.ParseUint(normalized[5:7], 16, 8)
	return fmt.Sprintf("rgba(%d, %d, %d, 0.87)", r, g, b), true
}

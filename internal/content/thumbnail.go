package content

import (
	"regexp"
	"strings"
)

var (
	markdownImageRe = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
	htmlImageRe     = regexp.MustCompile(`(?i)<img\b[^>]*?\bsrc\s*=\s*["']([^"']*)["']`)
)

// InferThumbnail returns explicit when set. Otherwise it returns the URL of
// the first markdown or HTML image reference in body, or "" when none exists.
func InferThumbnail(explicit string, body []byte) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return firstImage(body)
}

func firstImage(body []byte) string {
	md := markdownImageRe.FindSubmatchIndex(body)
	tag := htmlImageRe.FindSubmatchIndex(body)

	var loc []int
	switch {
	case md == nil && tag == nil:
		return ""
	case tag == nil:
		loc = md
	case md == nil:
		loc = tag
	case tag[0] < md[0]:
		loc = tag
	default:
		loc = md
	}
	return cleanImageURL(string(body[loc[2]:loc[3]]))
}

// cleanImageURL drops surrounding whitespace, angle brackets and a trailing
// markdown link title such as `x.png "caption"`.
func cleanImageURL(u string) string {
	u = strings.TrimSpace(u)
	if i := strings.IndexAny(u, " \t"); i > 0 {
		rest := strings.TrimSpace(u[i:])
		if strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, `'`) || strings.HasPrefix(rest, "(") {
			u = u[:i]
		}
	}
	u = strings.TrimPrefix(u, "<")
	u = strings.TrimSuffix(u, ">")
	return strings.TrimSpace(u)
}

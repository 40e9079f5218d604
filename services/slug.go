package services

import "strings"

// Slugify converts free text into a URL-safe slug: lower-case the input,
// collapse every maximal run of characters outside [a-z0-9] into a single
// hyphen, then trim leading and trailing hyphens. The same rule is applied
// to post titles and tag names so that both derive comparable keys.
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

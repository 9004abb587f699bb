package validation

import (
	"regexp"
	"strings"
)

var (
	directImageRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg|bmp)(\?.*)?$`)
	driveFileRe   = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
	driveOpenRe   = regexp.MustCompile(`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`)
)

// NormalizeImageURL rewrites share links into a directly renderable URL.
// Google Drive links become the uc?export=view form; anything else,
// including direct image links and Unsplash, is returned unchanged.
func NormalizeImageURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}

	if directImageRe.MatchString(url) {
		return url
	}

	if strings.Contains(url, "images.unsplash.com") {
		return url
	}

	for _, re := range []*regexp.Regexp{driveFileRe, driveOpenRe} {
		m := re.FindStringSubmatch(url)
		if m != nil {
			return "https://drive.google.com/uc?export=view&id=" + m[1]
		}
	}

	return url
}

package parser

import (
	"sort"
	"strings"

	"copydesk/internal/domain"
)

// socialHeaders are the recognised section headers. Each maps to the
// lowercase platform key.
var socialHeaders = []struct {
	token    string
	platform string
}{
	{"INSTAGRAM:", domain.PlatformInstagram},
	{"FACEBOOK:", domain.PlatformFacebook},
	{"TWITTER:", domain.PlatformTwitter},
	{"LINKEDIN:", domain.PlatformLinkedIn},
	{"Instagram:", domain.PlatformInstagram},
	{"Facebook:", domain.PlatformFacebook},
	{"Twitter:", domain.PlatformTwitter},
	{"LinkedIn:", domain.PlatformLinkedIn},
}

type headerHit struct {
	pos      int
	token    string
	platform string
}

// ParseSocial splits a multi-platform response into per-platform posts,
// keeping only requested platforms. Only the first occurrence of each header
// token counts. Without any header the text is divided by blank lines, or
// handed whole to every requested platform when there are too few blocks.
func ParseSocial(raw string, platforms domain.PlatformConfig) domain.SocialContent {
	out := domain.SocialContent{}

	var hits []headerHit
	for _, h := range socialHeaders {
		if pos := strings.Index(raw, h.token); pos >= 0 {
			hits = append(hits, headerHit{pos: pos, token: h.token, platform: h.platform})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	for i, hit := range hits {
		start := hit.pos + len(hit.token)
		end := len(raw)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		if platforms.Enabled(hit.platform) {
			out[hit.platform] = strings.TrimSpace(raw[start:end])
		}
	}
	if len(hits) > 0 {
		return out
	}

	text := strings.TrimSpace(raw)
	requested := platforms.Requested()
	if text == "" || len(requested) == 0 {
		return out
	}
	blocks := sections(text)
	if len(blocks) >= len(requested) {
		for i, platform := range requested {
			out[platform] = blocks[i]
		}
		return out
	}
	for _, platform := range requested {
		out[platform] = text
	}
	return out
}

package policy

import "strings"

// appReferences are self-references to the product. Upstream generation
// occasionally wraps an app-usage nudge inside what should be pure
// weather and body content.
var appReferences = []string{
	"the app",
	"this app",
	"our app",
	"in the app",
	"flarecast",
}

// instructionalMarkers are the call-to-action fragments those nudges
// lean on: logging prompts, the "one minute" pitch, and the "matters
// most" framing.
var instructionalMarkers = []string{
	"log ",
	"log your",
	"jot ",
	"jot down",
	"teach",
	"note down",
	"take a note",
	"note-taking",
	"track your",
	"one minute",
	"matters most",
}

// FilterAppReference suppresses fragments that are meta-commentary
// about the product rather than weather or body content. The second
// return value is false when the fragment was discarded; callers then
// substitute their own default instead of showing blank content.
func FilterAppReference(text string) (string, bool) {
	lower := strings.ToLower(text)

	hasAppRef := false
	for _, ref := range appReferences {
		if strings.Contains(lower, ref) {
			hasAppRef = true
			break
		}
	}
	if !hasAppRef {
		return text, true
	}

	for _, marker := range instructionalMarkers {
		if strings.Contains(lower, marker) {
			return "", false
		}
	}
	return text, true
}

package mode

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMissingModeHeading indicates a document lacks the required
// "# <Name> Mode" level-1 heading.
var ErrMissingModeHeading = errors.New(`missing "# <Name> Mode" heading`)

// modeHeading matches a level-1 heading whose trailing token is the
// literal word "Mode", e.g. "# Backend Developer Mode". The capture is
// the display name.
var modeHeading = regexp.MustCompile(`(?m)^# +(.+?) +Mode *$`)

// ExtractHeading locates the first "# <Name> Mode" heading, returning
// the trimmed display name and the body with that heading line removed.
// Removal is by match position, so an earlier mid-line mention of the
// same text is left alone. Returns ErrMissingModeHeading if no such
// heading exists.
func ExtractHeading(text string) (name, body string, err error) {
	loc := modeHeading.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", ErrMissingModeHeading
	}

	name = strings.TrimSpace(text[loc[2]:loc[3]])
	body = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	return name, body, nil
}

package graph

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/teranos/lineage/person"
)

// External record tokens look like "L1AB-2CD". Disambiguated keys append an
// ordinal ("L1AB-2CD2"), so only the prefix is matched.
var linkTokenPattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{3}`)

// linkToken extracts the external record token from a node key.
// Keys that are not token-shaped are used verbatim.
// Example: "L1AB-2CD3" becomes "L1AB-2CD"
func linkToken(key string) string {
	if token := linkTokenPattern.FindString(key); token != "" {
		return token
	}
	return key
}

// linkURL formats the record URL for a token; an empty template disables links
func linkURL(template, token string) string {
	if template == "" || !strings.Contains(template, "%s") {
		return ""
	}
	return fmt.Sprintf(template, token)
}

func categoryOf(sex person.Sex) string {
	switch sex {
	case person.SexMale:
		return CategoryMale
	case person.SexFemale:
		return CategoryFemale
	default:
		return CategoryUnknown
	}
}

func (o Options) colorOf(category string) string {
	switch category {
	case CategoryMale:
		return o.MaleColor
	case CategoryFemale:
		return o.FemaleColor
	default:
		return o.UnknownColor
	}
}

package projection

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// ContactVariant selects which link fills the third contact slot.
type ContactVariant string

// Supported contact variants.
const (
	ContactWithWebsite  ContactVariant = "website"
	ContactWithLinkedIn ContactVariant = "linkedin"
	ContactWithBoth     ContactVariant = "both"
)

// ParseContactVariant parses a variant name. The empty string means website.
func ParseContactVariant(s string) (ContactVariant, error) {
	switch v := ContactVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ContactWithWebsite, nil
	case ContactWithWebsite, ContactWithLinkedIn, ContactWithBoth:
		return v, nil
	default:
		return "", fmt.Errorf("unknown contact variant %q (want website, linkedin or both)", s)
	}
}

// DeriveContactItems lists the non-blank contact facts of info in the fixed
// order phone, email, website/linkedin, location. Values are not trimmed
// or reformatted.
func DeriveContactItems(info types.PersonalInfo, variant ContactVariant) []types.ContactItem {
	candidates := []types.ContactItem{
		{Kind: types.ContactPhone, Value: info.Phone},
		{Kind: types.ContactEmail, Value: info.Email},
	}
	switch variant {
	case ContactWithLinkedIn:
		candidates = append(candidates, types.ContactItem{Kind: types.ContactLinkedIn, Value: info.LinkedIn})
	case ContactWithBoth:
		candidates = append(candidates,
			types.ContactItem{Kind: types.ContactWebsite, Value: info.Website},
			types.ContactItem{Kind: types.ContactLinkedIn, Value: info.LinkedIn},
		)
	default:
		candidates = append(candidates, types.ContactItem{Kind: types.ContactWebsite, Value: info.Website})
	}
	candidates = append(candidates, types.ContactItem{Kind: types.ContactLocation, Value: info.Location})

	items := make([]types.ContactItem, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Value) == "" {
			continue
		}
		items = append(items, c)
	}
	return items
}

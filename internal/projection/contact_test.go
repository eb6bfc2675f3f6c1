package projection

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveContactItems_PriorityOrder(t *testing.T) {
	info := types.PersonalInfo{Location: "NYC", Phone: "555", Email: "a@b.com"}

	items := DeriveContactItems(info, ContactWithWebsite)

	assert.Equal(t, []types.ContactItem{
		{Kind: types.ContactPhone, Value: "555"},
		{Kind: types.ContactEmail, Value: "a@b.com"},
		{Kind: types.ContactLocation, Value: "NYC"},
	}, items)
}

func TestDeriveContactItems_SkipsBlankValues(t *testing.T) {
	info := types.PersonalInfo{Phone: "   ", Email: "", Website: "example.dev", Location: "\t"}

	items := DeriveContactItems(info, ContactWithWebsite)

	require.Len(t, items, 1)
	assert.Equal(t, types.ContactWebsite, items[0].Kind)
}

func TestDeriveContactItems_PassesValuesThrough(t *testing.T) {
	info := types.PersonalInfo{Phone: " +1 (555) 010-0000 "}

	items := DeriveContactItems(info, ContactWithWebsite)

	require.Len(t, items, 1)
	assert.Equal(t, " +1 (555) 010-0000 ", items[0].Value)
}

func TestDeriveContactItems_Variants(t *testing.T) {
	info := types.PersonalInfo{
		Email:    "a@b.com",
		Website:  "example.dev",
		LinkedIn: "linkedin.com/in/a",
		Location: "Berlin",
	}

	tests := []struct {
		variant ContactVariant
		want    []types.ContactKind
	}{
		{ContactWithWebsite, []types.ContactKind{types.ContactEmail, types.ContactWebsite, types.ContactLocation}},
		{ContactWithLinkedIn, []types.ContactKind{types.ContactEmail, types.ContactLinkedIn, types.ContactLocation}},
		{ContactWithBoth, []types.ContactKind{types.ContactEmail, types.ContactWebsite, types.ContactLinkedIn, types.ContactLocation}},
		{"", []types.ContactKind{types.ContactEmail, types.ContactWebsite, types.ContactLocation}},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			items := DeriveContactItems(info, tt.variant)
			kinds := make([]types.ContactKind, 0, len(items))
			for _, item := range items {
				kinds = append(kinds, item.Kind)
			}
			assert.Equal(t, tt.want, kinds)
		})
	}
}

func TestDeriveContactItems_Idempotent(t *testing.T) {
	info := types.PersonalInfo{Phone: "555", Email: "a@b.com", Location: "NYC"}

	assert.Equal(t, DeriveContactItems(info, ContactWithBoth), DeriveContactItems(info, ContactWithBoth))
}

func TestDeriveContactItems_EmptyInfo(t *testing.T) {
	items := DeriveContactItems(types.PersonalInfo{}, ContactWithWebsite)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseContactVariant(t *testing.T) {
	v, err := ParseContactVariant("LinkedIn")
	require.NoError(t, err)
	assert.Equal(t, ContactWithLinkedIn, v)

	v, err = ParseContactVariant("")
	require.NoError(t, err)
	assert.Equal(t, ContactWithWebsite, v)

	_, err = ParseContactVariant("fax")
	assert.Error(t, err)
}

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthRules(t *testing.T) {
	cases := []struct {
		name string
		rule func(string) bool
		max  int
		min  int
	}{
		{"project name", IsValidProjectName, ProjectNameMaxLength, 1},
		{"project short description", IsValidProjectShortDescription, ProjectShortDescriptionMaxLength, 1},
		{"version", IsValidVersion, TargetVersionMaxLength, 1},
		{"group name", IsGroupNameValid, GroupNameMaxLength, 1},
		{"name", IsNameValid, NameMaxLength, 1},
		{"surname", IsSurnameValid, SurnameMaxLength, 1},
		{"password", IsPasswordValid, PasswordMaxLength, PasswordMinLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.rule(""), "empty string must be rejected")
			assert.True(t, tc.rule(strings.Repeat("a", tc.min)))
			assert.True(t, tc.rule(strings.Repeat("a", tc.max)))
			assert.False(t, tc.rule(strings.Repeat("a", tc.max+1)))
			if tc.min > 1 {
				assert.False(t, tc.rule(strings.Repeat("a", tc.min-1)))
			}
		})
	}
}

func TestLengthCountsRunes(t *testing.T) {
	assert.True(t, IsValidProjectName(strings.Repeat("è", ProjectNameMaxLength)))
	assert.False(t, IsValidProjectName(strings.Repeat("è", ProjectNameMaxLength+1)))
}

func TestLongTextRules(t *testing.T) {
	assert.True(t, IsValidProjectDescription(strings.Repeat("d", ProjectDescriptionMaxLength)))
	assert.False(t, IsValidProjectDescription(strings.Repeat("d", ProjectDescriptionMaxLength+1)))
	assert.True(t, IsGroupDescriptionValid("Backend team"))
	assert.False(t, IsGroupDescriptionValid(""))
	assert.True(t, IsContentNoteValid("fix the login flow"))
	assert.False(t, IsContentNoteValid(""))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("john.doe@pandoro.dev"))
	assert.False(t, IsEmailValid(""))
	assert.False(t, IsEmailValid("john.doe"))
	assert.False(t, IsEmailValid("john@"))
	assert.False(t, IsEmailValid(strings.Repeat("a", EmailMaxLength)+"@pandoro.dev"))
}

func TestIsValidRepository(t *testing.T) {
	t.Run("empty repository is accepted", func(t *testing.T) {
		assert.True(t, IsValidRepository(""))
	})

	t.Run("recognized platforms", func(t *testing.T) {
		assert.True(t, IsValidRepository("https://github.com/x/y"))
		assert.True(t, IsValidRepository("https://gitlab.com/group/project"))
		assert.True(t, IsValidRepository("https://github.example.org:8443/org/repo"))
	})

	t.Run("unrecognized platform", func(t *testing.T) {
		assert.False(t, IsValidRepository("https://example.com/x"))
		assert.False(t, IsValidRepository("https://bitbucket.org/x/y"))
	})

	t.Run("malformed url", func(t *testing.T) {
		assert.False(t, IsValidRepository("not a url"))
		assert.False(t, IsValidRepository("github.com/x/y"))
		assert.False(t, IsValidRepository("https://github"))
	})
}

func TestAreNotesValid(t *testing.T) {
	assert.False(t, AreNotesValid(nil))
	assert.False(t, AreNotesValid([]string{}))
	assert.True(t, AreNotesValid([]string{"first", "second"}))
	assert.False(t, AreNotesValid([]string{"first", ""}))
}

func TestCheckMembersValidity(t *testing.T) {
	assert.False(t, CheckMembersValidity(nil))
	assert.False(t, CheckMembersValidity([]string{}))
	assert.True(t, CheckMembersValidity([]string{"a@pandoro.dev", "b@pandoro.dev"}))
	assert.False(t, CheckMembersValidity([]string{"a@pandoro.dev", "b"}))
}

func TestRegisteredTags(t *testing.T) {
	v := New()

	type request struct {
		Name       string   `validate:"project_name"`
		Repository string   `validate:"repository"`
		Notes      []string `validate:"change_notes"`
	}

	t.Run("valid request", func(t *testing.T) {
		err := v.Struct(&request{Name: "Pandoro", Notes: []string{"first"}})
		require.NoError(t, err)
	})

	t.Run("invalid name", func(t *testing.T) {
		err := v.Struct(&request{Name: "", Notes: []string{"first"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project_name")
	})

	t.Run("missing notes", func(t *testing.T) {
		err := v.Struct(&request{Name: "Pandoro"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "change_notes")
	})

	t.Run("invalid repository", func(t *testing.T) {
		err := v.Struct(&request{Name: "Pandoro", Repository: "https://example.com/x", Notes: []string{"a"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repository")
	})
}

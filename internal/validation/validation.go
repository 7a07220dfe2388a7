// Package validation holds the input rules shared by the backend services and the client.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	ProjectNameMaxLength             = 25
	ProjectShortDescriptionMaxLength = 15
	ProjectDescriptionMaxLength      = 65535
	TargetVersionMaxLength           = 20
	GroupNameMaxLength               = 25
	GroupDescriptionMaxLength        = 65535
	NoteContentMaxLength             = 65535
	NameMaxLength                    = 20
	SurnameMaxLength                 = 30
	EmailMaxLength                   = 50
	PasswordMinLength                = 8
	PasswordMaxLength                = 32
)

const urlPattern = `^[a-zA-Z][a-zA-Z0-9+.-]*://(([a-zA-Z0-9\-]+\.)+[a-zA-Z]{2,6}|\d{1,3}(?:\.\d{1,3}){3})(?::\d{1,5})?(/\S*)?(\?(\S*))?(#(\S*))?$`

var (
	urlRegex = regexp.MustCompile(urlPattern)

	// recognized hosting platforms for project repositories
	repositoryPlatforms = []string{"github", "gitlab"}

	emailChecker = validator.New()
)

func isLengthInRange(value string, min, max int) bool {
	length := utf8.RuneCountInString(value)
	return length >= min && length <= max
}

// IsValidProjectName checks the name of a project
func IsValidProjectName(name string) bool {
	return isLengthInRange(name, 1, ProjectNameMaxLength)
}

// IsValidProjectShortDescription checks the short description of a project
func IsValidProjectShortDescription(shortDescription string) bool {
	return isLengthInRange(shortDescription, 1, ProjectShortDescriptionMaxLength)
}

// IsValidProjectDescription checks the description of a project
func IsValidProjectDescription(description string) bool {
	return isLengthInRange(description, 1, ProjectDescriptionMaxLength)
}

// IsValidVersion checks the target version of an update or the version of a project
func IsValidVersion(version string) bool {
	return isLengthInRange(version, 1, TargetVersionMaxLength)
}

// IsGroupNameValid checks the name of a group
func IsGroupNameValid(name string) bool {
	return isLengthInRange(name, 1, GroupNameMaxLength)
}

// IsGroupDescriptionValid checks the description of a group
func IsGroupDescriptionValid(description string) bool {
	return isLengthInRange(description, 1, GroupDescriptionMaxLength)
}

// IsContentNoteValid checks the content of a personal or change note
func IsContentNoteValid(content string) bool {
	return isLengthInRange(content, 1, NoteContentMaxLength)
}

// IsNameValid checks the name of a user
func IsNameValid(name string) bool {
	return isLengthInRange(name, 1, NameMaxLength)
}

// IsSurnameValid checks the surname of a user
func IsSurnameValid(surname string) bool {
	return isLengthInRange(surname, 1, SurnameMaxLength)
}

// IsEmailValid checks that the value is a well formed email within the length bound
func IsEmailValid(email string) bool {
	if !isLengthInRange(email, 1, EmailMaxLength) {
		return false
	}
	return emailChecker.Var(email, "email") == nil
}

// IsPasswordValid checks the length bounds of a password
func IsPasswordValid(password string) bool {
	return isLengthInRange(password, PasswordMinLength, PasswordMaxLength)
}

// IsValidRepository accepts the empty string (no repository) or a well formed URL
// hosted on a recognized platform
func IsValidRepository(repository string) bool {
	if repository == "" {
		return true
	}
	if !urlRegex.MatchString(repository) {
		return false
	}
	lowered := strings.ToLower(repository)
	for _, platform := range repositoryPlatforms {
		if strings.Contains(lowered, platform) {
			return true
		}
	}
	return false
}

// AreNotesValid requires a non-empty list of valid note contents
func AreNotesValid(notes []string) bool {
	if len(notes) == 0 {
		return false
	}
	for _, note := range notes {
		if !IsContentNoteValid(note) {
			return false
		}
	}
	return true
}

// CheckMembersValidity requires a non-empty list of valid emails
func CheckMembersValidity(members []string) bool {
	if len(members) == 0 {
		return false
	}
	for _, member := range members {
		if !IsEmailValid(member) {
			return false
		}
	}
	return true
}

var stringRules = map[string]func(string) bool{
	"project_name":              IsValidProjectName,
	"project_short_description": IsValidProjectShortDescription,
	"project_description":       IsValidProjectDescription,
	"version":                   IsValidVersion,
	"repository":                IsValidRepository,
	"group_name":                IsGroupNameValid,
	"group_description":         IsGroupDescriptionValid,
	"note_content":              IsContentNoteValid,
	"user_name":                 IsNameValid,
	"user_surname":              IsSurnameValid,
	"user_email":                IsEmailValid,
	"password":                  IsPasswordValid,
}

var listRules = map[string]func([]string) bool{
	"change_notes": AreNotesValid,
	"members":      CheckMembersValidity,
}

// Register installs the Pandoro rules as validator tags, so request structs can use
// e.g. `validate:"project_name"` or `validate:"change_notes"`.
func Register(v *validator.Validate) error {
	for tag, rule := range stringRules {
		check := rule
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}, true); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	for tag, rule := range listRules {
		check := rule
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			values, ok := fl.Field().Interface().([]string)
			return ok && check(values)
		}, true); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the Pandoro rules registered. Field errors carry the
// json name of the field.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

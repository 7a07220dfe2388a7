package client

import (
	"errors"
	"fmt"
	"strings"

	"pandoro-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validation.New()

// check runs the struct rules and reports the first failing field
func check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := fieldErrors[0].Field()
		return &ValidationError{Field: field, Message: "wrong " + field}
	}
	return fmt.Errorf("validation failed: %w", err)
}

// NewSignUpRequest builds a validated sign up request. serverSecret may be empty when the
// backend does not require one.
func NewSignUpRequest(serverSecret, name, surname, email, password string) (*SignUpRequest, error) {
	req := &SignUpRequest{
		ServerSecret: serverSecret,
		Name:         name,
		Surname:      surname,
		Email:        strings.TrimSpace(email),
		Password:     password,
	}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewSignInRequest builds a validated sign in request
func NewSignInRequest(email, password string) (*SignInRequest, error) {
	req := &SignInRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewChangeEmailRequest builds a validated email change request
func NewChangeEmailRequest(email string) (*ChangeEmailRequest, error) {
	req := &ChangeEmailRequest{Email: strings.TrimSpace(email)}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewChangePasswordRequest builds a validated password change request
func NewChangePasswordRequest(password string) (*ChangePasswordRequest, error) {
	req := &ChangePasswordRequest{Password: password}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewProjectRequest builds a validated request to add or edit a project
func NewProjectRequest(name, shortDescription, description, version, repository string, groups []uuid.UUID) (*ProjectRequest, error) {
	switch {
	case !validation.IsValidProjectName(name):
		return nil, ErrWrongProjectName
	case !validation.IsValidProjectDescription(description):
		return nil, &ValidationError{Field: "description", Message: "wrong project description"}
	case !validation.IsValidProjectShortDescription(shortDescription):
		return nil, &ValidationError{Field: "shortDescription", Message: "wrong project short description"}
	case !validation.IsValidVersion(version):
		return nil, &ValidationError{Field: "version", Message: "wrong project version"}
	case !validation.IsValidRepository(repository):
		return nil, ErrWrongProjectRepository
	}
	if groups == nil {
		groups = []uuid.UUID{}
	}
	return &ProjectRequest{
		Name:             name,
		ShortDescription: shortDescription,
		Description:      description,
		Version:          version,
		Groups:           groups,
		Repository:       repository,
	}, nil
}

// NewScheduleUpdateRequest builds a validated request to schedule an update
func NewScheduleUpdateRequest(targetVersion string, changeNotes []string) (*ScheduleUpdateRequest, error) {
	req := &ScheduleUpdateRequest{TargetVersion: targetVersion, Notes: changeNotes}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewNoteRequest builds a validated request carrying the content of a note
func NewNoteRequest(content string) (*NoteRequest, error) {
	req := &NoteRequest{Content: content}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewCreateGroupRequest builds a validated request to create a group
func NewCreateGroupRequest(name, description string, members []string) (*CreateGroupRequest, error) {
	req := &CreateGroupRequest{Name: name, Description: description, Members: members}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewEditGroupRequest builds a validated request to edit the group description
func NewEditGroupRequest(description string) (*EditGroupRequest, error) {
	req := &EditGroupRequest{Description: description}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewMembersRequest builds a validated request to invite members
func NewMembersRequest(members []string) (*MembersRequest, error) {
	req := &MembersRequest{Members: members}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

// NewChangeRoleRequest builds a validated request to change the role of a member
func NewChangeRoleRequest(memberID uuid.UUID, role Role) (*ChangeRoleRequest, error) {
	if !role.IsValid() {
		return nil, ErrWrongRole
	}
	req := &ChangeRoleRequest{MemberID: memberID, Role: role}
	if err := check(req); err != nil {
		return nil, err
	}
	return req, nil
}

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in the project"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a request that is not allowed in the current state of an entity
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrUpdateNotFound     = &NotFoundError{Entity: "update"}
	ErrChangeNoteNotFound = &NotFoundError{Entity: "change note"}
	ErrNoteNotFound       = &NotFoundError{Entity: "note"}
	ErrGroupNotFound      = &NotFoundError{Entity: "group"}
	ErrMemberNotFound     = &NotFoundError{Entity: "member"}
	ErrChangelogNotFound  = &NotFoundError{Entity: "changelog"}
	ErrRepositoryNotFound = &NotFoundError{Entity: "repository"}
)

// Already Exists Errors
var (
	ErrUserExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrProjectExists = &AlreadyExistsError{Entity: "project", Context: "with this name"}
	ErrUpdateExists  = &AlreadyExistsError{Entity: "update", Context: "with this version in the project"}
	ErrGroupExists   = &AlreadyExistsError{Entity: "group", Context: "with this name"}
)

// Validation Errors
var (
	ErrWrongProjectName        = &ValidationError{Field: "name", Message: "wrong project name"}
	ErrWrongGroupsList         = &ValidationError{Field: "groups", Message: "wrong groups list"}
	ErrWrongProjectRepository  = &ValidationError{Field: "repository", Message: "wrong project repository"}
	ErrWrongChangeNotesList    = &ValidationError{Field: "notes", Message: "wrong change notes list"}
	ErrWrongMembersList        = &ValidationError{Field: "members", Message: "wrong members list"}
	ErrWrongProjectsList       = &ValidationError{Field: "projects", Message: "wrong projects list"}
	ErrWrongRole               = &ValidationError{Field: "role", Message: "wrong role"}
	ErrInvalidNextAdmin        = &ValidationError{Field: "nextAdminId", Message: "You need to insert a valid new admin"}
	ErrWrongProfilePic         = &ValidationError{Field: "profilePic", Message: "Wrong profile pic"}
	ErrWrongGroupLogo          = &ValidationError{Field: "logo", Message: "Wrong group logo"}
	ErrInvalidPaginationParams = &ValidationError{Field: "page", Message: "invalid pagination parameters"}
)

// Business Logic Errors
var (
	ErrUpdateNotScheduled     = &ConflictError{Message: "the update must be scheduled to start its development"}
	ErrUpdateNotInDevelopment = &ConflictError{Message: "the update must be in development to be published"}
	ErrChangeNotesNotDone     = &ConflictError{Message: "every change note must be done to publish the update"}
	ErrUpdatePublished        = &ConflictError{Message: "the update has already been published"}
	ErrChangeNoteNotEditable  = &ConflictError{Message: "change notes can be marked only while the update is in development"}
	ErrInvalidNoteMove        = &ConflictError{Message: "the change note cannot be moved to this update"}
	ErrInvitationNotPending   = &ConflictError{Message: "the invitation has already been answered"}
	ErrMemberNotJoined        = &ConflictError{Message: "the member has not joined the group yet"}
	ErrNotInvitationChangelog = &ConflictError{Message: "the changelog is not an invitation for this group"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "wrong email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrWrongServerSecret  = &AuthenticationError{Message: "Not authorized or wrong details"}
)

// Authorization Errors
var (
	ErrNotAuthorized   = &AuthorizationError{Message: "Not authorized or wrong details"}
	ErrActionOnSelf    = &AuthorizationError{Message: "You cannot execute this action on your account"}
	ErrNotProjectOwner = &AuthorizationError{Message: "only the author can execute this action on the project"}
	ErrNotGroupAdmin   = &AuthorizationError{Message: "only an admin of the group can execute this action"}
	ErrNotGroupManager = &AuthorizationError{Message: "only an admin or a maintainer of the group can execute this action"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "uploads storage is not configured"}
)

// Generic Errors
var (
	ErrWrongProcedure = errors.New("Wrong procedure")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

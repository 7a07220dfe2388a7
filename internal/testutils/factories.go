package testutils

import (
	"fmt"
	"time"

	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel: base,
		Name:      "John",
		Surname:   "Doe",
		Email:     fmt.Sprintf("john.%s@test.com", base.ID.String()[:8]),
		Password:  "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z2/VXn6wTOqqZnbL7Gz5sl6e",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel:        newBase(),
		AuthorID:         uuid.New(),
		Name:             "Pandoro",
		ShortDescription: "Tracker",
		Description:      "Tracks the updates of the projects",
		Version:          "1.0.0",
		Repository:       "https://github.com/N7ghtm4r3/Pandoro",
	}
}

// WithAuthor sets the author of the project
func (f *ProjectFactory) WithAuthor(authorID uuid.UUID) *models.Project {
	project := f.Create()
	project.AuthorID = authorID
	return project
}

// UpdateFactory provides methods to create test ProjectUpdate data
type UpdateFactory struct{}

// NewUpdateFactory creates a new UpdateFactory
func NewUpdateFactory() *UpdateFactory {
	return &UpdateFactory{}
}

// Create creates a scheduled update with one change note
func (f *UpdateFactory) Create(projectID, authorID uuid.UUID, version string) *models.ProjectUpdate {
	return &models.ProjectUpdate{
		BaseModel:     newBase(),
		ProjectID:     projectID,
		AuthorID:      &authorID,
		TargetVersion: version,
		Status:        models.UpdateStatusScheduled,
		ChangeNotes: []models.Note{
			{BaseModel: newBase(), AuthorID: &authorID, Content: "First change"},
		},
	}
}

// NoteFactory provides methods to create test Note data
type NoteFactory struct{}

// NewNoteFactory creates a new NoteFactory
func NewNoteFactory() *NoteFactory {
	return &NoteFactory{}
}

// Create creates a personal note of the author
func (f *NoteFactory) Create(authorID uuid.UUID) *models.Note {
	return &models.Note{
		BaseModel: newBase(),
		AuthorID:  &authorID,
		Content:   "Remember to write the docs",
	}
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a group authored by the user, who is its joined ADMIN
func (f *GroupFactory) Create(authorID uuid.UUID) *models.Group {
	base := newBase()
	return &models.Group{
		BaseModel:   base,
		AuthorID:    authorID,
		Name:        "Tecknobit",
		Description: "A test group for testing purposes",
		Members: []models.GroupMember{
			{
				BaseModel:        newBase(),
				GroupID:          base.ID,
				UserID:           authorID,
				Role:             models.RoleAdmin,
				InvitationStatus: models.InvitationStatusJoined,
			},
		},
	}
}

// Member builds a membership of the user in the group
func (f *GroupFactory) Member(groupID, userID uuid.UUID, role models.Role, status models.InvitationStatus) models.GroupMember {
	return models.GroupMember{
		BaseModel:        newBase(),
		GroupID:          groupID,
		UserID:           userID,
		Role:             role,
		InvitationStatus: status,
	}
}

// ChangelogFactory provides methods to create test Changelog data
type ChangelogFactory struct{}

// NewChangelogFactory creates a new ChangelogFactory
func NewChangelogFactory() *ChangelogFactory {
	return &ChangelogFactory{}
}

// Create creates a changelog for the owner
func (f *ChangelogFactory) Create(ownerID uuid.UUID, event models.ChangelogEvent) *models.Changelog {
	return &models.Changelog{
		BaseModel: newBase(),
		OwnerID:   ownerID,
		Event:     event,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User      *UserFactory
	Project   *ProjectFactory
	Update    *UpdateFactory
	Note      *NoteFactory
	Group     *GroupFactory
	Changelog *ChangelogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Project:   NewProjectFactory(),
		Update:    NewUpdateFactory(),
		Note:      NewNoteFactory(),
		Group:     NewGroupFactory(),
		Changelog: NewChangelogFactory(),
	}
}

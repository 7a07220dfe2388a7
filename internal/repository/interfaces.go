package repository

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmails(emails []string) ([]models.User, error)
	GetCandidates(userID uuid.UUID, exclude []uuid.UUID, limit, offset int) ([]models.User, int64, error)
	CountCandidates(userID uuid.UUID, exclude []uuid.UUID) (int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	Transaction(fn func(users UserRepositoryInterface, groups GroupRepositoryInterface) error) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByAuthorAndName(authorID uuid.UUID, name string) (*models.Project, error)
	GetByUser(userID uuid.UUID) ([]models.Project, error)
	List(userID uuid.UUID, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error)
	GetByIDs(ids []uuid.UUID) ([]models.Project, error)
	Update(project *models.Project, groups []models.Group) error
	Delete(id uuid.UUID) error
}

// UpdateRepositoryInterface defines the interface for project update repository operations
type UpdateRepositoryInterface interface {
	Create(update *models.ProjectUpdate) error
	GetByID(id uuid.UUID) (*models.ProjectUpdate, error)
	GetByProjectAndVersion(projectID uuid.UUID, version string) (*models.ProjectUpdate, error)
	UpdateStatus(update *models.ProjectUpdate, from models.UpdateStatus, event *models.UpdateEvent) error
	Delete(id uuid.UUID) error
}

// NoteRepositoryInterface defines the interface for personal and change note operations
type NoteRepositoryInterface interface {
	Create(note *models.Note, guard UpdateGuard, event *models.UpdateEvent) error
	GetByID(id uuid.UUID) (*models.Note, error)
	GetPersonalByAuthor(authorID uuid.UUID, limit, offset int) ([]models.Note, int64, error)
	Update(note *models.Note, guard UpdateGuard, events ...models.UpdateEvent) error
	Delete(id uuid.UUID, guard UpdateGuard, event *models.UpdateEvent) error
}

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	Create(group *models.Group) error
	GetByID(id uuid.UUID) (*models.Group, error)
	GetByAuthorAndName(authorID uuid.UUID, name string) (*models.Group, error)
	GetByUser(userID uuid.UUID) ([]models.Group, error)
	List(userID uuid.UUID, authoredOnly bool, limit, offset int) ([]models.Group, int64, error)
	GetAdministeredBy(userID uuid.UUID, ids []uuid.UUID) ([]models.Group, error)
	Update(group *models.Group) error
	ReplaceProjects(group *models.Group, projects []models.Project) error
	HandOver(group *models.Group, leaving, successor *models.GroupMember) error
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for group membership operations
type MemberRepositoryInterface interface {
	CreateBatch(members []models.GroupMember) error
	GetByGroupAndUser(groupID, userID uuid.UUID) (*models.GroupMember, error)
	Update(member *models.GroupMember) error
	Accept(member *models.GroupMember, invitationID uuid.UUID) error
	Decline(member *models.GroupMember, invitationID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ChangelogRepositoryInterface defines the interface for changelog repository operations
type ChangelogRepositoryInterface interface {
	CreateBatch(changelogs []models.Changelog) error
	GetByID(id uuid.UUID) (*models.Changelog, error)
	GetByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Changelog, int64, error)
	CountUnread(ownerID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
	DeleteInvitations(groupID uuid.UUID) error
}

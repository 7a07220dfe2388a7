package service

import (
	"context"
	"mime/multipart"

	"pandoro-backend/internal/database/models"
	"pandoro-backend/internal/overview"
	"pandoro-backend/internal/platform"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CredentialsManager hashes passwords and issues access tokens
type CredentialsManager interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
	CheckServerSecret(secret string) error
	GenerateToken(userID uuid.UUID) (string, error)
}

// RepositoryFetcher reads the metadata of project repositories
type RepositoryFetcher interface {
	Fetch(ctx context.Context, repositoryURL string) (*platform.RepositoryInfo, error)
}

// UserServiceInterface defines the interface for account operations
type UserServiceInterface interface {
	SignUp(req *SignUpRequest) (*AuthResponse, error)
	SignIn(req *SignInRequest) (*AuthResponse, error)
	ChangeEmail(userID uuid.UUID, req *ChangeEmailRequest) error
	ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error
	ChangeProfilePic(ctx context.Context, userID uuid.UUID, file *multipart.FileHeader) (string, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	GetCandidates(userID uuid.UUID, exclude []uuid.UUID, page PageRequest) (*Page[models.User], error)
	CountCandidates(userID uuid.UUID, exclude []uuid.UUID) (int64, error)
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	GetProjects(userID uuid.UUID, query string, authoredOnly bool, page PageRequest) (*Page[models.Project], error)
	GetInDevelopmentProjects(userID uuid.UUID, query string, page PageRequest) (*Page[models.Project], error)
	GetProject(userID, projectID uuid.UUID) (*models.Project, error)
	AddProject(userID uuid.UUID, req *ProjectRequest) (*models.Project, error)
	EditProject(userID, projectID uuid.UUID, req *ProjectRequest) (*models.Project, error)
	DeleteProject(userID, projectID uuid.UUID) error
	GetRepository(ctx context.Context, userID, projectID uuid.UUID) (*platform.RepositoryInfo, error)
}

// UpdateServiceInterface defines the interface for project update and change note operations
type UpdateServiceInterface interface {
	ScheduleUpdate(userID, projectID uuid.UUID, req *ScheduleUpdateRequest) (*models.ProjectUpdate, error)
	StartUpdate(userID, projectID, updateID uuid.UUID) error
	PublishUpdate(userID, projectID, updateID uuid.UUID) error
	DeleteUpdate(userID, projectID, updateID uuid.UUID) error
	AddChangeNote(userID, projectID, updateID uuid.UUID, req *NoteRequest) (*models.Note, error)
	MarkChangeNoteAsDone(userID, projectID, updateID, noteID uuid.UUID) error
	MarkChangeNoteAsToDo(userID, projectID, updateID, noteID uuid.UUID) error
	EditChangeNote(userID, projectID, updateID, noteID uuid.UUID, req *NoteRequest) error
	MoveChangeNote(userID, projectID, updateID, noteID uuid.UUID, req *MoveChangeNoteRequest) error
	DeleteChangeNote(userID, projectID, updateID, noteID uuid.UUID) error
}

// NoteServiceInterface defines the interface for personal note operations
type NoteServiceInterface interface {
	GetNotes(userID uuid.UUID, page PageRequest) (*Page[models.Note], error)
	CreateNote(userID uuid.UUID, req *NoteRequest) (*models.Note, error)
	MarkAsDone(userID, noteID uuid.UUID) error
	MarkAsToDo(userID, noteID uuid.UUID) error
	DeleteNote(userID, noteID uuid.UUID) error
}

// GroupServiceInterface defines the interface for group and membership operations
type GroupServiceInterface interface {
	GetGroups(userID uuid.UUID, authoredOnly bool, page PageRequest) (*Page[models.Group], error)
	GetGroup(userID, groupID uuid.UUID) (*models.Group, error)
	CreateGroup(userID uuid.UUID, req *CreateGroupRequest) (*models.Group, error)
	EditGroup(userID, groupID uuid.UUID, req *EditGroupRequest) error
	ChangeLogo(ctx context.Context, userID, groupID uuid.UUID, file *multipart.FileHeader) (string, error)
	AddMembers(userID, groupID uuid.UUID, req *MembersRequest) error
	AcceptInvitation(userID, groupID uuid.UUID, req *InvitationRequest) error
	DeclineInvitation(userID, groupID uuid.UUID, req *InvitationRequest) error
	ChangeMemberRole(userID, groupID uuid.UUID, req *ChangeRoleRequest) error
	RemoveMember(userID, groupID uuid.UUID, req *RemoveMemberRequest) error
	EditProjects(userID, groupID uuid.UUID, req *EditProjectsRequest) error
	LeaveGroup(ctx context.Context, userID, groupID uuid.UUID, req *LeaveGroupRequest) error
	DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error
}

// ChangelogServiceInterface defines the interface for changelog operations
type ChangelogServiceInterface interface {
	GetChangelogs(userID uuid.UUID, page PageRequest) (*Page[ChangelogResponse], error)
	CountUnread(userID uuid.UUID) (int64, error)
	ReadChangelog(userID, changelogID uuid.UUID) error
	DeleteChangelog(userID, changelogID uuid.UUID, groupID *uuid.UUID) error
}

// OverviewServiceInterface defines the interface for the overview statistics
type OverviewServiceInterface interface {
	GetOverview(userID uuid.UUID) (*overview.Overview, error)
}

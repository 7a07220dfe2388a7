package client

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role of a member inside a group
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleMaintainer Role = "MAINTAINER"
	RoleDeveloper  Role = "DEVELOPER"
)

// IsValid reports whether the role is known to the backend
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMaintainer, RoleDeveloper:
		return true
	}
	return false
}

// InvitationStatus tells whether a member accepted the invitation into a group
type InvitationStatus string

const (
	InvitationStatusPending InvitationStatus = "PENDING"
	InvitationStatusJoined  InvitationStatus = "JOINED"
)

// UpdateStatus is the lifecycle stage of an update
type UpdateStatus string

const (
	UpdateStatusScheduled     UpdateStatus = "SCHEDULED"
	UpdateStatusInDevelopment UpdateStatus = "IN_DEVELOPMENT"
	UpdateStatusPublished     UpdateStatus = "PUBLISHED"
)

// RepositoryPlatform hosts the repository of a project
type RepositoryPlatform string

const (
	RepositoryPlatformGithub RepositoryPlatform = "Github"
	RepositoryPlatformGitLab RepositoryPlatform = "GitLab"
)

// ChangelogEvent is the kind of a changelog, e.g. INVITED_GROUP
type ChangelogEvent string

const ChangelogEventInvitedGroup ChangelogEvent = "INVITED_GROUP"

// UpdateEventType is the kind of an entry of the update history, e.g. STARTED
type UpdateEventType string

// User is the public profile of an account
type User struct {
	ID           uuid.UUID `json:"id"`
	CreationDate time.Time `json:"creationDate"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	ProfilePic   string    `json:"profilePic"`
}

type Project struct {
	ID                 uuid.UUID          `json:"id"`
	CreationDate       time.Time          `json:"creationDate"`
	Name               string             `json:"name"`
	ShortDescription   string             `json:"shortDescription"`
	Description        string             `json:"description"`
	Version            string             `json:"version"`
	Icon               string             `json:"icon"`
	Repository         string             `json:"projectRepository"`
	Author             User               `json:"author"`
	Groups             []Group            `json:"groups"`
	Updates            []Update           `json:"updates"`
	LastUpdate         *time.Time         `json:"lastUpdate,omitempty"`
	RepositoryPlatform RepositoryPlatform `json:"repositoryPlatform,omitempty"`
}

// Update is a planned version of a project with its change notes and history.
// Author is nil once the account that scheduled it is deleted.
type Update struct {
	ID            uuid.UUID     `json:"id"`
	CreationDate  time.Time     `json:"creationDate"`
	TargetVersion string        `json:"targetVersion"`
	Status        UpdateStatus  `json:"status"`
	StartDate     *time.Time    `json:"startDate,omitempty"`
	PublishDate   *time.Time    `json:"publishDate,omitempty"`
	Author        *User         `json:"author"`
	StartedBy     *User         `json:"startedBy,omitempty"`
	PublishedBy   *User         `json:"publishedBy,omitempty"`
	ChangeNotes   []Note        `json:"notes"`
	Events        []UpdateEvent `json:"events"`
}

type UpdateEvent struct {
	ID            uuid.UUID       `json:"id"`
	CreationDate  time.Time       `json:"creationDate"`
	Type          UpdateEventType `json:"type"`
	NoteContent   string          `json:"notesChangeContent,omitempty"`
	TargetVersion string          `json:"targetVersion,omitempty"`
	Author        *User           `json:"author"`
}

// Note is either a personal note or a change note of an update
type Note struct {
	ID               uuid.UUID  `json:"id"`
	CreationDate     time.Time  `json:"creationDate"`
	Content          string     `json:"content"`
	MarkedAsDone     bool       `json:"markedAsDone"`
	MarkedAsDoneDate *time.Time `json:"markedAsDoneDate,omitempty"`
	Author           *User      `json:"author"`
	MarkedAsDoneBy   *User      `json:"markedAsDoneBy,omitempty"`
}

type Group struct {
	ID           uuid.UUID `json:"id"`
	CreationDate time.Time `json:"creationDate"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Logo         string    `json:"logo"`
	Author       User      `json:"author"`
	Members      []Member  `json:"members"`
	Projects     []Project `json:"projects,omitempty"`
}

type Member struct {
	ID               uuid.UUID        `json:"id"`
	CreationDate     time.Time        `json:"creationDate"`
	UserID           uuid.UUID        `json:"userId"`
	Role             Role             `json:"role"`
	InvitationStatus InvitationStatus `json:"invitationStatus"`
	User             User             `json:"user"`
}

type Changelog struct {
	ID           uuid.UUID      `json:"id"`
	CreationDate time.Time      `json:"creationDate"`
	Event        ChangelogEvent `json:"changelogEvent"`
	Title        string         `json:"title"`
	GroupID      *uuid.UUID     `json:"groupId,omitempty"`
	ProjectID    *uuid.UUID     `json:"projectId,omitempty"`
	ExtraContent string         `json:"extraContent,omitempty"`
	Red          bool           `json:"red"`
	Group        *Group         `json:"group,omitempty"`
	Project      *Project       `json:"project,omitempty"`
}

// Page is one page of a list. Pages are counted from zero.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"totalElements"`
	IsLastPage bool  `json:"isLastPage"`
}

// RepositoryInfo is the metadata read from the platform hosting a project repository
type RepositoryInfo struct {
	Platform      RepositoryPlatform `json:"platform"`
	URL           string             `json:"url"`
	Name          string             `json:"name,omitempty"`
	FullName      string             `json:"fullName,omitempty"`
	Description   string             `json:"description,omitempty"`
	DefaultBranch string             `json:"defaultBranch,omitempty"`
	Stars         int                `json:"stars"`
	OpenIssues    int                `json:"openIssues"`
	LastPush      *time.Time         `json:"lastPush,omitempty"`
}

// Overview holds the statistics over the projects of a user
type Overview struct {
	TotalProjects   ProjectsStats    `json:"totalProjects"`
	Updates         UpdatesStats     `json:"updatesStats"`
	DevelopmentDays DevelopmentStats `json:"developmentDays"`
	Performance     Performance      `json:"performanceStats"`
}

type ProjectsStats struct {
	Total              int     `json:"total"`
	Personal           int     `json:"personal"`
	PersonalPercentage float64 `json:"personalPercentage"`
	Group              int     `json:"group"`
	GroupPercentage    float64 `json:"groupPercentage"`
}

type StatusStats struct {
	Total          int     `json:"total"`
	Percentage     float64 `json:"percentage"`
	ByMe           int     `json:"byMe"`
	ByMePercentage float64 `json:"byMePercentage"`
}

type UpdatesStats struct {
	Total         int         `json:"total"`
	Scheduled     StatusStats `json:"scheduled"`
	InDevelopment StatusStats `json:"inDevelopment"`
	Published     StatusStats `json:"published"`
}

type DevelopmentStats struct {
	Total   int `json:"total"`
	Average int `json:"average"`
}

type ProjectPerformance struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Updates                int       `json:"updates"`
	DevelopmentDays        int       `json:"developmentDays"`
	AverageDevelopmentTime int       `json:"averageDevelopmentTime"`
}

type Performance struct {
	BestPersonal  *ProjectPerformance `json:"bestPersonal"`
	WorstPersonal *ProjectPerformance `json:"worstPersonal"`
	BestGroup     *ProjectPerformance `json:"bestGroup"`
	WorstGroup    *ProjectPerformance `json:"worstGroup"`
}

// AuthResponse carries the credentials of the authenticated user
type AuthResponse struct {
	ID         uuid.UUID `json:"id"`
	Token      string    `json:"token"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic"`
}

// ValidationError is returned by the request constructors before anything is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

var (
	ErrWrongProjectName       = &ValidationError{Field: "name", Message: "wrong project name"}
	ErrWrongProjectRepository = &ValidationError{Field: "repository", Message: "wrong project repository"}
	ErrWrongRole              = &ValidationError{Field: "role", Message: "wrong role"}
)

// Request bodies. Build them with the New*Request constructors so they are validated
// with the same rules the backend applies.

type SignUpRequest struct {
	ServerSecret string `json:"serverSecret,omitempty"`
	Name         string `json:"name" validate:"user_name"`
	Surname      string `json:"surname" validate:"user_surname"`
	Email        string `json:"email" validate:"user_email"`
	Password     string `json:"password" validate:"password"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"user_email"`
	Password string `json:"password" validate:"password"`
}

type ChangeEmailRequest struct {
	Email string `json:"email" validate:"user_email"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"password"`
}

type ProjectRequest struct {
	Name             string      `json:"name"`
	ShortDescription string      `json:"shortDescription"`
	Description      string      `json:"description"`
	Version          string      `json:"version"`
	Groups           []uuid.UUID `json:"groups"`
	Repository       string      `json:"projectRepository"`
}

type ScheduleUpdateRequest struct {
	TargetVersion string   `json:"targetVersion" validate:"version"`
	Notes         []string `json:"updateChangeNotes" validate:"change_notes"`
}

type NoteRequest struct {
	Content string `json:"contentNote" validate:"note_content"`
}

type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"group_name"`
	Description string   `json:"description" validate:"group_description"`
	Members     []string `json:"members" validate:"members"`
}

type EditGroupRequest struct {
	Description string `json:"description" validate:"group_description"`
}

type MembersRequest struct {
	Members []string `json:"members" validate:"members"`
}

type ChangeRoleRequest struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	Role     Role      `json:"role"`
}

type moveChangeNoteRequest struct {
	DestinationUpdateID uuid.UUID `json:"destinationUpdateId"`
}

type invitationRequest struct {
	ChangelogID uuid.UUID `json:"changelogId"`
}

type removeMemberRequest struct {
	MemberID uuid.UUID `json:"memberId"`
}

type editProjectsRequest struct {
	Projects []uuid.UUID `json:"projects"`
}

type leaveGroupRequest struct {
	NextAdminID *uuid.UUID `json:"nextAdminId,omitempty"`
}

package models

import "strings"

// Role is the privilege tier of a group member, ADMIN being the highest
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleMaintainer Role = "MAINTAINER"
	RoleDeveloper  Role = "DEVELOPER"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMaintainer, RoleDeveloper:
		return true
	}
	return false
}

// InvitationStatus tracks whether an invited member has accepted the invitation
type InvitationStatus string

const (
	InvitationStatusPending InvitationStatus = "PENDING"
	InvitationStatusJoined  InvitationStatus = "JOINED"
)

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusJoined:
		return true
	}
	return false
}

// UpdateStatus is the lifecycle state of a project update
type UpdateStatus string

const (
	UpdateStatusScheduled     UpdateStatus = "SCHEDULED"
	UpdateStatusInDevelopment UpdateStatus = "IN_DEVELOPMENT"
	UpdateStatusPublished     UpdateStatus = "PUBLISHED"
)

// IsValid checks if the UpdateStatus is valid
func (s UpdateStatus) IsValid() bool {
	switch s {
	case UpdateStatusScheduled, UpdateStatusInDevelopment, UpdateStatusPublished:
		return true
	}
	return false
}

// RepositoryPlatform is the hosting platform of a project repository
type RepositoryPlatform string

const (
	RepositoryPlatformGithub RepositoryPlatform = "Github"
	RepositoryPlatformGitLab RepositoryPlatform = "GitLab"
)

// ReachPlatform derives the hosting platform from a repository URL
func ReachPlatform(repositoryURL string) RepositoryPlatform {
	if strings.Contains(strings.ToLower(repositoryURL), "github") {
		return RepositoryPlatformGithub
	}
	return RepositoryPlatformGitLab
}

// ChangelogEvent identifies the domain event a changelog notifies about
type ChangelogEvent string

const (
	ChangelogEventInvitedGroup    ChangelogEvent = "INVITED_GROUP"
	ChangelogEventJoinedGroup     ChangelogEvent = "JOINED_GROUP"
	ChangelogEventRoleChanged     ChangelogEvent = "ROLE_CHANGED"
	ChangelogEventLeftGroup       ChangelogEvent = "LEFT_GROUP"
	ChangelogEventGroupDeleted    ChangelogEvent = "GROUP_DELETED"
	ChangelogEventProjectAdded    ChangelogEvent = "PROJECT_ADDED"
	ChangelogEventProjectRemoved  ChangelogEvent = "PROJECT_REMOVED"
	ChangelogEventUpdateScheduled ChangelogEvent = "UPDATE_SCHEDULED"
	ChangelogEventUpdateStarted   ChangelogEvent = "UPDATE_STARTED"
	ChangelogEventUpdatePublished ChangelogEvent = "UPDATE_PUBLISHED"
	ChangelogEventUpdateDeleted   ChangelogEvent = "UPDATE_DELETED"
)

var changelogEventTitles = map[ChangelogEvent]string{
	ChangelogEventInvitedGroup:    "Invited into a group",
	ChangelogEventJoinedGroup:     "Joined in a group",
	ChangelogEventRoleChanged:     "Role changed",
	ChangelogEventLeftGroup:       "Left a group",
	ChangelogEventGroupDeleted:    "Group deleted",
	ChangelogEventProjectAdded:    "Project added",
	ChangelogEventProjectRemoved:  "Project removed",
	ChangelogEventUpdateScheduled: "Update scheduled",
	ChangelogEventUpdateStarted:   "Update started",
	ChangelogEventUpdatePublished: "Update published",
	ChangelogEventUpdateDeleted:   "Update deleted",
}

// Title returns the human readable title of the event
func (e ChangelogEvent) Title() string {
	return changelogEventTitles[e]
}

// IsValid checks if the ChangelogEvent is valid
func (e ChangelogEvent) IsValid() bool {
	_, ok := changelogEventTitles[e]
	return ok
}

// UpdateEventType identifies an entry in the history of a project update
type UpdateEventType string

const (
	UpdateEventScheduled           UpdateEventType = "SCHEDULED"
	UpdateEventStarted             UpdateEventType = "STARTED"
	UpdateEventChangeNoteAdded     UpdateEventType = "CHANGENOTE_ADDED"
	UpdateEventChangeNoteDone      UpdateEventType = "CHANGENOTE_DONE"
	UpdateEventChangeNoteUndone    UpdateEventType = "CHANGENOTE_UNDONE"
	UpdateEventChangeNoteEdited    UpdateEventType = "CHANGENOTE_EDITED"
	UpdateEventChangeNoteMovedTo   UpdateEventType = "CHANGENOTE_MOVED_TO"
	UpdateEventChangeNoteMovedFrom UpdateEventType = "CHANGENOTE_MOVED_FROM"
	UpdateEventChangeNoteRemoved   UpdateEventType = "CHANGENOTE_REMOVED"
	UpdateEventPublished           UpdateEventType = "PUBLISHED"
)

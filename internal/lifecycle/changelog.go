package lifecycle

import (
	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
)

// MarkRead flags the changelog as read. It returns false when it was already read.
func MarkRead(changelog *models.Changelog) bool {
	if changelog.Red {
		return false
	}
	changelog.Red = true
	return true
}

// IsInvitationFor reports whether deleting the changelog declines an invitation to the group
func IsInvitationFor(changelog *models.Changelog, groupID uuid.UUID) bool {
	return changelog.Event == models.ChangelogEventInvitedGroup &&
		changelog.GroupID != nil && *changelog.GroupID == groupID
}

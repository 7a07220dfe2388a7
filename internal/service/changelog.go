package service

import (
	"errors"
	"fmt"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/lifecycle"
	"pandoro-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangelogService handles the changelogs received by a user
type ChangelogService struct {
	repo       repository.ChangelogRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
}

// NewChangelogService creates a new changelog service
func NewChangelogService(repo repository.ChangelogRepositoryInterface, memberRepo repository.MemberRepositoryInterface) *ChangelogService {
	return &ChangelogService{repo: repo, memberRepo: memberRepo}
}

// ChangelogResponse is a changelog together with the title of its event
type ChangelogResponse struct {
	models.Changelog
	Title string `json:"title" example:"Invited into a group"`
}

// GetChangelogs returns a page of the changelogs of the user, newest first
func (s *ChangelogService) GetChangelogs(userID uuid.UUID, page PageRequest) (*Page[ChangelogResponse], error) {
	changelogs, total, err := s.repo.GetByOwner(userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get changelogs: %w", err)
	}

	responses := make([]ChangelogResponse, 0, len(changelogs))
	for i := range changelogs {
		responses = append(responses, ChangelogResponse{
			Changelog: changelogs[i],
			Title:     changelogs[i].Title(),
		})
	}
	return NewPage(responses, page, total), nil
}

// CountUnread returns the number of changelogs the user has not read yet
func (s *ChangelogService) CountUnread(userID uuid.UUID) (int64, error) {
	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread changelogs: %w", err)
	}
	return unread, nil
}

func (s *ChangelogService) owned(userID, changelogID uuid.UUID) (*models.Changelog, error) {
	changelog, err := s.repo.GetByID(changelogID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrChangelogNotFound, "changelog")
	}
	if changelog.OwnerID != userID {
		return nil, apperrors.ErrChangelogNotFound
	}
	return changelog, nil
}

// ReadChangelog marks a changelog as read. Reading it again changes nothing.
func (s *ChangelogService) ReadChangelog(userID, changelogID uuid.UUID) error {
	changelog, err := s.owned(userID, changelogID)
	if err != nil {
		return err
	}
	if !lifecycle.MarkRead(changelog) {
		return nil
	}
	if err := s.repo.MarkRead(changelog.ID); err != nil {
		return fmt.Errorf("failed to read changelog: %w", err)
	}
	return nil
}

// DeleteChangelog deletes a changelog. With a group, the changelog must be the invitation
// to that group and deleting it declines the invitation.
func (s *ChangelogService) DeleteChangelog(userID, changelogID uuid.UUID, groupID *uuid.UUID) error {
	changelog, err := s.owned(userID, changelogID)
	if err != nil {
		return err
	}

	if groupID != nil {
		if !lifecycle.IsInvitationFor(changelog, *groupID) {
			return apperrors.ErrNotInvitationChangelog
		}
		member, err := s.memberRepo.GetByGroupAndUser(*groupID, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get member: %w", err)
		}
		if member != nil && !member.IsJoined() {
			if err := s.memberRepo.Decline(member, changelog.ID); err != nil {
				return fmt.Errorf("failed to decline invitation: %w", err)
			}
			return nil
		}
	}

	if err := s.repo.Delete(changelog.ID); err != nil {
		return fmt.Errorf("failed to delete changelog: %w", err)
	}
	return nil
}

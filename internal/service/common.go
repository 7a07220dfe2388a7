package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validationError reports the first failing field of a request
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := fieldErrors[0].Field()
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError(field, "wrong "+field))
	}
	return fmt.Errorf("validation failed: %w", err)
}

// lookupError maps a missing record to the given not found error
func lookupError(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// storeError wraps a failed write. Lifecycle conflicts found under lock pass unchanged.
func storeError(err error, action string) error {
	if apperrors.IsConflict(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// canAccessProject reports whether the user authored the project or joined one of its groups
func canAccessProject(project *models.Project, userID uuid.UUID) bool {
	if project.AuthorID == userID {
		return true
	}
	for i := range project.Groups {
		if project.Groups[i].HasJoined(userID) {
			return true
		}
	}
	return false
}

// projectAudience returns the joined members of every group of the project, once each
func projectAudience(project *models.Project, exclude ...uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for i := range project.Groups {
		ids = append(ids, project.Groups[i].JoinedMemberIDs(exclude...)...)
	}
	return uniqueIDs(ids)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// changelogNotifier fans a changelog event out to its recipients
type changelogNotifier struct {
	repo repository.ChangelogRepositoryInterface
}

// notify stores one copy of the changelog per owner
func (n changelogNotifier) notify(owners []uuid.UUID, changelog models.Changelog) error {
	if len(owners) == 0 {
		return nil
	}
	changelogs := make([]models.Changelog, 0, len(owners))
	for _, owner := range owners {
		entry := changelog
		entry.OwnerID = owner
		changelogs = append(changelogs, entry)
	}
	if err := n.repo.CreateBatch(changelogs); err != nil {
		return fmt.Errorf("failed to send %s changelogs: %w", changelog.Event, err)
	}
	return nil
}

func groupChangelog(event models.ChangelogEvent, groupID uuid.UUID, extra string) models.Changelog {
	return models.Changelog{Event: event, GroupID: &groupID, ExtraContent: extra}
}

func projectChangelog(event models.ChangelogEvent, projectID uuid.UUID, extra string) models.Changelog {
	return models.Changelog{Event: event, ProjectID: &projectID, ExtraContent: extra}
}

// imageKey builds the storage key of an uploaded image, keeping its extension
func imageKey(folder string, id uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s-%d%s", folder, id, time.Now().UnixNano(), ext)
}

func isImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

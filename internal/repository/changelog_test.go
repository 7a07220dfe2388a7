//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"pandoro-backend/internal/database/models"
	"pandoro-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangelogRepository(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		users := NewUserRepository(s.DB)
		groups := NewGroupRepository(s.DB)
		repo := NewChangelogRepository(s.DB)

		owner := s.Factories.User.Create()
		require.NoError(t, users.Create(owner))
		group := s.Factories.Group.Create(owner.ID)
		require.NoError(t, groups.Create(group))

		older := s.Factories.Changelog.Create(owner.ID, models.ChangelogEventJoinedGroup)
		older.GroupID = &group.ID
		older.CreatedAt = time.Now().Add(-time.Hour)
		invitation := s.Factories.Changelog.Create(owner.ID, models.ChangelogEventInvitedGroup)
		invitation.GroupID = &group.ID
		require.NoError(t, repo.CreateBatch([]models.Changelog{*older, *invitation}))
		require.NoError(t, repo.CreateBatch(nil))

		t.Run("newest first with the group preloaded", func(t *testing.T) {
			changelogs, total, err := repo.GetByOwner(owner.ID, 10, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(2), total)
			require.Len(t, changelogs, 2)
			assert.Equal(t, invitation.ID, changelogs[0].ID)
			assert.Equal(t, older.ID, changelogs[1].ID)
			require.NotNil(t, changelogs[0].Group)
			assert.Equal(t, group.Name, changelogs[0].Group.Name)
		})

		t.Run("second page", func(t *testing.T) {
			changelogs, total, err := repo.GetByOwner(owner.ID, 1, 1)
			require.NoError(t, err)
			assert.Equal(t, int64(2), total)
			require.Len(t, changelogs, 1)
			assert.Equal(t, older.ID, changelogs[0].ID)
		})

		t.Run("mark read", func(t *testing.T) {
			unread, err := repo.CountUnread(owner.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(2), unread)

			require.NoError(t, repo.MarkRead(older.ID))
			changelog, err := repo.GetByID(older.ID)
			require.NoError(t, err)
			assert.True(t, changelog.Red)

			unread, err = repo.CountUnread(owner.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), unread)
		})

		t.Run("delete invitations keeps other events", func(t *testing.T) {
			require.NoError(t, repo.DeleteInvitations(group.ID))
			changelogs, _, err := repo.GetByOwner(owner.ID, 10, 0)
			require.NoError(t, err)
			require.Len(t, changelogs, 1)
			assert.Equal(t, models.ChangelogEventJoinedGroup, changelogs[0].Event)
		})

		t.Run("delete", func(t *testing.T) {
			require.NoError(t, repo.Delete(older.ID))
			_, err := repo.GetByID(older.ID)
			assert.Error(t, err)
		})
	})
}

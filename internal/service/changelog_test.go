package service_test

import (
	"testing"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/mocks"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ChangelogServiceTestSuite defines the test suite for ChangelogService
type ChangelogServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockChangelogRepositoryInterface
	mockMemberRepo   *mocks.MockMemberRepositoryInterface
	changelogService *service.ChangelogService
	factories        *testutils.FactorySet
	owner            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ChangelogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockChangelogRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.changelogService = service.NewChangelogService(suite.mockRepo, suite.mockMemberRepo)
	suite.factories = testutils.NewFactorySet()
	suite.owner = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ChangelogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChangelogServiceTestSuite) invitation(groupID uuid.UUID) *models.Changelog {
	changelog := suite.factories.Changelog.Create(suite.owner, models.ChangelogEventInvitedGroup)
	changelog.GroupID = &groupID
	return changelog
}

// TestGetChangelogs tests that every changelog carries its title
func (suite *ChangelogServiceTestSuite) TestGetChangelogs() {
	changelogs := []models.Changelog{
		*suite.factories.Changelog.Create(suite.owner, models.ChangelogEventInvitedGroup),
		*suite.factories.Changelog.Create(suite.owner, models.ChangelogEventUpdatePublished),
	}
	suite.mockRepo.EXPECT().GetByOwner(suite.owner, 2, 2).Return(changelogs, int64(5), nil)

	page, err := suite.changelogService.GetChangelogs(suite.owner, service.PageRequest{Page: 1, PageSize: 2})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), page.Data, 2)
	assert.Equal(suite.T(), int64(5), page.Total)
	assert.False(suite.T(), page.IsLastPage)
	for i, response := range page.Data {
		assert.Equal(suite.T(), changelogs[i].ID, response.ID)
		assert.Equal(suite.T(), changelogs[i].Event.Title(), response.Title)
		assert.NotEmpty(suite.T(), response.Title)
	}
}

// TestCountUnread tests counting the changelogs not read yet
func (suite *ChangelogServiceTestSuite) TestCountUnread() {
	suite.mockRepo.EXPECT().CountUnread(suite.owner).Return(int64(3), nil)

	unread, err := suite.changelogService.CountUnread(suite.owner)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), unread)
}

// TestReadChangelog tests that reading twice stores the flag once
func (suite *ChangelogServiceTestSuite) TestReadChangelog() {
	changelog := suite.factories.Changelog.Create(suite.owner, models.ChangelogEventJoinedGroup)
	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil).Times(2)
	suite.mockRepo.EXPECT().MarkRead(changelog.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.changelogService.ReadChangelog(suite.owner, changelog.ID))
	assert.True(suite.T(), changelog.Red)
	assert.NoError(suite.T(), suite.changelogService.ReadChangelog(suite.owner, changelog.ID))
}

// TestChangelogOfAnotherUser tests that changelogs of other users look missing
func (suite *ChangelogServiceTestSuite) TestChangelogOfAnotherUser() {
	changelog := suite.factories.Changelog.Create(uuid.New(), models.ChangelogEventJoinedGroup)
	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil)

	err := suite.changelogService.ReadChangelog(suite.owner, changelog.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrChangelogNotFound)
}

// TestDeleteMissingChangelog tests the mapping of missing changelogs
func (suite *ChangelogServiceTestSuite) TestDeleteMissingChangelog() {
	changelogID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(changelogID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.changelogService.DeleteChangelog(suite.owner, changelogID, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrChangelogNotFound)
}

// TestDeleteChangelog tests deleting a plain changelog
func (suite *ChangelogServiceTestSuite) TestDeleteChangelog() {
	changelog := suite.factories.Changelog.Create(suite.owner, models.ChangelogEventRoleChanged)
	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil)
	suite.mockRepo.EXPECT().Delete(changelog.ID).Return(nil)

	err := suite.changelogService.DeleteChangelog(suite.owner, changelog.ID, nil)

	assert.NoError(suite.T(), err)
}

// TestDeleteInvitationDeclines tests that deleting a pending invitation declines it
func (suite *ChangelogServiceTestSuite) TestDeleteInvitationDeclines() {
	groupID := uuid.New()
	changelog := suite.invitation(groupID)
	member := suite.factories.Group.Member(groupID, suite.owner, models.RoleDeveloper, models.InvitationStatusPending)

	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil)
	suite.mockMemberRepo.EXPECT().GetByGroupAndUser(groupID, suite.owner).Return(&member, nil)
	suite.mockMemberRepo.EXPECT().Decline(&member, changelog.ID).Return(nil)

	err := suite.changelogService.DeleteChangelog(suite.owner, changelog.ID, &groupID)

	assert.NoError(suite.T(), err)
}

// TestDeleteInvitationAlreadyJoined tests deleting an invitation that was accepted
func (suite *ChangelogServiceTestSuite) TestDeleteInvitationAlreadyJoined() {
	groupID := uuid.New()
	changelog := suite.invitation(groupID)
	member := suite.factories.Group.Member(groupID, suite.owner, models.RoleDeveloper, models.InvitationStatusJoined)

	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil)
	suite.mockMemberRepo.EXPECT().GetByGroupAndUser(groupID, suite.owner).Return(&member, nil)
	suite.mockRepo.EXPECT().Delete(changelog.ID).Return(nil)

	err := suite.changelogService.DeleteChangelog(suite.owner, changelog.ID, &groupID)

	assert.NoError(suite.T(), err)
}

// TestDeleteInvitationOfAnotherGroup tests the group check
func (suite *ChangelogServiceTestSuite) TestDeleteInvitationOfAnotherGroup() {
	changelog := suite.invitation(uuid.New())
	otherGroup := uuid.New()
	suite.mockRepo.EXPECT().GetByID(changelog.ID).Return(changelog, nil)

	err := suite.changelogService.DeleteChangelog(suite.owner, changelog.ID, &otherGroup)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotInvitationChangelog)
}

// TestChangelogServiceTestSuite runs the test suite
func TestChangelogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChangelogServiceTestSuite))
}

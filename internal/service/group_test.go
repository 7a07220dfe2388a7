package service_test

import (
	"context"
	"testing"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/mocks"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/testutils"
	"pandoro-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GroupServiceTestSuite defines the test suite for GroupService
type GroupServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockGroupRepositoryInterface
	mockMemberRepo    *mocks.MockMemberRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockProjectRepo   *mocks.MockProjectRepositoryInterface
	mockChangelogRepo *mocks.MockChangelogRepositoryInterface
	groupService      *service.GroupService
	factories         *testutils.FactorySet

	admin uuid.UUID
	group *models.Group
}

// SetupTest sets up the test suite
func (suite *GroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockChangelogRepo = mocks.NewMockChangelogRepositoryInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.groupService = service.NewGroupService(
		suite.mockRepo,
		suite.mockMemberRepo,
		suite.mockUserRepo,
		suite.mockProjectRepo,
		suite.mockChangelogRepo,
		nil,
		0,
		validation.New(),
	)

	suite.admin = uuid.New()
	suite.group = suite.factories.Group.Create(suite.admin)
}

// TearDownTest cleans up after each test
func (suite *GroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupServiceTestSuite) addMember(role models.Role, status models.InvitationStatus) uuid.UUID {
	userID := uuid.New()
	suite.group.Members = append(suite.group.Members, suite.factories.Group.Member(suite.group.ID, userID, role, status))
	return userID
}

func (suite *GroupServiceTestSuite) expectGroup() {
	suite.mockRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil)
}

// expectChangelogs captures the next batch of changelogs
func (suite *GroupServiceTestSuite) expectChangelogs(sent *[]models.Changelog) {
	suite.mockChangelogRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(changelogs []models.Changelog) error {
			*sent = changelogs
			return nil
		}).
		Times(1)
}

// TestGetGroupsAuthoredOnly tests that the authored filter reaches the repository
func (suite *GroupServiceTestSuite) TestGetGroupsAuthoredOnly() {
	suite.mockRepo.EXPECT().List(suite.admin, true, 10, 0).Return([]models.Group{*suite.group}, int64(1), nil)

	page, err := suite.groupService.GetGroups(suite.admin, true, service.PageRequest{PageSize: 10})

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), page.Data, 1) {
		assert.Equal(suite.T(), suite.group.ID, page.Data[0].ID)
	}
}

// TestLeaveGroupAsOnlyAdmin follows the sole ADMIN leaving a group with a developer
func (suite *GroupServiceTestSuite) TestLeaveGroupAsOnlyAdmin() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)

	suite.expectGroup()
	err := suite.groupService.LeaveGroup(context.Background(), suite.admin, suite.group.ID, &service.LeaveGroupRequest{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidNextAdmin)

	suite.expectGroup()
	suite.mockRepo.EXPECT().
		HandOver(suite.group, gomock.Any(), gomock.Any()).
		DoAndReturn(func(group *models.Group, leaving, successor *models.GroupMember) error {
			assert.Equal(suite.T(), suite.admin, leaving.UserID)
			if assert.NotNil(suite.T(), successor) {
				assert.Equal(suite.T(), developer, successor.UserID)
			}
			return nil
		}).
		Times(1)
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err = suite.groupService.LeaveGroup(context.Background(), suite.admin, suite.group.ID, &service.LeaveGroupRequest{NextAdminID: &developer})
	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), sent, 1) {
		assert.Equal(suite.T(), models.ChangelogEventLeftGroup, sent[0].Event)
		assert.Equal(suite.T(), suite.admin, sent[0].OwnerID)
	}
}

// TestLeaveGroupRejectsPendingSuccessor tests that an invited member cannot become ADMIN
func (suite *GroupServiceTestSuite) TestLeaveGroupRejectsPendingSuccessor() {
	suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)
	pending := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)

	suite.expectGroup()
	err := suite.groupService.LeaveGroup(context.Background(), suite.admin, suite.group.ID, &service.LeaveGroupRequest{NextAdminID: &pending})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidNextAdmin)
}

// TestLeaveGroupAsLastMember tests that the last member deletes the group
func (suite *GroupServiceTestSuite) TestLeaveGroupAsLastMember() {
	suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)

	suite.expectGroup()
	suite.mockRepo.EXPECT().Delete(suite.group.ID).Return(nil).Times(1)

	err := suite.groupService.LeaveGroup(context.Background(), suite.admin, suite.group.ID, &service.LeaveGroupRequest{})

	assert.NoError(suite.T(), err)
}

// TestLeaveGroupAsDeveloper tests that a developer leaves without a successor
func (suite *GroupServiceTestSuite) TestLeaveGroupAsDeveloper() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)

	suite.expectGroup()
	suite.mockRepo.EXPECT().
		HandOver(suite.group, gomock.Any(), nil).
		Return(nil).
		Times(1)
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err := suite.groupService.LeaveGroup(context.Background(), developer, suite.group.ID, &service.LeaveGroupRequest{})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sent, 1)
}

// TestLeaveGroupNotMember tests leaving a group the user never joined
func (suite *GroupServiceTestSuite) TestLeaveGroupNotMember() {
	suite.expectGroup()

	err := suite.groupService.LeaveGroup(context.Background(), uuid.New(), suite.group.ID, &service.LeaveGroupRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberNotFound)
}

// TestCreateGroup tests that registered members are invited and unknown emails skipped
func (suite *GroupServiceTestSuite) TestCreateGroup() {
	invitee := suite.factories.User.WithEmail("jane.doe@pandoro.dev")
	req := &service.CreateGroupRequest{
		Name:        "Tecknobit",
		Description: "Open source projects",
		Members:     []string{"jane.doe@pandoro.dev", "ghost@pandoro.dev"},
	}

	suite.mockRepo.EXPECT().GetByAuthorAndName(suite.admin, req.Name).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmails(req.Members).Return([]models.User{*invitee}, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(group *models.Group) error {
			assert.Len(suite.T(), group.Members, 2)
			assert.True(suite.T(), group.IsAdmin(suite.admin))
			pending := group.Member(invitee.ID)
			if assert.NotNil(suite.T(), pending) {
				assert.Equal(suite.T(), models.RoleDeveloper, pending.Role)
				assert.False(suite.T(), pending.IsJoined())
			}
			return nil
		}).
		Times(1)
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	group, err := suite.groupService.CreateGroup(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.admin, group.AuthorID)
	if assert.Len(suite.T(), sent, 1) {
		assert.Equal(suite.T(), models.ChangelogEventInvitedGroup, sent[0].Event)
		assert.Equal(suite.T(), invitee.ID, sent[0].OwnerID)
		assert.Equal(suite.T(), req.Name, sent[0].ExtraContent)
		assert.Equal(suite.T(), group.ID, *sent[0].GroupID)
	}
}

// TestCreateGroupNameTaken tests creating a group with the name of another group of the author
func (suite *GroupServiceTestSuite) TestCreateGroupNameTaken() {
	req := &service.CreateGroupRequest{
		Name:        "Tecknobit",
		Description: "Open source projects",
		Members:     []string{"jane.doe@pandoro.dev"},
	}
	suite.mockRepo.EXPECT().GetByAuthorAndName(suite.admin, req.Name).Return(suite.group, nil)

	group, err := suite.groupService.CreateGroup(suite.admin, req)

	assert.Nil(suite.T(), group)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupExists)
}

// TestCreateGroupValidation tests the request rules
func (suite *GroupServiceTestSuite) TestCreateGroupValidation() {
	testCases := []struct {
		name    string
		request *service.CreateGroupRequest
	}{
		{"empty name", &service.CreateGroupRequest{Description: "desc", Members: []string{"a@pandoro.dev"}}},
		{"name too long", &service.CreateGroupRequest{Name: "abcdefghijklmnopqrstuvwxyz", Description: "desc", Members: []string{"a@pandoro.dev"}}},
		{"no members", &service.CreateGroupRequest{Name: "Tecknobit", Description: "desc"}},
		{"malformed member", &service.CreateGroupRequest{Name: "Tecknobit", Description: "desc", Members: []string{"not-an-email"}}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.groupService.CreateGroup(suite.admin, tc.request)
			assert.True(suite.T(), apperrors.IsValidation(err))
		})
	}
}

// TestAddMembersSkipsExistingMembers tests that only new users are invited
func (suite *GroupServiceTestSuite) TestAddMembersSkipsExistingMembers() {
	existing := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)
	newcomer := suite.factories.User.Create()
	req := &service.MembersRequest{Members: []string{"a@pandoro.dev", "b@pandoro.dev"}}

	suite.expectGroup()
	suite.mockUserRepo.EXPECT().
		GetByEmails(req.Members).
		Return([]models.User{{BaseModel: models.BaseModel{ID: existing}}, *newcomer}, nil)
	suite.mockMemberRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(members []models.GroupMember) error {
			if assert.Len(suite.T(), members, 1) {
				assert.Equal(suite.T(), newcomer.ID, members[0].UserID)
				assert.Equal(suite.T(), models.InvitationStatusPending, members[0].InvitationStatus)
			}
			return nil
		})
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err := suite.groupService.AddMembers(suite.admin, suite.group.ID, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), sent, 1)
}

// TestAddMembersRequiresManager tests that developers cannot invite
func (suite *GroupServiceTestSuite) TestAddMembersRequiresManager() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)
	suite.expectGroup()

	err := suite.groupService.AddMembers(developer, suite.group.ID, &service.MembersRequest{Members: []string{"a@pandoro.dev"}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotGroupManager)
}

// TestAcceptInvitation tests joining a group through its invitation
func (suite *GroupServiceTestSuite) TestAcceptInvitation() {
	invitee := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)
	invitation := suite.factories.Changelog.Create(invitee, models.ChangelogEventInvitedGroup)
	invitation.GroupID = &suite.group.ID

	suite.mockChangelogRepo.EXPECT().GetByID(invitation.ID).Return(invitation, nil)
	suite.expectGroup()
	suite.mockMemberRepo.EXPECT().
		Accept(gomock.Any(), invitation.ID).
		DoAndReturn(func(member *models.GroupMember, _ uuid.UUID) error {
			assert.Equal(suite.T(), invitee, member.UserID)
			member.InvitationStatus = models.InvitationStatusJoined
			return nil
		})
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err := suite.groupService.AcceptInvitation(invitee, suite.group.ID, &service.InvitationRequest{ChangelogID: invitation.ID})

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), sent, 1) {
		assert.Equal(suite.T(), models.ChangelogEventJoinedGroup, sent[0].Event)
		assert.Equal(suite.T(), suite.admin, sent[0].OwnerID)
	}
}

// TestAcceptInvitationOfAnotherUser tests that invitations cannot be used by other users
func (suite *GroupServiceTestSuite) TestAcceptInvitationOfAnotherUser() {
	invitee := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)
	invitation := suite.factories.Changelog.Create(invitee, models.ChangelogEventInvitedGroup)
	invitation.GroupID = &suite.group.ID

	suite.mockChangelogRepo.EXPECT().GetByID(invitation.ID).Return(invitation, nil)

	err := suite.groupService.AcceptInvitation(uuid.New(), suite.group.ID, &service.InvitationRequest{ChangelogID: invitation.ID})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotInvitationChangelog)
}

// TestDeclineInvitation tests dropping a pending membership
func (suite *GroupServiceTestSuite) TestDeclineInvitation() {
	invitee := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)
	invitation := suite.factories.Changelog.Create(invitee, models.ChangelogEventInvitedGroup)
	invitation.GroupID = &suite.group.ID

	suite.mockChangelogRepo.EXPECT().GetByID(invitation.ID).Return(invitation, nil)
	suite.expectGroup()
	suite.mockMemberRepo.EXPECT().Decline(gomock.Any(), invitation.ID).Return(nil).Times(1)

	err := suite.groupService.DeclineInvitation(invitee, suite.group.ID, &service.InvitationRequest{ChangelogID: invitation.ID})

	assert.NoError(suite.T(), err)
}

// TestChangeMemberRole tests the role rules between ADMINs, MAINTAINERs and DEVELOPERs
func (suite *GroupServiceTestSuite) TestChangeMemberRole() {
	maintainer := suite.addMember(models.RoleMaintainer, models.InvitationStatusJoined)
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)
	pending := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)

	testCases := []struct {
		name     string
		caller   uuid.UUID
		request  service.ChangeRoleRequest
		expected error
	}{
		{"on self", maintainer, service.ChangeRoleRequest{MemberID: maintainer, Role: models.RoleDeveloper}, apperrors.ErrActionOnSelf},
		{"on the author", maintainer, service.ChangeRoleRequest{MemberID: suite.admin, Role: models.RoleDeveloper}, apperrors.ErrNotAuthorized},
		{"maintainer grants admin", maintainer, service.ChangeRoleRequest{MemberID: developer, Role: models.RoleAdmin}, apperrors.ErrNotGroupAdmin},
		{"developer caller", developer, service.ChangeRoleRequest{MemberID: maintainer, Role: models.RoleDeveloper}, apperrors.ErrNotGroupManager},
		{"pending target", suite.admin, service.ChangeRoleRequest{MemberID: pending, Role: models.RoleMaintainer}, apperrors.ErrMemberNotJoined},
		{"unknown role", suite.admin, service.ChangeRoleRequest{MemberID: developer, Role: "OWNER"}, apperrors.ErrWrongRole},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().GetByID(suite.group.ID).Return(suite.group, nil).MaxTimes(1)
			err := suite.groupService.ChangeMemberRole(tc.caller, suite.group.ID, &tc.request)
			assert.ErrorIs(suite.T(), err, tc.expected)
		})
	}
}

// TestChangeMemberRoleNotifiesTarget tests a successful promotion
func (suite *GroupServiceTestSuite) TestChangeMemberRoleNotifiesTarget() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)

	suite.expectGroup()
	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(member *models.GroupMember) error {
			assert.Equal(suite.T(), models.RoleMaintainer, member.Role)
			return nil
		})
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err := suite.groupService.ChangeMemberRole(suite.admin, suite.group.ID, &service.ChangeRoleRequest{MemberID: developer, Role: models.RoleMaintainer})

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), sent, 1) {
		assert.Equal(suite.T(), models.ChangelogEventRoleChanged, sent[0].Event)
		assert.Equal(suite.T(), developer, sent[0].OwnerID)
		assert.Equal(suite.T(), "MAINTAINER", sent[0].ExtraContent)
	}
}

// TestRemovePendingMember tests that invited members can be removed
func (suite *GroupServiceTestSuite) TestRemovePendingMember() {
	pending := suite.addMember(models.RoleDeveloper, models.InvitationStatusPending)
	memberID := suite.group.Member(pending).ID

	suite.expectGroup()
	suite.mockMemberRepo.EXPECT().Delete(memberID).Return(nil).Times(1)

	err := suite.groupService.RemoveMember(suite.admin, suite.group.ID, &service.RemoveMemberRequest{MemberID: pending})

	assert.NoError(suite.T(), err)
}

// TestEditProjects tests sharing the caller projects with the group
func (suite *GroupServiceTestSuite) TestEditProjects() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)
	kept := *suite.factories.Project.WithAuthor(suite.admin)
	removed := *suite.factories.Project.WithAuthor(suite.admin)
	foreign := *suite.factories.Project.WithAuthor(developer)
	added := *suite.factories.Project.WithAuthor(suite.admin)
	suite.group.Projects = []models.Project{kept, removed, foreign}

	suite.expectGroup()
	suite.mockProjectRepo.EXPECT().GetByIDs([]uuid.UUID{kept.ID, added.ID}).Return([]models.Project{kept, added}, nil)
	suite.mockRepo.EXPECT().
		ReplaceProjects(suite.group, gomock.Any()).
		DoAndReturn(func(_ *models.Group, projects []models.Project) error {
			ids := make([]uuid.UUID, 0, len(projects))
			for _, project := range projects {
				ids = append(ids, project.ID)
			}
			assert.ElementsMatch(suite.T(), []uuid.UUID{kept.ID, added.ID, foreign.ID}, ids)
			return nil
		})
	var events []models.ChangelogEvent
	suite.mockChangelogRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(changelogs []models.Changelog) error {
			events = append(events, changelogs[0].Event)
			return nil
		}).
		Times(2)

	err := suite.groupService.EditProjects(suite.admin, suite.group.ID, &service.EditProjectsRequest{Projects: []uuid.UUID{kept.ID, added.ID}})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.ChangelogEvent{models.ChangelogEventProjectRemoved, models.ChangelogEventProjectAdded}, events)
}

// TestEditProjectsRejectsForeignProjects tests sharing a project of another user
func (suite *GroupServiceTestSuite) TestEditProjectsRejectsForeignProjects() {
	foreign := *suite.factories.Project.Create()

	suite.expectGroup()
	suite.mockProjectRepo.EXPECT().GetByIDs([]uuid.UUID{foreign.ID}).Return([]models.Project{foreign}, nil)

	err := suite.groupService.EditProjects(suite.admin, suite.group.ID, &service.EditProjectsRequest{Projects: []uuid.UUID{foreign.ID}})

	assert.ErrorIs(suite.T(), err, apperrors.ErrWrongProjectsList)
}

// TestDeleteGroup tests that the other members are told the group name
func (suite *GroupServiceTestSuite) TestDeleteGroup() {
	developer := suite.addMember(models.RoleDeveloper, models.InvitationStatusJoined)

	suite.expectGroup()
	suite.mockRepo.EXPECT().Delete(suite.group.ID).Return(nil).Times(1)
	var sent []models.Changelog
	suite.expectChangelogs(&sent)

	err := suite.groupService.DeleteGroup(context.Background(), suite.admin, suite.group.ID)

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), sent, 1) {
		assert.Equal(suite.T(), models.ChangelogEventGroupDeleted, sent[0].Event)
		assert.Equal(suite.T(), developer, sent[0].OwnerID)
		assert.Equal(suite.T(), suite.group.Name, sent[0].ExtraContent)
		assert.Nil(suite.T(), sent[0].GroupID)
	}
}

// TestDeleteGroupRequiresAdmin tests deleting the group as a maintainer
func (suite *GroupServiceTestSuite) TestDeleteGroupRequiresAdmin() {
	maintainer := suite.addMember(models.RoleMaintainer, models.InvitationStatusJoined)
	suite.expectGroup()

	err := suite.groupService.DeleteGroup(context.Background(), maintainer, suite.group.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotGroupAdmin)
}

// TestGetGroupNotFound tests the mapping of missing groups
func (suite *GroupServiceTestSuite) TestGetGroupNotFound() {
	groupID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(groupID).Return(nil, gorm.ErrRecordNotFound)

	group, err := suite.groupService.GetGroup(suite.admin, groupID)

	assert.Nil(suite.T(), group)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

// TestGroupServiceTestSuite runs the test suite
func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}

//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"pandoro-backend/internal/database/models"
	"pandoro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the group, member and changelog repositories
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	members       *MemberRepository
	changelogs    *ChangelogRepository
	users         *UserRepository
	projects      *ProjectRepository
	factories     *testutils.FactorySet

	admin     *models.User
	developer *models.User
	group     *models.Group
}

// SetupSuite runs before all tests in the suite
func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewGroupRepository(db)
	suite.members = NewMemberRepository(db)
	suite.changelogs = NewChangelogRepository(db)
	suite.users = NewUserRepository(db)
	suite.projects = NewProjectRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a group with a joined ADMIN and a joined DEVELOPER
func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.admin = suite.factories.User.Create()
	suite.developer = suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(suite.admin))
	suite.Require().NoError(suite.users.Create(suite.developer))

	suite.group = suite.factories.Group.Create(suite.admin.ID)
	suite.group.Members = append(suite.group.Members,
		suite.factories.Group.Member(suite.group.ID, suite.developer.ID, models.RoleDeveloper, models.InvitationStatusJoined))
	suite.Require().NoError(suite.repo.Create(suite.group))
}

// TearDownTest runs after each test
func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GroupRepositoryTestSuite) invite() (*models.User, *models.Changelog) {
	invited := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(invited))
	member := suite.factories.Group.Member(suite.group.ID, invited.ID, models.RoleDeveloper, models.InvitationStatusPending)
	suite.Require().NoError(suite.members.CreateBatch([]models.GroupMember{member}))

	invitation := suite.factories.Changelog.Create(invited.ID, models.ChangelogEventInvitedGroup)
	invitation.GroupID = &suite.group.ID
	suite.Require().NoError(suite.changelogs.CreateBatch([]models.Changelog{*invitation}))
	return invited, invitation
}

func (suite *GroupRepositoryTestSuite) TestGetByID() {
	found, err := suite.repo.GetByID(suite.group.ID)
	suite.NoError(err)
	suite.Equal(suite.admin.ID, found.Author.ID)
	suite.Require().Len(found.Members, 2)
	suite.Equal(suite.admin.Email, found.Members[0].User.Email)
	suite.True(found.IsAdmin(suite.admin.ID))
}

func (suite *GroupRepositoryTestSuite) TestGetByAuthorAndName() {
	found, err := suite.repo.GetByAuthorAndName(suite.admin.ID, suite.group.Name)
	suite.NoError(err)
	suite.Equal(suite.group.ID, found.ID)

	_, err = suite.repo.GetByAuthorAndName(suite.developer.ID, suite.group.Name)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestGetByUserSkipsPendingInvitations() {
	invited, _ := suite.invite()

	groups, err := suite.repo.GetByUser(suite.developer.ID)
	suite.NoError(err)
	suite.Len(groups, 1)

	groups, err = suite.repo.GetByUser(invited.ID)
	suite.NoError(err)
	suite.Empty(groups)
}

func (suite *GroupRepositoryTestSuite) TestList() {
	invited, _ := suite.invite()
	own := suite.factories.Group.Create(suite.developer.ID)
	own.Name = "Developers"
	own.CreatedAt = suite.group.CreatedAt.Add(time.Minute)
	suite.Require().NoError(suite.repo.Create(own))

	joined, total, err := suite.repo.List(suite.developer.ID, false, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(joined, 2)
	suite.Equal(suite.group.ID, joined[0].ID)
	suite.NotEmpty(joined[0].Members)

	page, total, err := suite.repo.List(suite.developer.ID, false, 1, 1)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(page, 1)
	suite.Equal(own.ID, page[0].ID)

	authored, total, err := suite.repo.List(suite.developer.ID, true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(authored, 1)
	suite.Equal(own.ID, authored[0].ID)

	pending, total, err := suite.repo.List(invited.ID, false, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
	suite.Empty(pending)
}

func (suite *GroupRepositoryTestSuite) TestGetAdministeredBy() {
	groups, err := suite.repo.GetAdministeredBy(suite.admin.ID, []uuid.UUID{suite.group.ID, uuid.New()})
	suite.NoError(err)
	suite.Len(groups, 1)

	groups, err = suite.repo.GetAdministeredBy(suite.developer.ID, []uuid.UUID{suite.group.ID})
	suite.NoError(err)
	suite.Empty(groups)
}

func (suite *GroupRepositoryTestSuite) TestAcceptInvitation() {
	invited, invitation := suite.invite()
	member, err := suite.members.GetByGroupAndUser(suite.group.ID, invited.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.members.Accept(member, invitation.ID))

	member, err = suite.members.GetByGroupAndUser(suite.group.ID, invited.ID)
	suite.NoError(err)
	suite.True(member.IsJoined())
	_, err = suite.changelogs.GetByID(invitation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestDeclineInvitation() {
	invited, invitation := suite.invite()
	member, err := suite.members.GetByGroupAndUser(suite.group.ID, invited.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.members.Decline(member, invitation.ID))

	_, err = suite.members.GetByGroupAndUser(suite.group.ID, invited.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.changelogs.GetByID(invitation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GroupRepositoryTestSuite) TestHandOverToSuccessor() {
	leaverProject := suite.factories.Project.WithAuthor(suite.admin.ID)
	suite.Require().NoError(suite.projects.Create(leaverProject))
	successorProject := suite.factories.Project.WithAuthor(suite.developer.ID)
	suite.Require().NoError(suite.projects.Create(successorProject))
	suite.Require().NoError(suite.repo.ReplaceProjects(suite.group, []models.Project{*leaverProject, *successorProject}))

	leaving := suite.group.Member(suite.admin.ID)
	successor := suite.group.Member(suite.developer.ID)

	suite.NoError(suite.repo.HandOver(suite.group, leaving, successor))

	found, err := suite.repo.GetByID(suite.group.ID)
	suite.NoError(err)
	suite.Len(found.Members, 1)
	suite.True(found.IsAdmin(suite.developer.ID))
	suite.Equal(suite.developer.ID, found.AuthorID)
	suite.Require().Len(found.Projects, 1)
	suite.Equal(successorProject.ID, found.Projects[0].ID)
}

func (suite *GroupRepositoryTestSuite) TestReplaceProjects() {
	project := suite.factories.Project.WithAuthor(suite.admin.ID)
	suite.Require().NoError(suite.projects.Create(project))

	suite.NoError(suite.repo.ReplaceProjects(suite.group, []models.Project{*project}))
	found, err := suite.repo.GetByID(suite.group.ID)
	suite.NoError(err)
	suite.Len(found.Projects, 1)

	suite.NoError(suite.repo.ReplaceProjects(found, nil))
	found, err = suite.repo.GetByID(suite.group.ID)
	suite.NoError(err)
	suite.Empty(found.Projects)
}

func (suite *GroupRepositoryTestSuite) TestDeleteKeepsProjectsAndDropsInvitations() {
	project := suite.factories.Project.WithAuthor(suite.admin.ID)
	suite.Require().NoError(suite.projects.Create(project))
	suite.Require().NoError(suite.repo.ReplaceProjects(suite.group, []models.Project{*project}))
	_, invitation := suite.invite()

	suite.NoError(suite.repo.Delete(suite.group.ID))

	_, err := suite.repo.GetByID(suite.group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.changelogs.GetByID(invitation.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	found, err := suite.projects.GetByID(project.ID)
	suite.NoError(err)
	suite.Empty(found.Groups)
}

func (suite *GroupRepositoryTestSuite) TestChangelogs() {
	first := suite.factories.Changelog.Create(suite.developer.ID, models.ChangelogEventJoinedGroup)
	first.GroupID = &suite.group.ID
	second := suite.factories.Changelog.Create(suite.developer.ID, models.ChangelogEventRoleChanged)
	second.CreatedAt = first.CreatedAt.Add(1)
	second.ExtraContent = string(models.RoleMaintainer)
	suite.Require().NoError(suite.changelogs.CreateBatch([]models.Changelog{*first, *second}))

	changelogs, _, err := suite.changelogs.GetByOwner(suite.developer.ID, 10, 0)
	suite.NoError(err)
	suite.Require().Len(changelogs, 2)
	suite.Equal(second.ID, changelogs[0].ID)
	suite.Require().NotNil(changelogs[1].Group)
	suite.Equal(suite.group.Name, changelogs[1].Group.Name)

	suite.NoError(suite.changelogs.MarkRead(first.ID))
	read, err := suite.changelogs.GetByID(first.ID)
	suite.NoError(err)
	suite.True(read.Red)

	suite.NoError(suite.changelogs.Delete(first.ID))
	_, err = suite.changelogs.GetByID(first.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/mocks"
	"pandoro-backend/internal/platform"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockProjectRepositoryInterface
	mockGroupRepo     *mocks.MockGroupRepositoryInterface
	mockChangelogRepo *mocks.MockChangelogRepositoryInterface
	mockFetcher       *mocks.MockRepositoryFetcher
	projectService    *service.ProjectService
	factories         *testutils.FactorySet

	author uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.mockChangelogRepo = mocks.NewMockChangelogRepositoryInterface(suite.ctrl)
	suite.mockFetcher = mocks.NewMockRepositoryFetcher(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.projectService = service.NewProjectService(suite.mockRepo, suite.mockGroupRepo, suite.mockChangelogRepo, suite.mockFetcher)
	suite.author = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) validRequest() *service.ProjectRequest {
	return &service.ProjectRequest{
		Name:             "Pandoro",
		ShortDescription: "Tracker",
		Description:      "Tracks the updates of my projects",
		Version:          "1.0.0",
		Repository:       "https://github.com/N7ghtm4r3/Pandoro",
	}
}

// TestAddProject tests adding a project shared with an administered group
func (suite *ProjectServiceTestSuite) TestAddProject() {
	member := uuid.New()
	group := suite.factories.Group.Create(suite.author)
	group.Members = append(group.Members, suite.factories.Group.Member(group.ID, member, models.RoleDeveloper, models.InvitationStatusJoined))
	req := suite.validRequest()
	req.Groups = []uuid.UUID{group.ID, group.ID}

	suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(nil, gorm.ErrRecordNotFound)
	suite.mockGroupRepo.EXPECT().GetAdministeredBy(suite.author, []uuid.UUID{group.ID}).Return([]models.Group{*group}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockChangelogRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(changelogs []models.Changelog) error {
			if assert.Len(suite.T(), changelogs, 1) {
				assert.Equal(suite.T(), models.ChangelogEventProjectAdded, changelogs[0].Event)
				assert.Equal(suite.T(), member, changelogs[0].OwnerID)
			}
			return nil
		})

	project, err := suite.projectService.AddProject(suite.author, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.author, project.AuthorID)
	assert.Len(suite.T(), project.Groups, 1)
}

// TestAddProjectRules tests that the rules are checked in order
func (suite *ProjectServiceTestSuite) TestAddProjectRules() {
	testCases := []struct {
		name     string
		mutate   func(req *service.ProjectRequest)
		setup    func(req *service.ProjectRequest)
		expected func(err error) bool
	}{
		{
			name:     "invalid name",
			mutate:   func(req *service.ProjectRequest) { req.Name = "" },
			expected: func(err error) bool { return errors.Is(err, apperrors.ErrWrongProjectName) },
		},
		{
			name:   "name taken",
			mutate: func(req *service.ProjectRequest) { req.Description = "" },
			setup: func(req *service.ProjectRequest) {
				suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(suite.factories.Project.WithAuthor(suite.author), nil)
			},
			expected: func(err error) bool { return errors.Is(err, apperrors.ErrProjectExists) },
		},
		{
			name:   "short description too long",
			mutate: func(req *service.ProjectRequest) { req.ShortDescription = "sixteen chars!!!" },
			setup: func(req *service.ProjectRequest) {
				suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(nil, gorm.ErrRecordNotFound)
			},
			expected: apperrors.IsValidation,
		},
		{
			name:   "group not administered",
			mutate: func(req *service.ProjectRequest) { req.Groups = []uuid.UUID{uuid.New()} },
			setup: func(req *service.ProjectRequest) {
				suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(nil, gorm.ErrRecordNotFound)
				suite.mockGroupRepo.EXPECT().GetAdministeredBy(suite.author, req.Groups).Return(nil, nil)
			},
			expected: func(err error) bool { return errors.Is(err, apperrors.ErrWrongGroupsList) },
		},
		{
			name:   "repository on unknown platform",
			mutate: func(req *service.ProjectRequest) { req.Repository = "https://bitbucket.org/pandoro/pandoro" },
			setup: func(req *service.ProjectRequest) {
				suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(nil, gorm.ErrRecordNotFound)
				suite.mockGroupRepo.EXPECT().GetAdministeredBy(suite.author, []uuid.UUID{}).Return(nil, nil)
			},
			expected: func(err error) bool { return errors.Is(err, apperrors.ErrWrongProjectRepository) },
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			tc.mutate(req)
			if tc.setup != nil {
				tc.setup(req)
			}
			project, err := suite.projectService.AddProject(suite.author, req)
			assert.Nil(suite.T(), project)
			assert.True(suite.T(), tc.expected(err), "unexpected error: %v", err)
		})
	}
}

// TestEditProjectNotifiesGroupChanges tests the changelogs of groups joined and left
func (suite *ProjectServiceTestSuite) TestEditProjectNotifiesGroupChanges() {
	oldMember, newMember := uuid.New(), uuid.New()
	oldGroup := suite.factories.Group.Create(suite.author)
	oldGroup.Members = append(oldGroup.Members, suite.factories.Group.Member(oldGroup.ID, oldMember, models.RoleDeveloper, models.InvitationStatusJoined))
	newGroup := suite.factories.Group.Create(suite.author)
	newGroup.Members = append(newGroup.Members, suite.factories.Group.Member(newGroup.ID, newMember, models.RoleDeveloper, models.InvitationStatusJoined))

	project := suite.factories.Project.WithAuthor(suite.author)
	project.Groups = []models.Group{*oldGroup}
	req := suite.validRequest()
	req.Version = "1.1.0"
	req.Groups = []uuid.UUID{newGroup.ID}

	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().GetByAuthorAndName(suite.author, req.Name).Return(project, nil)
	suite.mockGroupRepo.EXPECT().GetAdministeredBy(suite.author, req.Groups).Return([]models.Group{*newGroup}, nil)
	suite.mockRepo.EXPECT().Update(project, []models.Group{*newGroup}).Return(nil)
	owners := map[models.ChangelogEvent]uuid.UUID{}
	suite.mockChangelogRepo.EXPECT().
		CreateBatch(gomock.Any()).
		DoAndReturn(func(changelogs []models.Changelog) error {
			owners[changelogs[0].Event] = changelogs[0].OwnerID
			return nil
		}).
		Times(2)

	edited, err := suite.projectService.EditProject(suite.author, project.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1.1.0", edited.Version)
	assert.Equal(suite.T(), oldMember, owners[models.ChangelogEventProjectRemoved])
	assert.Equal(suite.T(), newMember, owners[models.ChangelogEventProjectAdded])
}

// TestEditProjectNotOwner tests that only the author edits a project
func (suite *ProjectServiceTestSuite) TestEditProjectNotOwner() {
	project := suite.factories.Project.Create()
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	_, err := suite.projectService.EditProject(suite.author, project.ID, suite.validRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotProjectOwner)
}

// TestDeleteProject tests deleting a project of the author
func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	project := suite.factories.Project.WithAuthor(suite.author)
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().Delete(project.ID).Return(nil).Times(1)

	err := suite.projectService.DeleteProject(suite.author, project.ID)

	assert.NoError(suite.T(), err)
}

// TestGetProjectThroughGroup tests that joined members see the project and others do not
func (suite *ProjectServiceTestSuite) TestGetProjectThroughGroup() {
	member, invited := uuid.New(), uuid.New()
	group := suite.factories.Group.Create(suite.author)
	group.Members = append(group.Members,
		suite.factories.Group.Member(group.ID, member, models.RoleDeveloper, models.InvitationStatusJoined),
		suite.factories.Group.Member(group.ID, invited, models.RoleDeveloper, models.InvitationStatusPending),
	)
	project := suite.factories.Project.WithAuthor(suite.author)
	project.Groups = []models.Group{*group}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil).Times(2)

	found, err := suite.projectService.GetProject(member, project.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), project.ID, found.ID)

	_, err = suite.projectService.GetProject(invited, project.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestGetProjectsPaged tests that the filter and the page reach the repository
func (suite *ProjectServiceTestSuite) TestGetProjectsPaged() {
	project := *suite.factories.Project.WithAuthor(suite.author)
	filter := repository.ProjectFilter{Query: "neutron", AuthoredOnly: true}
	suite.mockRepo.EXPECT().List(suite.author, filter, 10, 20).Return([]models.Project{project}, int64(21), nil)

	page, err := suite.projectService.GetProjects(suite.author, "neutron", true, service.PageRequest{Page: 2, PageSize: 10})

	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), page.Data, 1) {
		assert.Equal(suite.T(), project.ID, page.Data[0].ID)
	}
	assert.Equal(suite.T(), 2, page.Page)
	assert.Equal(suite.T(), int64(21), page.Total)
	assert.True(suite.T(), page.IsLastPage)
}

// TestGetInDevelopmentProjects tests that only projects in development are requested
func (suite *ProjectServiceTestSuite) TestGetInDevelopmentProjects() {
	filter := repository.ProjectFilter{InDevelopment: true}
	suite.mockRepo.EXPECT().List(suite.author, filter, 10, 0).Return(nil, int64(0), nil)

	page, err := suite.projectService.GetInDevelopmentProjects(suite.author, "", service.PageRequest{PageSize: 10})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), page.Data)
	assert.Empty(suite.T(), page.Data)
	assert.True(suite.T(), page.IsLastPage)
}

// TestGetProjectsRepositoryFailure tests that storage errors are wrapped
func (suite *ProjectServiceTestSuite) TestGetProjectsRepositoryFailure() {
	suite.mockRepo.EXPECT().List(suite.author, gomock.Any(), 10, 0).Return(nil, int64(0), errors.New("connection refused"))

	page, err := suite.projectService.GetProjects(suite.author, "", false, service.PageRequest{PageSize: 10})

	assert.Nil(suite.T(), page)
	assert.ErrorContains(suite.T(), err, "failed to get projects")
}

// TestGetRepository tests reading the repository metadata
func (suite *ProjectServiceTestSuite) TestGetRepository() {
	project := suite.factories.Project.WithAuthor(suite.author)
	info := &platform.RepositoryInfo{Platform: models.RepositoryPlatformGithub, Name: "Pandoro"}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockFetcher.EXPECT().Fetch(gomock.Any(), project.Repository).Return(info, nil)

	result, err := suite.projectService.GetRepository(context.Background(), suite.author, project.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), info, result)
}

// TestGetRepositoryWithoutRepository tests projects without a repository
func (suite *ProjectServiceTestSuite) TestGetRepositoryWithoutRepository() {
	project := suite.factories.Project.WithAuthor(suite.author)
	project.Repository = ""
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	_, err := suite.projectService.GetRepository(context.Background(), suite.author, project.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRepositoryNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}

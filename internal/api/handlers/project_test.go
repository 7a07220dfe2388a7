package handlers

import (
	"errors"
	"net/http"
	"testing"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/mocks"
	"pandoro-backend/internal/platform"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite tests the ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	factory     *testutils.ProjectFactory
}

// SetupTest sets up each individual test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.factory = testutils.NewProjectFactory()
	suite.http = testutils.SetupHTTPTest()

	handler := NewProjectHandler(suite.mockService)
	projects := suite.http.API.Group("/projects")
	{
		projects.GET("", handler.GetProjects)
		projects.GET("/in_development", handler.GetInDevelopmentProjects)
		projects.POST("/addProject", handler.AddProject)
		projects.GET("/:id", handler.GetProject)
		projects.PATCH("/:id/editProject", handler.EditProject)
		projects.DELETE("/:id", handler.DeleteProject)
		projects.GET("/:id/repository", handler.GetRepository)
	}
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetProjectsWithQuery tests that the filter reaches the service
func (suite *ProjectHandlerTestSuite) TestGetProjectsWithQuery() {
	project := suite.factory.WithAuthor(suite.http.UserID)
	page := service.PageRequest{Page: 2, PageSize: 3}
	suite.mockService.EXPECT().
		GetProjects(suite.http.UserID, "pando", true, page).
		Return(service.NewPage([]models.Project{*project}, page, 7), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects?query=pando&authoredOnly=true&page=2&pageSize=3", nil)

	var response service.Page[models.Project]
	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Page)
	assert.Equal(suite.T(), int64(7), response.Total)
	assert.True(suite.T(), response.IsLastPage)
	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), project.ID, response.Data[0].ID)
		assert.Equal(suite.T(), "Pandoro", response.Data[0].Name)
	}
}

// TestGetProjectsDefaults tests the default page and filters
func (suite *ProjectHandlerTestSuite) TestGetProjectsDefaults() {
	page := service.PageRequest{Page: 0, PageSize: service.DefaultPageSize}
	suite.mockService.EXPECT().
		GetProjects(suite.http.UserID, "", false, page).
		Return(service.NewPage[models.Project](nil, page, 0), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects", nil)

	var response service.Page[models.Project]
	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, &response)
	assert.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data)
}

// TestGetProjectsInvalidQuery tests that malformed parameters never reach the service
func (suite *ProjectHandlerTestSuite) TestGetProjectsInvalidQuery() {
	for _, query := range []string{"authoredOnly=maybe", "pageSize=500", "page=x"} {
		w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects?"+query, nil)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, query)
	}
}

// TestGetInDevelopmentProjects tests the in development list
func (suite *ProjectHandlerTestSuite) TestGetInDevelopmentProjects() {
	project := suite.factory.WithAuthor(suite.http.UserID)
	page := service.PageRequest{Page: 0, PageSize: service.DefaultPageSize}
	suite.mockService.EXPECT().
		GetInDevelopmentProjects(suite.http.UserID, "", page).
		Return(service.NewPage([]models.Project{*project}, page, 1), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects/in_development", nil)

	var response service.Page[models.Project]
	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, &response)
	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), project.ID, response.Data[0].ID)
	}
}

// TestGetProject tests the lookup outcomes
func (suite *ProjectHandlerTestSuite) TestGetProject() {
	project := suite.factory.Create()

	testCases := []struct {
		name           string
		path           string
		setup          func()
		expectedStatus int
	}{
		{
			name: "found",
			path: "/api/v1/projects/" + project.ID.String(),
			setup: func() {
				suite.mockService.EXPECT().GetProject(suite.http.UserID, project.ID).Return(project, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not visible",
			path: "/api/v1/projects/" + project.ID.String(),
			setup: func() {
				suite.mockService.EXPECT().GetProject(suite.http.UserID, project.ID).Return(nil, apperrors.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			path:           "/api/v1/projects/pandoro",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.setup()
			w := suite.http.MakeRequest(http.MethodGet, tc.path, nil)
			testutils.ParseEnvelope(suite.T(), w, tc.expectedStatus, nil)
		})
	}
}

// TestAddProject tests creating a project
func (suite *ProjectHandlerTestSuite) TestAddProject() {
	request := service.ProjectRequest{
		Name:             "Pandoro",
		ShortDescription: "Tracker",
		Description:      "Tracks the updates of the projects",
		Version:          "1.0.0",
		Groups:           []uuid.UUID{uuid.New()},
		Repository:       "https://github.com/N7ghtm4r3/Pandoro",
	}
	created := suite.factory.WithAuthor(suite.http.UserID)
	suite.mockService.EXPECT().AddProject(suite.http.UserID, &request).Return(created, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/projects/addProject", request)

	var response models.Project
	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, &response)
	assert.Equal(suite.T(), created.ID, response.ID)
}

// TestAddProjectNameTaken tests the conflict status
func (suite *ProjectHandlerTestSuite) TestAddProjectNameTaken() {
	suite.mockService.EXPECT().AddProject(suite.http.UserID, gomock.Any()).Return(nil, apperrors.ErrProjectExists)

	w := suite.http.MakeRequest(http.MethodPost, "/api/v1/projects/addProject", service.ProjectRequest{Name: "Pandoro"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "project already exists")
}

// TestEditProjectByAnotherUser tests the author check
func (suite *ProjectHandlerTestSuite) TestEditProjectByAnotherUser() {
	projectID := uuid.New()
	suite.mockService.EXPECT().
		EditProject(suite.http.UserID, projectID, gomock.Any()).
		Return(nil, apperrors.ErrNotProjectOwner)

	w := suite.http.MakeRequest(http.MethodPatch, "/api/v1/projects/"+projectID.String()+"/editProject", service.ProjectRequest{Name: "Pandoro"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "only the author")
}

// TestDeleteProject tests deleting a project
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	projectID := uuid.New()
	suite.mockService.EXPECT().DeleteProject(suite.http.UserID, projectID).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/api/v1/projects/"+projectID.String(), nil)

	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, nil)
}

// TestGetRepository tests the repository metadata endpoint
func (suite *ProjectHandlerTestSuite) TestGetRepository() {
	projectID := uuid.New()
	info := &platform.RepositoryInfo{
		Platform: models.RepositoryPlatformGithub,
		URL:      "https://github.com/N7ghtm4r3/Pandoro",
		Name:     "Pandoro",
		Stars:    42,
	}
	suite.mockService.EXPECT().GetRepository(gomock.Any(), suite.http.UserID, projectID).Return(info, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/repository", nil)

	var response platform.RepositoryInfo
	testutils.ParseEnvelope(suite.T(), w, http.StatusOK, &response)
	assert.Equal(suite.T(), 42, response.Stars)
	assert.Equal(suite.T(), models.RepositoryPlatformGithub, response.Platform)
}

// TestGetRepositoryFailure tests an unexpected failure of the platform
func (suite *ProjectHandlerTestSuite) TestGetRepositoryFailure() {
	projectID := uuid.New()
	suite.mockService.EXPECT().
		GetRepository(gomock.Any(), suite.http.UserID, projectID).
		Return(nil, errors.New("github unavailable"))

	w := suite.http.MakeRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/repository", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}

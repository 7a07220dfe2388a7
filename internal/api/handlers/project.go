package handlers

import (
	"net/http"

	"pandoro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetProjects handles GET /projects
// @Summary List projects
// @Description Get the projects authored by the user or shared with the groups the user joined
// @Tags projects
// @Produce json
// @Param query query string false "Case-insensitive filter on name, descriptions, version and group names"
// @Param authoredOnly query bool false "Only the projects authored by the user" default(false)
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[models.Project]} "Successfully retrieved projects"
// @Failure 400 {object} Envelope "Invalid query parameters"
// @Security UserAuth
// @Router /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	authoredOnly, ok := boolQuery(c, "authoredOnly")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetProjects(userID, c.Query("query"), authoredOnly, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, projects)
}

// GetInDevelopmentProjects handles GET /projects/in_development
// @Summary List projects in development
// @Description Get the visible projects with an update in development, each with its in development updates only
// @Tags projects
// @Produce json
// @Param query query string false "Case-insensitive filter on name, descriptions, version and group names"
// @Param page query int false "Page number, counted from zero" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} Envelope{data=service.Page[models.Project]} "Successfully retrieved projects"
// @Failure 400 {object} Envelope "Invalid pagination parameters"
// @Security UserAuth
// @Router /projects/in_development [get]
func (h *ProjectHandler) GetInDevelopmentProjects(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetInDevelopmentProjects(userID, c.Query("query"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} Envelope{data=models.Project} "Successfully retrieved project"
// @Failure 400 {object} Envelope "Invalid project ID"
// @Failure 404 {object} Envelope "Project not found"
// @Security UserAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, project)
}

// AddProject handles POST /projects/addProject
// @Summary Add a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.ProjectRequest true "Project data"
// @Success 200 {object} Envelope{data=models.Project} "Project created"
// @Failure 400 {object} Envelope "Invalid project data"
// @Failure 409 {object} Envelope "Project name already used"
// @Security UserAuth
// @Router /projects/addProject [post]
func (h *ProjectHandler) AddProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.ProjectRequest
	if !bindJSON(c, &req, false) {
		return
	}

	project, err := h.projectService.AddProject(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, project)
}

// EditProject handles PATCH /projects/:id/editProject
// @Summary Edit a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.ProjectRequest true "Project data"
// @Success 200 {object} Envelope{data=models.Project} "Project edited"
// @Failure 400 {object} Envelope "Invalid project data"
// @Failure 403 {object} Envelope "Not the author"
// @Failure 404 {object} Envelope "Project not found"
// @Security UserAuth
// @Router /projects/{id}/editProject [patch]
func (h *ProjectHandler) EditProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	var req service.ProjectRequest
	if !bindJSON(c, &req, false) {
		return
	}

	project, err := h.projectService.EditProject(userID, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} Envelope "Project deleted"
// @Failure 403 {object} Envelope "Not the author"
// @Failure 404 {object} Envelope "Project not found"
// @Security UserAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(userID, projectID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, nil)
}

// GetRepository handles GET /projects/:id/repository
// @Summary Repository metadata
// @Description Read the metadata of the project repository from its hosting platform
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} Envelope{data=platform.RepositoryInfo} "Repository metadata"
// @Failure 404 {object} Envelope "Project or repository not found"
// @Security UserAuth
// @Router /projects/{id}/repository [get]
func (h *ProjectHandler) GetRepository(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	info, err := h.projectService.GetRepository(c, userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, info)
}

package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

func projectPath(projectID uuid.UUID) string {
	return "/projects/" + projectID.String()
}

func updatePath(projectID, updateID uuid.UUID) string {
	return projectPath(projectID) + "/updates/" + updateID.String()
}

func changeNotePath(projectID, updateID, noteID uuid.UUID, action string) string {
	return updatePath(projectID, updateID) + "/notes/" + noteID.String() + "/" + action
}

// GetProjects lists a page of the projects of the user, filtered by query when it is not
// empty. With authoredOnly the projects shared through groups are left out.
func (c *Client) GetProjects(ctx context.Context, query string, authoredOnly bool, page, pageSize int) Result[Page[Project]] {
	params := pageParams(page, pageSize)
	if query != "" {
		params.Set("query", query)
	}
	if authoredOnly {
		params.Set("authoredOnly", "true")
	}
	return call[Page[Project]](ctx, c, http.MethodGet, "/projects?"+params.Encode(), nil)
}

// GetInDevelopmentProjects lists a page of the projects with an update in development.
// Each project carries only its updates in development.
func (c *Client) GetInDevelopmentProjects(ctx context.Context, query string, page, pageSize int) Result[Page[Project]] {
	params := pageParams(page, pageSize)
	if query != "" {
		params.Set("query", query)
	}
	return call[Page[Project]](ctx, c, http.MethodGet, "/projects/in_development?"+params.Encode(), nil)
}

// GetProject returns a single project with its groups and updates
func (c *Client) GetProject(ctx context.Context, projectID uuid.UUID) Result[Project] {
	return call[Project](ctx, c, http.MethodGet, projectPath(projectID), nil)
}

// AddProject creates a project authored by the authenticated user
func (c *Client) AddProject(ctx context.Context, req *ProjectRequest) Result[Project] {
	return call[Project](ctx, c, http.MethodPost, "/projects/addProject", req)
}

// EditProject edits a project authored by the authenticated user
func (c *Client) EditProject(ctx context.Context, projectID uuid.UUID, req *ProjectRequest) Result[Project] {
	return call[Project](ctx, c, http.MethodPatch, projectPath(projectID)+"/editProject", req)
}

// DeleteProject deletes a project together with its updates
func (c *Client) DeleteProject(ctx context.Context, projectID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodDelete, projectPath(projectID), nil)
}

// GetRepository reads the metadata of the project repository
func (c *Client) GetRepository(ctx context.Context, projectID uuid.UUID) Result[RepositoryInfo] {
	return call[RepositoryInfo](ctx, c, http.MethodGet, projectPath(projectID)+"/repository", nil)
}

// ScheduleUpdate schedules a new update of the project
func (c *Client) ScheduleUpdate(ctx context.Context, projectID uuid.UUID, req *ScheduleUpdateRequest) Result[Update] {
	return call[Update](ctx, c, http.MethodPost, projectPath(projectID)+"/updates/schedule", req)
}

// StartUpdate moves a scheduled update in development
func (c *Client) StartUpdate(ctx context.Context, projectID, updateID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, updatePath(projectID, updateID)+"/start", nil)
}

// PublishUpdate publishes an update in development whose change notes are all done
func (c *Client) PublishUpdate(ctx context.Context, projectID, updateID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, updatePath(projectID, updateID)+"/publish", nil)
}

// DeleteUpdate deletes an update
func (c *Client) DeleteUpdate(ctx context.Context, projectID, updateID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodDelete, updatePath(projectID, updateID)+"/delete", nil)
}

// AddChangeNote adds a change note to an update that is not published
func (c *Client) AddChangeNote(ctx context.Context, projectID, updateID uuid.UUID, req *NoteRequest) Result[Note] {
	return call[Note](ctx, c, http.MethodPut, updatePath(projectID, updateID)+"/addChangeNote", req)
}

// MarkChangeNoteAsDone marks a change note of an update in development as done
func (c *Client) MarkChangeNoteAsDone(ctx context.Context, projectID, updateID, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, changeNotePath(projectID, updateID, noteID, "markChangeNoteAsDone"), nil)
}

// MarkChangeNoteAsToDo marks a change note of an update in development as to do
func (c *Client) MarkChangeNoteAsToDo(ctx context.Context, projectID, updateID, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, changeNotePath(projectID, updateID, noteID, "markChangeNoteAsToDo"), nil)
}

// EditChangeNote replaces the content of a change note
func (c *Client) EditChangeNote(ctx context.Context, projectID, updateID, noteID uuid.UUID, req *NoteRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, changeNotePath(projectID, updateID, noteID, "editChangeNote"), req)
}

// MoveChangeNote moves a change note to another update of the same project
func (c *Client) MoveChangeNote(ctx context.Context, projectID, updateID, noteID, destinationUpdateID uuid.UUID) Result[Empty] {
	req := &moveChangeNoteRequest{DestinationUpdateID: destinationUpdateID}
	return call[Empty](ctx, c, http.MethodPatch, changeNotePath(projectID, updateID, noteID, "moveChangeNote"), req)
}

// DeleteChangeNote deletes a change note of an update that is not published
func (c *Client) DeleteChangeNote(ctx context.Context, projectID, updateID, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodDelete, changeNotePath(projectID, updateID, noteID, "deleteChangeNote"), nil)
}

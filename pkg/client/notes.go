package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// GetNotes lists a page of the personal notes of the authenticated user
func (c *Client) GetNotes(ctx context.Context, page, pageSize int) Result[Page[Note]] {
	return call[Page[Note]](ctx, c, http.MethodGet, "/notes?"+pageParams(page, pageSize).Encode(), nil)
}

// CreateNote creates a personal note
func (c *Client) CreateNote(ctx context.Context, req *NoteRequest) Result[Note] {
	return call[Note](ctx, c, http.MethodPost, "/notes/create", req)
}

// MarkNoteAsDone marks a personal note as done
func (c *Client) MarkNoteAsDone(ctx context.Context, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, "/notes/"+noteID.String()+"/markAsDone", nil)
}

// MarkNoteAsToDo marks a personal note as to do
func (c *Client) MarkNoteAsToDo(ctx context.Context, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, "/notes/"+noteID.String()+"/markAsToDo", nil)
}

// DeleteNote deletes a personal note
func (c *Client) DeleteNote(ctx context.Context, noteID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodDelete, "/notes/"+noteID.String()+"/deleteNote", nil)
}

// GetChangelogs lists a page of the changelogs of the authenticated user, newest first
func (c *Client) GetChangelogs(ctx context.Context, page, pageSize int) Result[Page[Changelog]] {
	return call[Page[Changelog]](ctx, c, http.MethodGet, "/changelogs?"+pageParams(page, pageSize).Encode(), nil)
}

// CountUnreadChangelogs returns how many changelogs of the authenticated user are not read
func (c *Client) CountUnreadChangelogs(ctx context.Context) Result[int64] {
	return call[int64](ctx, c, http.MethodGet, "/changelogs/unread", nil)
}

// ReadChangelog marks a changelog as read
func (c *Client) ReadChangelog(ctx context.Context, changelogID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, "/changelogs/"+changelogID.String()+"/readChangelog", nil)
}

// DeleteChangelog deletes a changelog. With a group id the changelog must be the invitation
// into that group, which is declined when still pending.
func (c *Client) DeleteChangelog(ctx context.Context, changelogID uuid.UUID, groupID *uuid.UUID) Result[Empty] {
	path := "/changelogs/" + changelogID.String() + "/deleteChangelog"
	if groupID != nil {
		path += "?groupId=" + groupID.String()
	}
	return call[Empty](ctx, c, http.MethodDelete, path, nil)
}

// GetOverview returns the statistics over the projects of the user, nil when there are none
func (c *Client) GetOverview(ctx context.Context) Result[*Overview] {
	return call[*Overview](ctx, c, http.MethodGet, "/overview", nil)
}

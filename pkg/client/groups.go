package client

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
)

func groupPath(groupID uuid.UUID, action string) string {
	path := "/groups/" + groupID.String()
	if action != "" {
		path += "/" + action
	}
	return path
}

// GetGroups lists a page of the groups the authenticated user joined. With authoredOnly
// only the groups they created are listed.
func (c *Client) GetGroups(ctx context.Context, authoredOnly bool, page, pageSize int) Result[Page[Group]] {
	params := pageParams(page, pageSize)
	if authoredOnly {
		params.Set("authoredOnly", "true")
	}
	return call[Page[Group]](ctx, c, http.MethodGet, "/groups?"+params.Encode(), nil)
}

// GetGroup returns a group with its members and projects
func (c *Client) GetGroup(ctx context.Context, groupID uuid.UUID) Result[Group] {
	return call[Group](ctx, c, http.MethodGet, groupPath(groupID, ""), nil)
}

// CreateGroup creates a group and invites the given members
func (c *Client) CreateGroup(ctx context.Context, req *CreateGroupRequest) Result[Group] {
	return call[Group](ctx, c, http.MethodPost, "/groups/createGroup", req)
}

// EditGroup changes the description of a group
func (c *Client) EditGroup(ctx context.Context, groupID uuid.UUID, req *EditGroupRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, groupPath(groupID, "editGroup"), req)
}

// ChangeLogo uploads a new group logo. Data holds the "logo" url.
func (c *Client) ChangeLogo(ctx context.Context, groupID uuid.UUID, filename string, content io.Reader) Result[map[string]string] {
	return upload[map[string]string](ctx, c, groupPath(groupID, "changeLogo"), "logo", filename, content)
}

// AddMembers invites users, by email, into a group
func (c *Client) AddMembers(ctx context.Context, groupID uuid.UUID, req *MembersRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPut, groupPath(groupID, "addMembers"), req)
}

// AcceptInvitation accepts the invitation carried by an INVITED_GROUP changelog
func (c *Client) AcceptInvitation(ctx context.Context, groupID, changelogID uuid.UUID) Result[Empty] {
	req := &invitationRequest{ChangelogID: changelogID}
	return call[Empty](ctx, c, http.MethodPatch, groupPath(groupID, "acceptGroupInvitation"), req)
}

// DeclineInvitation declines the invitation carried by an INVITED_GROUP changelog
func (c *Client) DeclineInvitation(ctx context.Context, groupID, changelogID uuid.UUID) Result[Empty] {
	req := &invitationRequest{ChangelogID: changelogID}
	return call[Empty](ctx, c, http.MethodDelete, groupPath(groupID, "declineGroupInvitation"), req)
}

// ChangeMemberRole changes the role of a member of a group
func (c *Client) ChangeMemberRole(ctx context.Context, groupID uuid.UUID, req *ChangeRoleRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, groupPath(groupID, "changeMemberRole"), req)
}

// RemoveMember removes a member, identified by user id, from a group
func (c *Client) RemoveMember(ctx context.Context, groupID, memberID uuid.UUID) Result[Empty] {
	req := &removeMemberRequest{MemberID: memberID}
	return call[Empty](ctx, c, http.MethodDelete, groupPath(groupID, "removeMember"), req)
}

// EditProjects replaces the projects the authenticated user shares with a group
func (c *Client) EditProjects(ctx context.Context, groupID uuid.UUID, projects []uuid.UUID) Result[Empty] {
	if projects == nil {
		projects = []uuid.UUID{}
	}
	req := &editProjectsRequest{Projects: projects}
	return call[Empty](ctx, c, http.MethodPatch, groupPath(groupID, "editProjects"), req)
}

// LeaveGroup leaves a group. nextAdminID is required when the user is its only admin.
func (c *Client) LeaveGroup(ctx context.Context, groupID uuid.UUID, nextAdminID *uuid.UUID) Result[Empty] {
	req := &leaveGroupRequest{NextAdminID: nextAdminID}
	return call[Empty](ctx, c, http.MethodDelete, groupPath(groupID, "leaveGroup"), req)
}

// DeleteGroup deletes a group
func (c *Client) DeleteGroup(ctx context.Context, groupID uuid.UUID) Result[Empty] {
	return call[Empty](ctx, c, http.MethodDelete, groupPath(groupID, "deleteGroup"), nil)
}

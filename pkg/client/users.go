package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// SignUp creates an account. On success the client is authenticated as the new user.
func (c *Client) SignUp(ctx context.Context, req *SignUpRequest) Result[AuthResponse] {
	result := call[AuthResponse](ctx, c, http.MethodPost, "/users/signUp", req)
	c.authenticate(result)
	return result
}

// SignIn authenticates with email and password. On success the client is authenticated
// as the returned user.
func (c *Client) SignIn(ctx context.Context, req *SignInRequest) Result[AuthResponse] {
	result := call[AuthResponse](ctx, c, http.MethodPost, "/users/signIn", req)
	c.authenticate(result)
	return result
}

func (c *Client) authenticate(result Result[AuthResponse]) {
	if result.Success && result.Data.Token != "" {
		c.setCredentials(result.Data.ID, result.Data.Token)
	}
}

func (c *Client) userPath(action string) string {
	userID, _ := c.Credentials()
	return "/users/" + userID.String() + "/" + action
}

// ChangeEmail changes the email of the authenticated user
func (c *Client) ChangeEmail(ctx context.Context, req *ChangeEmailRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, c.userPath("changeEmail"), req)
}

// ChangePassword changes the password of the authenticated user
func (c *Client) ChangePassword(ctx context.Context, req *ChangePasswordRequest) Result[Empty] {
	return call[Empty](ctx, c, http.MethodPatch, c.userPath("changePassword"), req)
}

// ChangeProfilePic uploads a new profile picture. Data holds the "profilePic" url.
func (c *Client) ChangeProfilePic(ctx context.Context, filename string, content io.Reader) Result[map[string]string] {
	return upload[map[string]string](ctx, c, c.userPath("changeProfilePic"), "profilePic", filename, content)
}

// DeleteAccount deletes the authenticated user. On success the credentials are cleared.
func (c *Client) DeleteAccount(ctx context.Context) Result[Empty] {
	result := call[Empty](ctx, c, http.MethodDelete, c.userPath("deleteAccount"), nil)
	if result.Success {
		c.setCredentials(uuid.Nil, "")
	}
	return result
}

// GetCandidates lists a page of the users that could be invited into a group, leaving out
// the authenticated user and the excluded ids
func (c *Client) GetCandidates(ctx context.Context, exclude []uuid.UUID, page, pageSize int) Result[Page[User]] {
	params := pageParams(page, pageSize)
	addExcluded(params, exclude)
	return call[Page[User]](ctx, c, http.MethodGet, c.userPath("candidates")+"?"+params.Encode(), nil)
}

// CountCandidates returns how many users GetCandidates would list
func (c *Client) CountCandidates(ctx context.Context, exclude []uuid.UUID) Result[int64] {
	params := url.Values{}
	addExcluded(params, exclude)
	path := c.userPath("candidatesCount")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return call[int64](ctx, c, http.MethodGet, path, nil)
}

func addExcluded(params url.Values, exclude []uuid.UUID) {
	for _, id := range exclude {
		params.Add("exclude", id.String())
	}
}

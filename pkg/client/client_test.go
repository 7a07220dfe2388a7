package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"pandoro-backend/internal/database/models"
	"pandoro-backend/internal/service"


	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data interface{}, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{
		"success":    status < http.StatusBadRequest,
		"statusCode": status,
	}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["error"] = message
	}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestSignInStoresCredentials(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/users/signIn":
			var req SignInRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "john.doe@pandoro.dev", req.Email)
			assert.Empty(t, r.Header.Get("token"))
			writeEnvelope(t, w, http.StatusOK, AuthResponse{ID: userID, Token: "secret-token", Name: "John"}, "")
		case "/api/v1/projects/" + projectID.String():
			assert.Equal(t, userID.String(), r.Header.Get("id"))
			assert.Equal(t, "secret-token", r.Header.Get("token"))
			writeEnvelope(t, w, http.StatusOK, map[string]interface{}{"id": projectID, "name": "Pandoro"}, "")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	req, err := NewSignInRequest("john.doe@pandoro.dev", "password123")
	require.NoError(t, err)

	auth := c.SignIn(context.Background(), req)
	require.True(t, auth.Success)
	assert.Equal(t, http.StatusOK, auth.StatusCode)
	assert.Equal(t, "John", auth.Data.Name)

	id, token := c.Credentials()
	assert.Equal(t, userID, id)
	assert.Equal(t, "secret-token", token)

	project := c.GetProject(context.Background(), projectID)
	require.True(t, project.Success)
	assert.Equal(t, projectID, project.Data.ID)
	assert.Equal(t, "Pandoro", project.Data.Name)
}

func TestFailedSignInKeepsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, nil, "wrong email or password")
	}))
	defer server.Close()

	userID := uuid.New()
	c := New(server.URL, WithCredentials(userID, "old-token"))

	result := c.SignIn(context.Background(), &SignInRequest{Email: "john.doe@pandoro.dev", Password: "password123"})
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	assert.Equal(t, "wrong email or password", result.Error)
	assert.NoError(t, result.Err)

	id, token := c.Credentials()
	assert.Equal(t, userID, id)
	assert.Equal(t, "old-token", token)
}

func TestErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		writeEnvelope(t, w, http.StatusConflict, nil, "every change note must be done to publish the update")
	}))
	defer server.Close()

	c := New(server.URL, WithCredentials(uuid.New(), "token"))
	result := c.PublishUpdate(context.Background(), uuid.New(), uuid.New())

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusConflict, result.StatusCode)
	assert.Equal(t, "every change note must be done to publish the update", result.Error)
	assert.NoError(t, result.Err)
}

func TestWrongProcedure(t *testing.T) {
	t.Run("backend unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		result := New(url).GetGroups(context.Background(), false, 0, 10)
		assert.False(t, result.Success)
		assert.Equal(t, 0, result.StatusCode)
		assert.Equal(t, "Wrong procedure", result.Error)
		assert.Error(t, result.Err)
		assert.Nil(t, result.Data)
	})

	t.Run("body is not an envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "<html>bad gateway</html>")
		}))
		defer server.Close()

		result := New(server.URL).GetNotes(context.Background(), 0, 10)
		assert.False(t, result.Success)
		assert.Equal(t, 0, result.StatusCode)
		assert.Equal(t, "Wrong procedure", result.Error)
		assert.Error(t, result.Err)
	})

	t.Run("data does not match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, http.StatusOK, "not a list", "")
		}))
		defer server.Close()

		result := New(server.URL).GetChangelogs(context.Background(), 0, 10)
		assert.False(t, result.Success)
		assert.Equal(t, "Wrong procedure", result.Error)
		assert.Error(t, result.Err)
	})
}

func TestCircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := New(url, WithBreakerSettings(gobreaker.Settings{
		Name:    "test",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}))

	for i := 0; i < 2; i++ {
		result := c.GetProjects(context.Background(), "", false, 0, 10)
		require.Error(t, result.Err)
		assert.False(t, errors.Is(result.Err, gobreaker.ErrOpenState))
	}

	result := c.GetProjects(context.Background(), "", false, 0, 10)
	assert.Equal(t, 0, result.StatusCode)
	assert.Equal(t, "Wrong procedure", result.Error)
	assert.True(t, errors.Is(result.Err, gobreaker.ErrOpenState))
}

func TestErrorEnvelopesDoNotTripBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusInternalServerError, nil, "Internal server error")
	}))
	defer server.Close()

	c := New(server.URL, WithBreakerSettings(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	}))

	for i := 0; i < 3; i++ {
		result := c.GetOverview(context.Background())
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.NoError(t, result.Err)
	}
}

func TestGetProjectsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/projects", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "my api", query.Get("query"))
		assert.Equal(t, "true", query.Get("authoredOnly"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "5", query.Get("pageSize"))
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{
			"data":          []map[string]interface{}{{"name": "API"}},
			"page":          2,
			"pageSize":      5,
			"totalElements": 11,
			"isLastPage":    true,
		}, "")
	}))
	defer server.Close()

	result := New(server.URL).GetProjects(context.Background(), "my api", true, 2, 5)
	require.True(t, result.Success)
	require.Len(t, result.Data.Data, 1)
	assert.Equal(t, "API", result.Data.Data[0].Name)
	assert.Equal(t, int64(11), result.Data.Total)
	assert.True(t, result.Data.IsLastPage)
}

func TestPagedEndpoints(t *testing.T) {
	userID := uuid.New()
	joined := uuid.New()
	invited := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		switch r.URL.Path {
		case "/api/v1/projects/in_development":
			assert.Empty(t, query.Get("query"))
			assert.Equal(t, "0", query.Get("page"))
			writeEnvelope(t, w, http.StatusOK, map[string]interface{}{"data": []interface{}{}, "isLastPage": true}, "")
		case "/api/v1/groups":
			assert.Empty(t, query.Get("authoredOnly"))
			assert.Equal(t, "1", query.Get("page"))
			assert.Equal(t, "20", query.Get("pageSize"))
			writeEnvelope(t, w, http.StatusOK, map[string]interface{}{"data": []map[string]string{{"name": "Tecknobit"}}}, "")
		case "/api/v1/changelogs/unread":
			writeEnvelope(t, w, http.StatusOK, 4, "")
		case "/api/v1/users/" + userID.String() + "/candidates":
			assert.Equal(t, []string{joined.String(), invited.String()}, query["exclude"])
			writeEnvelope(t, w, http.StatusOK, map[string]interface{}{"data": []map[string]string{{"surname": "Doe"}}, "totalElements": 1}, "")
		case "/api/v1/users/" + userID.String() + "/candidatesCount":
			assert.Empty(t, r.URL.RawQuery)
			writeEnvelope(t, w, http.StatusOK, 7, "")
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, WithCredentials(userID, "token"))
	ctx := context.Background()

	projects := c.GetInDevelopmentProjects(ctx, "", 0, 10)
	require.True(t, projects.Success)
	assert.Empty(t, projects.Data.Data)

	groups := c.GetGroups(ctx, false, 1, 20)
	require.True(t, groups.Success)
	require.Len(t, groups.Data.Data, 1)
	assert.Equal(t, "Tecknobit", groups.Data.Data[0].Name)

	unread := c.CountUnreadChangelogs(ctx)
	require.True(t, unread.Success)
	assert.Equal(t, int64(4), unread.Data)

	candidates := c.GetCandidates(ctx, []uuid.UUID{joined, invited}, 0, 10)
	require.True(t, candidates.Success)
	require.Len(t, candidates.Data.Data, 1)
	assert.Equal(t, "Doe", candidates.Data.Data[0].Surname)

	count := c.CountCandidates(ctx, nil)
	require.True(t, count.Success)
	assert.Equal(t, int64(7), count.Data)
}

func TestCancelledCallsDoNotTripBreaker(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			select {
			case <-r.Context().Done():
			case <-release:
			}
			return
		}
		writeEnvelope(t, w, http.StatusOK, map[string]interface{}{"data": []interface{}{}}, "")
	}))
	defer server.Close()

	c := New(server.URL, WithBreakerSettings(gobreaker.Settings{
		Name:    "test",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	}))

	t.Run("cancelled before sending", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := c.GetNotes(ctx, 0, 10)
		assert.Equal(t, "Wrong procedure", result.Error)
		assert.ErrorIs(t, result.Err, context.Canceled)
		assert.Equal(t, gobreaker.StateClosed, c.breaker.State())
	})

	t.Run("deadline while waiting", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		result := c.GetNotes(ctx, 1, 10)
		assert.Equal(t, "Wrong procedure", result.Error)
		assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
		assert.Equal(t, gobreaker.StateClosed, c.breaker.State())
	})

	result := c.GetNotes(context.Background(), 0, 10)
	require.True(t, result.Success)
	assert.NoError(t, result.Err)
}

func TestGetOverviewWithoutProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, nil, "")
	}))
	defer server.Close()

	result := New(server.URL).GetOverview(context.Background())
	assert.True(t, result.Success)
	assert.Nil(t, result.Data)
}

func TestChangeProfilePic(t *testing.T) {
	userID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/"+userID.String()+"/changeProfilePic", r.URL.Path)
		file, header, err := r.FormFile("profilePic")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", header.Filename)
		assert.Equal(t, "png-bytes", string(content))
		writeEnvelope(t, w, http.StatusOK, map[string]string{"profilePic": "/resources/profiles/avatar.png"}, "")
	}))
	defer server.Close()

	c := New(server.URL, WithCredentials(userID, "token"))
	result := c.ChangeProfilePic(context.Background(), "avatar.png", strings.NewReader("png-bytes"))
	require.True(t, result.Success)
	assert.Equal(t, "/resources/profiles/avatar.png", result.Data["profilePic"])
}

func TestDeleteChangelogDeclinesInvitation(t *testing.T) {
	changelogID := uuid.New()
	groupID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/changelogs/"+changelogID.String()+"/deleteChangelog", r.URL.Path)
		assert.Equal(t, groupID.String(), r.URL.Query().Get("groupId"))
		writeEnvelope(t, w, http.StatusOK, nil, "")
	}))
	defer server.Close()

	result := New(server.URL).DeleteChangelog(context.Background(), changelogID, &groupID)
	assert.True(t, result.Success)
}

func TestLeaveGroupSendsSuccessor(t *testing.T) {
	nextAdmin := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req leaveGroupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.NextAdminID)
		assert.Equal(t, nextAdmin, *req.NextAdminID)
		writeEnvelope(t, w, http.StatusOK, nil, "")
	}))
	defer server.Close()

	result := New(server.URL).LeaveGroup(context.Background(), uuid.New(), &nextAdmin)
	assert.True(t, result.Success)
}

func TestDeleteAccountClearsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, nil, "")
	}))
	defer server.Close()

	c := New(server.URL, WithCredentials(uuid.New(), "token"))
	require.True(t, c.DeleteAccount(context.Background()).Success)

	id, token := c.Credentials()
	assert.Equal(t, uuid.Nil, id)
	assert.Empty(t, token)
}

func TestRequestConstructors(t *testing.T) {
	t.Run("sign up", func(t *testing.T) {
		req, err := NewSignUpRequest("", "John", "Doe", " john.doe@pandoro.dev ", "password123")
		require.NoError(t, err)
		assert.Equal(t, "john.doe@pandoro.dev", req.Email)

		_, err = NewSignUpRequest("", "John", "Doe", "not-an-email", "password123")
		assert.True(t, isValidation(err))

		_, err = NewSignUpRequest("", "John", "Doe", "john.doe@pandoro.dev", "short")
		assert.True(t, isValidation(err))
	})

	t.Run("project", func(t *testing.T) {
		req, err := NewProjectRequest("Pandoro", "Tracker", "Tracks updates", "1.0.0", "", nil)
		require.NoError(t, err)
		assert.NotNil(t, req.Groups)

		_, err = NewProjectRequest("", "Tracker", "Tracks updates", "1.0.0", "", nil)
		assert.Equal(t, ErrWrongProjectName, err)

		_, err = NewProjectRequest("Pandoro", "Tracker", "Tracks updates", "1.0.0", "https://bitbucket.org/a/b", nil)
		assert.Equal(t, ErrWrongProjectRepository, err)
	})

	t.Run("schedule update", func(t *testing.T) {
		_, err := NewScheduleUpdateRequest("1.1.0", []string{"Fix login"})
		require.NoError(t, err)

		_, err = NewScheduleUpdateRequest("1.1.0", nil)
		assert.True(t, isValidation(err))
	})

	t.Run("group", func(t *testing.T) {
		_, err := NewCreateGroupRequest("Tecknobit", "Open source projects", []string{"jane.doe@pandoro.dev"})
		require.NoError(t, err)

		_, err = NewMembersRequest([]string{"jane.doe@pandoro.dev", "nope"})
		assert.True(t, isValidation(err))
	})

	t.Run("change role", func(t *testing.T) {
		_, err := NewChangeRoleRequest(uuid.New(), RoleMaintainer)
		require.NoError(t, err)

		_, err = NewChangeRoleRequest(uuid.New(), Role("OWNER"))
		assert.Equal(t, ErrWrongRole, err)

		_, err = NewChangeRoleRequest(uuid.Nil, RoleDeveloper)
		assert.True(t, isValidation(err))
	})
}

func isValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// internalType returns the first type reachable from t that is declared under internal/
func internalType(t reflect.Type, seen map[reflect.Type]bool) string {
	if seen[t] {
		return ""
	}
	seen[t] = true
	if strings.Contains(t.PkgPath(), "/internal/") || strings.Contains(t.String(), "/internal/") {
		return t.String()
	}
	var nested []reflect.Type
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		nested = append(nested, t.Elem())
	case reflect.Map:
		nested = append(nested, t.Key(), t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if field := t.Field(i); field.IsExported() {
				nested = append(nested, field.Type)
			}
		}
	case reflect.Func:
		for i := 0; i < t.NumIn(); i++ {
			nested = append(nested, t.In(i))
		}
		for i := 0; i < t.NumOut(); i++ {
			nested = append(nested, t.Out(i))
		}
	}
	for _, n := range nested {
		if found := internalType(n, seen); found != "" {
			return found
		}
	}
	return ""
}

func TestExportedAPIUsesOwnTypes(t *testing.T) {
	clientType := reflect.TypeOf(&Client{})
	for i := 0; i < clientType.NumMethod(); i++ {
		method := clientType.Method(i)
		assert.Empty(t, internalType(method.Type, map[reflect.Type]bool{}), "Client.%s", method.Name)
	}

	constructors := map[string]interface{}{
		"New":                      New,
		"WithCredentials":          WithCredentials,
		"WithHTTPClient":           WithHTTPClient,
		"WithBreakerSettings":      WithBreakerSettings,
		"NewSignUpRequest":         NewSignUpRequest,
		"NewSignInRequest":         NewSignInRequest,
		"NewChangeEmailRequest":    NewChangeEmailRequest,
		"NewChangePasswordRequest": NewChangePasswordRequest,
		"NewProjectRequest":        NewProjectRequest,
		"NewScheduleUpdateRequest": NewScheduleUpdateRequest,
		"NewNoteRequest":           NewNoteRequest,
		"NewCreateGroupRequest":    NewCreateGroupRequest,
		"NewEditGroupRequest":      NewEditGroupRequest,
		"NewMembersRequest":        NewMembersRequest,
		"NewChangeRoleRequest":     NewChangeRoleRequest,
	}
	for name, fn := range constructors {
		assert.Empty(t, internalType(reflect.TypeOf(fn), map[reflect.Type]bool{}), name)
	}
}

func TestTypesDecodeBackendPayloads(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	published := start.Add(72 * time.Hour)
	author := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "John", Surname: "Doe"}
	groupID := uuid.New()

	t.Run("project", func(t *testing.T) {
		project := models.Project{
			BaseModel:  models.BaseModel{ID: uuid.New(), CreatedAt: start},
			Name:       "Pandoro",
			Repository: "https://github.com/N7ghtm4r3/Pandoro",
			Author:     author,
			Groups: []models.Group{{
				BaseModel: models.BaseModel{ID: groupID},
				Name:      "Tecknobit",
				Members: []models.GroupMember{{
					UserID:           author.ID,
					Role:             models.RoleAdmin,
					InvitationStatus: models.InvitationStatusJoined,
					User:             author,
				}},
			}},
			Updates: []models.ProjectUpdate{{
				TargetVersion: "1.1.0",
				Status:        models.UpdateStatusPublished,
				StartDate:     &start,
				PublishDate:   &published,
				ChangeNotes:   []models.Note{{Content: "Fix login", MarkedAsDone: true, MarkedAsDoneBy: &author}},
				Events:        []models.UpdateEvent{{Type: models.UpdateEventPublished, Author: &author}},
			}},
		}
		raw, err := json.Marshal(&project)
		require.NoError(t, err)

		var decoded Project
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, project.ID, decoded.ID)
		assert.Equal(t, "https://github.com/N7ghtm4r3/Pandoro", decoded.Repository)
		assert.Equal(t, RepositoryPlatformGithub, decoded.RepositoryPlatform)
		require.NotNil(t, decoded.LastUpdate)
		assert.True(t, published.Equal(*decoded.LastUpdate))
		assert.Equal(t, "Doe", decoded.Author.Surname)
		require.Len(t, decoded.Groups, 1)
		require.Len(t, decoded.Groups[0].Members, 1)
		assert.Equal(t, RoleAdmin, decoded.Groups[0].Members[0].Role)
		assert.Equal(t, InvitationStatusJoined, decoded.Groups[0].Members[0].InvitationStatus)
		require.Len(t, decoded.Updates, 1)
		update := decoded.Updates[0]
		assert.Equal(t, UpdateStatusPublished, update.Status)
		assert.Nil(t, update.Author)
		require.Len(t, update.ChangeNotes, 1)
		assert.True(t, update.ChangeNotes[0].MarkedAsDone)
		assert.Equal(t, author.ID, update.ChangeNotes[0].MarkedAsDoneBy.ID)
		require.Len(t, update.Events, 1)
		assert.Equal(t, UpdateEventType("PUBLISHED"), update.Events[0].Type)
	})

	t.Run("changelog", func(t *testing.T) {
		changelog := service.ChangelogResponse{
			Changelog: models.Changelog{
				Event:   models.ChangelogEventInvitedGroup,
				GroupID: &groupID,
				Group:   &models.Group{BaseModel: models.BaseModel{ID: groupID}, Name: "Tecknobit"},
			},
			Title: "Invited into a group",
		}
		raw, err := json.Marshal(changelog)
		require.NoError(t, err)

		var decoded Changelog
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, ChangelogEventInvitedGroup, decoded.Event)
		assert.Equal(t, "Invited into a group", decoded.Title)
		assert.Equal(t, groupID, *decoded.GroupID)
		assert.Equal(t, "Tecknobit", decoded.Group.Name)
		assert.False(t, decoded.Red)
	})

	t.Run("page", func(t *testing.T) {
		req, err := service.NewPageRequest(1, 2)
		require.NoError(t, err)
		raw, err := json.Marshal(service.NewPage([]models.Note{{Content: "Write docs"}}, req, 3))
		require.NoError(t, err)

		var decoded Page[Note]
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, 1, decoded.Page)
		assert.Equal(t, 2, decoded.PageSize)
		assert.Equal(t, int64(3), decoded.Total)
		assert.True(t, decoded.IsLastPage)
		require.Len(t, decoded.Data, 1)
		assert.Equal(t, "Write docs", decoded.Data[0].Content)
	})
}

// Package platform reads the metadata of the repositories projects are hosted on.
package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// RepositoryInfo describes a project repository
type RepositoryInfo struct {
	Platform      models.RepositoryPlatform `json:"platform" example:"Github"`
	URL           string                    `json:"url" example:"https://github.com/N7ghtm4r3/Pandoro"`
	Name          string                    `json:"name,omitempty" example:"Pandoro"`
	FullName      string                    `json:"fullName,omitempty" example:"N7ghtm4r3/Pandoro"`
	Description   string                    `json:"description,omitempty"`
	DefaultBranch string                    `json:"defaultBranch,omitempty" example:"main"`
	Stars         int                       `json:"stars" example:"42"`
	OpenIssues    int                       `json:"openIssues" example:"3"`
	LastPush      *time.Time                `json:"lastPush,omitempty"`
}

// GitHubFetcher reads repository metadata through the GitHub REST API
type GitHubFetcher struct {
	client *github.Client
}

// NewGitHubFetcher creates a fetcher. The token is optional, baseURL selects a GitHub
// Enterprise instance when set.
func NewGitHubFetcher(token, baseURL string) (*GitHubFetcher, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	if baseURL == "" {
		return &GitHubFetcher{client: github.NewClient(httpClient)}, nil
	}

	client, err := github.NewEnterpriseClient(baseURL, baseURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Enterprise client: %w", err)
	}
	return &GitHubFetcher{client: client}, nil
}

// Fetch returns the metadata of the repository. GitLab repositories only carry their
// platform.
func (f *GitHubFetcher) Fetch(ctx context.Context, repositoryURL string) (*RepositoryInfo, error) {
	info := &RepositoryInfo{
		Platform: models.ReachPlatform(repositoryURL),
		URL:      repositoryURL,
	}
	if info.Platform != models.RepositoryPlatformGithub {
		return info, nil
	}

	owner, name, err := parseRepositoryURL(repositoryURL)
	if err != nil {
		return nil, err
	}

	repo, _, err := f.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, apperrors.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, name, err)
	}

	info.Name = repo.GetName()
	info.FullName = repo.GetFullName()
	info.Description = repo.GetDescription()
	info.DefaultBranch = repo.GetDefaultBranch()
	info.Stars = repo.GetStargazersCount()
	info.OpenIssues = repo.GetOpenIssuesCount()
	if repo.PushedAt != nil {
		pushed := repo.GetPushedAt().Time
		info.LastPush = &pushed
	}
	return info, nil
}

// parseRepositoryURL extracts owner and name from URLs like
// https://github.com/owner/repo or https://github.enterprise.com/owner/repo.git
func parseRepositoryURL(repositoryURL string) (string, string, error) {
	parsed, err := url.Parse(repositoryURL)
	if err != nil {
		return "", "", apperrors.ErrWrongProjectRepository
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperrors.ErrWrongProjectRepository
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectJSON(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	first := start.Add(48 * time.Hour)
	latest := start.Add(96 * time.Hour)

	t.Run("derived fields", func(t *testing.T) {
		project := Project{
			Name:       "Pandoro",
			Repository: "https://github.com/N7ghtm4r3/Pandoro",
			Updates: []ProjectUpdate{
				{Status: UpdateStatusPublished, StartDate: &start, PublishDate: &latest},
				{Status: UpdateStatusPublished, StartDate: &start, PublishDate: &first},
				{Status: UpdateStatusInDevelopment, StartDate: &start},
			},
		}

		raw, err := json.Marshal(&project)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "Pandoro", decoded["name"])
		assert.Equal(t, "Github", decoded["repositoryPlatform"])
		assert.Equal(t, latest.Format(time.RFC3339), decoded["lastUpdate"])
		assert.Len(t, decoded["updates"], 3)
	})

	t.Run("nothing published and no repository", func(t *testing.T) {
		raw, err := json.Marshal(Project{Name: "Draft"})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.NotContains(t, decoded, "lastUpdate")
		assert.NotContains(t, decoded, "repositoryPlatform")
	})

	t.Run("gitlab repository", func(t *testing.T) {
		project := Project{Repository: "https://gitlab.com/tecknobit/pandoro"}
		assert.Equal(t, RepositoryPlatformGitLab, project.RepositoryPlatform())
	})
}

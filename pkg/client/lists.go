package client

import (
	"sort"
	"strings"
)

// MaxFrequentProjects caps the list returned by FrequentProjects
const MaxFrequentProjects = 9

// FrequentProjects returns the projects with the most updates, ties kept in input order
func FrequentProjects(projects []Project) []Project {
	sorted := make([]Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Updates) > len(sorted[j].Updates)
	})
	if len(sorted) > MaxFrequentProjects {
		sorted = sorted[:MaxFrequentProjects]
	}
	return sorted
}

// FilterProjects keeps, in order, the projects whose name, descriptions, version or group
// names contain query ignoring case. An empty query returns projects unchanged.
func FilterProjects(query string, projects []Project) []Project {
	if query == "" {
		return projects
	}
	query = strings.ToLower(query)
	filtered := make([]Project, 0, len(projects))
	for _, project := range projects {
		if project.matches(query) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

func (p Project) matches(query string) bool {
	for _, field := range []string{p.Name, p.ShortDescription, p.Description, p.Version} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, group := range p.Groups {
		if strings.Contains(strings.ToLower(group.Name), query) {
			return true
		}
	}
	return false
}

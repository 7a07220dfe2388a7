package overview

import (
	"fmt"
	"testing"
	"time"

	"pandoro-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var origin = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func published(days int, publisher uuid.UUID) models.ProjectUpdate {
	start := origin
	end := origin.Add(time.Duration(days) * 24 * time.Hour)
	return models.ProjectUpdate{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		TargetVersion: fmt.Sprintf("%d.0.0", days),
		Status:        models.UpdateStatusPublished,
		StartedByID:   &publisher,
		StartDate:     &start,
		PublishedByID: &publisher,
		PublishDate:   &end,
	}
}

func project(name string, durations ...int) models.Project {
	p := models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name, Version: "1.0.0"}
	for _, d := range durations {
		p.Updates = append(p.Updates, published(d, uuid.New()))
	}
	return p
}

func shared(p models.Project, groups ...string) models.Project {
	for _, name := range groups {
		p.Groups = append(p.Groups, models.Group{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name})
	}
	return p
}

type RankingTestSuite struct {
	suite.Suite
}

func (suite *RankingTestSuite) TestBestPersonalSkipsProjectsWithoutUpdates() {
	projects := []models.Project{
		project("Alpha", 4, 4, 4),
		project("Beta", 20),
		project("Gamma", 2, 2, 2),
		project("Delta"),
	}

	best := BestPersonalProject(projects)
	suite.Require().NotNil(best)
	suite.Equal("Gamma", best.Name)
}

func (suite *RankingTestSuite) TestBestKeepsFirstWhenLaterIsSlower() {
	projects := []models.Project{
		project("Alpha", 2, 2, 2),
		project("Beta", 20),
		project("Gamma", 4, 4, 4),
		project("Delta"),
	}

	suite.Equal("Alpha", BestPersonalProject(projects).Name)
}

// Incomparable projects never replace the running best, so the seed wins and the
// result follows the input order.
func (suite *RankingTestSuite) TestBestOfIncomparableProjectsFollowsOrder() {
	oneUpdate := project("OneUpdate", 1)
	threeUpdates := project("ThreeUpdates", 1, 1, 1)

	suite.Equal("OneUpdate", BestPersonalProject([]models.Project{oneUpdate, threeUpdates}).Name)
	suite.Equal("ThreeUpdates", BestPersonalProject([]models.Project{threeUpdates, oneUpdate}).Name)
	suite.Equal("ThreeUpdates", WorstPersonalProject([]models.Project{oneUpdate, threeUpdates}).Name)
	suite.Equal("OneUpdate", WorstPersonalProject([]models.Project{threeUpdates, oneUpdate}).Name)
}

func (suite *RankingTestSuite) TestWorstPersonalExcludesBest() {
	projects := []models.Project{
		project("Alpha", 4, 4, 4),
		project("Beta", 20),
		project("Gamma", 2, 2, 2),
		project("Delta"),
	}

	worst := WorstPersonalProject(projects)
	suite.Require().NotNil(worst)
	suite.Equal("Beta", worst.Name)
}

func (suite *RankingTestSuite) TestSingleCandidateHasNoWorst() {
	projects := []models.Project{project("Alpha", 3), project("Empty")}

	suite.Equal("Alpha", BestPersonalProject(projects).Name)
	suite.Nil(WorstPersonalProject(projects))
}

func (suite *RankingTestSuite) TestNoCandidates() {
	suite.Nil(BestPersonalProject(nil))
	suite.Nil(WorstPersonalProject(nil))
	suite.Nil(BestGroupProject([]models.Project{project("Alpha", 1)}))
	suite.Nil(WorstGroupProject([]models.Project{project("Alpha", 1)}))
}

func (suite *RankingTestSuite) TestPartitionsAreIndependent() {
	projects := []models.Project{
		project("Personal", 1, 1),
		shared(project("TeamSlow", 9), "Core"),
		shared(project("TeamFast", 1, 1), "Core"),
	}

	suite.Equal("Personal", BestPersonalProject(projects).Name)
	suite.Equal("TeamFast", BestGroupProject(projects).Name)
	suite.Equal("TeamSlow", WorstGroupProject(projects).Name)
}

func TestRankingTestSuite(t *testing.T) {
	suite.Run(t, new(RankingTestSuite))
}

func TestBuild(t *testing.T) {
	me := uuid.New()

	t.Run("no projects", func(t *testing.T) {
		assert.Nil(t, Build(me, nil))
	})

	t.Run("statistics", func(t *testing.T) {
		personal := project("Personal")
		personal.Updates = []models.ProjectUpdate{
			published(2, me),
			published(4, uuid.New()),
			{Status: models.UpdateStatusScheduled, AuthorID: &me},
		}
		team := shared(project("Team"), "Core")
		team.Updates = []models.ProjectUpdate{
			{Status: models.UpdateStatusInDevelopment, StartedByID: &me},
		}

		overview := Build(me, []models.Project{personal, team})
		require.NotNil(t, overview)

		assert.Equal(t, 2, overview.TotalProjects.Total)
		assert.Equal(t, 1, overview.TotalProjects.Personal)
		assert.Equal(t, 50.0, overview.TotalProjects.PersonalPercentage)
		assert.Equal(t, 50.0, overview.TotalProjects.GroupPercentage)

		assert.Equal(t, 4, overview.Updates.Total)
		assert.Equal(t, 1, overview.Updates.Scheduled.Total)
		assert.Equal(t, 1, overview.Updates.Scheduled.ByMe)
		assert.Equal(t, 25.0, overview.Updates.Scheduled.Percentage)
		assert.Equal(t, 2, overview.Updates.Published.Total)
		assert.Equal(t, 1, overview.Updates.Published.ByMe)
		assert.Equal(t, 50.0, overview.Updates.Published.ByMePercentage)
		assert.Equal(t, 1, overview.Updates.InDevelopment.ByMe)

		assert.Equal(t, 6, overview.DevelopmentDays.Total)
		assert.Equal(t, 3, overview.DevelopmentDays.Average)

		require.NotNil(t, overview.Performance.BestPersonal)
		assert.Equal(t, "Personal", overview.Performance.BestPersonal.Name)
		assert.Nil(t, overview.Performance.WorstPersonal)
		require.NotNil(t, overview.Performance.BestGroup)
		assert.Equal(t, 0, overview.Performance.BestGroup.DevelopmentDays)
	})
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, percentage(1, 0))
	assert.Equal(t, 33.33, percentage(1, 3))
	assert.Equal(t, 100.0, percentage(3, 3))
}

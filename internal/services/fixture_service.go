package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"bilhete-backend/internal/models"
)

type FixtureOutcome string

const (
	OutcomeFetched        FixtureOutcome = "fetched"
	OutcomeEmpty          FixtureOutcome = "empty"
	OutcomeUpstreamFailed FixtureOutcome = "upstream_failed"
)

// FixtureResult keeps "nothing scheduled" apart from "provider failed" even
// though both are served as an empty list.
type FixtureResult struct {
	Outcome  FixtureOutcome
	Fixtures []models.FixtureView
	Err      error
}

// FixtureSource is implemented by FootballClient.
type FixtureSource interface {
	NextFixtures(ctx context.Context, n int) ([]UpstreamFixture, error)
}

type FixtureService struct {
	source FixtureSource
}

func NewFixtureService(source FixtureSource) *FixtureService {
	return &FixtureService{source: source}
}

// ListUpcoming fetches the next fixtures and reshapes them. Fixtures is never
// nil, whatever the outcome.
func (s *FixtureService) ListUpcoming(ctx context.Context) FixtureResult {
	upstream, err := s.source.NextFixtures(ctx, UpcomingFixturesLimit)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch upcoming fixtures, serving empty list")
		return FixtureResult{
			Outcome:  OutcomeUpstreamFailed,
			Fixtures: []models.FixtureView{},
			Err:      err,
		}
	}

	views := make([]models.FixtureView, 0, len(upstream))
	for _, f := range upstream {
		views = append(views, ToFixtureView(f))
	}

	if len(views) == 0 {
		log.Info("Fixtures provider returned no upcoming fixtures")
		return FixtureResult{Outcome: OutcomeEmpty, Fixtures: views}
	}

	log.WithField("count", len(views)).Debug("Fetched upcoming fixtures")
	return FixtureResult{Outcome: OutcomeFetched, Fixtures: views}
}

func ToFixtureView(f UpstreamFixture) models.FixtureView {
	return models.FixtureView{
		ID:         f.Fixture.ID,
		LeagueName: f.League.Name,
		LeagueLogo: f.League.Logo,
		Country:    f.League.Country,
		Home: models.TeamView{
			Name: f.Teams.Home.Name,
			Logo: f.Teams.Home.Logo,
		},
		Away: models.TeamView{
			Name: f.Teams.Away.Name,
			Logo: f.Teams.Away.Logo,
		},
		KickoffTime: f.Fixture.Date,
		Odds:        models.PlaceholderOdds(),
	}
}

package models

// Placeholder odds served with every fixture. They are not priced from any
// market.
const (
	PlaceholderOddsHome = "1.85"
	PlaceholderOddsDraw = "3.40"
	PlaceholderOddsAway = "4.20"
)

type TeamView struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Odds struct {
	Home string `json:"home"`
	Draw string `json:"draw"`
	Away string `json:"away"`
}

// FixtureView is the reduced fixture served by GET /api/jogos.
type FixtureView struct {
	ID          int64    `json:"id"`
	LeagueName  string   `json:"league_name"`
	LeagueLogo  string   `json:"league_logo"`
	Country     string   `json:"country"`
	Home        TeamView `json:"home"`
	Away        TeamView `json:"away"`
	KickoffTime string   `json:"kickoff_time"`
	Odds        Odds     `json:"odds"`
}

func PlaceholderOdds() Odds {
	return Odds{
		Home: PlaceholderOddsHome,
		Draw: PlaceholderOddsDraw,
		Away: PlaceholderOddsAway,
	}
}

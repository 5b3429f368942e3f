package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Match is a snapshot of one game in progress. The registry hands out copies,
// so mutating a Match never affects the board.
type Match struct {
	ID        uuid.UUID `json:"id"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
}

func newMatch(home, away string) Match {
	return Match{
		ID:       uuid.New(),
		HomeTeam: home,
		AwayTeam: away,
	}
}

// Score returns the (home, away) score pair.
func (m Match) Score() (home, away int) {
	return m.HomeScore, m.AwayScore
}

func (m Match) Total() int {
	return m.HomeScore + m.AwayScore
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d", m.HomeTeam, m.HomeScore, m.AwayTeam, m.AwayScore)
}

// pairKey identifies a match regardless of home/away order: a <= b.
type pairKey struct {
	a, b string
}

func keyOf(team1, team2 string) pairKey {
	if team2 < team1 {
		team1, team2 = team2, team1
	}
	return pairKey{a: team1, b: team2}
}

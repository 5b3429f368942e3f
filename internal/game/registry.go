package game

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry is the in-memory board of matches in progress. A single mutex
// guards all state, so every operation is atomic with respect to the others.
type Registry struct {
	mu      sync.Mutex
	games   map[pairKey]*entry
	playing map[string]pairKey // team -> key of its active match

	started  uint64 // insertion counter, breaks summary ties
	eventSeq uint64

	log     *slog.Logger
	observe func(Event)
}

type entry struct {
	match Match
	seq   uint64
}

type Option func(*Registry)

func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// WithObserver registers fn to receive an Event for every applied mutation.
// fn runs while the registry lock is held: it must not block and must not
// call back into the registry.
func WithObserver(fn func(Event)) Option {
	return func(r *Registry) {
		r.observe = fn
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		games:   make(map[pairKey]*entry),
		playing: make(map[string]pairKey),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start registers a new match at 0-0. Home/away order is kept as given.
func (r *Registry) Start(team1, team2 string) error {
	home, away, err := normalizePair(team1, team2)
	if err != nil {
		return err
	}
	if home == away {
		return &MatchError{Op: "start", Home: home, Away: away, Err: ErrSameTeamName}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(home, away)
	if _, ok := r.games[key]; ok {
		return &MatchError{Op: "start", Home: home, Away: away, Err: ErrMatchAlreadyStarted}
	}
	for _, team := range [...]string{home, away} {
		if _, busy := r.playing[team]; busy {
			return &MatchError{Op: "start", Home: home, Away: away, Team: team, Err: ErrTeamBusy}
		}
	}

	r.started++
	e := &entry{match: newMatch(home, away), seq: r.started}
	r.games[key] = e
	r.playing[home] = key
	r.playing[away] = key

	r.log.Debug("match started", "match_id", e.match.ID, "home", home, "away", away)
	r.emitLocked(EventMatchStarted, &e.match)
	return nil
}

// Finish removes the match between the two teams, in either order, and
// returns its final state. ok is false when no such match exists.
func (r *Registry) Finish(team1, team2 string) (Match, bool, error) {
	t1, t2, err := normalizePair(team1, team2)
	if err != nil {
		return Match{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := keyOf(t1, t2)
	e, ok := r.games[key]
	if !ok {
		return Match{}, false, nil
	}
	delete(r.games, key)
	delete(r.playing, e.match.HomeTeam)
	delete(r.playing, e.match.AwayTeam)

	r.log.Debug("match finished", "match_id", e.match.ID, "score", e.match.String())
	r.emitLocked(EventMatchFinished, &e.match)
	return e.match, true, nil
}

// UpdateScore overwrites the score of a running match. Teams must be given in
// the order used at Start; the swapped order fails with ErrAmbiguousOrder.
// Updating a match that does not exist is a no-op.
func (r *Registry) UpdateScore(homeTeam, awayTeam string, homeScore, awayScore int) error {
	home, away, err := normalizePair(homeTeam, awayTeam)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.games[keyOf(home, away)]
	if !ok {
		return nil
	}
	if e.match.HomeTeam != home {
		return &MatchError{Op: "update", Home: home, Away: away, Err: ErrAmbiguousOrder}
	}

	e.match.HomeScore = homeScore
	e.match.AwayScore = awayScore

	r.log.Debug("score updated", "match_id", e.match.ID, "score", e.match.String())
	r.emitLocked(EventScoreUpdated, &e.match)
	return nil
}

// Score looks up the match between the two teams in either order.
func (r *Registry) Score(team1, team2 string) (Match, bool, error) {
	t1, t2, err := normalizePair(team1, team2)
	if err != nil {
		return Match{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.games[keyOf(t1, t2)]
	if !ok {
		return Match{}, false, nil
	}
	return e.match, true, nil
}

// MatchOf returns the match the team is currently playing.
func (r *Registry) MatchOf(team string) (Match, bool, error) {
	name, err := NormalizeTeamName(team)
	if err != nil {
		return Match{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.playing[name]
	if !ok {
		return Match{}, false, nil
	}
	return r.games[key].match, true, nil
}

// Summary returns all matches ordered by total score, highest first. Matches
// with the same total keep the order in which they were started.
func (r *Registry) Summary() []Match {
	r.mu.Lock()
	snap := make([]entry, 0, len(r.games))
	for _, e := range r.games {
		snap = append(snap, *e)
	}
	r.mu.Unlock()

	slices.SortFunc(snap, func(a, b entry) int {
		return cmp.Compare(a.seq, b.seq)
	})
	slices.SortStableFunc(snap, func(a, b entry) int {
		return cmp.Compare(b.match.Total(), a.match.Total())
	})

	out := make([]Match, len(snap))
	for i, e := range snap {
		out[i] = e.match
	}
	return out
}

// Flush removes every match from the board.
func (r *Registry) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.games)
	clear(r.games)
	clear(r.playing)

	r.log.Debug("board flushed", "matches", n)
	r.emitLocked(EventBoardFlushed, nil)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}

func (r *Registry) emitLocked(kind EventKind, m *Match) {
	if r.observe == nil {
		return
	}
	r.eventSeq++
	ev := Event{ID: uuid.New(), Kind: kind, Seq: r.eventSeq}
	if m != nil {
		cp := *m
		ev.Match = &cp
	}
	r.observe(ev)
}

package game

import (
	"math/rand"

	"github.com/google/uuid"

	"quizboard-service/internal/domain"
)

// Player is one participant in a session. Scores only grow: incorrect answers
// and timeouts award nothing.
type Player struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Session is one live game: a board, one or two players, and turn state.
// A session exclusively owns its player records; the board is frozen after
// construction except for answered flags, which only ResolveAnswer flips.
type Session struct {
	id          string
	board       *domain.Board
	player1     Player
	player2     *Player // nil in single-player mode
	player1Turn bool
	answered    int
	total       int
	current     *Round
}

// NewSession starts a fresh game on board. An empty player2 selects
// single-player mode. The board must pass validation first; no partially
// constructed session is ever returned.
func NewSession(board domain.Board, player1, player2 string) (*Session, error) {
	p1 := Player{Username: player1}
	var p2 *Player
	if player2 != "" {
		p2 = &Player{Username: player2}
	}
	return Resume(board, p1, p2, true)
}

// Resume rebuilds a session from persisted state. Progress is recomputed from
// the board's answered flags, so a fully answered save restores directly into
// the terminal state.
func Resume(board domain.Board, player1 Player, player2 *Player, player1Turn bool) (*Session, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	if player1.Username == "" {
		return nil, domain.ErrMissingPlayer
	}
	b := board
	s := &Session{
		id:          uuid.NewString(),
		board:       &b,
		player1:     player1,
		player1Turn: player1Turn,
		answered:    b.AnsweredCount(),
		total:       b.TotalQuestions(),
	}
	if player2 != nil {
		p2 := *player2
		s.player2 = &p2
	}
	return s, nil
}

// ID identifies the session within the process.
func (s *Session) ID() string { return s.id }

// Board exposes the session's board for rendering and persistence.
func (s *Session) Board() *domain.Board { return s.board }

// Player1 returns a copy of player 1's record.
func (s *Session) Player1() Player { return s.player1 }

// Player2 returns player 2's record and whether the session is two-player.
func (s *Session) Player2() (Player, bool) {
	if s.player2 == nil {
		return Player{}, false
	}
	return *s.player2, true
}

// SinglePlayer reports the turn mode the session was created with.
func (s *Session) SinglePlayer() bool { return s.player2 == nil }

// Player1Turn reports whose turn it is. Always true in single-player mode.
func (s *Session) Player1Turn() bool { return s.player1Turn }

// AnsweredCount reports how many questions have been resolved.
func (s *Session) AnsweredCount() int { return s.answered }

// TotalQuestions reports the board's question count.
func (s *Session) TotalQuestions() int { return s.total }

// Terminal reports whether every question has been answered.
func (s *Session) Terminal() bool { return s.answered == s.total }

// RoundInFlight reports whether a presented question is still unresolved.
// Saving is rejected while this holds.
func (s *Session) RoundInFlight() bool {
	return s.current != nil && !s.current.Resolved()
}

// PresentQuestion opens an answer round for the question at (column, row).
// Options are shuffled with rnd. Only one round may be open at a time, and an
// already-answered question cannot be presented again.
func (s *Session) PresentQuestion(column string, row int, rnd *rand.Rand) (*Round, error) {
	if s.RoundInFlight() {
		return nil, domain.ErrRoundInFlight
	}
	q, err := s.board.Question(column, row)
	if err != nil {
		return nil, err
	}
	if q.Answered {
		return nil, domain.ErrQuestionAlreadyAnswered
	}
	s.current = NewRound(q, rnd)
	return s.current, nil
}

// Resolve applies a finished round to the session: flags the question,
// credits the current player on a correct answer, and alternates the turn in
// two-player mode.
func (s *Session) Resolve(r *Round) error {
	if !r.Resolved() {
		return domain.ErrRoundInFlight
	}
	if err := s.ResolveAnswer(r.question, r.Outcome() == OutcomeCorrect, r.Points()); err != nil {
		return err
	}
	if s.current == r {
		s.current = nil
	}
	return nil
}

// ResolveAnswer is the scoring transition. A question resolves at most once;
// a second call fails without touching scores or progress. The turn alternates
// every question in two-player mode regardless of correctness.
func (s *Session) ResolveAnswer(q *domain.Question, correct bool, points int) error {
	if q.Answered {
		return domain.ErrQuestionAlreadyAnswered
	}
	q.Answered = true
	s.answered++
	if correct {
		s.currentPlayer().Score += points
	}
	if s.player2 != nil {
		s.player1Turn = !s.player1Turn
	}
	return nil
}

func (s *Session) currentPlayer() *Player {
	if s.player2 == nil || s.player1Turn {
		return &s.player1
	}
	return s.player2
}

// PlayerScore pairs a username with a final score.
type PlayerScore struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Standings reports final scores. In single-player mode only Winner is
// populated. Equal scores in two-player mode are reported as an explicit tie,
// with player 1 listed first; neither side is silently favored.
type Standings struct {
	SinglePlayer bool        `json:"singlePlayer"`
	Tie          bool        `json:"tie"`
	Winner       PlayerScore `json:"winner"`
	Loser        PlayerScore `json:"loser,omitempty"`
}

// Standings computes the final result. Meaningful once Terminal holds.
func (s *Session) Standings() Standings {
	p1 := PlayerScore{Username: s.player1.Username, Score: s.player1.Score}
	if s.player2 == nil {
		return Standings{SinglePlayer: true, Winner: p1}
	}
	p2 := PlayerScore{Username: s.player2.Username, Score: s.player2.Score}
	switch {
	case p1.Score > p2.Score:
		return Standings{Winner: p1, Loser: p2}
	case p2.Score > p1.Score:
		return Standings{Winner: p2, Loser: p1}
	default:
		return Standings{Tie: true, Winner: p1, Loser: p2}
	}
}

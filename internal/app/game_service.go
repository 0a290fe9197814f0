package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"quizboard-service/internal/domain"
	"quizboard-service/internal/game"
	"quizboard-service/internal/savegame"
)

// BoardRepository loads custom board content (from cache/backing store).
type BoardRepository interface {
	GetBoard(ctx context.Context, name string) (domain.Board, error)
}

// SaveStore is the abstract read/write-document capability the engine needs;
// where documents live (memory, Redis) is an infrastructure decision.
type SaveStore interface {
	Put(ctx context.Context, doc savegame.Document) error
	Get(ctx context.Context, id string) (savegame.Document, error)
	Latest(ctx context.Context) (savegame.Document, error)
}

// GameService runs the game use cases. One session is live at a time within
// a process; starting or loading a game replaces the previous session.
type GameService struct {
	boards BoardRepository
	saves  SaveStore
	now    func() time.Time
	rnd    *rand.Rand

	mu      sync.Mutex
	session *game.Session
}

func NewGameService(boards BoardRepository, saves SaveStore) *GameService {
	return &GameService{
		boards: boards,
		saves:  saves,
		now:    time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartGame begins a new session on the named category. Predefined boards
// come from the baked-in catalog; anything else is fetched from the board
// repository and re-validated before the session starts.
func (s *GameService) StartGame(ctx context.Context, category, player1, player2 string) (*game.Session, error) {
	board, err := s.lookupBoard(ctx, category)
	if err != nil {
		return nil, err
	}
	session, err := game.NewSession(board, player1, player2)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session, nil
}

// Session returns the live session, if any.
func (s *GameService) Session() (*game.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.session != nil
}

// PresentQuestion opens an answer round on the live session.
func (s *GameService) PresentQuestion(column string, row int) (*game.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, domain.ErrNoSession
	}
	return s.session.PresentQuestion(column, row, s.rnd)
}

// ResolveRound applies a finished round to the session and reports the
// outcome, points awarded, and final standings once the session is terminal.
func (s *GameService) ResolveRound(round *game.Round) (game.Outcome, int, *game.Standings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return game.OutcomePending, 0, nil, domain.ErrNoSession
	}
	if err := s.session.Resolve(round); err != nil {
		return game.OutcomePending, 0, nil, err
	}

	var standings *game.Standings
	if s.session.Terminal() {
		final := s.session.Standings()
		standings = &final
	}
	return round.Outcome(), round.Points(), standings, nil
}

// SaveGame snapshots the live session into the save store. Rejected while an
// answer round is unresolved.
func (s *GameService) SaveGame(ctx context.Context) (savegame.Document, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return savegame.Document{}, domain.ErrNoSession
	}
	doc, err := savegame.Snapshot(s.session, s.now())
	s.mu.Unlock()
	if err != nil {
		return savegame.Document{}, err
	}
	if err := s.saves.Put(ctx, doc); err != nil {
		return savegame.Document{}, fmt.Errorf("store save document: %w", err)
	}
	return doc, nil
}

// LoadGame restores a session from the save store and makes it live. An
// empty id loads the most recent save.
func (s *GameService) LoadGame(ctx context.Context, id string) (*game.Session, error) {
	var (
		doc savegame.Document
		err error
	)
	if id == "" {
		doc, err = s.saves.Latest(ctx)
	} else {
		doc, err = s.saves.Get(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	session, err := savegame.Restore(doc, func(name string) (domain.Board, error) {
		return s.lookupBoard(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return session, nil
}

func (s *GameService) lookupBoard(ctx context.Context, name string) (domain.Board, error) {
	if board, err := game.PredefinedBoard(name); err == nil {
		return board, nil
	}
	if s.boards == nil {
		return domain.Board{}, fmt.Errorf("category %q: %w", name, domain.ErrUnknownCategory)
	}
	board, err := s.boards.GetBoard(ctx, name)
	if err != nil {
		return domain.Board{}, err
	}
	// Custom boards are re-validated here even if the authoring side already
	// did; an incomplete board must never enter a session.
	if err := board.Validate(); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

package savegame

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"quizboard-service/internal/domain"
	"quizboard-service/internal/game"
)

// BoardLookup resolves a category that the document references but does not
// carry, such as a freshly started predefined board.
type BoardLookup func(name string) (domain.Board, error)

// Snapshot captures a session and its board into a durable document. The
// board is flattened column by column in display order. Snapshotting while an
// answer round is unresolved is rejected: a mid-round save is ill-defined.
func Snapshot(s *game.Session, now time.Time) (Document, error) {
	if s.RoundInFlight() {
		return Document{}, domain.ErrRoundInFlight
	}

	board := s.Board()
	doc := Document{
		ID:               uuid.NewString(),
		Player1Username:  s.Player1().Username,
		Player1Score:     s.Player1().Score,
		SelectedCategory: board.Name,
		IsPlayer1Turn:    s.Player1Turn(),
		SaveTimestamp:    now,
	}
	if p2, ok := s.Player2(); ok {
		doc.Player2Username = p2.Username
		doc.Player2Score = p2.Score
	}

	flat := NewQuestionMap()
	for _, col := range board.Columns {
		questions := make([]domain.Question, len(col.Questions))
		copy(questions, col.Questions)
		flat.Set(board.Name+Separator+col.Name, questions)
	}
	doc.CustomCategories = flat
	return doc, nil
}

// Restore rebuilds a session from a document. Keys that do not split into
// exactly two non-empty parts are skipped, the rest of the load proceeds. If
// the selected category is in neither the document payload nor the lookup,
// the load fails with ErrUnknownCategory.
func Restore(doc Document, lookup BoardLookup) (*game.Session, error) {
	boards := rebuildBoards(doc.CustomCategories)

	board, ok := boards[doc.SelectedCategory]
	if !ok {
		if lookup == nil {
			return nil, fmt.Errorf("category %q: %w", doc.SelectedCategory, domain.ErrUnknownCategory)
		}
		fresh, err := lookup(doc.SelectedCategory)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", doc.SelectedCategory, domain.ErrUnknownCategory)
		}
		board = fresh
	}

	player1 := game.Player{Username: doc.Player1Username, Score: doc.Player1Score}
	var player2 *game.Player
	if doc.Player2Username != "" {
		player2 = &game.Player{Username: doc.Player2Username, Score: doc.Player2Score}
	}
	return game.Resume(board, player1, player2, doc.IsPlayer1Turn)
}

// rebuildBoards reconstructs the nested category → column → questions
// structure from the flat composite keys, skipping malformed entries.
func rebuildBoards(flat *QuestionMap) map[string]domain.Board {
	boards := make(map[string]domain.Board)
	if flat == nil {
		return boards
	}
	for _, key := range flat.Keys() {
		parts := strings.Split(key, Separator)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			log.Printf("skipping malformed save entry %q", key)
			continue
		}
		category, column := parts[0], parts[1]

		questions, _ := flat.Get(key)
		copied := make([]domain.Question, len(questions))
		copy(copied, questions)

		board := boards[category]
		board.Name = category
		board.Columns = append(board.Columns, domain.Column{Name: column, Questions: copied})
		boards[category] = board
	}
	return boards
}

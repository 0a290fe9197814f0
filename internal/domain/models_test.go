package domain

import (
	"errors"
	"testing"
)

func TestNewQuestionRejectsBadIndex(t *testing.T) {
	cases := []struct {
		name    string
		options []string
		index   int
		points  int
		wantErr error
	}{
		{"valid", []string{"a", "b", "c"}, 1, 200, nil},
		{"index negative", []string{"a", "b"}, -1, 200, ErrAnswerIndexOutOfRange},
		{"index past end", []string{"a", "b"}, 2, 200, ErrAnswerIndexOutOfRange},
		{"single option", []string{"a"}, 0, 200, ErrTooFewOptions},
		{"zero points", []string{"a", "b"}, 0, 0, ErrNonPositivePointValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewQuestion("prompt", tc.options, tc.index, tc.points)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestColumnAddQuestionRules(t *testing.T) {
	var col Column
	for _, points := range []int{200, 400, 600, 800} {
		q, err := NewQuestion("q", []string{"a", "b"}, 0, points)
		if err != nil {
			t.Fatalf("new question: %v", err)
		}
		if err := col.AddQuestion(q); err != nil {
			t.Fatalf("add %d: %v", points, err)
		}
	}

	dup, _ := NewQuestion("q", []string{"a", "b"}, 0, 200)
	if err := col.AddQuestion(dup); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected full column, got %v", err)
	}

	var short Column
	first, _ := NewQuestion("q", []string{"a", "b"}, 0, 200)
	if err := short.AddQuestion(first); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := short.AddQuestion(first); !errors.Is(err, ErrDuplicatePointValue) {
		t.Fatalf("expected duplicate point value, got %v", err)
	}
}

func TestBoardValidate(t *testing.T) {
	valid := testBoard(t)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid board, got %v", err)
	}

	missing := testBoard(t)
	missing.Columns[0].Questions = missing.Columns[0].Questions[:3]
	if err := missing.Validate(); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("expected invalid board for 3-question column, got %v", err)
	}

	dup := testBoard(t)
	dup.Columns[0].Questions[1].PointValue = 200
	if err := dup.Validate(); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("expected invalid board for duplicate points, got %v", err)
	}

	unnamed := testBoard(t)
	unnamed.Name = ""
	if err := unnamed.Validate(); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("expected invalid board for empty name, got %v", err)
	}
}

func TestBoardLookupAndCounts(t *testing.T) {
	board := testBoard(t)

	q, err := board.Question("History", 2)
	if err != nil {
		t.Fatalf("question lookup: %v", err)
	}
	if q.PointValue != 600 {
		t.Fatalf("expected 600-point question at row 2, got %d", q.PointValue)
	}

	if _, err := board.Question("Geography", 0); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected not found for missing column, got %v", err)
	}
	if _, err := board.Question("History", 4); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected not found for row off the end, got %v", err)
	}

	if total := board.TotalQuestions(); total != 8 {
		t.Fatalf("expected 8 questions, got %d", total)
	}

	q.Answered = true
	if answered := board.AnsweredCount(); answered != 1 {
		t.Fatalf("expected 1 answered, got %d", answered)
	}
}

func testBoard(t *testing.T) Board {
	t.Helper()
	board := Board{Name: "TEST"}
	for _, name := range []string{"History", "Science"} {
		var col Column
		col.Name = name
		for _, points := range []int{200, 400, 600, 800} {
			q, err := NewQuestion("q", []string{"right", "wrong"}, 0, points)
			if err != nil {
				t.Fatalf("new question: %v", err)
			}
			if err := col.AddQuestion(q); err != nil {
				t.Fatalf("add question: %v", err)
			}
		}
		board.Columns = append(board.Columns, col)
	}
	return board
}

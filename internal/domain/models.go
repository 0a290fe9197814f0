package domain

// ColumnSize is the number of questions every complete column holds.
const ColumnSize = 4

// Question is a single cell on the board: the prompt, its candidate answers,
// which one is correct, and how many points it is worth. Answered flips to
// true exactly once and never resets.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	PointValue   int      `json:"pointValue"`
	Answered     bool     `json:"answered"`
}

// NewQuestion builds an unanswered question, rejecting a correct-answer index
// outside the options slice.
func NewQuestion(text string, options []string, correctIndex, pointValue int) (Question, error) {
	q := Question{
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
		PointValue:   pointValue,
	}
	if err := q.Check(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Check validates question invariants; used both at construction and when
// questions arrive from storage.
func (q Question) Check() error {
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ErrAnswerIndexOutOfRange
	}
	if q.PointValue <= 0 {
		return ErrNonPositivePointValue
	}
	return nil
}

// CorrectAnswer returns the text of the correct option. Rounds match player
// selections against this value rather than an index, since presentation
// shuffles the options.
func (q Question) CorrectAnswer() string {
	return q.Options[q.CorrectIndex]
}

// Column is a named subcategory holding up to four questions with
// pairwise-distinct point values.
type Column struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// AddQuestion appends a question to the column, enforcing the size cap and
// the distinct-point-value rule.
func (c *Column) AddQuestion(q Question) error {
	if err := q.Check(); err != nil {
		return err
	}
	if len(c.Questions) >= ColumnSize {
		return ErrColumnFull
	}
	for _, existing := range c.Questions {
		if existing.PointValue == q.PointValue {
			return ErrDuplicatePointValue
		}
	}
	c.Questions = append(c.Questions, q)
	return nil
}

// check verifies the column is complete: exactly four questions with four
// distinct point values, each individually valid.
func (c Column) check() error {
	if len(c.Questions) != ColumnSize {
		return ErrInvalidBoard
	}
	seen := make(map[int]struct{}, ColumnSize)
	for _, q := range c.Questions {
		if err := q.Check(); err != nil {
			return err
		}
		if _, dup := seen[q.PointValue]; dup {
			return ErrInvalidBoard
		}
		seen[q.PointValue] = struct{}{}
	}
	return nil
}

// Board is one category: an ordered set of columns. Slice order is display
// order. After a session starts the only permitted mutation is flipping
// Question.Answered.
type Board struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Validate reports whether the board may enter a session: every column
// complete and internally consistent. An incomplete custom board fails here.
func (b Board) Validate() error {
	if b.Name == "" || len(b.Columns) == 0 {
		return ErrInvalidBoard
	}
	names := make(map[string]struct{}, len(b.Columns))
	for _, col := range b.Columns {
		if col.Name == "" {
			return ErrInvalidBoard
		}
		if _, dup := names[col.Name]; dup {
			return ErrInvalidBoard
		}
		names[col.Name] = struct{}{}
		if err := col.check(); err != nil {
			return err
		}
	}
	return nil
}

// Column returns the named column, if present.
func (b *Board) Column(name string) (*Column, bool) {
	for i := range b.Columns {
		if b.Columns[i].Name == name {
			return &b.Columns[i], true
		}
	}
	return nil, false
}

// Question returns the question at (column, row).
func (b *Board) Question(column string, row int) (*Question, error) {
	col, ok := b.Column(column)
	if !ok {
		return nil, ErrQuestionNotFound
	}
	if row < 0 || row >= len(col.Questions) {
		return nil, ErrQuestionNotFound
	}
	return &col.Questions[row], nil
}

// TotalQuestions counts every question on the board.
func (b Board) TotalQuestions() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Questions)
	}
	return total
}

// AnsweredCount counts questions already flagged answered, so a restored
// board resumes with the right progress.
func (b Board) AnsweredCount() int {
	answered := 0
	for _, col := range b.Columns {
		for _, q := range col.Questions {
			if q.Answered {
				answered++
			}
		}
	}
	return answered
}

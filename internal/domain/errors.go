package domain

import "errors"

var (
	// ErrAnswerIndexOutOfRange is returned when a question's correct-answer
	// index does not point into its options.
	ErrAnswerIndexOutOfRange = errors.New("correct answer index out of range")
	// ErrTooFewOptions is returned when a question has fewer than two options.
	ErrTooFewOptions = errors.New("question needs at least two options")
	// ErrNonPositivePointValue is returned for a zero or negative point value.
	ErrNonPositivePointValue = errors.New("point value must be positive")
	// ErrColumnFull is returned when adding a fifth question to a column.
	ErrColumnFull = errors.New("column already holds four questions")
	// ErrDuplicatePointValue is returned when a column would hold two
	// questions at the same point value.
	ErrDuplicatePointValue = errors.New("duplicate point value in column")
	// ErrInvalidBoard indicates a board that must not enter a session.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrUnknownCategory indicates a category absent from both the predefined
	// catalog and any stored payload.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrQuestionNotFound indicates a (column, row) reference off the board.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuestionAlreadyAnswered guards the resolve-at-most-once rule.
	ErrQuestionAlreadyAnswered = errors.New("question already answered")
	// ErrRoundInFlight rejects operations that are ill-defined while an
	// answer round is unresolved, such as saving.
	ErrRoundInFlight = errors.New("answer round still unresolved")
	// ErrNoSession is returned when an operation needs a live session.
	ErrNoSession = errors.New("no game session in progress")
	// ErrMissingPlayer is returned when a session is started without a
	// first player.
	ErrMissingPlayer = errors.New("player 1 is required")
	// ErrCorruptDocument indicates a save document that cannot be read at all.
	ErrCorruptDocument = errors.New("corrupt save document")
	// ErrSaveNotFound indicates a missing save document.
	ErrSaveNotFound = errors.New("save not found")
	// ErrUserExists is returned when registering a duplicate username or email.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates no stored user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

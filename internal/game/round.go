package game

import (
	"context"
	"math/rand"
	"time"

	"quizboard-service/internal/domain"
)

// AnswerSeconds is the countdown a player gets per question.
const AnswerSeconds = 30

// Outcome is the resolution of an answer round. Timeouts score like incorrect
// answers but are reported distinctly for messaging.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimedOut
)

// String implements fmt.Stringer for wire messages and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimedOut:
		return "timedOut"
	default:
		return "pending"
	}
}

// Round presents one question for a bounded time. Exactly one resolution may
// occur: the first of a selection or the countdown hitting zero wins, and
// every later event is a no-op.
type Round struct {
	question  *domain.Question
	options   []string
	answer    string
	remaining int
	outcome   Outcome
	locked    bool
}

// NewRound shuffles the question's options (Fisher-Yates) and starts the
// countdown at AnswerSeconds.
func NewRound(q *domain.Question, rnd *rand.Rand) *Round {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	for i := len(options) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
	return &Round{
		question:  q,
		options:   options,
		answer:    q.CorrectAnswer(),
		remaining: AnswerSeconds,
	}
}

// Question returns the question under presentation.
func (r *Round) Question() *domain.Question { return r.question }

// Options returns the shuffled options in presentation order.
func (r *Round) Options() []string { return r.options }

// Remaining reports the seconds left on the countdown.
func (r *Round) Remaining() int { return r.remaining }

// Outcome reports the resolution, OutcomePending while the round is open.
func (r *Round) Outcome() Outcome { return r.outcome }

// Resolved reports whether the round has locked.
func (r *Round) Resolved() bool { return r.locked }

// Points returns the question's point value on a correct resolution and zero
// otherwise.
func (r *Round) Points() int {
	if r.outcome == OutcomeCorrect {
		return r.question.PointValue
	}
	return 0
}

// Tick advances the countdown by one second. Reaching zero resolves the round
// as timed out. Ticking a locked round is a no-op.
func (r *Round) Tick() bool {
	if r.locked {
		return true
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.locked = true
		r.outcome = OutcomeTimedOut
	}
	return r.locked
}

// Select resolves the round with the player's chosen option, matched against
// the correct option by value since shuffling moves indexes around. A
// selection after the round locked is absorbed as a no-op.
func (r *Round) Select(option string) bool {
	if r.locked {
		return true
	}
	r.locked = true
	if option == r.answer {
		r.outcome = OutcomeCorrect
	} else {
		r.outcome = OutcomeIncorrect
	}
	return true
}

// Play drives the round on a single goroutine: ticks and selections are
// serialized onto one timeline, so no two events ever race. onTick, when
// non-nil, observes each countdown step. Play returns the resolution, or
// OutcomePending with the context error if the caller went away mid-round.
func (r *Round) Play(ctx context.Context, ticks <-chan time.Time, selections <-chan string, onTick func(remaining int)) (Outcome, error) {
	for !r.locked {
		select {
		case <-ctx.Done():
			return r.outcome, ctx.Err()
		case <-ticks:
			r.Tick()
			if onTick != nil {
				onTick(r.remaining)
			}
		case option := <-selections:
			r.Select(option)
		}
	}
	return r.outcome, nil
}

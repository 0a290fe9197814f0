package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"quizboard-service/internal/app"
	"quizboard-service/internal/game"
)

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type pickPayload struct {
	Column string `json:"column"`
	Row    int    `json:"row"`
}

type answerPayload struct {
	Option string `json:"option"`
}

type loadPayload struct {
	ID string `json:"id"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type questionView struct {
	Column     string   `json:"column"`
	Row        int      `json:"row"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	PointValue int      `json:"pointValue"`
	Seconds    int      `json:"seconds"`
}

type tickView struct {
	Remaining int `json:"remaining"`
}

type resultView struct {
	Outcome       string `json:"outcome"`
	Correct       bool   `json:"correct"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correctAnswer"`
	Player1Score  int    `json:"player1Score"`
	Player2Score  int    `json:"player2Score"`
	IsPlayer1Turn bool   `json:"isPlayer1Turn"`
}

type savedView struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type cellView struct {
	PointValue int  `json:"pointValue"`
	Answered   bool `json:"answered"`
}

type columnView struct {
	Name  string     `json:"name"`
	Cells []cellView `json:"cells"`
}

type boardView struct {
	Category      string       `json:"category"`
	Columns       []columnView `json:"columns"`
	Player1       game.Player  `json:"player1"`
	Player2       *game.Player `json:"player2,omitempty"`
	IsPlayer1Turn bool         `json:"isPlayer1Turn"`
	Answered      int          `json:"answered"`
	Total         int          `json:"total"`
}

// ServeWS upgrades the connection and drives one game session over it.
// The category and players come from query parameters; after the initial
// board message the client sends pick/answer/save/load messages.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	player1 := r.URL.Query().Get("player1")
	player2 := r.URL.Query().Get("player2")
	if category == "" || player1 == "" {
		http.Error(w, "missing category or player1", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session, err := h.service.StartGame(ctx, category, player1, player2)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "board", Payload: buildBoardView(session)}

	var (
		selections chan string
		roundDone  chan struct{}
	)
	roundActive := func() bool {
		if roundDone == nil {
			return false
		}
		select {
		case <-roundDone:
			roundDone, selections = nil, nil
			return false
		default:
			return true
		}
	}
	sendErr := func(message string) {
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "pick":
			var payload pickPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				sendErr("invalid pick payload")
				continue
			}
			if roundActive() {
				sendErr("a question is already in progress")
				continue
			}
			round, err := h.service.PresentQuestion(payload.Column, payload.Row)
			if err != nil {
				sendErr(err.Error())
				continue
			}
			selections = make(chan string, 1)
			roundDone = make(chan struct{})
			send <- outboundMessage[any]{Type: "question", Payload: questionView{
				Column:     payload.Column,
				Row:        payload.Row,
				Text:       round.Question().Text,
				Options:    round.Options(),
				PointValue: round.Question().PointValue,
				Seconds:    round.Remaining(),
			}}
			go h.runRound(ctx, round, selections, send, roundDone)
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				sendErr("invalid answer payload")
				continue
			}
			if !roundActive() {
				sendErr("no question presented")
				continue
			}
			// Only the first selection counts; later ones are dropped.
			select {
			case selections <- payload.Option:
			default:
			}
		case "save":
			if roundActive() {
				sendErr("finish the current question before saving")
				continue
			}
			doc, err := h.service.SaveGame(ctx)
			if err != nil {
				sendErr(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "saved", Payload: savedView{ID: doc.ID, Timestamp: doc.SaveTimestamp}}
		case "load":
			var payload loadPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					sendErr("invalid load payload")
					continue
				}
			}
			if roundActive() {
				sendErr("finish the current question before loading")
				continue
			}
			restored, err := h.service.LoadGame(ctx, payload.ID)
			if err != nil {
				sendErr(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "board", Payload: buildBoardView(restored)}
		default:
			sendErr("unsupported message type")
		}
	}

	cancel()
	if roundDone != nil {
		<-roundDone
	}
	close(send)
	<-writerDone
}

// runRound drives one countdown on its own goroutine. Round.Play serializes
// ticks and selections; the handler only feeds events in.
func (h *WSHandler) runRound(ctx context.Context, round *game.Round, selections <-chan string, send chan<- outboundMessage[any], done chan<- struct{}) {
	defer close(done)

	trySend := func(msg outboundMessage[any]) {
		select {
		case send <- msg:
		case <-ctx.Done():
		}
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	_, err := round.Play(ctx, ticker.C, selections, func(remaining int) {
		trySend(outboundMessage[any]{Type: "tick", Payload: tickView{Remaining: remaining}})
	})
	if err != nil {
		// Connection went away mid-round; the question stays unanswered.
		return
	}

	outcome, points, standings, err := h.service.ResolveRound(round)
	if err != nil {
		trySend(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	session, ok := h.service.Session()
	if !ok {
		return
	}
	result := resultView{
		Outcome:       outcome.String(),
		Correct:       outcome == game.OutcomeCorrect,
		Points:        points,
		CorrectAnswer: round.Question().CorrectAnswer(),
		Player1Score:  session.Player1().Score,
		IsPlayer1Turn: session.Player1Turn(),
	}
	if p2, twoPlayer := session.Player2(); twoPlayer {
		result.Player2Score = p2.Score
	}
	trySend(outboundMessage[any]{Type: "result", Payload: result})

	if standings != nil {
		trySend(outboundMessage[any]{Type: "standings", Payload: *standings})
	}
}

func buildBoardView(session *game.Session) boardView {
	board := session.Board()
	view := boardView{
		Category:      board.Name,
		Player1:       session.Player1(),
		IsPlayer1Turn: session.Player1Turn(),
		Answered:      session.AnsweredCount(),
		Total:         session.TotalQuestions(),
	}
	if p2, ok := session.Player2(); ok {
		view.Player2 = &p2
	}
	for _, col := range board.Columns {
		cv := columnView{Name: col.Name}
		for _, q := range col.Questions {
			cv.Cells = append(cv.Cells, cellView{PointValue: q.PointValue, Answered: q.Answered})
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}

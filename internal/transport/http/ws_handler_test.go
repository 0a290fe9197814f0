package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"quizboard-service/internal/app"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/infra/memory"
)

func TestWebSocketGameFlow(t *testing.T) {
	server := newGameServer(t)
	defer server.Close()

	conn := dialGame(t, server, "category=MOVIES&player1=Alice")
	defer conn.Close()

	msgType, payload := readNext(conn, t, "board")
	if payload["category"] != "MOVIES" {
		t.Fatalf("expected MOVIES board, got %v", payload["category"])
	}
	if payload["total"] != float64(8) {
		t.Fatalf("expected 8 questions, got %v", payload["total"])
	}

	pick := map[string]any{
		"type":    "pick",
		"payload": map[string]any{"column": "Directors", "row": 0},
	}
	if err := conn.WriteJSON(pick); err != nil {
		t.Fatalf("write pick: %v", err)
	}

	msgType, payload = readNext(conn, t, "question")
	if payload["pointValue"] != float64(200) {
		t.Fatalf("expected 200 point question, got %v", payload["pointValue"])
	}

	answer := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"option": "right"},
	}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}

	// Ticks may arrive before the result depending on timing.
	for i := 0; i < 5; i++ {
		msgType, payload = readNext(conn, t, "")
		if msgType == "result" {
			break
		}
		if msgType != "tick" {
			t.Fatalf("expected tick or result, got %s", msgType)
		}
	}
	if msgType != "result" {
		t.Fatalf("never received a result")
	}
	if payload["correct"] != true {
		t.Fatalf("expected a correct result, got %v", payload)
	}
	if payload["player1Score"] != float64(200) {
		t.Fatalf("expected score 200, got %v", payload["player1Score"])
	}

	save := map[string]any{"type": "save"}
	if err := conn.WriteJSON(save); err != nil {
		t.Fatalf("write save: %v", err)
	}
	_, payload = readNext(conn, t, "saved")
	if payload["id"] == "" {
		t.Fatalf("expected a save id")
	}
}

func TestWebSocketRejectsBadPick(t *testing.T) {
	server := newGameServer(t)
	defer server.Close()

	conn := dialGame(t, server, "category=MOVIES&player1=Alice&player2=Bob")
	defer conn.Close()

	readNext(conn, t, "board")

	pick := map[string]any{
		"type":    "pick",
		"payload": map[string]any{"column": "Nope", "row": 0},
	}
	if err := conn.WriteJSON(pick); err != nil {
		t.Fatalf("write pick: %v", err)
	}
	readNext(conn, t, "error")
}

func TestWebSocketUnknownCategory(t *testing.T) {
	server := newGameServer(t)
	defer server.Close()

	conn := dialGame(t, server, "category=NOPE&player1=Alice")
	defer conn.Close()

	readNext(conn, t, "error")
}

func newGameServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := memory.NewBoardRepository(memory.NewStaticBoardLoader(map[string]domain.Board{
		"MOVIES": sampleBoard(),
	}), time.Minute)
	service := app.NewGameService(repo, memory.NewSaveStore())
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	return httptest.NewServer(mux)
}

func dialGame(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func sampleBoard() domain.Board {
	board := domain.Board{Name: "MOVIES"}
	for _, name := range []string{"Directors", "Oscars"} {
		column := domain.Column{Name: name}
		for _, points := range []int{200, 400, 600, 800} {
			column.Questions = append(column.Questions, domain.Question{
				Text:       "q " + name,
				Options:    []string{"right", "wrong", "other"},
				PointValue: points,
			})
		}
		board.Columns = append(board.Columns, column)
	}
	return board
}

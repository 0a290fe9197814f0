// Package savegame defines the durable snapshot of a session and its board,
// and the codec that round-trips it exactly.
package savegame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"quizboard-service/internal/domain"
)

// Separator joins a category and column name into one storage key.
const Separator = "::"

// Document is the JSON shape persisted for one saved game. The board is
// flattened into CustomCategories under "category::column" keys and
// reconstructed on load.
type Document struct {
	ID               string       `json:"id"`
	Player1Username  string       `json:"player1Username"`
	Player2Username  string       `json:"player2Username,omitempty"`
	Player1Score     int          `json:"player1Score"`
	Player2Score     int          `json:"player2Score"`
	SelectedCategory string       `json:"selectedCategory"`
	CustomCategories *QuestionMap `json:"customCategories,omitempty"`
	IsPlayer1Turn    bool         `json:"isPlayer1Turn"`
	SaveTimestamp    time.Time    `json:"saveTimestamp"`
}

// Encode serializes the document for storage.
func Encode(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode save document: %w", err)
	}
	return data, nil
}

// Decode parses a stored document. A document that cannot be parsed at all
// fails the whole load with ErrCorruptDocument; per-entry corruption inside
// CustomCategories is handled later, at restore time.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}
	return doc, nil
}

// QuestionMap is a JSON object mapping "category::column" keys to question
// lists. Unlike a plain Go map it remembers insertion order, so a saved
// board's column order survives the round trip.
type QuestionMap struct {
	keys    []string
	entries map[string][]domain.Question
}

// NewQuestionMap returns an empty map.
func NewQuestionMap() *QuestionMap {
	return &QuestionMap{entries: make(map[string][]domain.Question)}
}

// Set stores questions under key, appending the key on first use.
func (m *QuestionMap) Set(key string, questions []domain.Question) {
	if m.entries == nil {
		m.entries = make(map[string][]domain.Question)
	}
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = questions
}

// Get returns the questions stored under key.
func (m *QuestionMap) Get(key string) ([]domain.Question, bool) {
	qs, ok := m.entries[key]
	return qs, ok
}

// Keys returns the keys in insertion order.
func (m *QuestionMap) Keys() []string {
	return m.keys
}

// Len reports the number of entries.
func (m *QuestionMap) Len() int {
	return len(m.keys)
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *QuestionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so key order is kept.
func (m *QuestionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: customCategories is not an object", domain.ErrCorruptDocument)
	}

	m.keys = nil
	m.entries = make(map[string][]domain.Question)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key in customCategories", domain.ErrCorruptDocument)
		}
		var questions []domain.Question
		if err := dec.Decode(&questions); err != nil {
			return err
		}
		m.Set(key, questions)
	}
	_, err = dec.Token() // closing brace
	return err
}

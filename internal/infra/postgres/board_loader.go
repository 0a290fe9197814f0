package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quizboard-service/internal/domain"
)

// BoardLoader loads custom board JSONB from Postgres.
type BoardLoader struct {
	pool *pgxpool.Pool
}

func NewBoardLoader(pool *pgxpool.Pool) *BoardLoader {
	return &BoardLoader{pool: pool}
}

func (l *BoardLoader) LoadBoard(ctx context.Context, name string) (domain.Board, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM boards WHERE name=$1`, name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Board{}, fmt.Errorf("board %q: %w", name, domain.ErrUnknownCategory)
	}
	if err != nil {
		return domain.Board{}, fmt.Errorf("load board: %w", err)
	}
	var board domain.Board
	if err := json.Unmarshal(raw, &board); err != nil {
		return domain.Board{}, fmt.Errorf("unmarshal board: %w", err)
	}
	return board, nil
}

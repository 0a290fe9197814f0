package cli

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"quizboard-service/internal/app"
	"quizboard-service/internal/auth"
	"quizboard-service/internal/config"
	"quizboard-service/internal/domain"
	"quizboard-service/internal/infra/memory"
	pgstore "quizboard-service/internal/infra/postgres"
	redisstore "quizboard-service/internal/infra/redis"
	transport "quizboard-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz board server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	boardTTL := config.TTLDuration(cfg.Board.TTL, 10*time.Minute)
	saveTTL := config.TTLDuration(cfg.Save.TTL, 24*time.Hour)

	var loader memory.BoardLoader = memory.NewStaticBoardLoader(sampleBoards())
	if pool != nil {
		loader = pgstore.NewBoardLoader(pool)
	}

	var boards app.BoardRepository
	if redisClient != nil {
		boards = redisstore.NewBoardRepository(redisClient, loader, boardTTL)
	} else {
		boards = memory.NewBoardRepository(loader, boardTTL)
	}

	var saves app.SaveStore
	if redisClient != nil {
		saves = redisstore.NewSaveStore(redisClient, saveTTL)
	} else {
		saves = memory.NewSaveStore()
	}

	var users auth.UserStore = memory.NewUserStore()
	if cfg.Postgres.URL != "" {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
		db := bun.NewDB(sqldb, pgdialect.New())
		defer db.Close()
		users = pgstore.NewUserStore(db)
	}

	gameService := app.NewGameService(boards, saves)
	authService := auth.NewService(users)
	wsHandler := transport.NewWSHandler(gameService)
	authHandler := transport.NewAuthHandler(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/register", authHandler.Register)
	mux.HandleFunc("/login", authHandler.Login)

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz board service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleBoards seeds one custom board when no database is configured;
// the predefined categories are always available.
func sampleBoards() map[string]domain.Board {
	board := domain.Board{Name: "MOVIES"}
	columns := map[string][]string{
		"Directors": {
			"Who directed Jaws?",
			"Who directed Pulp Fiction?",
			"Who directed The Godfather?",
			"Who directed Parasite?",
		},
		"Actors": {
			"Who played Jack in Titanic?",
			"Who played the Joker in The Dark Knight?",
			"Who played Forrest Gump?",
			"Who played Ellen Ripley in Alien?",
		},
		"Oscars": {
			"Which film won Best Picture in 1998?",
			"Which film won Best Picture in 2004?",
			"Which film won Best Picture in 2020?",
			"Which actor has the most Oscar wins?",
		},
		"Animation": {
			"Which studio made Spirited Away?",
			"Which was the first fully computer-animated feature film?",
			"Who voices Woody in Toy Story?",
			"Which film features the song Let It Go?",
		},
	}
	options := map[string][]string{
		"Who directed Jaws?":                                        {"Steven Spielberg", "George Lucas", "Martin Scorsese", "Ridley Scott"},
		"Who directed Pulp Fiction?":                                {"Quentin Tarantino", "Robert Rodriguez", "David Fincher", "Joel Coen"},
		"Who directed The Godfather?":                               {"Francis Ford Coppola", "Martin Scorsese", "Brian De Palma", "Sidney Lumet"},
		"Who directed Parasite?":                                    {"Bong Joon-ho", "Park Chan-wook", "Hirokazu Kore-eda", "Akira Kurosawa"},
		"Who played Jack in Titanic?":                               {"Leonardo DiCaprio", "Brad Pitt", "Matt Damon", "Johnny Depp"},
		"Who played the Joker in The Dark Knight?":                  {"Heath Ledger", "Jack Nicholson", "Joaquin Phoenix", "Jared Leto"},
		"Who played Forrest Gump?":                                  {"Tom Hanks", "Kevin Costner", "Tom Cruise", "Robin Williams"},
		"Who played Ellen Ripley in Alien?":                         {"Sigourney Weaver", "Jamie Lee Curtis", "Linda Hamilton", "Jodie Foster"},
		"Which film won Best Picture in 1998?":                      {"Titanic", "Good Will Hunting", "L.A. Confidential", "As Good as It Gets"},
		"Which film won Best Picture in 2004?":                      {"The Lord of the Rings: The Return of the King", "Lost in Translation", "Mystic River", "Seabiscuit"},
		"Which film won Best Picture in 2020?":                      {"Parasite", "1917", "Joker", "Once Upon a Time in Hollywood"},
		"Which actor has the most Oscar wins?":                      {"Katharine Hepburn", "Meryl Streep", "Jack Nicholson", "Daniel Day-Lewis"},
		"Which studio made Spirited Away?":                          {"Studio Ghibli", "Toei Animation", "Pixar", "Madhouse"},
		"Which was the first fully computer-animated feature film?": {"Toy Story", "Shrek", "A Bug's Life", "Antz"},
		"Who voices Woody in Toy Story?":                            {"Tom Hanks", "Tim Allen", "Billy Crystal", "Mike Myers"},
		"Which film features the song Let It Go?":                   {"Frozen", "Moana", "Tangled", "Encanto"},
	}
	for _, name := range []string{"Directors", "Actors", "Oscars", "Animation"} {
		column := domain.Column{Name: name}
		for i, text := range columns[name] {
			column.Questions = append(column.Questions, domain.Question{
				Text:       text,
				Options:    options[text],
				PointValue: (i + 1) * 200,
			})
		}
		board.Columns = append(board.Columns, column)
	}
	return map[string]domain.Board{board.Name: board}
}

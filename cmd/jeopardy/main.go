// Command jeopardy serves a Christmas Jeopardy session: it loads the question
// set, opens a game, and exposes the board over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/SAMIC97/Christmas-Jeopardy/internal/game"
	"github.com/SAMIC97/Christmas-Jeopardy/internal/questions"
	"github.com/SAMIC97/Christmas-Jeopardy/internal/server"
)

func main() {
	// A .env file is optional; flags and JEOPARDY_* variables take over.
	_ = godotenv.Load()

	cfg := &config{}
	cmd := newCmd(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Fatal("exiting")
	}
}

func run(ctx context.Context, cfg *config) error {
	if cfg.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cats, err := questions.LoadFile(cfg.questionsPath)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"path":       cfg.questionsPath,
		"categories": len(cats),
	}).Info("question set loaded")

	g, err := game.NewTriviaGame(game.Config{
		Rules:      cfg.rules(),
		Categories: cats,
		TeamCount:  cfg.teams,
		TeamNames:  cfg.teamNames,
	})
	if err != nil {
		return err
	}

	srv := server.New(server.Options{Bind: cfg.bind, Port: cfg.port}, g)
	return srv.Run(ctx)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Austidav59/finanacebuddy/internal/auth"
	"github.com/Austidav59/finanacebuddy/internal/config"
	"github.com/Austidav59/finanacebuddy/internal/creditcard"
	"github.com/Austidav59/finanacebuddy/internal/debitcard"
	"github.com/Austidav59/finanacebuddy/internal/expense"
	"github.com/Austidav59/finanacebuddy/internal/income"
	"github.com/Austidav59/finanacebuddy/internal/router"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Single pool shared by every handler, closed on the way out.
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := router.New(cfg.HTTP.CORSOrigin)
	r := &router.Router{
		Income:     income.NewHandler(income.NewRepository(pool)),
		Expense:    expense.NewHandler(expense.NewRepository(pool)),
		CreditCard: creditcard.NewHandler(creditcard.NewRepository(pool)),
		DebitCard:  debitcard.NewHandler(debitcard.NewRepository(pool)),
		AuthMW:     auth.Middleware(cfg.Auth.JWTSecret),
	}
	r.RegisterRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Println("listening on", cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func configPath() string {
	if p := os.Getenv("FB_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

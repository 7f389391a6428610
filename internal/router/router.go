// Package router wires the HTTP surface: one route per (resource, verb)
// pair, a shared error envelope, and the cross-cutting middleware.
package router

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Austidav59/finanacebuddy/internal/creditcard"
	"github.com/Austidav59/finanacebuddy/internal/debitcard"
	"github.com/Austidav59/finanacebuddy/internal/expense"
	"github.com/Austidav59/finanacebuddy/internal/income"
)

type Router struct {
	Income     *income.Handler
	Expense    *expense.Handler
	CreditCard *creditcard.Handler
	DebitCard  *debitcard.Handler
	AuthMW     fiber.Handler
}

// New builds a Fiber app with the standard error envelope and middleware.
func New(corsOrigin string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Use(CorsMiddleware(corsOrigin))
	app.Use(requestLogger())
	return app
}

// ErrorHandler renders every error as {code, message}. Internal detail never
// reaches the response body; handlers log it before returning a fiber.Error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"code": code, "message": message})
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON("Welcome to the Financial API")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	mw := r.AuthMW
	if mw == nil {
		mw = func(c *fiber.Ctx) error { return c.Next() }
	}

	app.Get("/income/:userId", mw, r.Income.List)
	app.Post("/income/add", mw, r.Income.Create)
	app.Put("/income/update/:id", mw, r.Income.Update)
	app.Delete("/income/delete/:id", mw, r.Income.Delete)

	app.Get("/expenses/:userId", mw, r.Expense.List)
	app.Post("/expenses/add", mw, r.Expense.Create)
	app.Put("/expenses/update/:id", mw, r.Expense.Update)
	app.Delete("/expenses/delete/:id", mw, r.Expense.Delete)

	app.Get("/creditcards/:userId", mw, r.CreditCard.List)
	app.Post("/creditcards/add", mw, r.CreditCard.Create)
	app.Put("/creditcards/update/:id", mw, r.CreditCard.Update)
	app.Delete("/creditcards/delete/:id", mw, r.CreditCard.Delete)

	app.Get("/debitcards/:userId", mw, r.DebitCard.List)
	app.Post("/debitcards/add", mw, r.DebitCard.Create)
	app.Put("/debitcards/update/:id", mw, r.DebitCard.Update)
	app.Delete("/debitcards/delete/:id", mw, r.DebitCard.Delete)
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}

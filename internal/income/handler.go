package income

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Austidav59/finanacebuddy/internal/validate"
)

// Store is the persistence surface the handler depends on. *Repository
// implements it.
type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Income, error)
	Insert(ctx context.Context, inc *Income) (string, error)
	UpdateByID(ctx context.Context, id string, amount decimal.Decimal, source string) (*Income, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.Store.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		log.Printf("list income: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching income")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := validate.All(
		validate.RequiredText("userId", req.UserID),
		validate.Required("amount", req.Amount),
		validate.RequiredText("source", req.Source),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Positive("amount", *req.Amount); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	inc := &Income{
		UserID: strings.TrimSpace(*req.UserID),
		Amount: *req.Amount,
		Source: strings.TrimSpace(*req.Source),
	}
	id, err := h.Store.Insert(c.UserContext(), inc)
	if err != nil {
		log.Printf("insert income: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error adding income")
	}

	return c.Status(fiber.StatusCreated).JSON(CreateIncomeResponse{
		ID:      id,
		Message: "income added successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var req UpdateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.All(
		validate.Required("amount", req.Amount),
		validate.RequiredText("source", req.Source),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Positive("amount", *req.Amount); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	inc, err := h.Store.UpdateByID(c.UserContext(), id, *req.Amount, strings.TrimSpace(*req.Source))
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "income not found")
	}
	if err != nil {
		log.Printf("update income %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error updating income")
	}

	return c.JSON(UpdateIncomeResponse{
		Message: "income updated successfully",
		Income:  inc,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	count, err := h.Store.DeleteByID(c.UserContext(), id)
	if err != nil {
		log.Printf("delete income %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting income")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "income not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

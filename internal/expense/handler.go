package expense

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Austidav59/finanacebuddy/internal/validate"
)

type Store interface {
	ListByUser(ctx context.Context, userID string) ([]Expense, error)
	Insert(ctx context.Context, exp *Expense) (*Expense, error)
	UpdateByID(ctx context.Context, id string, f Fields) (*Expense, error)
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
		log.Printf("list expenses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching expenses")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := validate.All(
		validate.RequiredText("userId", req.UserID),
		validate.Required("amount", req.Amount),
		validate.RequiredText("category", req.Category),
		validate.RequiredText("description", req.Description),
		validate.RequiredText("dateIncurred", req.DateIncurred),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	dateIncurred, err := validate.ParseDate("dateIncurred", *req.DateIncurred)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	exp := &Expense{
		UserID:       strings.TrimSpace(*req.UserID),
		Amount:       *req.Amount,
		Category:     strings.TrimSpace(*req.Category),
		Description:  strings.TrimSpace(*req.Description),
		DateIncurred: dateIncurred,
	}
	stored, err := h.Store.Insert(c.UserContext(), exp)
	if err != nil {
		log.Printf("insert expense: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error adding expense")
	}

	return c.Status(fiber.StatusCreated).JSON(CreateExpenseResponse{
		ID:      stored.ID,
		Message: "expense added successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var req UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.All(
		validate.Required("amount", req.Amount),
		validate.RequiredText("category", req.Category),
		validate.RequiredText("description", req.Description),
		validate.RequiredText("dateIncurred", req.DateIncurred),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Positive("amount", *req.Amount); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	dateIncurred, err := validate.ParseDate("dateIncurred", *req.DateIncurred)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.NotFuture("dateIncurred", dateIncurred); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	exp, err := h.Store.UpdateByID(c.UserContext(), id, Fields{
		Amount:       *req.Amount,
		Category:     strings.TrimSpace(*req.Category),
		Description:  strings.TrimSpace(*req.Description),
		DateIncurred: dateIncurred,
	})
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	if err != nil {
		log.Printf("update expense %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error updating expense")
	}

	return c.JSON(UpdateExpenseResponse{
		Message: "expense updated successfully",
		Expense: exp,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	count, err := h.Store.DeleteByID(c.UserContext(), id)
	if err != nil {
		log.Printf("delete expense %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting expense")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

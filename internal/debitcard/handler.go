package debitcard

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Austidav59/finanacebuddy/internal/card"
	"github.com/Austidav59/finanacebuddy/internal/validate"
)

type Store interface {
	ListByUser(ctx context.Context, userID string) ([]DebitCard, error)
	Insert(ctx context.Context, dc *DebitCard) (string, error)
	UpdateByID(ctx context.Context, id string, f Fields) (*DebitCard, error)
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
		log.Printf("list debit cards: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching debit cards")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateDebitCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := validate.All(
		validate.RequiredText("userId", req.UserID),
		validate.RequiredText("cardNumber", req.CardNumber),
		validate.RequiredText("cardholderName", req.CardholderName),
		validate.RequiredText("expirationDate", req.ExpirationDate),
		validate.Required("accountBalance", req.AccountBalance),
		validate.RequiredText("bankName", req.BankName),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !card.ValidNumber(*req.CardNumber) {
		return fiber.NewError(fiber.StatusBadRequest, "cardNumber must be exactly 16 digits")
	}
	expirationDate, err := validate.ParseDate("expirationDate", *req.ExpirationDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.All(
		validate.Future("expirationDate", expirationDate),
		validate.NonNegative("accountBalance", *req.AccountBalance),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dc := &DebitCard{
		UserID:         strings.TrimSpace(*req.UserID),
		CardNumber:     card.Mask(*req.CardNumber),
		CardholderName: strings.TrimSpace(*req.CardholderName),
		ExpirationDate: expirationDate,
		AccountBalance: *req.AccountBalance,
		BankName:       strings.TrimSpace(*req.BankName),
	}
	id, err := h.Store.Insert(c.UserContext(), dc)
	if err != nil {
		log.Printf("insert debit card: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error adding debit card")
	}

	return c.Status(fiber.StatusCreated).JSON(CreateDebitCardResponse{
		ID:      id,
		Message: "debit card added successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var req UpdateDebitCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.All(
		validate.RequiredText("cardNumber", req.CardNumber),
		validate.RequiredText("cardholderName", req.CardholderName),
		validate.RequiredText("expirationDate", req.ExpirationDate),
		validate.Required("accountBalance", req.AccountBalance),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	expirationDate, err := validate.ParseDate("expirationDate", *req.ExpirationDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	dc, err := h.Store.UpdateByID(c.UserContext(), id, Fields{
		CardNumber:     card.Mask(*req.CardNumber),
		CardholderName: strings.TrimSpace(*req.CardholderName),
		ExpirationDate: expirationDate,
		AccountBalance: *req.AccountBalance,
	})
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "debit card not found")
	}
	if err != nil {
		log.Printf("update debit card %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error updating debit card")
	}

	return c.JSON(UpdateDebitCardResponse{
		Message:   "debit card updated successfully",
		DebitCard: dc,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	count, err := h.Store.DeleteByID(c.UserContext(), id)
	if err != nil {
		log.Printf("delete debit card %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting debit card")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "debit card not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package creditcard

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
	ListByUser(ctx context.Context, userID string) ([]CreditCard, error)
	Insert(ctx context.Context, cc *CreditCard) (string, error)
	UpdateByID(ctx context.Context, id string, f Fields) (*CreditCard, error)
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
		log.Printf("list credit cards: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error fetching credit cards")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateCreditCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := validate.All(
		validate.RequiredText("userId", req.UserID),
		validate.RequiredText("cardNumber", req.CardNumber),
		validate.RequiredText("cardholderName", req.CardholderName),
		validate.RequiredText("expirationDate", req.ExpirationDate),
		validate.RequiredText("cvv", req.CVV),
		validate.Required("creditLimit", req.CreditLimit),
		validate.Required("currentBalance", req.CurrentBalance),
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
		validate.NonNegative("creditLimit", *req.CreditLimit),
		validate.NonNegative("currentBalance", *req.CurrentBalance),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	cc := &CreditCard{
		UserID:         strings.TrimSpace(*req.UserID),
		CardNumber:     card.Mask(*req.CardNumber),
		CardholderName: strings.TrimSpace(*req.CardholderName),
		ExpirationDate: expirationDate,
		CVV:            *req.CVV,
		CreditLimit:    *req.CreditLimit,
		CurrentBalance: *req.CurrentBalance,
	}
	id, err := h.Store.Insert(c.UserContext(), cc)
	if err != nil {
		log.Printf("insert credit card: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "error adding credit card")
	}

	return c.Status(fiber.StatusCreated).JSON(CreateCreditCardResponse{
		ID:      id,
		Message: "credit card added successfully",
	})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var req UpdateCreditCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validate.All(
		validate.RequiredText("cardNumber", req.CardNumber),
		validate.RequiredText("cardholderName", req.CardholderName),
		validate.RequiredText("expirationDate", req.ExpirationDate),
		validate.RequiredText("cvv", req.CVV),
		validate.Required("creditLimit", req.CreditLimit),
		validate.Required("currentBalance", req.CurrentBalance),
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
		validate.NonNegative("creditLimit", *req.CreditLimit),
		validate.NonNegative("currentBalance", *req.CurrentBalance),
	); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	cc, err := h.Store.UpdateByID(c.UserContext(), id, Fields{
		CardNumber:     card.Mask(*req.CardNumber),
		CardholderName: strings.TrimSpace(*req.CardholderName),
		ExpirationDate: expirationDate,
		CVV:            *req.CVV,
		CreditLimit:    *req.CreditLimit,
		CurrentBalance: *req.CurrentBalance,
	})
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "credit card not found")
	}
	if err != nil {
		log.Printf("update credit card %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error updating credit card")
	}

	return c.JSON(UpdateCreditCardResponse{
		Message:    "credit card updated successfully",
		CreditCard: cc,
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := validate.RecordID(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	count, err := h.Store.DeleteByID(c.UserContext(), id)
	if err != nil {
		log.Printf("delete credit card %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "error deleting credit card")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "credit card not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

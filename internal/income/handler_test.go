package income

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodID = "7b2e9d8e-4f4d-4a4f-b05f-09a6fca8a2a1"

type stubStore struct {
	listFn   func(ctx context.Context, userID string) ([]Income, error)
	insertFn func(ctx context.Context, inc *Income) (string, error)
	updateFn func(ctx context.Context, id string, amount decimal.Decimal, source string) (*Income, error)
	deleteFn func(ctx context.Context, id string) (int64, error)

	inserts int
	updates int
	deletes int
}

func (s *stubStore) ListByUser(ctx context.Context, userID string) ([]Income, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return []Income{}, nil
}

func (s *stubStore) Insert(ctx context.Context, inc *Income) (string, error) {
	s.inserts++
	if s.insertFn != nil {
		return s.insertFn(ctx, inc)
	}
	return goodID, nil
}

func (s *stubStore) UpdateByID(ctx context.Context, id string, amount decimal.Decimal, source string) (*Income, error) {
	s.updates++
	if s.updateFn != nil {
		return s.updateFn(ctx, id, amount, source)
	}
	return &Income{ID: id, UserID: "u1", Amount: amount, Source: source}, nil
}

func (s *stubStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	s.deletes++
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return 1, nil
}

func newTestApp(store Store) *fiber.App {
	h := NewHandler(store)
	app := fiber.New()
	app.Get("/income/:userId", h.List)
	app.Post("/income/add", h.Create)
	app.Put("/income/update/:id", h.Update)
	app.Delete("/income/delete/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestCreateIncome(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)

	status, body := doJSON(t, app, "POST", "/income/add",
		`{"userId":"u1","amount":100,"source":"salary"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 1, store.inserts)

	var resp CreateIncomeResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, goodID, resp.ID)
	assert.Equal(t, "income added successfully", resp.Message)
}

func TestCreateIncomeMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no userId", `{"amount":100,"source":"salary"}`},
		{"no amount", `{"userId":"u1","source":"salary"}`},
		{"no source", `{"userId":"u1","amount":100}`},
		{"blank source", `{"userId":"u1","amount":100,"source":"  "}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := &stubStore{}
			app := newTestApp(store)
			status, _ := doJSON(t, app, "POST", "/income/add", c.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Zero(t, store.inserts, "persistence must not be invoked")
		})
	}
}

func TestCreateIncomeAmountNotPositive(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)
	status, _ := doJSON(t, app, "POST", "/income/add",
		`{"userId":"u1","amount":0,"source":"salary"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, store.inserts)
}

func TestCreateIncomeStringAmountCoerced(t *testing.T) {
	var got decimal.Decimal
	store := &stubStore{
		insertFn: func(_ context.Context, inc *Income) (string, error) {
			got = inc.Amount
			return goodID, nil
		},
	}
	app := newTestApp(store)
	status, _ := doJSON(t, app, "POST", "/income/add",
		`{"userId":"u1","amount":"12.50","source":"salary"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, got.Equal(decimal.RequireFromString("12.5")), "got %s", got)
}

func TestListIncomeEmpty(t *testing.T) {
	app := newTestApp(&stubStore{})
	status, body := doJSON(t, app, "GET", "/income/u1", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", body)
}

func TestListIncomeStoreFailure(t *testing.T) {
	store := &stubStore{
		listFn: func(context.Context, string) ([]Income, error) {
			return nil, errors.New("connection refused")
		},
	}
	app := newTestApp(store)
	status, body := doJSON(t, app, "GET", "/income/u1", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body, "connection refused")
}

func TestUpdateIncomeInvalidID(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)
	status, _ := doJSON(t, app, "PUT", "/income/update/123",
		`{"amount":5,"source":"salary"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, store.updates, "store must not be touched on malformed id")
}

func TestUpdateIncomeNotFound(t *testing.T) {
	store := &stubStore{
		updateFn: func(context.Context, string, decimal.Decimal, string) (*Income, error) {
			return nil, ErrNotFound
		},
	}
	app := newTestApp(store)
	status, _ := doJSON(t, app, "PUT", "/income/update/"+goodID,
		`{"amount":5,"source":"salary"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateIncome(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)
	status, body := doJSON(t, app, "PUT", "/income/update/"+goodID,
		`{"amount":5,"source":"bonus"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var resp UpdateIncomeResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "income updated successfully", resp.Message)
	require.NotNil(t, resp.Income)
	assert.Equal(t, "bonus", resp.Income.Source)
}

func TestDeleteIncome(t *testing.T) {
	remaining := int64(1)
	store := &stubStore{
		deleteFn: func(context.Context, string) (int64, error) {
			n := remaining
			remaining = 0
			return n, nil
		},
	}
	app := newTestApp(store)

	status, _ := doJSON(t, app, "DELETE", "/income/delete/"+goodID, "")
	assert.Equal(t, fiber.StatusNoContent, status)

	// deleting the same id again is a 404
	status, _ = doJSON(t, app, "DELETE", "/income/delete/"+goodID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteIncomeInvalidID(t *testing.T) {
	store := &stubStore{}
	app := newTestApp(store)
	status, _ := doJSON(t, app, "DELETE", "/income/delete/not-an-id", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, store.deletes)
}

package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamargo/almacen-api/internal/application/orders"
	"github.com/acamargo/almacen-api/internal/domain/entity"
	"github.com/acamargo/almacen-api/internal/domain/order"
	"github.com/acamargo/almacen-api/internal/domain/repository"
	apphttp "github.com/acamargo/almacen-api/internal/interfaces/http"
	"github.com/acamargo/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar los handlers de documentos sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	rows map[string]*entity.Order
}

func (m *memOrderRepo) Create(o *entity.Order) error {
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	return m.GetByID(id)
}

func (m *memOrderRepo) Update(o *entity.Order) (bool, error) {
	stored, ok := m.rows[o.ID]
	if !ok || stored.Status != order.StatusPending {
		return false, nil
	}
	cp := *o
	m.rows[o.ID] = &cp
	return true, nil
}

func (m *memOrderRepo) Transition(o *entity.Order, from order.Status) (bool, error) {
	stored, ok := m.rows[o.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	cp := *o
	m.rows[o.ID] = &cp
	return true, nil
}

func (m *memOrderRepo) Delete(id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memOrderRepo) List(repository.OrderFilter) ([]*repository.OrderRow, int, error) {
	return nil, 0, nil
}

func (m *memOrderRepo) CountByProduct(string) (int, error) { return 0, nil }

type memProductRepo struct {
	p *entity.Product
}

func (m *memProductRepo) Create(*entity.Product) error { return nil }

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if m.p != nil && m.p.ID == id {
		return m.p, nil
	}
	return nil, nil
}

func (m *memProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, nil }
func (m *memProductRepo) Update(*entity.Product) error               { return nil }
func (m *memProductRepo) UpdateStatus(string, int) (bool, error)     { return false, nil }
func (m *memProductRepo) CountByCategory(string) (int, error)        { return 0, nil }
func (m *memProductRepo) Delete(string) error                        { return nil }
func (m *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

type memInventoryRepo struct {
	rows map[string]*entity.Inventory
}

func (m *memInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	m.rows[inv.ProductID] = &cp
	return nil
}

func (m *memInventoryRepo) GetByID(string) (*entity.Inventory, error) { return nil, nil }

func (m *memInventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	inv, ok := m.rows[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (m *memInventoryRepo) GetForUpdate(productID string) (*entity.Inventory, error) {
	return m.GetByProductID(productID)
}

func (m *memInventoryRepo) SetQuantity(id string, quantity, warningStock int) error {
	for _, inv := range m.rows {
		if inv.ID == id {
			inv.Quantity = quantity
			inv.WarningStock = warningStock
		}
	}
	return nil
}

func (m *memInventoryRepo) List(string, bool, int, int) ([]*repository.InventoryRow, int, error) {
	return nil, 0, nil
}
func (m *memInventoryRepo) ListLowStock() ([]*repository.InventoryRow, error) { return nil, nil }
func (m *memInventoryRepo) DeleteByProductID(string) error                    { return nil }

type memSequenceRepo struct {
	n int
}

func (m *memSequenceRepo) Next(context.Context, order.DocType, time.Time) (int, error) {
	m.n++
	return m.n, nil
}

type memTxRunner struct {
	orders *memOrderRepo
	seq    *memSequenceRepo
	inv    *memInventoryRepo
}

func (m *memTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository,
	repository.SequenceRepository,
	repository.InventoryRepository,
) error) error {
	return fn(m.orders, m.seq, m.inv)
}

// newOrderTestApp monta las rutas de documentos sin auth; un middleware fija
// los locals que en producción carga el JWT.
func newOrderTestApp(t *testing.T) (*fiber.App, *memOrderRepo, *entity.Product) {
	t.Helper()
	p := &entity.Product{
		ID:     uuid.New().String(),
		SKU:    "SKU-CAFE-500",
		Name:   "Café molido 500g",
		Unit:   "unidad",
		Status: entity.StatusEnabled,
	}
	orderRepo := &memOrderRepo{rows: map[string]*entity.Order{}}
	invRepo := &memInventoryRepo{rows: map[string]*entity.Inventory{}}
	tx := &memTxRunner{orders: orderRepo, seq: &memSequenceRepo{}, inv: invRepo}
	uc := orders.NewUseCase(tx, orderRepo, &memProductRepo{p: p}, invRepo, logger.Nop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalUserName, testUserName)
		c.Locals(apphttp.LocalRole, "admin")
		return c.Next()
	})
	inbound := apphttp.NewInboundHandler(uc)
	outbound := apphttp.NewOutboundHandler(uc)
	for prefix, h := range map[string]*apphttp.OrderHandler{
		"/api/inbound":  inbound,
		"/api/outbound": outbound,
	} {
		app.Get(prefix+"/:id", h.GetByID)
		app.Put(prefix+"/:id", h.Update)
		app.Delete(prefix+"/:id", h.Delete)
		app.Patch(prefix+"/:id/approve", h.Approve)
		app.Patch(prefix+"/:id/void", h.Void)
	}
	return app, orderRepo, p
}

func seedPendingInbound(t *testing.T, repo *memOrderRepo, productID string) string {
	t.Helper()
	o := &entity.Order{
		ID:             uuid.New().String(),
		DocumentNumber: "IN202601040001",
		Type:           order.DocTypeInbound,
		ProductID:      productID,
		Quantity:       10,
		Counterparty:   "Distribuidora Andina",
		MovementDate:   time.Now().UTC(),
		Status:         order.StatusPending,
		CreatedBy:      "admin",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(o))
	return o.ID
}

func doOrderRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Cada handler opera solo documentos de su propio tipo: un documento de
// entrada accedido por las rutas de salida se responde como no encontrado,
// tanto en lectura como en mutaciones.
func TestOrderHandler_MutacionesRespetanElTipoDeRuta(t *testing.T) {
	app, repo, p := newOrderTestApp(t)
	id := seedPendingInbound(t, repo, p.ID)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/outbound/" + id},
		{fiber.MethodPut, "/api/outbound/" + id},
		{fiber.MethodDelete, "/api/outbound/" + id},
		{fiber.MethodPatch, "/api/outbound/" + id + "/approve"},
		{fiber.MethodPatch, "/api/outbound/" + id + "/void"},
	} {
		resp := doOrderRequest(t, app, tc.method, tc.path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
		resp.Body.Close()
	}

	// Ninguna mutación cruzada tocó el documento.
	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, stored.Status)
}

func TestOrderHandler_AprobarPorSuPropiaRuta(t *testing.T) {
	app, repo, p := newOrderTestApp(t)
	id := seedPendingInbound(t, repo, p.ID)

	resp := doOrderRequest(t, app, fiber.MethodPatch, "/api/inbound/"+id+"/approve")
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, order.StatusApproved, stored.Status)
	assert.Equal(t, testUserName, stored.ApprovedBy)
}

package orders

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofi/database"
	"ofi/model"
	"ofi/testutil"
)

func postCreate(t *testing.T, db *sqlx.DB, payload CreatePayload) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	CreateOrderHandler(db)(rr, req)
	return rr
}

func TestCreateOrderHandler(t *testing.T) {
	db := testutil.NewTestDB(t)

	rr := postCreate(t, db, CreatePayload{
		OrderNumber: "ORD-2026-004",
		Customer:    "Acme Corp",
		Product:     "Tops",
		DueDate:     "2026-09-15",
		Quantity:    100,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got, err := database.GetOrderByNumber(db, "ORD-2026-004")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 100, got.Quantity)
}

func TestCreateOrderHandlerRejects(t *testing.T) {
	db := testutil.NewTestDB(t)

	rr := postCreate(t, db, CreatePayload{OrderNumber: "", DueDate: "2026-09-15", Quantity: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = postCreate(t, db, CreatePayload{OrderNumber: "ORD-001", DueDate: "2026-09-15", Quantity: 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = postCreate(t, db, CreatePayload{OrderNumber: "ORD-001", DueDate: "15/09/2026", Quantity: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = postCreate(t, db, CreatePayload{OrderNumber: "ORD-001", DueDate: "2026-09-15", Quantity: 1})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = postCreate(t, db, CreatePayload{OrderNumber: "ORD-001", DueDate: "2026-09-15", Quantity: 1})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func seedTwoOrders(t *testing.T, db *sqlx.DB) {
	t.Helper()
	rr := postCreate(t, db, CreatePayload{
		OrderNumber: "ORD-001", Customer: "Acme Corp", Product: "Tops",
		DueDate: "2026-09-15", Quantity: 100,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = postCreate(t, db, CreatePayload{
		OrderNumber: "ORD-002", Customer: "Beta Textiles", Product: "Trousers",
		DueDate: "2026-10-01", Quantity: 50,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	first, err := database.GetOrderByNumber(db, "ORD-001")
	require.NoError(t, err)
	require.NoError(t, database.UpdateOrderStages(db, model.StageUpdate{
		ID: first.ID, Cutting: 80, Sewing: 60, Finishing: 40, Packaging: 20,
	}))
	second, err := database.GetOrderByNumber(db, "ORD-002")
	require.NoError(t, err)
	require.NoError(t, database.UpdateOrderStages(db, model.StageUpdate{
		ID: second.ID, Cutting: 50, Sewing: 50, Finishing: 50, Packaging: 50,
	}))
}

func TestListOrdersHandlerFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTwoOrders(t, db)

	listViews := func(url string) []OrderView {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rr := httptest.NewRecorder()
		ListOrdersHandler(db)(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		var views []OrderView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
		return views
	}

	views := listViews("/api/orders")
	require.Len(t, views, 2)
	assert.Equal(t, "Open", views[0].Status)
	assert.Equal(t, "Closed", views[1].Status)

	views = listViews("/api/orders?q=002")
	require.Len(t, views, 1)
	assert.Equal(t, "ORD-002", views[0].OrderNumber)

	views = listViews("/api/orders?customer=beta")
	require.Len(t, views, 1)
	assert.Equal(t, "Beta Textiles", views[0].Customer)

	views = listViews("/api/orders?status=Closed")
	require.Len(t, views, 1)
	assert.Equal(t, "ORD-002", views[0].OrderNumber)
}

func TestUpdateStagesHandlerOutOfRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTwoOrders(t, db)

	order, err := database.GetOrderByNumber(db, "ORD-001")
	require.NoError(t, err)

	body, err := json.Marshal(model.StageUpdate{ID: order.ID, Cutting: 101})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders/update_stages", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	UpdateStagesHandler(db)(rr, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	body, err = json.Marshal(model.StageUpdate{ID: 99999, Cutting: 1})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/orders/update_stages", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	UpdateStagesHandler(db)(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

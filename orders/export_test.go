package orders

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ofi/testutil"
)

func TestExportProductionCSV(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTwoOrders(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/export", nil)
	rr := httptest.NewRecorder()
	ExportProductionCSVHandler(db)(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "orderwise_production_report.csv")

	g := goldie.New(t)
	g.Assert(t, "production_export", rr.Body.Bytes())
}

func TestExportProductionCSVStatusFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTwoOrders(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/export?status=Closed", nil)
	rr := httptest.NewRecorder()
	ExportProductionCSVHandler(db)(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	g := goldie.New(t)
	g.Assert(t, "production_export_closed", rr.Body.Bytes())
}

package main

import (
	"net/http"

	"ofi/accessories"
	"ofi/auth"
	"ofi/costing"
	"ofi/fabric"
	"ofi/orders"
	"ofi/reports"

	"github.com/jmoiron/sqlx"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, sessions *auth.SessionStore) {

	mux.HandleFunc("/api/login", auth.LoginHandler(dbConn, sessions))
	mux.HandleFunc("/api/logout", auth.LogoutHandler(sessions))
	mux.HandleFunc("/api/session", auth.SessionHandler(sessions))

	// ログイン以外の /api は全てセッション必須。
	gate := func(h http.HandlerFunc) http.HandlerFunc {
		return auth.Require(sessions, h)
	}

	listOrders := orders.ListOrdersHandler(dbConn)
	createOrder := orders.CreateOrderHandler(dbConn)
	mux.HandleFunc("/api/orders", gate(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listOrders(w, r)
		case http.MethodPost:
			createOrder(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}))
	mux.HandleFunc("/api/orders/update_stages", gate(orders.UpdateStagesHandler(dbConn)))
	mux.HandleFunc("/api/orders/import", gate(orders.ImportOrdersHandler(dbConn)))
	mux.HandleFunc("/api/orders/export", gate(orders.ExportProductionCSVHandler(dbConn)))

	mux.HandleFunc("/api/fabric/standards", gate(fabric.ListStandardsHandler(dbConn)))
	mux.HandleFunc("/api/fabric/resolve", gate(fabric.ResolveHandler(dbConn)))

	mux.HandleFunc("/api/costs/save", gate(costing.SaveCostHandler(dbConn)))
	mux.HandleFunc("/api/costs/load", gate(costing.LoadCostHandler(dbConn)))
	mux.HandleFunc("/api/costs/history", gate(costing.CostHistoryHandler(dbConn)))
	mux.HandleFunc("/api/costs/export", gate(costing.ExportCostCSVHandler(dbConn)))

	mux.HandleFunc("/api/accessories/add", gate(accessories.AddAccessoryHandler(dbConn)))
	mux.HandleFunc("/api/accessories", gate(accessories.ListAccessoriesHandler(dbConn)))

	mux.HandleFunc("/api/reports/dashboard", gate(reports.DashboardHandler(dbConn)))
	mux.HandleFunc("/api/reports/monthly", gate(reports.MonthlyHandler(dbConn)))

	mux.HandleFunc("/api/config", gate(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}))
}

package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dairyledger/internal/handlers"
	"dairyledger/internal/ledger"
	applog "dairyledger/internal/log"
	"dairyledger/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type resource struct {
	path                string
	list, create        http.HandlerFunc
	get, update, remove http.HandlerFunc
}

func newRouter(api *handlers.API, m *metrics.Metrics) *mux.Router {
	applog.Debug(context.Background(), "registering http routes")

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)
	r.Use(requestID, m.Middleware)

	r.HandleFunc("/healthz", api.Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/payments/export", api.ExportPayments).Methods(http.MethodGet)
	r.HandleFunc("/api/milk_details/export", api.ExportMilkIntakes).Methods(http.MethodGet)

	resources := []resource{
		{"/api/farm_details", api.ListFarms, api.CreateFarm, api.GetFarm, api.UpdateFarm, api.DeleteFarm},
		{"/api/milk_details", api.ListMilkIntakes, api.CreateMilkIntake, api.GetMilkIntake, api.UpdateMilkIntake, api.DeleteMilkIntake},
		{"/api/payments", api.ListPayments, api.CreatePayment, api.GetPayment, api.UpdatePayment, api.DeletePayment},
		{"/api/products_dispatched", api.ListDispatches, api.CreateDispatch, api.GetDispatch, api.UpdateDispatch, api.DeleteDispatch},
	}
	for _, res := range resources {
		r.HandleFunc(res.path, res.list).Methods(http.MethodGet)
		r.HandleFunc(res.path, res.create).Methods(http.MethodPost)
		item := res.path + "/{id:[0-9]+}"
		r.HandleFunc(item, res.get).Methods(http.MethodGet)
		r.HandleFunc(item, res.update).Methods(http.MethodPut)
		r.HandleFunc(item, res.remove).Methods(http.MethodDelete)
	}

	r.HandleFunc("/api/farm_names", api.FarmNames).Methods(http.MethodGet)
	r.HandleFunc("/api/snf_statuses", api.Statuses(ledger.ChannelSNF)).Methods(http.MethodGet)
	r.HandleFunc("/api/alcohol_statuses", api.Statuses(ledger.ChannelAlcohol)).Methods(http.MethodGet)
	r.HandleFunc("/api/antibiotic_statuses", api.Statuses(ledger.ChannelAntibiotic)).Methods(http.MethodGet)
	r.HandleFunc("/api/payment-status", api.PaymentStatusOptions).Methods(http.MethodGet)

	r.HandleFunc("/api/register", api.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", api.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", api.Logout).Methods(http.MethodPost)

	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if tpl, err := route.GetPathTemplate(); err == nil {
			methods, _ := route.GetMethods()
			applog.Debug(context.Background(), "route registered", "path", tpl, "methods", methods)
		}
		return nil
	})

	return r
}

// requestID tags the request context with the caller's X-Request-ID or a
// fresh one, and echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(applog.WithRequestID(r.Context(), id)))
	})
}

package httptransport

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"jobcard/internal/httpx"
)

type Services struct {
	Sessions SessionServices
	Catalog  CatalogServices
	Reports  ReportServices
}

func Router(services Services, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(httpx.RequestLogger(logger))

	sessionHandler := NewSessionHandlers(services.Sessions, logger)
	catalogHandler := NewCatalogHandlers(services.Catalog, logger)
	reportHandler := NewReportHandlers(services.Reports, logger)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api.HandleFunc("/sessions", sessionHandler.Start).Methods(http.MethodPost)
	session := api.PathPrefix("/sessions/{sid}").Subrouter()
	session.Use(httpx.Session())
	session.HandleFunc("", sessionHandler.Get).Methods(http.MethodGet)
	session.HandleFunc("", sessionHandler.Discard).Methods(http.MethodDelete)
	session.HandleFunc("/type", sessionHandler.SelectType).Methods(http.MethodPut)
	session.HandleFunc("/answers/{index:[0-9]+}", sessionHandler.SetAnswer).Methods(http.MethodPut)
	session.HandleFunc("/images/{index:[0-9]+}", sessionHandler.SetImage).Methods(http.MethodPut)
	session.HandleFunc("/images/{index:[0-9]+}", sessionHandler.ClearImage).Methods(http.MethodDelete)
	session.HandleFunc("/fields", sessionHandler.SetCommonFields).Methods(http.MethodPut)
	session.HandleFunc("/signatures", sessionHandler.SetSignatures).Methods(http.MethodPut)
	session.HandleFunc("/missing", sessionHandler.Missing).Methods(http.MethodGet)
	session.HandleFunc("/submit", sessionHandler.Submit).Methods(http.MethodPost)

	templates := api.PathPrefix("/templates").Subrouter()
	templates.HandleFunc("/types", catalogHandler.ListTypes).Methods(http.MethodGet)
	templates.HandleFunc("", catalogHandler.ListTemplates).Methods(http.MethodGet)

	jobCards := api.PathPrefix("/job-cards").Subrouter()
	jobCards.HandleFunc("/recent", catalogHandler.RecentJobCards).Methods(http.MethodGet)
	jobCards.HandleFunc("/{id:[0-9]+}/report", reportHandler.Render).Methods(http.MethodGet)
	jobCards.HandleFunc("/{id:[0-9]+}/report/pointer", reportHandler.Pointer).Methods(http.MethodGet)

	return router
}

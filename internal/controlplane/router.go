// Package controlplane is a small HTTP surface for operating a running
// engine: submit a block list to stand up a new actor, dispatch a
// contract's market-data delta, and inspect actor and controller state.
package controlplane

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blockflowhq/blockflow/internal/controlplane/controllers"
	"github.com/blockflowhq/blockflow/internal/controlplane/middlewares"
	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/controller"
)

// ConfiguredRouter builds the control plane's HTTP handler around ctrl,
// decoding submitted block lists against blocks.
func ConfiguredRouter(blocks *blockconfig.Registry, ctrl *controller.Controller) *Router {
	engineController := controllers.NewEngineController(blocks, ctrl)
	infraController := controllers.NewInfraController()

	router := newRouter()
	router.use(middlewares.CORS, middlewares.TraceID)

	router.post("/actors", engineController.SubmitActor, middlewares.WithLogging, middlewares.OtelHTTP("SubmitActor"))
	router.get("/actors/{id}", engineController.GetActor, middlewares.WithLogging, middlewares.OtelHTTP("GetActor"))
	router.delete("/actors/{id}", engineController.RemoveActor, middlewares.WithLogging, middlewares.OtelHTTP("RemoveActor"))

	router.post("/deltas", engineController.SubmitDelta, middlewares.WithLogging, middlewares.OtelHTTP("SubmitDelta"))
	router.get("/time", engineController.GetTime, middlewares.WithLogging, middlewares.OtelHTTP("GetTime"))

	router.get("/version", infraController.Version, middlewares.WithLogging, middlewares.OtelHTTP("Version"))
	router.get("/healthz", infraController.Health)
	router.get("/health", infraController.Health)

	return router
}

// Router provides a thin, intention-revealing API around mux.Router.
type Router struct {
	r *mux.Router
}

func newRouter() *Router {
	r := mux.NewRouter()
	r.PathPrefix("/").Methods(http.MethodOptions) // accept OPTIONS on all routes and do nothing
	return &Router{r: r}
}

func (r *Router) get(uri string, f http.HandlerFunc, mid ...mux.MiddlewareFunc) {
	sub := r.r.Path(uri).Subrouter()
	sub.HandleFunc("", f).Methods(http.MethodGet)
	sub.Use(mid...)
}

func (r *Router) post(uri string, f http.HandlerFunc, mid ...mux.MiddlewareFunc) {
	sub := r.r.Path(uri).Subrouter()
	sub.HandleFunc("", f).Methods(http.MethodPost)
	sub.Use(mid...)
}

func (r *Router) delete(uri string, f http.HandlerFunc, mid ...mux.MiddlewareFunc) {
	sub := r.r.Path(uri).Subrouter()
	sub.HandleFunc("", f).Methods(http.MethodDelete)
	sub.Use(mid...)
}

func (r *Router) use(mid ...mux.MiddlewareFunc) {
	r.r.Use(mid...)
}

// Handler returns the configured router as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.r
}

// Package controllers implements the control plane's HTTP handlers: submit
// a block list to stand up a new actor, tick a contract's market-data
// delta against the actors subscribed to it, and inspect actor state.
package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/controller"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/metrics"
	"github.com/blockflowhq/blockflow/pkg/telemetry"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
	"github.com/blockflowhq/blockflow/pkg/weave"
)

// weaveRejectedEvent satisfies telemetry.WeaveRejected for a rejected
// submission, whether rejected at decode time or at weave time.
type weaveRejectedEvent struct {
	reason    string
	nodeCount int
}

func (e weaveRejectedEvent) Reason() string { return e.reason }

func (e weaveRejectedEvent) NodeCount() int { return e.nodeCount }

// EngineController exposes the engine's actor lifecycle and delta dispatch
// over HTTP: decode a submitted block list, weave and wrap it into an
// actor, register it with the controller, and later tick it by contract.
type EngineController struct {
	blocks     *blockconfig.Registry
	controller *controller.Controller
	nextActor  atomic.Uint32
}

// NewEngineController creates an EngineController backed by ctrl, decoding
// submitted block lists against blocks.
func NewEngineController(blocks *blockconfig.Registry, ctrl *controller.Controller) *EngineController {
	return &EngineController{blocks: blocks, controller: ctrl}
}

type actorResponse struct {
	ActorID   uint32               `json:"actor_id"`
	Contracts []string             `json:"contracts"`
	Orders    []actorOrderResponse `json:"orders,omitempty"`
}

type actorOrderResponse struct {
	Kind     string  `json:"kind"`
	Contract string  `json:"contract,omitempty"`
	Side     *string `json:"side,omitempty"`
	Cents    *uint32 `json:"cents,omitempty"`
	Kw       *uint32 `json:"kw,omitempty"`
}

func toActorResponse(id uint32, contracts []tradetypes.Contract, orders []actor.Order) actorResponse {
	resp := actorResponse{ActorID: id}
	resp.Contracts = make([]string, len(contracts))
	for i, c := range contracts {
		resp.Contracts[i] = c.String()
	}
	if orders == nil {
		return resp
	}
	resp.Orders = make([]actorOrderResponse, len(orders))
	for i, o := range orders {
		resp.Orders[i] = toOrderResponse(o)
	}
	return resp
}

func toOrderResponse(o actor.Order) actorOrderResponse {
	out := actorOrderResponse{}
	switch o.Kind {
	case actor.NoOrderKind:
		out.Kind = "none"
		return out
	case actor.CancelOrderKind:
		out.Kind = "cancel"
	case actor.NewOrderKind:
		out.Kind = "new"
		side := o.Side.String()
		out.Side = &side
		cents := uint32(o.Price.InCents())
		out.Cents = &cents
		kw := uint32(o.Quantity.InKw())
		out.Kw = &kw
	}
	out.Contract = o.Contract.String()
	return out
}

func (c *EngineController) collectWeaveRejected(r *http.Request, reason string, nodeCount int) {
	event := weaveRejectedEvent{reason: reason, nodeCount: nodeCount}
	if err := telemetry.Collect(r.Context(), event); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("collecting weave rejected metric")
	}
}

// SubmitActor handles POST /actors: decode the request body as a wire
// block list, weave it, and register the resulting actor under a freshly
// minted actor id.
func (c *EngineController) SubmitActor(rw http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(rw, r, http.StatusBadRequest, "reading request body", err)
		return
	}

	nodes, err := c.blocks.DecodePackages(body)
	if err != nil {
		metrics.IncWeaveErrors(r.Context())
		c.collectWeaveRejected(r, err.Error(), 0)
		writeError(rw, r, http.StatusBadRequest, "decoding block list", err)
		return
	}

	woven, err := weave.Weave(nodes, channels.NewRegistry())
	if err != nil {
		metrics.IncWeaveErrors(r.Context())
		c.collectWeaveRejected(r, err.Error(), len(nodes))
		writeError(rw, r, http.StatusBadRequest, "weaving block list", err)
		return
	}

	plan := execplan.New(woven)
	id := c.nextActor.Inc()
	a := actor.New(id, plan)
	handle := controller.NewHandle(a)
	c.controller.AddActor(handle)

	writeJSON(rw, http.StatusCreated, toActorResponse(id, handle.Contracts(), nil))
}

// GetActor handles GET /actors/{id}: report an actor's subscribed
// contracts and its order state as of its last tick.
func (c *EngineController) GetActor(rw http.ResponseWriter, r *http.Request) {
	id, err := parseActorID(r)
	if err != nil {
		writeError(rw, r, http.StatusBadRequest, "invalid actor id", err)
		return
	}

	handle, ok := c.controller.GetActorByID(id)
	if !ok {
		writeError(rw, r, http.StatusNotFound, "actor not found", nil)
		return
	}

	writeJSON(rw, http.StatusOK, toActorResponse(id, handle.Contracts(), handle.Orders()))
}

// RemoveActor handles DELETE /actors/{id}.
func (c *EngineController) RemoveActor(rw http.ResponseWriter, r *http.Request) {
	id, err := parseActorID(r)
	if err != nil {
		writeError(rw, r, http.StatusBadRequest, "invalid actor id", err)
		return
	}
	c.controller.RemoveActorByID(id)
	rw.WriteHeader(http.StatusNoContent)
}

func parseActorID(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

type deltaRequest struct {
	Contract string `json:"contract"`
}

type timeResponse struct {
	Time uint64 `json:"time"`
}

// SubmitDelta handles POST /deltas: tick every actor subscribed to the
// named contract and advance the controller's clock by one.
func (c *EngineController) SubmitDelta(rw http.ResponseWriter, r *http.Request) {
	var req deltaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(rw, r, http.StatusBadRequest, "decoding delta request", err)
		return
	}
	c.controller.TickDelta(controller.Delta{Contract: tradetypes.NewContract(req.Contract)})
	writeJSON(rw, http.StatusOK, timeResponse{Time: c.controller.Time()})
}

// GetTime handles GET /time.
func (c *EngineController) GetTime(rw http.ResponseWriter, r *http.Request) {
	writeJSON(rw, http.StatusOK, timeResponse{Time: c.controller.Time()})
}

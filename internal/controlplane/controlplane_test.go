package controlplane_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockflowhq/blockflow/internal/controlplane"
	"github.com/blockflowhq/blockflow/pkg/blockconfig"
	"github.com/blockflowhq/blockflow/pkg/controller"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := execcontext.NewStaticContext()
	ctrl := controller.New(func(time uint64) execcontext.ExecutionContext {
		ctx.SetTime(time)
		return ctx
	})
	router := controlplane.ConfiguredRouter(blockconfig.Builtin(), ctrl)
	server := httptest.NewServer(router.Handler())
	t.Cleanup(server.Close)
	return server
}

func TestSubmitActorThenGetActor(t *testing.T) {
	server := newTestServer(t)

	doc := `[
		{
			"type": "After",
			"data": {
				"output_keys": { "is_after": "is_after" },
				"init_params": { "time": 10 }
			}
		},
		{
			"type": "Delete",
			"data": {
				"input_keys": { "should_delete": "is_after" }
			}
		}
	]`

	resp, err := http.Post(server.URL+"/actors", "application/json", bytes.NewBufferString(doc))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ActorID uint32 `json:"actor_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, uint32(1), created.ActorID)

	getResp, err := http.Get(server.URL + "/actors/1")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestGetActorMissingReturnsNotFound(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/actors/404")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitDeltaAdvancesTime(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/deltas", "application/json", bytes.NewBufferString(`{"contract": "TEST"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Time uint64 `json:"time"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, uint64(1), body.Time)
}

func TestVersionEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthzEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

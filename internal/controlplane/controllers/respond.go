package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apierrors "github.com/blockflowhq/blockflow/pkg/errors"
)

func writeJSON(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(body)
}

func writeError(rw http.ResponseWriter, r *http.Request, status int, message string, err error) {
	log.Ctx(r.Context()).Error().Err(err).Msg(message)
	writeJSON(rw, status, apierrors.ServiceError{Message: message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}

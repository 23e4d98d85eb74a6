package registry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"PriceRegistry/pkg/kit"
)

type Server struct {
	Store Store
	IDs   IDMinter
	Log   *zap.Logger
}

type priceReq struct {
	// Pointer so a body without the field is distinguishable from price 0.
	Price *Price `json:"price"`
}

const (
	maxBodyBytes = 1 << 20

	readyTimeout = 1 * time.Second
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, err := decodePriceRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Price == nil {
		kit.WriteError(w, r, http.StatusBadRequest, "price required", nil)
		return
	}

	id := s.IDs.Mint()
	s.Store.Create(id, *req.Price)

	kit.WriteText(w, http.StatusOK, id.String())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	p, ok := s.Store.Get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	kit.WriteText(w, http.StatusOK, strconv.FormatUint(uint64(p), 10))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	req, err := decodePriceRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Price == nil {
		kit.WriteError(w, r, http.StatusBadRequest, "price required", nil)
		return
	}

	if !s.Store.Update(id, *req.Price) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad id", nil)
		return
	}

	if !s.Store.Delete(id) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func decodePriceRequest(w http.ResponseWriter, r *http.Request) (priceReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req priceReq
	if err := dec.Decode(&req); err != nil {
		return priceReq{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return priceReq{}, errors.New("extra data after json object")
	}

	return req, nil
}

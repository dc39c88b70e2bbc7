package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/icco/camfour/vision"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service health and the deployed revision
type HealthResponse struct {
	Healthy  string `json:"healthy"`
	Revision string `json:"revision"`
	Tag      string `json:"tag"`
	Branch   string `json:"branch"`
}

// NewMatchRequest is the optional body for starting a match
type NewMatchRequest struct {
	Source string `json:"source" example:"camera" description:"Label for where moves come from"`
}

// MoveRequest is a human move detected by the rig
type MoveRequest struct {
	Row *int `json:"row" example:"0" description:"Board row, 0 is the bottom"`
	Col *int `json:"col" example:"3" description:"Board column, 0 is the left"`
}

func renderError(w http.ResponseWriter, status int, msg string) {
	if err := Renderer.JSON(w, status, ErrorResponse{Error: msg}); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

func render200(w http.ResponseWriter, v interface{}) {
	if err := Renderer.JSON(w, http.StatusOK, v); err != nil {
		log.Errorw("failed to render JSON", zap.Error(err))
	}
}

// @Summary Get the match
// @Description Returns a snapshot of the match on the table
// @Tags match
// @Produce json
// @Success 200 {object} camfour.Snapshot
// @Router /match [get]
func (s *server) getMatchHandler(w http.ResponseWriter, r *http.Request) {
	render200(w, s.table.Snapshot())
}

// @Summary Start a new match
// @Description Abandons the current match and starts a new one on an empty board
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body NewMatchRequest false "Match options"
// @Success 200 {object} camfour.Snapshot
// @Failure 401 {object} ErrorResponse
// @Router /match/new [post]
func (s *server) newMatchHandler(w http.ResponseWriter, r *http.Request) {
	var data NewMatchRequest
	if r.Body != nil {
		// An empty or broken body just means no options.
		_ = json.NewDecoder(r.Body).Decode(&data)
	}

	source := ugcPolicy.Sanitize(strings.TrimSpace(data.Source))
	if source == "" {
		source = rigFromContext(r.Context())
	}

	snap := s.table.Start(source)
	log.Infow("match started over http", "match", snap.ID, "source", source)
	render200(w, snap)
}

// @Summary Make a move
// @Description Submits the human move the rig saw, then plays the opponent reply
// @Tags match
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param move body MoveRequest true "Detected move"
// @Success 200 {object} MoveResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /match/move [post]
func (s *server) moveHandler(w http.ResponseWriter, r *http.Request) {
	var data MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Errorw("could not read body", zap.Error(err))
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}
	if data.Row == nil || data.Col == nil {
		renderError(w, http.StatusBadRequest, "row and col are required")
		return
	}

	res, err := s.table.Move(*data.Row, *data.Col)
	if err != nil {
		status := statusFor(err)
		if status >= 500 {
			log.Errorw("move failed", "row", *data.Row, "col", *data.Col, zap.Error(err))
		}
		renderError(w, status, err.Error())
		return
	}

	render200(w, res)
}

// @Summary Resume the opponent
// @Description Retries an opponent reply that failed after the human move was accepted
// @Tags match
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MoveResult
// @Failure 409 {object} ErrorResponse
// @Router /match/resume [post]
func (s *server) resumeHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.table.Resume()
	if err != nil {
		renderError(w, statusFor(err), err.Error())
		return
	}

	render200(w, res)
}

// @Summary Store a calibration
// @Description Saves a calibration profile under its name, replacing any older one
// @Tags calibration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body vision.Profile true "Calibration profile"
// @Success 200 {object} CalibrationProfile
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /calibration [post]
func (s *server) saveCalibrationHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		renderError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	var p vision.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	p.Name = ugcPolicy.Sanitize(strings.TrimSpace(p.Name))
	if p.Name == "" {
		renderError(w, http.StatusBadRequest, "profile name is required")
		return
	}
	if err := p.Validate(); err != nil {
		renderError(w, http.StatusBadRequest, (&vision.CalibrationError{Reason: "bad profile", Err: err}).Error())
		return
	}

	row, err := saveProfile(s.db, p)
	if err != nil {
		log.Errorw("could not save profile", "name", p.Name, zap.Error(err))
		renderError(w, http.StatusInternalServerError, "could not save profile")
		return
	}

	render200(w, row)
}

// @Summary Get a calibration
// @Description Returns a stored calibration profile
// @Tags calibration
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} vision.Profile
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /calibration/{name} [get]
func (s *server) getCalibrationHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		renderError(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	name := ugcPolicy.Sanitize(chi.URLParamFromCtx(r.Context(), "name"))
	row, err := getProfile(s.db, name)
	if errors.Is(err, ErrNoProfile) {
		renderError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Errorw("could not get profile", "name", name, zap.Error(err))
		renderError(w, http.StatusInternalServerError, "could not load profile")
		return
	}

	render200(w, row.Profile())
}

// @Summary Health check
// @Description Returns service health status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	render200(w, HealthResponse{
		Healthy:  "true",
		Revision: s.cfg.Revision,
		Tag:      s.cfg.Tag,
		Branch:   s.cfg.Branch,
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderError(w, http.StatusNotFound, "404: This page could not be found")
}

package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Root godoc
// @Summary  Liveness message
// @Tags     status
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /api/ [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// Create godoc
// @Summary  Record a status check
// @Tags     status
// @Accept   json
// @Produce  json
// @Param    request body CreateStatusCheckDTO true "status check"
// @Success  200 {object} StatusCheck
// @Failure  400 {object} map[string]string
// @Failure  422 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /api/status [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateStatusCheckDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for status check")
		config.ErrorDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := h.service.Create(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrClientNameRequired) {
			config.ErrorDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		config.ErrorDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, sc)
}

// List godoc
// @Summary  List status checks (at most 1000)
// @Tags     status
// @Produce  json
// @Success  200 {array}  StatusCheck
// @Failure  500 {object} map[string]string
// @Router   /api/status [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.service.List(r.Context())
	if err != nil {
		config.ErrorDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, checks)
}

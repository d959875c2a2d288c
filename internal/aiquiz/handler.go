package aiquiz

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

// GenerateQuiz godoc
// @Summary  Generate a quiz with Gemini
// @Tags     quiz
// @Accept   json
// @Produce  json
// @Param    request body GenerateQuizRequest true "quiz request"
// @Success  200 {object} GenerateQuizResponse
// @Failure  400 {object} map[string]string
// @Failure  500 {object} map[string]string
// @Router   /api/generate-quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		config.ErrorDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	qz, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		var verr *ValidationError
		var perr *ParseError
		switch {
		case errors.As(err, &verr):
			config.ErrorDetail(w, http.StatusBadRequest, verr.Detail)
		case errors.As(err, &perr):
			config.ErrorDetail(w, http.StatusInternalServerError, perr.Detail)
		case errors.Is(err, ErrNoQuestions):
			config.ErrorDetail(w, http.StatusInternalServerError, ErrNoQuestions.Error())
		default:
			log.WithError(err).Error("Error generating quiz")
			msg := err.Error()
			config.JSON(w, http.StatusOK, GenerateQuizResponse{Success: false, Error: &msg})
		}
		return
	}

	config.JSON(w, http.StatusOK, GenerateQuizResponse{Success: true, Quiz: qz})
}

package handlers

import (
	"cyber-advisor/internal/dto"
	"cyber-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TrainingHandler struct {
	answerService *service.AnswerService
	logger        *zap.Logger
}

func NewTrainingHandler(answerService *service.AnswerService, logger *zap.Logger) *TrainingHandler {
	return &TrainingHandler{
		answerService: answerService,
		logger:        logger,
	}
}

// Stats godoc
// @Summary Training corpus statistics
// @Description Total number of training questions and their label distribution
// @Tags training
// @Produce json
// @Success 200 {object} dto.TrainingStatsResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/training/stats [get]
func (h *TrainingHandler) Stats(c *fiber.Ctx) error {
	stats, ok := h.answerService.CorpusStats()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "training corpus not loaded",
		})
	}

	return c.JSON(dto.TrainingStatsResponse{
		Total:        stats.Total,
		Distribution: stats.Distribution,
	})
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *TrainingHandler) Health(c *fiber.Ctx) error {
	stats, _ := h.answerService.CorpusStats()
	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Seeds:  h.answerService.SeedCount(),
		Corpus: stats.Total,
	})
}

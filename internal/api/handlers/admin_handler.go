package handlers

import (
	"errors"

	"cyber-advisor/internal/dto"
	"cyber-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	answerService *service.AnswerService
	logger        *zap.Logger
}

func NewAdminHandler(answerService *service.AnswerService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		answerService: answerService,
		logger:        logger,
	}
}

// ReloadSeed godoc
// @Summary Reload seed answers
// @Description Re-read the seed answer file and swap the exact-match table
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ReloadSeedResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/admin/reload_seed [post]
func (h *AdminHandler) ReloadSeed(c *fiber.Ctx) error {
	count, err := h.answerService.ReloadSeeds()
	if err != nil {
		return h.reloadFailed(c, err)
	}

	h.logger.Info("Seed answers reloaded", zap.Int("count", count))
	return c.JSON(dto.ReloadSeedResponse{OK: true, Count: count})
}

// ReloadAdvice godoc
// @Summary Reload advice intents
// @Description Re-read the advice intent file and swap the intent table
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ReloadAdviceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/admin/reload_advice [post]
func (h *AdminHandler) ReloadAdvice(c *fiber.Ctx) error {
	categories, err := h.answerService.ReloadIntents()
	if err != nil {
		return h.reloadFailed(c, err)
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.String()
	}

	h.logger.Info("Advice intents reloaded", zap.Strings("categories", names))
	return c.JSON(dto.ReloadAdviceResponse{OK: true, Categories: names})
}

func (h *AdminHandler) reloadFailed(c *fiber.Ctx, err error) error {
	source := "unknown"
	var loadErr *service.LoadError
	if errors.As(err, &loadErr) {
		source = loadErr.Source
	}
	h.logger.Error("Table reload failed, keeping previous table",
		zap.String("source", source), zap.Error(err))

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

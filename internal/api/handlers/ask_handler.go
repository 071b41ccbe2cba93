package handlers

import (
	"strings"

	"cyber-advisor/internal/dto"
	"cyber-advisor/internal/models"
	"cyber-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AskHandler struct {
	answerService *service.AnswerService
	cache         *service.AnswerCache
	logger        *zap.Logger
}

// NewAskHandler creates the question handler. cache may be nil.
func NewAskHandler(answerService *service.AnswerService, cache *service.AnswerCache, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		answerService: answerService,
		cache:         cache,
		logger:        logger,
	}
}

// Ask godoc
// @Summary Ask a security question
// @Description Classify an Arabic security question and return the best matching advice
// @Tags advice
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := strings.TrimSpace(req.Question)

	var key string
	if h.cache != nil {
		key = h.cache.Key(h.answerService.CacheNamespace(), question)
		if cached, ok := h.cache.Get(c.UserContext(), key); ok {
			return c.JSON(toAskResponse(cached))
		}
	}

	result := h.answerService.Resolve(question)

	if h.cache != nil {
		h.cache.Set(c.UserContext(), key, result)
	}

	return c.JSON(toAskResponse(result))
}

// Predict godoc
// @Summary Predict a question category
// @Description Run only the category classifier
// @Tags debug
// @Produce json
// @Param q query string true "Question"
// @Success 200 {object} dto.PredictResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/debug/predict [get]
func (h *AskHandler) Predict(c *fiber.Ctx) error {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing q",
		})
	}

	return c.JSON(dto.PredictResponse{
		Category: h.answerService.Predict(q).String(),
	})
}

func toAskResponse(result models.AnswerResult) dto.AskResponse {
	return dto.AskResponse{
		Category: result.Category.String(),
		Advice:   result.Advice,
		Sources:  result.Sources,
	}
}

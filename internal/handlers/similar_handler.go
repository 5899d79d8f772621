package handlers

import (
	"github.com/gofiber/fiber/v2"

	"screenerpro/screener/internal/engine"
	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/services"
)

type SimilarHandler struct {
	geminiService services.GeminiService
	qdrantService services.QdrantService
}

func NewSimilarHandler(
	geminiService services.GeminiService,
	qdrantService services.QdrantService,
) *SimilarHandler {
	return &SimilarHandler{
		geminiService: geminiService,
		qdrantService: qdrantService,
	}
}

// HandleSearchSimilar handles GET /candidates/similar. The free-text query
// is embedded and matched against previously screened resume vectors.
// Unavailable in fallback mode, since no vectors exist without the
// embedding backend.
func (h *SimilarHandler) HandleSearchSimilar(c *fiber.Ctx) error {
	if h.geminiService == nil || h.qdrantService == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Similarity search requires the embedding backend")
	}

	query := c.Query("q")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	embedding, err := h.geminiService.Encode(c.Context(), engine.Normalize(query))
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to embed query")
	}

	hits, err := h.qdrantService.SearchSimilar(c.Context(), embedding, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Failed to search similar candidates")
	}

	candidates := make([]models.SimilarCandidate, 0, len(hits))
	for _, hit := range hits {
		candidates = append(candidates, models.SimilarCandidate{
			DocumentID:    hit.DocumentID,
			CandidateName: hit.CandidateName,
			FileName:      hit.FileName,
			Similarity:    hit.Score,
		})
	}

	return c.JSON(fiber.Map{
		"query":      query,
		"candidates": candidates,
	})
}

package api

import (
	"net/http"

	"github.com/joestump/prompt-architect/internal/enhancer"
)

type vocabularyHandler struct {
	variant string
	vocab   *enhancer.Vocabulary
}

// Show lists the subject categories in classification order.
// GET /api/vocabulary
//
// @Summary      Describe the active enhancer
// @Description  Returns the enhancer variant and, for the template variant, its subject categories in match order
// @Tags         Prompts
// @Produce      json
// @Success      200  {object}  VocabularyResponse
// @Router       /vocabulary [get]
func (h *vocabularyHandler) Show(w http.ResponseWriter, r *http.Request) {
	resp := VocabularyResponse{Variant: h.variant, Categories: []string{}}
	if h.vocab != nil {
		resp.Categories = h.vocab.CategoryNames()
	}
	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"powerrocks/internal/alexa"
	"powerrocks/internal/dialog"

	"github.com/gin-gonic/gin"
)

// SkillHandler exposes the voice-platform endpoint.
type SkillHandler struct {
	Controller *dialog.Controller
}

// NewSkillHandler creates a skill handler over the dialog controller.
func NewSkillHandler(controller *dialog.Controller) *SkillHandler {
	return &SkillHandler{Controller: controller}
}

// Handle handles POST /api/v1/skill. A malformed envelope is the only
// case answered with a non-200; everything past binding is rendered as
// speech by the controller.
func (h *SkillHandler) Handle(c *gin.Context) {
	var req alexa.RequestEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	resp := h.Controller.Handle(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}

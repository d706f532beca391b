// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/advice"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// AdviceController handles the AI advice chat endpoints.
type AdviceController struct {
	sendUseCase    *advice.SendMessageUseCase
	historyUseCase *advice.GetHistoryUseCase
}

// NewAdviceController creates a new advice controller instance.
func NewAdviceController(
	sendUseCase *advice.SendMessageUseCase,
	historyUseCase *advice.GetHistoryUseCase,
) *AdviceController {
	return &AdviceController{
		sendUseCase:    sendUseCase,
		historyUseCase: historyUseCase,
	}
}

// Send handles POST /advice requests. A failing AI backend still answers
// 200 with a locally generated fallback; only an invalid message is an
// error here.
func (c *AdviceController) Send(ctx *gin.Context) {
	var req dto.AdviceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAdviceMessage),
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), advice.SendMessageInput{
		Message: req.Message,
	})
	if err != nil {
		var adviceErr *domainerror.AdviceError
		if errors.As(err, &adviceErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: adviceErr.Message,
				Code:  string(adviceErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{
		Response:  output.Reply.Content,
		AgentType: string(output.Reply.AgentType),
		Fallback:  output.Fallback,
	})
}

// History handles GET /advice/history requests.
func (c *AdviceController) History(ctx *gin.Context) {
	output, err := c.historyUseCase.Execute(ctx.Request.Context(), advice.GetHistoryInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve chat history",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(output.Messages))
}

package handler

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"kanbanase/internal/model"
	"kanbanase/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxBoardDataLength = 1000

type BoardHandler struct {
	service service.BoardService
}

func NewBoardHandler(service service.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=50"`
	Description string `json:"description" binding:"required"`
	UserID      string `json:"userId" binding:"required,uuid"`
}

type BoardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Data        string `json:"data"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

func boardResponse(board *model.Board) BoardResponse {
	resp := BoardResponse{
		ID:          board.ID.String(),
		Name:        board.Name,
		Description: board.Description,
		Data:        board.Data,
		UserID:      board.UserID.String(),
		CreatedAt:   board.CreatedAt.Format(time.RFC3339),
	}
	if !board.UpdatedAt.IsZero() {
		resp.UpdatedAt = board.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// Create creates a board seeded with the default column layout.
func (h *BoardHandler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationErrors(c, validationMessages(err))
		return
	}

	// The uuid binding tag already vetted the format.
	userID := uuid.MustParse(req.UserID)

	board, err := h.service.Create(c.Request.Context(), req.Name, req.Description, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, boardResponse(board))
}

func (h *BoardHandler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	boards, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = boardResponse(&boards[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	board, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

// Update replaces the board's data blob with the raw request body.
func (h *BoardHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	data := string(raw)
	if strings.TrimSpace(data) == "" {
		respondValidationErrors(c, []string{"Data is required"})
		return
	}
	if utf8.RuneCountInString(data) > maxBoardDataLength {
		respondValidationErrors(c, []string{"Data cannot exceed 1000 characters"})
		return
	}

	board, err := h.service.Update(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boardResponse(board))
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid board ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

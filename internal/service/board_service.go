package service

import (
	"context"
	"fmt"
	"time"

	"kanbanase/internal/apperr"
	"kanbanase/internal/model"
	"kanbanase/internal/repository"

	"github.com/google/uuid"
)

// DefaultBoardData is the initial column/task layout assigned to every new
// board. The blob is opaque to the server.
const DefaultBoardData = `{"cols":[{"id":9925,"title":"Today"},{"id":"done","title":"Pending"},{"id":6709,"title":"Done"}],"tasks":[]}`

// BoardService exposes board lifecycle operations.
type BoardService interface {
	Create(ctx context.Context, name, description string, userID uuid.UUID) (*model.Board, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, id uuid.UUID, data string) (*model.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type boardService struct {
	repo repository.BoardRepositoryInterface
}

func NewBoardService(repo repository.BoardRepositoryInterface) BoardService {
	return &boardService{repo: repo}
}

func (s *boardService) Create(ctx context.Context, name, description string, userID uuid.UUID) (*model.Board, error) {
	board := &model.Board{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Data:        DefaultBoardData,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	return board, nil
}

func (s *boardService) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *boardService) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	board, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get board by id: %w", err)
	}
	if board == nil {
		return nil, apperr.NotFound("Board not found")
	}
	return board, nil
}

// Update replaces the data blob wholesale and stamps UpdatedAt. Last writer
// wins; there are no merge semantics.
func (s *boardService) Update(ctx context.Context, id uuid.UUID, data string) (*model.Board, error) {
	board, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	board.Data = data
	board.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, board); err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}
	return board, nil
}

// Delete removes the board by id and is a no-op when the id does not exist.
func (s *boardService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"errors"
	"fmt"
	"todo-manager/internal/domain"
	"todo-manager/internal/logging"
	"todo-manager/internal/store"
)

type TodoService struct {
	store  store.TodoStore
	logger *logging.Logger
}

func NewTodoService(store store.TodoStore, logger *logging.Logger) (*TodoService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &TodoService{store: store, logger: logger.WithComponent("todos")}, nil
}

func (s *TodoService) ListTodos() ([]domain.Todo, error) {
	return s.store.List()
}

func (s *TodoService) GetTodo(id string) (domain.Todo, error) {
	todo, err := s.store.Get(id)
	if err != nil {
		return domain.Todo{}, translate(err)
	}
	return todo, nil
}

// CreateTodo stores a new, not yet completed todo. The title is kept verbatim.
func (s *TodoService) CreateTodo(title string) (domain.Todo, error) {
	if title == "" {
		return domain.Todo{}, ErrTitleRequired
	}

	created, err := s.store.Create(domain.Todo{Title: title})
	if err != nil {
		return domain.Todo{}, translate(err)
	}

	s.logger.Info("todo created", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateTodo applies patch in place. A new title is not validated.
func (s *TodoService) UpdateTodo(id string, patch domain.TodoPatch) (domain.Todo, error) {
	updated, err := s.store.Update(id, patch)
	if err != nil {
		return domain.Todo{}, translate(err)
	}

	s.logger.Info("todo updated", map[string]interface{}{
		"id":        updated.ID,
		"completed": updated.Completed,
	})
	return updated, nil
}

func (s *TodoService) DeleteTodo(id string) (domain.Todo, error) {
	deleted, err := s.store.Delete(id)
	if err != nil {
		return domain.Todo{}, translate(err)
	}

	s.logger.Info("todo deleted", map[string]interface{}{"id": deleted.ID})
	return deleted, nil
}

// translate maps store errors onto service errors, keeping the original in
// the chain.
func translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrTitleRequired):
		return fmt.Errorf("%w: %w", ErrTitleRequired, err)
	default:
		return err
	}
}

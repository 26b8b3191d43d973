package store

import (
	"errors"
	"todo-manager/internal/domain"
)

var (
	ErrNotFound      = errors.New("todo not found")
	ErrTitleRequired = errors.New("title required")
)

type TodoStore interface {
	List() ([]domain.Todo, error)
	Get(id string) (domain.Todo, error)
	Create(t domain.Todo) (domain.Todo, error)
	Update(id string, patch domain.TodoPatch) (domain.Todo, error)
	Delete(id string) (domain.Todo, error)
}

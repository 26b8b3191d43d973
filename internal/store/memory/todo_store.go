package memory

import (
	"slices"
	"sync"
	"todo-manager/internal/domain"
	"todo-manager/internal/store"

	"github.com/google/uuid"
)

type Option func(*TodoStore)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen func() string) Option {
	return func(ts *TodoStore) {
		ts.newID = gen
	}
}

// TodoStore keeps todos in insertion order. A single lock guards the
// whole collection.
type TodoStore struct {
	mu    sync.RWMutex
	newID func() string
	todos []domain.Todo
}

var _ store.TodoStore = (*TodoStore)(nil)

func New(opts ...Option) *TodoStore {
	ts := &TodoStore{
		newID: uuid.NewString,
		todos: make([]domain.Todo, 0),
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

func (ts *TodoStore) List() ([]domain.Todo, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return slices.Clone(ts.todos), nil
}

func (ts *TodoStore) Get(id string) (domain.Todo, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Todo{}, store.ErrNotFound
	}
	return ts.todos[i], nil
}

func (ts *TodoStore) Create(todo domain.Todo) (domain.Todo, error) {
	if todo.Title == "" {
		return domain.Todo{}, store.ErrTitleRequired
	}

	// completion is not definable by the caller
	todo.Completed = false

	ts.mu.Lock()
	defer ts.mu.Unlock()

	todo.ID = ts.newID()
	ts.todos = append(ts.todos, todo)

	return todo, nil
}

func (ts *TodoStore) Update(id string, patch domain.TodoPatch) (domain.Todo, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Todo{}, store.ErrNotFound
	}

	ts.todos[i] = patch.Apply(ts.todos[i])
	return ts.todos[i], nil
}

func (ts *TodoStore) Delete(id string) (domain.Todo, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Todo{}, store.ErrNotFound
	}

	deleted := ts.todos[i]
	ts.todos = slices.Delete(ts.todos, i, i+1)

	return deleted, nil
}

// indexOf must be called with mu held.
func (ts *TodoStore) indexOf(id string) int {
	return slices.IndexFunc(ts.todos, func(t domain.Todo) bool {
		return t.ID == id
	})
}

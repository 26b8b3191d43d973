package handlers

import (
	"errors"
	"net/http"
	"todo-manager/internal/domain"
	"todo-manager/internal/http/dto"
	"todo-manager/internal/logging"
	"todo-manager/internal/service"
)

type TodoService interface {
	ListTodos() ([]domain.Todo, error)
	GetTodo(id string) (domain.Todo, error)
	CreateTodo(title string) (domain.Todo, error)
	UpdateTodo(id string, patch domain.TodoPatch) (domain.Todo, error)
	DeleteTodo(id string) (domain.Todo, error)
}

type TodoHandler struct {
	todoService TodoService
	logger      *logging.Logger
}

func NewTodoHandler(todoService TodoService, logger *logging.Logger) *TodoHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TodoHandler{todoService: todoService, logger: logger.WithComponent("http")}
}

// GET /api/todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos()
	if err != nil {
		h.internalError(w, "list todos", err)
		return
	}

	response := make([]dto.TodoResponse, 0, len(todos))
	for _, todo := range todos {
		response = append(response, dto.NewTodoResponse(todo))
	}

	writeJSON(w, http.StatusOK, response)
}

// POST /api/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	todo, err := h.todoService.CreateTodo(req.Title)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, msgTitleRequired)
		default:
			h.internalError(w, "create todo", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewTodoResponse(todo))
}

// GET /api/todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todoService.GetTodo(r.PathValue("id"))
	if err != nil {
		h.lookupError(w, "get todo", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTodoResponse(todo))
}

// PUT /api/todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTodoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	todo, err := h.todoService.UpdateTodo(r.PathValue("id"), req.Patch())
	if err != nil {
		h.lookupError(w, "update todo", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTodoResponse(todo))
}

// DELETE /api/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todoService.DeleteTodo(r.PathValue("id"))
	if err != nil {
		h.lookupError(w, "delete todo", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteTodoResponse{
		Message: msgTodoDeleted,
		Deleted: dto.NewTodoResponse(todo),
	})
}

func (h *TodoHandler) lookupError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgTodoNotFound)
		return
	}
	h.internalError(w, op, err)
}

func (h *TodoHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" failed", map[string]interface{}{"error": err.Error()})
	writeError(w, http.StatusInternalServerError, msgInternal)
}

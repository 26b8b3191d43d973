package dto

import "todo-manager/internal/domain"

type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest fields are optional; absent fields are left unchanged.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (r UpdateTodoRequest) Patch() domain.TodoPatch {
	return domain.TodoPatch{
		Title:     r.Title,
		Completed: r.Completed,
	}
}

type TodoResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func NewTodoResponse(t domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

type DeleteTodoResponse struct {
	Message string       `json:"message"`
	Deleted TodoResponse `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

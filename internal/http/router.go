package router

import (
	"net/http"
	"todo-manager/internal/http/handlers"
)

type Middleware func(http.Handler) http.Handler

// New builds the route table. Middleware is applied in order, the first one
// outermost.
func New(todos *handlers.TodoHandler, ask *handlers.AskHandler, middleware ...Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handlers.Health)

	mux.HandleFunc("GET /api/todos", todos.List)
	mux.HandleFunc("POST /api/todos", todos.Create)
	mux.HandleFunc("GET /api/todos/{id}", todos.Get)
	mux.HandleFunc("PUT /api/todos/{id}", todos.Update)
	mux.HandleFunc("PATCH /api/todos/{id}", todos.Update)
	mux.HandleFunc("DELETE /api/todos/{id}", todos.Delete)

	mux.HandleFunc("POST /api/gemini/ask", ask.Ask)

	var h http.Handler = mux
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

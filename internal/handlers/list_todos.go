package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/surajravi/user-todo-api/internal/models"
)

// todoLists is the fixed payload served by the todos endpoint. Todo lists
// have no lifecycle and are not backed by storage.
var todoLists = []models.TodoList{
	{
		ID:       "6eb8745c-0b92-407e-9c65-02b85e9386c1",
		Username: "surajravi",
		Todos: []string{
			"Curate Workshop",
			"Demo",
			"Gather Feedback",
		},
	},
	{
		ID:       "0fc950e1-17ac-4844-ae60-5b63b7878c37",
		Username: "asharma",
		Todos: []string{
			"Vote",
			"Buy Milk",
			"Paint House",
		},
	},
}

// NewListTodosHandler returns an HTTP handler serving the static todo
// lists.
// @Summary List todo tasks
// @Description Lists todo task entities for consumers to browse.
// @Tags todos
// @Produce json
// @Success 200 {array} models.TodoList "Todo lists"
// @Router /todos/ [get]
func NewListTodosHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(todoLists)
	}
}

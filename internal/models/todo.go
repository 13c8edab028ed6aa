package models

// TodoList is the shape served by the todos endpoint. Todo lists are not
// persisted; the endpoint returns a fixed dataset.
type TodoList struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Todos    []string `json:"todos"`
}

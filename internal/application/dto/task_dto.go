package dto

// CreateTaskRequest entrada para crear una tarea (solo admin).
type CreateTaskRequest struct {
	Title      string `json:"title"`
	AssignedTo string `json:"assignedTo"`
}

// UpdateTaskRequest cambios de una tarea. Un valor vacío significa "sin cambio".
// Para usuarios no admin solo se aplica Status; Title y AssignedTo se ignoran.
type UpdateTaskRequest struct {
	Status     string `json:"status"`
	Title      string `json:"title"`
	AssignedTo string `json:"assignedTo"`
}

// TaskResponse salida de una tarea; completedAt es null mientras no esté completada.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
	AssignedTo  string  `json:"assignedTo"`
	CreatedBy   string  `json:"createdBy"`
	Status      string  `json:"status"`
}

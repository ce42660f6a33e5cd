package entity

import "time"

// Estados conocidos de una tarea; se admite cualquier otro texto.
const (
	TaskPending   = "Pendiente"
	TaskCompleted = "Completada"
)

// TaskDateLayout formato M/D/YYYY de createdAt y completedAt.
const TaskDateLayout = "1/2/2006"

// Task es una tarea asignable. AssignedTo referencia el nombre de un usuario sin
// integridad referencial. CompletedAt != nil si y solo si Status == TaskCompleted.
type Task struct {
	ID          int64
	Title       string
	CreatedAt   string
	CompletedAt *string
	AssignedTo  string
	CreatedBy   string
	Status      string
}

// NewTask crea una tarea pendiente con id único respecto a existing.
func NewTask(title, assignedTo, createdBy string, now time.Time, existing []Task) Task {
	return Task{
		ID:         NextTaskID(now, existing),
		Title:      title,
		CreatedAt:  now.Format(TaskDateLayout),
		AssignedTo: assignedTo,
		CreatedBy:  createdBy,
		Status:     TaskPending,
	}
}

// NextTaskID devuelve los milisegundos Unix de now, o max(existing)+1 si no es estrictamente mayor.
func NextTaskID(now time.Time, existing []Task) int64 {
	id := now.UnixMilli()
	for _, t := range existing {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// SetStatus cambia el estado manteniendo el invariante de CompletedAt.
func (t *Task) SetStatus(status string, now time.Time) {
	t.Status = status
	if status == TaskCompleted {
		d := now.Format(TaskDateLayout)
		t.CompletedAt = &d
		return
	}
	t.CompletedAt = nil
}

// VisibleTo indica si la identidad puede ver la tarea (admin ve todas).
func (t *Task) VisibleTo(id Identity) bool {
	return id.IsAdmin() || t.AssignedTo == id.Name
}

// CanBeEditedBy indica si la identidad puede modificar la tarea: admin o el asignado.
func (t *Task) CanBeEditedBy(id Identity) bool {
	return id.IsAdmin() || t.AssignedTo == id.Name
}

// ValidateNewTask valida los datos de creación.
func ValidateNewTask(title, assignedTo string) ValidationErrors {
	var errs ValidationErrors
	errs.Required("title", title)
	errs.Required("assignedTo", assignedTo)
	return errs
}

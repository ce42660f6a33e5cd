package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

// TaskUseCase lista de tareas asignables con filtro por dueño y rol.
type TaskUseCase struct {
	repo repository.TaskRepository
	now  func() time.Time
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, now: time.Now}
}

// List devuelve todas las tareas a un admin y solo las asignadas (por nombre exacto) al resto.
func (uc *TaskUseCase) List(ctx context.Context, caller entity.Identity) ([]dto.TaskResponse, error) {
	tasks, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		if tasks[i].VisibleTo(caller) {
			out = append(out, toTaskResponse(tasks[i]))
		}
	}
	return out, nil
}

// Create agrega una tarea pendiente. Solo admin.
func (uc *TaskUseCase) Create(ctx context.Context, caller entity.Identity, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if err := entity.ValidateNewTask(in.Title, in.AssignedTo).Err(); err != nil {
		return nil, err
	}
	var created entity.Task
	err := uc.repo.Mutate(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		created = entity.NewTask(in.Title, in.AssignedTo, caller.Name, uc.now(), tasks)
		return append(tasks, created), nil
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(created)
	return &out, nil
}

// Update modifica una tarea. Un usuario no admin solo puede tocar tareas asignadas a él y
// solo cambia el estado; title y assignedTo se ignoran en silencio. Un admin cambia todo.
func (uc *TaskUseCase) Update(ctx context.Context, caller entity.Identity, id int64, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	var updated entity.Task
	err := uc.repo.Mutate(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		i := indexOfTask(tasks, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		t := &tasks[i]
		if !t.CanBeEditedBy(caller) {
			return nil, domain.ErrForbidden
		}
		if caller.IsAdmin() {
			if in.Title != "" {
				t.Title = in.Title
			}
			if in.AssignedTo != "" {
				t.AssignedTo = in.AssignedTo
			}
		}
		if in.Status != "" {
			t.SetStatus(in.Status, uc.now())
		}
		updated = *t
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	out := toTaskResponse(updated)
	return &out, nil
}

// Delete elimina una tarea. Solo admin.
func (uc *TaskUseCase) Delete(ctx context.Context, caller entity.Identity, id int64) error {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return err
	}
	return uc.repo.Mutate(ctx, func(tasks []entity.Task) ([]entity.Task, error) {
		i := indexOfTask(tasks, id)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		return append(tasks[:i], tasks[i+1:]...), nil
	})
}

func indexOfTask(tasks []entity.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func toTaskResponse(t entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		Status:      t.Status,
	}
}

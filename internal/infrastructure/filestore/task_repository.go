// Package filestore persiste las tareas en un único archivo JSON.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// taskRecord formato en disco de una tarea.
type taskRecord struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	CreatedAt   string  `json:"createdAt"`
	CompletedAt *string `json:"completedAt"`
	AssignedTo  string  `json:"assignedTo"`
	CreatedBy   string  `json:"createdBy"`
	Status      string  `json:"status"`
}

// TaskRepo lee y reescribe el archivo completo en cada operación.
// mu serializa los ciclos leer-modificar-escribir de este proceso; otro proceso
// escribiendo el mismo archivo sigue siendo last-writer-wins.
type TaskRepo struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
}

// NewTaskRepository construye el repositorio sobre fs (afero.NewOsFs() en producción).
func NewTaskRepository(fs afero.Fs, path string) *TaskRepo {
	return &TaskRepo{fs: fs, path: path}
}

// List lee todas las tareas. Un archivo inexistente o vacío es una lista vacía.
func (r *TaskRepo) List(ctx context.Context) ([]entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.read()
}

// Mutate ejecuta fn bajo el lock de escritura y persiste su resultado.
func (r *TaskRepo) Mutate(ctx context.Context, fn func(tasks []entity.Task) ([]entity.Task, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.read()
	if err != nil {
		return err
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	return r.write(next)
}

func (r *TaskRepo) read() ([]entity.Task, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []entity.Task{}, nil
		}
		return nil, fmt.Errorf("leer tareas: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.Task{}, nil
	}
	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", r.path, err)
	}
	tasks := make([]entity.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, entity.Task{
			ID:          rec.ID,
			Title:       rec.Title,
			CreatedAt:   rec.CreatedAt,
			CompletedAt: rec.CompletedAt,
			AssignedTo:  rec.AssignedTo,
			CreatedBy:   rec.CreatedBy,
			Status:      rec.Status,
		})
	}
	return tasks, nil
}

// write reemplaza el archivo vía archivo temporal + rename.
func (r *TaskRepo) write(tasks []entity.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			CreatedAt:   t.CreatedAt,
			CompletedAt: t.CompletedAt,
			AssignedTo:  t.AssignedTo,
			CreatedBy:   t.CreatedBy,
			Status:      t.Status,
		})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar tareas: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir tareas: %w", err)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}
	return nil
}

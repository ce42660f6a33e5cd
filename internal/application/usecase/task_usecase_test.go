package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/filestore"
)

func newTaskUC() *TaskUseCase {
	uc := NewTaskUseCase(filestore.NewTaskRepository(afero.NewMemMapFs(), "data/tareas.json"))
	uc.now = func() time.Time { return t0 }
	return uc
}

func TestTaskCreate_SoloAdmin(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, operario, dto.CreateTaskRequest{Title: "x", AssignedTo: "Ana"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "Revisar baterías", AssignedTo: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, t0.UnixMilli(), out.ID)
	assert.Equal(t, entity.TaskPending, out.Status)
	assert.Nil(t, out.CompletedAt)
	assert.Equal(t, "Elon Musk", out.CreatedBy)
	assert.Equal(t, "1/10/2026", out.CreatedAt)
}

func TestTaskCreate_IdsUnicosConMismoReloj(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()

	a, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "a", AssignedTo: "Ana"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "b", AssignedTo: "Ana"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTaskList_Visibilidad(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()
	for _, who := range []string{"Ana", "Luis", "Ana", "ana"} {
		_, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "t", AssignedTo: who})
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := uc.List(ctx, operario)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, task := range mine {
		assert.Equal(t, "Ana", task.AssignedTo)
	}
}

func TestTaskUpdate_NoAdminSoloEstado(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()
	task, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "original", AssignedTo: "Ana"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, operario, task.ID, dto.UpdateTaskRequest{
		Status:     entity.TaskCompleted,
		Title:      "hackeado",
		AssignedTo: "Luis",
	})
	require.NoError(t, err)
	assert.Equal(t, "original", out.Title, "title se ignora para no admin")
	assert.Equal(t, "Ana", out.AssignedTo, "assignedTo se ignora para no admin")
	assert.Equal(t, entity.TaskCompleted, out.Status)
	require.NotNil(t, out.CompletedAt)
	assert.Equal(t, "1/10/2026", *out.CompletedAt)
}

func TestTaskUpdate_NoAsignadoForbidden(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()
	task, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "t", AssignedTo: "Luis"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, operario, task.ID, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(ctx, operario, 42, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound, "NotFound se evalúa antes que la propiedad")
}

func TestTaskUpdate_AdminCambiaTodoYEstadoLimpia(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()
	task, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "t", AssignedTo: "Luis"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, admin, task.ID, dto.UpdateTaskRequest{Status: entity.TaskCompleted, Title: "nuevo", AssignedTo: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", out.Title)
	assert.Equal(t, "Ana", out.AssignedTo)
	require.NotNil(t, out.CompletedAt)

	out, err = uc.Update(ctx, admin, task.ID, dto.UpdateTaskRequest{Status: "En revisión"})
	require.NoError(t, err)
	assert.Nil(t, out.CompletedAt)
	assert.Equal(t, "nuevo", out.Title, "campos vacíos no cambian")

	list, err := uc.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "En revisión", list[0].Status, "el cambio quedó persistido")
}

func TestTaskDelete(t *testing.T) {
	uc := newTaskUC()
	ctx := context.Background()
	task, err := uc.Create(ctx, admin, dto.CreateTaskRequest{Title: "t", AssignedTo: "Ana"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, operario, task.ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, admin, task.ID))
	assert.ErrorIs(t, uc.Delete(ctx, admin, task.ID), domain.ErrNotFound)

	list, err := uc.List(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, list)
}

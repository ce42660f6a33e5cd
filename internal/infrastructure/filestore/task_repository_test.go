package filestore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/filestore"
)

const tasksPath = "data/tareas.json"

func TestList_ArchivoInexistenteEsVacio(t *testing.T) {
	repo := filestore.NewTaskRepository(afero.NewMemMapFs(), tasksPath)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestList_ArchivoVacioEsVacio(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, tasksPath, []byte("  \n"), 0o644))

	tasks, err := filestore.NewTaskRepository(fs, tasksPath).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestList_LeeFormatoExistente(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `[
  {"id": 1700000000000, "title": "Revisar", "createdAt": "11/14/2023", "completedAt": null,
   "assignedTo": "Ana", "createdBy": "Elon Musk", "status": "Pendiente"},
  {"id": 1700000000001, "title": "Pintar", "createdAt": "11/14/2023", "completedAt": "11/15/2023",
   "assignedTo": "Luis", "createdBy": "Elon Musk", "status": "Completada"}
]`
	require.NoError(t, afero.WriteFile(fs, tasksPath, []byte(content), 0o644))

	tasks, err := filestore.NewTaskRepository(fs, tasksPath).List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1700000000000), tasks[0].ID)
	assert.Nil(t, tasks[0].CompletedAt)
	require.NotNil(t, tasks[1].CompletedAt)
	assert.Equal(t, "11/15/2023", *tasks[1].CompletedAt)
}

func TestList_JSONCorruptoFalla(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, tasksPath, []byte("{no es json"), 0o644))

	_, err := filestore.NewTaskRepository(fs, tasksPath).List(context.Background())
	assert.Error(t, err)
}

func TestMutate_PersisteYCreaDirectorio(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := filestore.NewTaskRepository(fs, tasksPath)

	err := repo.Mutate(context.Background(), func(tasks []entity.Task) ([]entity.Task, error) {
		return append(tasks, entity.Task{ID: 1, Title: "a", Status: entity.TaskPending}), nil
	})
	require.NoError(t, err)

	exists, err := afero.Exists(fs, tasksPath)
	require.NoError(t, err)
	assert.True(t, exists)

	raw, err := afero.ReadFile(fs, tasksPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"completedAt": null`)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].Title)
}

func TestMutate_ErrorNoEscribe(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := filestore.NewTaskRepository(fs, tasksPath)
	boom := errors.New("boom")

	err := repo.Mutate(context.Background(), func(tasks []entity.Task) ([]entity.Task, error) {
		return append(tasks, entity.Task{ID: 1}), boom
	})
	assert.ErrorIs(t, err, boom)

	exists, _ := afero.Exists(fs, tasksPath)
	assert.False(t, exists)
}

func TestMutate_ConcurrenteSinPerdidas(t *testing.T) {
	repo := filestore.NewTaskRepository(afero.NewMemMapFs(), tasksPath)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = repo.Mutate(context.Background(), func(tasks []entity.Task) ([]entity.Task, error) {
				return append(tasks, entity.Task{ID: id}), nil
			})
		}(int64(i))
	}
	wg.Wait()

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, writers)
}

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-tareas-api/internal/application/auth"
	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tareas-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 120,
		Issuer:     "test",
	}, auth.WithHashCost(bcrypt.MinCost))
	return uc, repo
}

func TestRegisterUser_RolPorDefectoYHash(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.NotEmpty(t, out.ID)

	stored, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))
}

func TestRegisterUser_DuplicadoFalla(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	in := dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "x"}

	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestRegisterUser_Validacion(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Username: "ana", Role: "root"})
	var verrs entity.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3) // name, password, role
}

func TestLogin_TokenConIdentidad(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "secreta", Role: "admin"})
	require.NoError(t, err)
	stored, _ := repo.FindByUsername(ctx, "ana")

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)
	assert.Equal(t, "Ana", out.Name)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Ana", claims.Name)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "secreta"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListUsers_SoloAdmin(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Username: "ana", Password: "x"})
	require.NoError(t, err)

	_, err = uc.ListUsers(ctx, entity.Identity{Role: entity.RoleUser, Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	users, err := uc.ListUsers(ctx, entity.Identity{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)
}

func TestSeedAdmin_SoloConColeccionVacia(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	created, err := uc.SeedAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.SeedAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created, "el seed no se repite")

	n, _ := repo.Count(ctx)
	assert.Equal(t, int64(1), n)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: auth.SeedAdminUsername, Password: auth.SeedAdminPassword})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, auth.SeedAdminName, out.Name)
}

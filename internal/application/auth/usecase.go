package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
	"github.com/jhoicas/inventario-tareas-api/pkg/jwt"
)

// Administrador creado por SeedAdmin cuando no hay usuarios.
const (
	SeedAdminName     = "Elon Musk"
	SeedAdminUsername = "admin"
	SeedAdminPassword = "123"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Option ajusta el caso de uso.
type Option func(*AuthUseCase)

// WithHashCost cambia el costo de bcrypt (los tests usan bcrypt.MinCost).
func WithHashCost(cost int) Option {
	return func(uc *AuthUseCase) { uc.hashCost = cost }
}

// AuthUseCase almacén de credenciales y servicio de sesión: registro, login, listado y seed.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	hashCost int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, opts ...Option) *AuthUseCase {
	uc := &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RegisterUser valida, hashea la contraseña con bcrypt y persiste.
// Devuelve domain.ErrUserExists si el username ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := entity.ValidateNewUser(in.Name, in.Username, in.Password, in.Role).Err(); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user, err := uc.newUser(in.Name, in.Username, in.Password, role)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y emite un token con {id, role, name}.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, Role: user.Role, Name: user.Name}, nil
}

// ListUsers devuelve todos los usuarios sin contraseña. Solo admin.
func (uc *AuthUseCase) ListUsers(ctx context.Context, caller entity.Identity) ([]dto.UserResponse, error) {
	if err := entity.Authorize(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// SeedAdmin crea el administrador por defecto si la colección de usuarios está vacía.
// Devuelve true si lo creó.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context) (bool, error) {
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("contar usuarios: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	user, err := uc.newUser(SeedAdminName, SeedAdminUsername, SeedAdminPassword, entity.RoleAdmin)
	if err != nil {
		return false, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("crear admin por defecto: %w", err)
	}
	return true, nil
}

func (uc *AuthUseCase) newUser(name, username, password, role string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}
	return &entity.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/access"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios. La gestión es de admin; un usuario
// external solo puede consultarse a sí mismo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con la contraseña hasheada (bcrypt). Solo admin.
// Rol vacío queda como external.
func (uc *UserUseCase) Create(p access.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	role := in.Role
	if role == "" {
		role = string(access.RoleExternal)
	}
	if _, err := access.ParseRole(role); err != nil {
		return nil, domain.NewValidationError("role", "rol desconocido")
	}
	if existing, _ := uc.repo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, _ := uc.repo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario: admin ve a todos, external solo a sí mismo.
func (uc *UserUseCase) GetByID(p access.Principal, id string) (*dto.UserResponse, error) {
	if !p.IsAdmin() && p.UserID != id {
		return nil, domain.ErrNotFound
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios. Solo admin.
func (uc *UserUseCase) List(p access.Principal) ([]dto.UserResponse, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update actualiza un usuario. Solo admin puede cambiar rol o estado.
func (uc *UserUseCase) Update(p access.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !p.IsAdmin() && p.UserID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if (in.Role != nil || in.IsActive != nil) && !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Email != nil {
		if existing, _ := uc.repo.GetByEmail(*in.Email); existing != nil && existing.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if _, err := access.ParseRole(*in.Role); err != nil {
			return nil, domain.NewValidationError("role", "rol desconocido")
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Solo admin. La base de datos cascadea sus empresas.
func (uc *UserUseCase) Delete(p access.Principal, id string) error {
	if !p.IsAdmin() {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

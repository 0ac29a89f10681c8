package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	RoleToModel(r *user.Role) *models.RoleModel
	RoleToDomain(model *models.RoleModel) (*user.Role, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Email:        u.Email(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		PhoneNumber:  u.PhoneNumber(),
		Department:   u.Department(),
		AvatarURL:    u.AvatarURL(),
		RoleID:       u.RoleID(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	entity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Email,
		model.FirstName,
		model.LastName,
		model.PhoneNumber,
		model.Department,
		model.AvatarURL,
		model.RoleID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) RoleToModel(r *user.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
	}
}

func (m *UserMapperImpl) RoleToDomain(model *models.RoleModel) (*user.Role, error) {
	entity, err := user.ReconstructRole(model.ID, model.Name, model.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role: %w", err)
	}
	return entity, nil
}

package mappers

import (
	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/persistence/models"
	"datarequests/internal/shared/biztime"
)

func UserToModel(u *identity.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID(),
		Name:        u.Name(),
		DisplayName: u.DisplayName(),
		Sysadmin:    u.IsSysadmin(),
		CreatedAt:   u.CreatedAt(),
	}
}

func UserToDomain(model *models.UserModel) *identity.User {
	return identity.ReconstructUser(model.ID, model.Name, model.DisplayName, model.Sysadmin, biztime.ToUTC(model.CreatedAt))
}

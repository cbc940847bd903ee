package handler

import (
	"strings"

	"github.com/xela07ax/mrp-console/internal/domain"
)

// DTO запросов. Правила полей гоняются по сырым значениям (до trim),
// обрезка пробелов происходит здесь же, в конвертации в модель.
// Пароли не обрезаются никогда: их точное значение уходит в bcrypt.

type loginDto struct {
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,passwd"`
}

type createUserDto struct {
	Name     *string `json:"name" validate:"required,uname"`
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,passwd"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,min=1"`
}

func (d *createUserDto) toModel() *domain.CreateUser {
	// Роль опциональна; неизвестное имя тоже откатывается в User
	role := domain.RoleUser
	if d.Role != nil {
		if r, ok := domain.NormalizeRole(*d.Role); ok {
			role = r
		}
	}

	address := ""
	if d.Address != nil {
		address = strings.TrimSpace(*d.Address)
	}

	return &domain.CreateUser{
		Name:     strings.TrimSpace(*d.Name),
		Email:    strings.TrimSpace(*d.Email),
		Password: *d.Password,
		Address:  address,
		Role:     role,
	}
}

type updateUserDto struct {
	Name     *string `json:"name" validate:"omitempty,uname"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,passwd"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
	Role     *string `json:"role" validate:"omitempty,min=1"`
}

func (d *updateUserDto) toModel() *domain.UpdateUser {
	out := &domain.UpdateUser{
		Name:     trimmed(d.Name),
		Email:    trimmed(d.Email),
		Password: d.Password,
		Address:  trimmed(d.Address),
	}
	// Нераспознанная роль не меняет роль (как и отсутствие поля)
	if d.Role != nil {
		if r, ok := domain.NormalizeRole(*d.Role); ok {
			out.Role = &r
		}
	}
	return out
}

type roleDto struct {
	Name string `json:"name" validate:"uname"`
}

func (d *roleDto) toModel() domain.RequestRole {
	return domain.RequestRole{Name: strings.TrimSpace(d.Name)}
}

type createSupplierDto struct {
	Name    string `json:"name" validate:"uname"`
	Email   string `json:"email" validate:"email"`
	Phone   string `json:"phone" validate:"min=1"`
	Address string `json:"address" validate:"min=1"`
}

func (d *createSupplierDto) toModel() domain.CreateSupplier {
	return domain.CreateSupplier{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Phone:   strings.TrimSpace(d.Phone),
		Address: strings.TrimSpace(d.Address),
	}
}

type updateSupplierDto struct {
	Name    *string `json:"name" validate:"omitempty,uname"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=1"`
}

func (d *updateSupplierDto) toModel() domain.UpdateSupplier {
	return domain.UpdateSupplier{
		Name:    trimmed(d.Name),
		Email:   trimmed(d.Email),
		Phone:   trimmed(d.Phone),
		Address: trimmed(d.Address),
	}
}

type createMaterialGroupDto struct {
	Name     string `json:"name" validate:"grpname"`
	SubGroup string `json:"sub_group" validate:"grpname"`
}

func (d *createMaterialGroupDto) toModel() domain.CreateMaterialGroup {
	return domain.CreateMaterialGroup{
		Name:         strings.TrimSpace(d.Name),
		SubGroupName: strings.TrimSpace(d.SubGroup),
	}
}

type updateMaterialGroupDto struct {
	Name     *string `json:"name" validate:"omitempty,grpname"`
	SubGroup *string `json:"sub_group" validate:"omitempty,grpname"`
}

func (d *updateMaterialGroupDto) toModel() domain.UpdateMaterialGroup {
	return domain.UpdateMaterialGroup{
		Name:         trimmed(d.Name),
		SubGroupName: trimmed(d.SubGroup),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

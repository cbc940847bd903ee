package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xela07ax/mrp-console/internal/domain"
)

func str(s string) *string { return &s }

func TestCreateUserDto_TrimsAllButPassword(t *testing.T) {
	t.Parallel()

	dto := createUserDto{
		Name:     str(" alice.b "),
		Email:    str(" a@b.com "),
		Password: str("secret1"),
		Address:  str("  Main st. 1  "),
	}
	m := dto.toModel()

	require.Equal(t, "alice.b", m.Name)
	require.Equal(t, "a@b.com", m.Email)
	require.Equal(t, "Main st. 1", m.Address)
	// Пароль уходит байт-в-байт
	require.Equal(t, "secret1", m.Password)
}

func TestCreateUserDto_RoleDefaultsToUser(t *testing.T) {
	t.Parallel()

	m := (&createUserDto{
		Name:     str("alice.b"),
		Email:    str("a@b.com"),
		Password: str("secret1"),
	}).toModel()

	require.Equal(t, domain.RoleUser, m.Role)
}

func TestCreateUserDto_RoleNormalized(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"admin":  domain.RoleAdmin,
		"ADMIN":  domain.RoleAdmin,
		" user ": domain.RoleUser,
		"root":   domain.RoleUser, // неизвестная роль откатывается в User
	}
	for in, want := range cases {
		m := (&createUserDto{
			Name:     str("alice.b"),
			Email:    str("a@b.com"),
			Password: str("secret1"),
			Role:     str(in),
		}).toModel()
		require.Equal(t, want, m.Role, "role=%q", in)
	}
}

func TestUpdateUserDto_NilFieldsStayNil(t *testing.T) {
	t.Parallel()

	m := (&updateUserDto{Name: str(" bob_2 ")}).toModel()

	require.Equal(t, "bob_2", *m.Name)
	require.Nil(t, m.Email)
	require.Nil(t, m.Password)
	require.Nil(t, m.Address)
	require.Nil(t, m.Role)
}

func TestUpdateUserDto_UnknownRoleIgnored(t *testing.T) {
	t.Parallel()

	m := (&updateUserDto{Role: str("superuser")}).toModel()
	// Нераспознанная роль не меняет роль
	require.Nil(t, m.Role)

	m = (&updateUserDto{Role: str("admin")}).toModel()
	require.Equal(t, domain.RoleAdmin, *m.Role)
}

func TestUpdateUserDto_PasswordNotTrimmed(t *testing.T) {
	t.Parallel()

	m := (&updateUserDto{Password: str("secret1")}).toModel()
	require.Equal(t, "secret1", *m.Password)
}

func TestSupplierDto_Trims(t *testing.T) {
	t.Parallel()

	m := (&createSupplierDto{
		Name:    " acme_01 ",
		Email:   " sales@acme.io ",
		Phone:   " +1 555 0100 ",
		Address: " Dock 4 ",
	}).toModel()

	require.Equal(t, domain.CreateSupplier{
		Name:    "acme_01",
		Email:   "sales@acme.io",
		Phone:   "+1 555 0100",
		Address: "Dock 4",
	}, m)
}

func TestMaterialGroupDto_Trims(t *testing.T) {
	t.Parallel()

	m := (&createMaterialGroupDto{
		Name:     " Raw Materials ",
		SubGroup: " Steel ",
	}).toModel()

	require.Equal(t, "Raw Materials", m.Name)
	require.Equal(t, "Steel", m.SubGroupName)

	u := (&updateMaterialGroupDto{SubGroup: str(" Copper ")}).toModel()
	require.Nil(t, u.Name)
	require.Equal(t, "Copper", *u.SubGroupName)
}

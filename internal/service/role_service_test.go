package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xela07ax/mrp-console/internal/domain"
)

type fakeRoleRepo struct {
	roles map[uuid.UUID]*domain.Role
}

func (f *fakeRoleRepo) CreateRole(_ context.Context, req domain.RequestRole) (*domain.Role, error) {
	r := &domain.Role{ID: uuid.New(), Name: req.Name}
	f.roles[r.ID] = r
	return r, nil
}

func (f *fakeRoleRepo) GetRoles(context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoleRepo) GetRoleByID(_ context.Context, id uuid.UUID) (*domain.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, domain.NotFound("Not Found")
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) UpdateRole(_ context.Context, id uuid.UUID, req domain.RequestRole) (*domain.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, domain.NotFound("Not Found")
	}
	r.Name = req.Name
	return r, nil
}

func (f *fakeRoleRepo) DeleteRole(_ context.Context, id uuid.UUID) error {
	if _, ok := f.roles[id]; !ok {
		return domain.NotFound("Not Found")
	}
	delete(f.roles, id)
	return nil
}

type invalidationRecorder struct {
	names []string
}

func (r *invalidationRecorder) Invalidate(_ context.Context, names ...string) {
	r.names = append(r.names, names...)
}

func TestRoleService_UpdateInvalidatesOldAndNewName(t *testing.T) {
	t.Parallel()

	repo := &fakeRoleRepo{roles: make(map[uuid.UUID]*domain.Role)}
	rec := &invalidationRecorder{}
	svc := NewRoleService(repo, rec)

	role, err := svc.Create(context.Background(), domain.RequestRole{Name: "Operator"})
	require.NoError(t, err)
	require.Equal(t, []string{"Operator"}, rec.names)

	rec.names = nil
	updated, err := svc.Update(context.Background(), role.ID, domain.RequestRole{Name: "Supervisor"})
	require.NoError(t, err)
	require.Equal(t, "Supervisor", updated.Name)
	// Ключи кэша именные: переименование чистит оба имени
	require.Equal(t, []string{"Operator", "Supervisor"}, rec.names)
}

func TestRoleService_DeleteInvalidatesName(t *testing.T) {
	t.Parallel()

	repo := &fakeRoleRepo{roles: make(map[uuid.UUID]*domain.Role)}
	rec := &invalidationRecorder{}
	svc := NewRoleService(repo, rec)

	role, err := svc.Create(context.Background(), domain.RequestRole{Name: "Operator"})
	require.NoError(t, err)

	rec.names = nil
	require.NoError(t, svc.Delete(context.Background(), role.ID))
	require.Equal(t, []string{"Operator"}, rec.names)
}

func TestRoleService_DeleteMissingRoleDoesNotInvalidate(t *testing.T) {
	t.Parallel()

	repo := &fakeRoleRepo{roles: make(map[uuid.UUID]*domain.Role)}
	rec := &invalidationRecorder{}
	svc := NewRoleService(repo, rec)

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	require.Empty(t, rec.names)
}

func TestRoleService_NilCacheIsNoop(t *testing.T) {
	t.Parallel()

	repo := &fakeRoleRepo{roles: make(map[uuid.UUID]*domain.Role)}
	svc := NewRoleService(repo, nil)

	_, err := svc.Create(context.Background(), domain.RequestRole{Name: "Operator"})
	require.NoError(t, err)
}

package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

type memRepo struct {
	items []*Admin
	seq   int
}

func (m *memRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func (m *memRepo) CreateFirst(ctx context.Context, a *Admin) (bool, error) {
	if len(m.items) > 0 {
		return false, nil
	}
	return true, m.Create(ctx, a)
}

func (m *memRepo) Create(_ context.Context, a *Admin) error {
	for _, x := range m.items {
		if x.Username == a.Username {
			return ErrUsernameTaken
		}
	}
	m.seq++
	a.ID = fmt.Sprintf("admin-%d", m.seq)
	a.CreatedAt = time.Now()
	cp := *a
	m.items = append(m.items, &cp)
	return nil
}

func (m *memRepo) find(pred func(*Admin) bool) (*Admin, error) {
	for _, x := range m.items {
		if pred(x) {
			cp := *x
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Admin, error) {
	return m.find(func(a *Admin) bool { return a.ID == id })
}

func (m *memRepo) GetByUsername(_ context.Context, username string) (*Admin, error) {
	return m.find(func(a *Admin) bool { return a.Username == username })
}

func (m *memRepo) List(_ context.Context) ([]*Admin, error) {
	out := make([]*Admin, len(m.items))
	for i, x := range m.items {
		cp := *x
		out[i] = &cp
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, a *Admin) error {
	for _, x := range m.items {
		if x.ID == a.ID {
			x.PasswordHash = a.PasswordHash
			x.Permissions = a.Permissions
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	for i, x := range m.items {
		if x.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestService() (Service, *memRepo) {
	repo := &memRepo{}
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)), repo
}

func TestSetup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	required, err := svc.SetupRequired(ctx)
	require.NoError(t, err)
	assert.True(t, required)

	_, err = svc.Setup(ctx, "root", "12345")
	assert.ErrorIs(t, err, ErrSetupInvalid)

	a, err := svc.Setup(ctx, "  Root ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "root", a.Username)
	assert.Equal(t, auth.RoleSuperAdmin, a.Role)
	assert.Equal(t, auth.SuperAdminPermissions, a.Permissions)

	_, err = svc.Setup(ctx, "other", "secret2")
	assert.ErrorIs(t, err, ErrSetupCompleted)

	required, err = svc.SetupRequired(ctx)
	require.NoError(t, err)
	assert.False(t, required)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	_, err := svc.Setup(ctx, "root", "secret1")
	require.NoError(t, err)

	a, err := svc.Login(ctx, " ROOT ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "root", a.Username)

	_, err = svc.Login(ctx, "root", "wrong!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "secret1")
	assert.ErrorIs(t, err, ErrCredentialsRequired)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	a, err := svc.Create(ctx, CreateRequest{Username: "Ayse", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ayse", a.Username)
	assert.Equal(t, auth.RoleAdmin, a.Role)
	assert.Equal(t, auth.DefaultPermissions, a.Permissions)

	_, err = svc.Create(ctx, CreateRequest{Username: "ayse", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Create(ctx, CreateRequest{Username: "mehmet", Password: "123"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	custom := auth.Permissions{CanViewMessages: true}
	b, err := svc.Create(ctx, CreateRequest{Username: "mehmet", Password: "secret1", Permissions: &custom})
	require.NoError(t, err)
	assert.Equal(t, custom, b.Permissions)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	root, err := svc.Setup(ctx, "root", "secret1")
	require.NoError(t, err)
	actor := root.Principal()

	a, err := svc.Create(ctx, CreateRequest{Username: "ayse", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, actor, a.ID, UpdateRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	short := "123"
	_, err = svc.Update(ctx, actor, a.ID, UpdateRequest{Password: &short})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	perms := auth.Permissions{CanDeleteBookings: true}
	pw := "newsecret"
	updated, err := svc.Update(ctx, actor, a.ID, UpdateRequest{Password: &pw, Permissions: &perms})
	require.NoError(t, err)
	assert.Equal(t, perms, updated.Permissions)

	_, err = svc.Login(ctx, "ayse", "newsecret")
	assert.NoError(t, err)

	// Super admins may edit themselves.
	_, err = svc.Update(ctx, actor, root.ID, UpdateRequest{Password: &pw})
	assert.NoError(t, err)
}

func TestUpdate_CannotEditOtherSuperAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	root, err := svc.Setup(ctx, "root", "secret1")
	require.NoError(t, err)
	other := &Admin{Username: "root2", Role: auth.RoleSuperAdmin}
	require.NoError(t, repo.Create(ctx, other))

	pw := "newsecret"
	_, err = svc.Update(ctx, root.Principal(), other.ID, UpdateRequest{Password: &pw})
	assert.ErrorIs(t, err, ErrCannotEditSuperAdmin)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	root, err := svc.Setup(ctx, "root", "secret1")
	require.NoError(t, err)
	actor := root.Principal()

	assert.ErrorIs(t, svc.Delete(ctx, actor, root.ID), ErrCannotDeleteSelf)

	other := &Admin{Username: "root2", Role: auth.RoleSuperAdmin}
	require.NoError(t, repo.Create(ctx, other))
	assert.ErrorIs(t, svc.Delete(ctx, actor, other.ID), ErrCannotDeleteSuperAdmin)

	a, err := svc.Create(ctx, CreateRequest{Username: "ayse", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, actor, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, actor, a.ID), ErrNotFound)
}

func TestLoadPrincipal_ReflectsLatestPermissions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	root, err := svc.Setup(ctx, "root", "secret1")
	require.NoError(t, err)
	a, err := svc.Create(ctx, CreateRequest{Username: "ayse", Password: "secret1"})
	require.NoError(t, err)

	p, err := svc.LoadPrincipal(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, p.Can(auth.PermApproveBookings))
	assert.False(t, p.Can(auth.PermDeleteBookings))

	perms := auth.Permissions{CanDeleteBookings: true}
	_, err = svc.Update(ctx, root.Principal(), a.ID, UpdateRequest{Permissions: &perms})
	require.NoError(t, err)

	p, err = svc.LoadPrincipal(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, p.Can(auth.PermApproveBookings))
	assert.True(t, p.Can(auth.PermDeleteBookings))

	rp, err := svc.LoadPrincipal(ctx, root.ID)
	require.NoError(t, err)
	assert.True(t, rp.IsSuperAdmin())
	assert.True(t, rp.Can(auth.PermViewMessages))

	_, err = svc.LoadPrincipal(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

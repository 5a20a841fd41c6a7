package field

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	facilities map[string]string
	items      map[string]*Field
	seq        int
}

func newMemRepo() *memRepo {
	return &memRepo{
		facilities: map[string]string{"fac-1": "Yıldız", "fac-2": "Güneş"},
		items:      map[string]*Field{},
	}
}

func (m *memRepo) Create(_ context.Context, f *Field) error {
	if _, ok := m.facilities[f.FacilityID]; !ok {
		return ErrFacilityNotFound
	}
	m.seq++
	f.ID = fmt.Sprintf("field-%d", m.seq)
	f.CreatedAt = time.Now()
	cp := *f
	m.items[f.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Field, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	cp.FacilityName = m.facilities[f.FacilityID]
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, filter Filter) ([]*Field, error) {
	var out []*Field
	for _, f := range m.items {
		if filter.FacilityID != "" && f.FacilityID != filter.FacilityID {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, f *Field) error {
	if _, ok := m.facilities[f.FacilityID]; !ok {
		return ErrFacilityNotFound
	}
	if _, ok := m.items[f.ID]; !ok {
		return ErrNotFound
	}
	cp := *f
	m.items[f.ID] = &cp
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	_, err := svc.Create(ctx, CreateRequest{FacilityID: "fac-1", Name: " "})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{Name: "Saha 1"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, CreateRequest{FacilityID: "nope", Name: "Saha 1"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	f, err := svc.Create(ctx, CreateRequest{FacilityID: "fac-1", Name: "Saha 1", Type: "7v7"})
	require.NoError(t, err)
	assert.Equal(t, "Yıldız", f.FacilityName)
	assert.Equal(t, "7v7", f.Type)
}

func TestService_UpdateMovesFacility(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	f, err := svc.Create(ctx, CreateRequest{FacilityID: "fac-1", Name: "Saha 1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, f.ID, UpdateRequest{FacilityID: "fac-2", Name: "Saha A"})
	require.NoError(t, err)
	assert.Equal(t, "Güneş", updated.FacilityName)
	assert.Equal(t, "Saha A", updated.Name)

	_, err = svc.Update(ctx, "missing", UpdateRequest{FacilityID: "fac-1", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListAndExists(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	a, _ := svc.Create(ctx, CreateRequest{FacilityID: "fac-1", Name: "Saha 1"})
	_, _ = svc.Create(ctx, CreateRequest{FacilityID: "fac-2", Name: "Saha 2"})

	list, err := svc.List(ctx, Filter{FacilityID: "fac-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	ok, err := svc.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Delete(ctx, a.ID))
	ok, err = svc.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

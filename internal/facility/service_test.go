package facility

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items map[string]*Facility
	seq   int
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]*Facility{}}
}

func (m *memRepo) Create(_ context.Context, f *Facility) error {
	m.seq++
	f.ID = fmt.Sprintf("fac-%d", m.seq)
	f.CreatedAt = time.Now()
	cp := *f
	m.items[f.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Facility, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *memRepo) List(_ context.Context) ([]*Facility, error) {
	var out []*Facility
	for _, f := range m.items {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) Update(_ context.Context, f *Facility) error {
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

func TestService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	_, err := svc.Create(ctx, CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	f, err := svc.Create(ctx, CreateRequest{Name: " Yıldız Halı Saha ", Address: "Kadıköy", Phone: "0216 000 00 00"})
	require.NoError(t, err)
	assert.Equal(t, "Yıldız Halı Saha", f.Name)

	updated, err := svc.Update(ctx, f.ID, UpdateRequest{Name: "Yıldız Spor", Address: "Moda"})
	require.NoError(t, err)
	assert.Equal(t, "Yıldız Spor", updated.Name)
	assert.Equal(t, "Moda", updated.Address)
	assert.Empty(t, updated.Phone)

	_, err = svc.Update(ctx, "missing", UpdateRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, f.ID, UpdateRequest{Name: ""})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	b, _ := svc.Create(ctx, CreateRequest{Name: "B Tesisi"})
	_, _ = svc.Create(ctx, CreateRequest{Name: "A Tesisi"})

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A Tesisi", list[0].Name)

	require.NoError(t, svc.Delete(ctx, b.ID))
	assert.ErrorIs(t, svc.Delete(ctx, b.ID), ErrNotFound)
}

package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
)

type mockRepository struct {
	mu        sync.Mutex
	snapshots map[string][]models.CartLine
	loadErr   error
	saveErr   error
	saves     int
}

func newMockRepository() *mockRepository {
	return &mockRepository{snapshots: make(map[string][]models.CartLine)}
}

func (m *mockRepository) Load(_ context.Context, sessionID string) ([]models.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	lines, ok := m.snapshots[sessionID]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return lines, nil
}

func (m *mockRepository) Save(_ context.Context, sessionID string, lines []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := make([]models.CartLine, len(lines))
	copy(cp, lines)
	m.snapshots[sessionID] = cp
	return nil
}

func (m *mockRepository) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, sessionID)
	return nil
}

func line(id int64, name string, price, qty int64) models.CartLine {
	return models.CartLine{ProductID: id, Name: name, UnitPrice: price, Quantity: qty}
}

func TestAddItem_NewLines(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "Brahma", 26500, 2))
	c := svc.AddItem(ctx, "s1", line(2, "Miller", 36000, 1))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, int64(3), c.TotalItems)
	assert.Equal(t, int64(2*26500+36000), c.TotalPrice)
	// orden de inserción
	assert.Equal(t, int64(1), c.Lines[0].ProductID)
	assert.Equal(t, int64(2), c.Lines[1].ProductID)
}

func TestAddItem_SameProductMergesQuantity(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.AddItem(ctx, "s1", line(1, "X", 100, 3))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(5), c.Lines[0].Quantity)
	assert.Equal(t, int64(5), c.TotalItems)
	assert.Equal(t, int64(500), c.TotalPrice)
}

func TestAddItem_MergeKeepsOriginalPriceAndName(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "Original", 100, 1))
	c := svc.AddItem(ctx, "s1", line(1, "Renamed", 999, 1))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Original", c.Lines[0].Name)
	assert.Equal(t, int64(100), c.Lines[0].UnitPrice)
	assert.Equal(t, int64(200), c.TotalPrice)
}

func TestAddItem_QuantityClampedToOne(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())

	c := svc.AddItem(context.Background(), "s1", line(1, "X", 100, 0))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(1), c.Lines[0].Quantity)
}

func TestUpdateQuantity_Absolute(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.UpdateQuantity(ctx, "s1", 1, 7)

	assert.Equal(t, int64(7), c.Lines[0].Quantity)
	assert.Equal(t, int64(700), c.TotalPrice)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.UpdateQuantity(ctx, "s1", 1, 0)

	assert.Empty(t, c.Lines)
	assert.Equal(t, int64(0), c.TotalItems)
	assert.Equal(t, int64(0), c.TotalPrice)
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.UpdateQuantity(ctx, "s1", 99, 5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), c.Lines[0].Quantity)
}

func TestRemoveItem_LastLineLeavesEmptyCart(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.RemoveItem(ctx, "s1", 1)

	assert.Empty(t, c.Lines)
	assert.Equal(t, int64(0), c.TotalItems)
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.RemoveItem(ctx, "s1", 42)

	require.Len(t, c.Lines, 1)
}

func TestClear_EmptiesAllLines(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	svc.AddItem(ctx, "s1", line(2, "Y", 50, 1))
	c := svc.Clear(ctx, "s1")

	assert.Empty(t, c.Lines)
	assert.Equal(t, int64(0), c.TotalPrice)
}

func TestTotals_InvariantAcrossMutationSequence(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "A", 100, 2))
	svc.AddItem(ctx, "s1", line(2, "B", 250, 4))
	svc.UpdateQuantity(ctx, "s1", 1, 3)
	svc.RemoveItem(ctx, "s1", 2)
	c := svc.AddItem(ctx, "s1", line(3, "C", 10, 1))

	var wantItems, wantPrice int64
	for _, l := range c.Lines {
		wantItems += l.Quantity
		wantPrice += l.UnitPrice * l.Quantity
	}
	assert.Equal(t, wantItems, c.TotalItems)
	assert.Equal(t, wantPrice, c.TotalPrice)
}

func TestEveryMutationPersistsSnapshot(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	svc.UpdateQuantity(ctx, "s1", 1, 5)
	svc.RemoveItem(ctx, "s1", 1)
	svc.Clear(ctx, "s1")

	assert.Equal(t, 4, repo.saves)
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	repo := newMockRepository()
	repo.saveErr = errors.New("storage down")
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 2))
	c := svc.GetCart(ctx, "s1")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), c.TotalItems)
}

func TestLoadFailureFallsBackToEmptyCart(t *testing.T) {
	repo := newMockRepository()
	repo.loadErr = ErrSnapshotCorrupt
	svc := NewService(repo, zap.NewNop())

	c := svc.GetCart(context.Background(), "s1")

	assert.Empty(t, c.Lines)
}

func TestRoundTrip_FreshSessionReconstructsCart(t *testing.T) {
	repo := newMockRepository()
	ctx := context.Background()

	first := NewService(repo, zap.NewNop())
	first.AddItem(ctx, "s1", line(1, "Brahma", 26500, 2))
	first.AddItem(ctx, "s1", line(2, "Miller", 36000, 1))

	// sesión nueva sobre el mismo storage
	second := NewService(repo, zap.NewNop())
	c := second.GetCart(ctx, "s1")

	require.Len(t, c.Lines, 2)
	assert.Equal(t, int64(3), c.TotalItems)
	assert.Equal(t, int64(2*26500+36000), c.TotalPrice)
	assert.Equal(t, "Brahma", c.Lines[0].Name)
}

func TestNilRepository_InMemoryOnly(t *testing.T) {
	svc := NewService(nil, zap.NewNop())
	ctx := context.Background()

	c := svc.AddItem(ctx, "s1", line(1, "X", 100, 1))
	require.Len(t, c.Lines, 1)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", line(1, "X", 100, 1))
	c2 := svc.GetCart(ctx, "s2")

	assert.Empty(t, c2.Lines)
}

func TestReturnedCartIsACopy(t *testing.T) {
	svc := NewService(newMockRepository(), zap.NewNop())
	ctx := context.Background()

	c := svc.AddItem(ctx, "s1", line(1, "X", 100, 1))
	c.Lines[0].Quantity = 99

	fresh := svc.GetCart(ctx, "s1")
	assert.Equal(t, int64(1), fresh.Lines[0].Quantity)
}

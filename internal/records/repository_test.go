package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olirobz31/dashboard-analytics-pro/internal/store"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

var fixedNow = time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)

// newSeededRepo returns a repository over a seeded in-memory store.
func newSeededRepo(t *testing.T, collection string) (*Repository, *store.Store) {
	t.Helper()
	s := store.NewMemory()
	t.Cleanup(func() { s.Close() })
	_, err := Seed(s, false)
	require.NoError(t, err)

	repo, err := New(s, collection)
	require.NoError(t, err)
	repo.now = func() time.Time { return fixedNow }
	return repo, s
}

func TestNewRejectsUnknownCollection(t *testing.T) {
	_, err := New(store.NewMemory(), "invoices")
	assert.ErrorIs(t, err, types.ErrUnknownCollection)

	_, err = New(store.NewMemory(), types.SettingsCollection)
	assert.ErrorIs(t, err, types.ErrUnknownCollection)
}

func TestAddOrderGeneratesNextIDAtFront(t *testing.T) {
	repo, s := newSeededRepo(t, types.OrdersCollection)

	id, err := repo.Add(types.Record{
		"client":  "Lucas Martin",
		"product": "Dashboard Business",
		"amount":  249.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "#1235", id)

	recs, err := s.Load(types.OrdersCollection)
	require.NoError(t, err)
	require.Len(t, recs, 16)
	assert.Equal(t, "#1235", recs[0].ID())
	assert.Equal(t, types.OrderPending, recs[0].Str("status"))
	assert.Equal(t, "2024-02-03", recs[0].Str("date"))
}

func TestAddOrderIntoEmptyCollection(t *testing.T) {
	repo, err := New(store.NewMemory(), types.OrdersCollection)
	require.NoError(t, err)

	id, err := repo.Add(types.Record{"client": "A", "product": "B", "amount": 1.0, "date": "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "#1000", id)
}

func TestAddDoesNotMutateInput(t *testing.T) {
	repo, _ := newSeededRepo(t, types.OrdersCollection)

	in := types.Record{"client": "A", "product": "B", "amount": 10.0}
	_, err := repo.Add(in)
	require.NoError(t, err)
	_, hasID := in["id"]
	assert.False(t, hasID)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		rec     types.Record
		wantErr error
	}{
		{"duplicate id", types.Record{"id": "#1234", "client": "A", "product": "B", "amount": 1.0}, types.ErrDuplicateID},
		{"missing client", types.Record{"product": "B", "amount": 1.0}, types.ErrInvalidData},
		{"unknown status", types.Record{"client": "A", "product": "B", "amount": 1.0, "status": "refunded"}, types.ErrInvalidStatus},
		{"negative amount", types.Record{"client": "A", "product": "B", "amount": -5.0}, types.ErrInvalidAmount},
		{"non numeric amount", types.Record{"client": "A", "product": "B", "amount": "cheap"}, types.ErrInvalidAmount},
		{"amount with trailing text", types.Record{"client": "A", "product": "B", "amount": "149abc"}, types.ErrInvalidAmount},
		{"missing amount", types.Record{"client": "A", "product": "B"}, types.ErrInvalidAmount},
		{"bad date", types.Record{"client": "A", "product": "B", "amount": 1.0, "date": "15/01/2024"}, types.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newSeededRepo(t, types.OrdersCollection)
			_, err := repo.Add(tt.rec)
			assert.ErrorIs(t, err, tt.wantErr)

			recs, err := s.Load(types.OrdersCollection)
			require.NoError(t, err)
			assert.Len(t, recs, 15, "failed add must not write")
		})
	}
}

func TestAddRejectsNil(t *testing.T) {
	repo, _ := newSeededRepo(t, types.OrdersCollection)
	_, err := repo.Add(nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestAddUserGeneratesNumericID(t *testing.T) {
	repo, _ := newSeededRepo(t, types.UsersCollection)

	id, err := repo.Add(types.Record{"name": "Emma Leroy", "email": "emma.leroy@email.com"})
	require.NoError(t, err)
	assert.Equal(t, "11", id)

	got, err := repo.Get("11")
	require.NoError(t, err)
	assert.Equal(t, types.UserPending, got.Str("status"))
	assert.Equal(t, types.PlanStarter, got.Str("plan"))
}

func TestAddUserValidation(t *testing.T) {
	repo, _ := newSeededRepo(t, types.UsersCollection)

	_, err := repo.Add(types.Record{"name": "X", "email": "not-an-email"})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = repo.Add(types.Record{"name": "X", "email": "x@y.z", "plan": "gold"})
	assert.ErrorIs(t, err, types.ErrInvalidData)

	_, err = repo.Add(types.Record{"name": "X", "email": "x@y.z", "status": "banned"})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)
}

func TestAddProductGeneratesUUID(t *testing.T) {
	repo, _ := newSeededRepo(t, types.ProductsCollection)

	id, err := repo.Add(types.Record{"name": "Dashboard Enterprise", "price": 499.0})
	require.NoError(t, err)
	assert.Len(t, id, 36)

	_, err = repo.Add(types.Record{"name": "Broken", "price": "free"})
	assert.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestGet(t *testing.T) {
	repo, _ := newSeededRepo(t, types.OrdersCollection)

	rec, err := repo.Get("#1229")
	require.NoError(t, err)
	assert.Equal(t, "Lucas Petit", rec.Str("client"))

	_, err = repo.Get("#9999")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = repo.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestUpdateMergesAndKeepsPosition(t *testing.T) {
	repo, s := newSeededRepo(t, types.OrdersCollection)

	updated, err := repo.Update("#1230", types.Record{"status": types.OrderCompleted})
	require.NoError(t, err)
	assert.Equal(t, types.OrderCompleted, updated.Str("status"))
	assert.Equal(t, "Claire Moreau", updated.Str("client"))

	recs, err := s.Load(types.OrdersCollection)
	require.NoError(t, err)
	assert.Equal(t, "#1230", recs[4].ID())
	assert.Equal(t, types.OrderCompleted, recs[4].Str("status"))
}

func TestUpdateErrors(t *testing.T) {
	repo, _ := newSeededRepo(t, types.OrdersCollection)

	_, err := repo.Update("#1230", types.Record{"id": "#1", "status": "completed"})
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = repo.Update("#9999", types.Record{"status": "completed"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = repo.Update("#1230", types.Record{"status": "lost"})
	assert.ErrorIs(t, err, types.ErrInvalidStatus)

	_, err = repo.Update("", nil)
	assert.ErrorIs(t, err, types.ErrInvalidID)

	// Passing the same id is allowed.
	_, err = repo.Update("#1230", types.Record{"id": "#1230", "amount": 59.0})
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	repo, s := newSeededRepo(t, types.OrdersCollection)

	require.NoError(t, repo.Delete("#1234"))
	recs, err := s.Load(types.OrdersCollection)
	require.NoError(t, err)
	assert.Len(t, recs, 14)
	assert.Equal(t, "#1233", recs[0].ID())

	assert.ErrorIs(t, repo.Delete("#1234"), types.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(""), types.ErrInvalidID)
}

func TestDeleteUserByNumericID(t *testing.T) {
	repo, _ := newSeededRepo(t, types.UsersCollection)

	require.NoError(t, repo.Delete("3"))
	recs, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, recs, 9)
}

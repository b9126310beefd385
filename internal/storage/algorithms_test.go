package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.MigrateUp())
	return db
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "lib.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
	assert.FileExists(t, path)
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewAlgorithmRepository(openTestDB(t))

	id, err := repo.Create("sexy", "[R, U]", "R U R' U'", 4, "trigger", "")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	a, err := repo.Get("sexy")
	require.NoError(t, err)
	assert.Equal(t, id, a.AlgorithmID)
	assert.Equal(t, "[R, U]", a.Expression)
	assert.Equal(t, "R U R' U'", a.Expansion)
	assert.Equal(t, 4, a.MoveCount)
	assert.Equal(t, "trigger", a.Tag)
	assert.Nil(t, a.Notes)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestCreateDuplicateName(t *testing.T) {
	repo := NewAlgorithmRepository(openTestDB(t))

	_, err := repo.Create("sexy", "[R, U]", "R U R' U'", 4, "", "first")
	require.NoError(t, err)

	_, err = repo.Create("sexy", "R U R' U'", "R U R' U'", 4, "", "")
	assert.ErrorIs(t, err, ErrExists)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetMissing(t *testing.T) {
	repo := NewAlgorithmRepository(openTestDB(t))

	_, err := repo.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByTag(t *testing.T) {
	repo := NewAlgorithmRepository(openTestDB(t))

	_, err := repo.Create("sune", "R U R' U R U2 R'", "R U R' U R U2 R'", 7, "oll", "")
	require.NoError(t, err)
	_, err = repo.Create("aa-perm", "[x: [R' U R', D2] R2]", "x R' U R' D2 R U' R D2 R2 x'", 11, "pll", "")
	require.NoError(t, err)

	all, err := repo.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "aa-perm", all[0].Name)
	assert.Equal(t, "sune", all[1].Name)

	oll, err := repo.List("oll")
	require.NoError(t, err)
	require.Len(t, oll, 1)
	assert.Equal(t, "sune", oll[0].Name)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := NewAlgorithmRepository(openTestDB(t))

	_, err := repo.Create("insert", "[U R: U']", "U R U' R' U'", 5, "", "f2l")
	require.NoError(t, err)

	require.NoError(t, repo.Update("insert", "[R: U]", "R U R'", 3))
	a, err := repo.Get("insert")
	require.NoError(t, err)
	assert.Equal(t, "R U R'", a.Expansion)
	require.NotNil(t, a.Notes)
	assert.Equal(t, "f2l", *a.Notes)

	assert.ErrorIs(t, repo.Update("missing", "R", "R", 1), ErrNotFound)

	require.NoError(t, repo.Delete("insert"))
	assert.ErrorIs(t, repo.Delete("insert"), ErrNotFound)
}

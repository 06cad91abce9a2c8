package jsonkit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/require"

	"go.llib.dev/scriptkit/jsonkit"
)

type user struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func fixtureUsers(n int) []user {
	users := make([]user, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, user{
			Name:  randomdata.SillyName(),
			Email: randomdata.Email(),
			Age:   randomdata.Number(18, 99),
		})
	}
	return users
}

func TestWrite_arrayPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	users := fixtureUsers(rnd.IntBetween(1, 7))

	require.NoError(t, jsonkit.Write(path, users))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "[\n    "), "payload is indented")
	require.True(t, strings.HasSuffix(string(data), "\n"))

	records, err := jsonkit.Load(path)
	require.NoError(t, err)
	require.Len(t, records, len(users))
	for i, record := range records {
		name, err := jsonparser.GetString(record, "name")
		require.NoError(t, err)
		require.Equal(t, users[i].Name, name)
	}
}

func TestWrite_lineDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.jsonl")
	users := fixtureUsers(rnd.IntBetween(1, 7))

	require.NoError(t, jsonkit.Write(path, users))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, len(users), "one record per line")
	for i, line := range lines {
		age, err := jsonparser.GetInt([]byte(line), "age")
		require.NoError(t, err)
		require.Equal(t, users[i].Age, int(age))
	}
}

func TestWrite_emptyRecords(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "empty.json")
	require.NoError(t, jsonkit.Write(jsonPath, []user{}))
	records, err := jsonkit.Load(jsonPath)
	require.NoError(t, err)
	require.Empty(t, records)

	jsonlPath := filepath.Join(dir, "empty.jsonl")
	require.NoError(t, jsonkit.Write(jsonlPath, []user{}))
	data, err := os.ReadFile(jsonlPath)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestWrite_createsParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "users.jsonl")

	require.NoError(t, jsonkit.Write(path, fixtureUsers(3)))

	n, err := jsonkit.ItemCount(path)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestWrite_sorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.jsonl")
	byN := func(a, b jsonkit.Record) bool {
		av, _ := jsonparser.GetInt(a, "n")
		bv, _ := jsonparser.GetInt(b, "n")
		return av < bv
	}

	type numbered struct {
		N int `json:"n"`
	}
	require.NoError(t, jsonkit.Write(path, []numbered{{N: 3}, {N: 1}, {N: 2}}, jsonkit.WithSort(byN)))

	records, err := jsonkit.Load(path)
	require.NoError(t, err)
	require.Equal(t, []jsonkit.Record{
		jsonkit.Record(`{"n":1}`),
		jsonkit.Record(`{"n":2}`),
		jsonkit.Record(`{"n":3}`),
	}, records)
}

func TestWrite_unknownExtension(t *testing.T) {
	dir := t.TempDir()

	err := jsonkit.Write(filepath.Join(dir, "users.txt"), fixtureUsers(1))
	require.ErrorIs(t, err, jsonkit.ErrUnknownFormat)

	path := filepath.Join(dir, "users.dat")
	require.NoError(t, jsonkit.Write(path, fixtureUsers(2), jsonkit.WithFormat(jsonkit.FormatJSONL)))
	n, err := jsonkit.ItemCount(path, jsonkit.WithFormat(jsonkit.FormatJSONL))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestWrite_marshalFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")

	err := jsonkit.Write(path, []any{"fine", make(chan int)})
	require.ErrorIs(t, err, jsonkit.ErrMalformedRecord)

	var mre *jsonkit.MalformedRecordError
	require.ErrorAs(t, err, &mre)
	require.Equal(t, 1, mre.Index)
	require.NoFileExists(t, path)
}

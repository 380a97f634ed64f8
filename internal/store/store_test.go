package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-r-g/CodeItOut/script"
)

func open(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndRestore(t *testing.T) {
	ctx := context.Background()
	st := open(t)

	first := script.New()
	_, _, err := first.Execute(`number score = 41.5; string name = "sand"; char grade = 'A'; bool won = true; void skip() { return; }`)
	require.NoError(t, err)

	saved, err := st.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 4, saved, "methods are not stored")

	second := script.New()
	restored, err := st.Restore(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 4, restored)
	assert.Equal(t, []string{"score", "name", "grade", "won"}, second.GlobalNames())

	value, _, err := second.Execute("score += 0.5; return score;")
	require.NoError(t, err)
	assert.Equal(t, 42.0, value.Raw())

	grade, ok := second.Global("grade")
	require.True(t, ok)
	assert.Equal(t, 'A', grade.Raw())
}

func TestSaveReplacesPreviousState(t *testing.T) {
	ctx := context.Background()
	st := open(t)

	s := script.New()
	_, _, err := s.Execute("number a = 1;")
	require.NoError(t, err)
	_, err = st.Save(ctx, s)
	require.NoError(t, err)

	other := script.New()
	_, _, err = other.Execute("number b = 2;")
	require.NoError(t, err)
	_, err = st.Save(ctx, other)
	require.NoError(t, err)

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].Name)
	assert.Equal(t, 2.0, loaded[0].Value.Raw())
}

func TestRestoreSkipsDefinedNames(t *testing.T) {
	ctx := context.Background()
	st := open(t)

	s := script.New()
	_, _, err := s.Execute("number a = 1; number b = 2;")
	require.NoError(t, err)
	_, err = st.Save(ctx, s)
	require.NoError(t, err)

	target := script.New()
	require.NoError(t, target.AddGlobal("a", script.MustFrom(10.0)))
	restored, err := st.Restore(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	a, _ := target.Global("a")
	assert.Equal(t, 10.0, a.Raw())
}

func TestHostVariablesAreNotSaved(t *testing.T) {
	ctx := context.Background()
	st := open(t)

	s := script.New()
	require.NoError(t, s.RegisterVariable(script.VariableSpec{
		Names:   []string{"Speed"},
		Type:    script.HostNumber,
		CanRead: true,
		Get:     func() any { return 3.0 },
	}))
	_, _, err := s.Execute("number x = Speed;")
	require.NoError(t, err)

	saved, err := st.Save(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 1, saved)
}

func TestDecodeRejectsBadRows(t *testing.T) {
	_, err := decode("number", "many")
	assert.Error(t, err)
	_, err = decode("char", "ab")
	assert.Error(t, err)
	_, err = decode("widget", "1")
	assert.Error(t, err)
	_, err = decode("void", "")
	assert.Error(t, err)
}

package theme

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	values map[string]string
	setErr error
	writes int
}

func newMemStore(kv ...string) *memStore {
	s := &memStore{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		s.values[kv[i]] = kv[i+1]
	}
	return s
}

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.values[key] = value
	return nil
}

type hookRecorder struct {
	applied []Theme
}

func (r *hookRecorder) hook(t Theme) {
	r.applied = append(r.applied, t)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		ok   bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{" Dark\n", Dark, true},
		{"", "", false},
		{"blue", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestFirstLoadAdoptsAndPersistsSystemPreference(t *testing.T) {
	store := newMemStore()
	rec := &hookRecorder{}

	s, err := New(store, Light, rec.hook)
	require.NoError(t, err)

	assert.Equal(t, Light, s.Current())
	assert.Equal(t, Light, s.System())
	assert.False(t, s.Explicit())
	assert.False(t, s.CanRestore())
	assert.Equal(t, []Theme{Light}, rec.applied)
	assert.Equal(t, "light", store.values[StorageKey])
	assert.Equal(t, 1, store.writes)
}

func TestFirstLoadPersistFailure(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("read-only")

	_, err := New(store, Dark, nil)
	assert.Error(t, err)
}

func TestStoredPreferenceWinsOverSystem(t *testing.T) {
	s, err := New(newMemStore(StorageKey, "light"), Dark, nil)
	require.NoError(t, err)

	assert.Equal(t, Light, s.Current())
	assert.Equal(t, Dark, s.System())
	assert.True(t, s.Explicit())
	assert.True(t, s.CanRestore())
}

func TestUnrecognizedStoredValueFallsBackToSystem(t *testing.T) {
	store := newMemStore(StorageKey, "purple")
	s, err := New(store, Light, nil)
	require.NoError(t, err)

	assert.Equal(t, Light, s.Current())
	assert.False(t, s.Explicit())
	assert.Equal(t, "light", store.values[StorageKey])
}

func TestUnknownSystemValueUsesDefault(t *testing.T) {
	s, err := New(newMemStore(), Theme("sepia"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default, s.Current())
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	store := newMemStore(StorageKey, "dark")
	s, err := New(store, Dark, nil)
	require.NoError(t, err)

	require.NoError(t, s.Toggle())
	assert.Equal(t, Light, s.Current())
	assert.Equal(t, "light", store.values[StorageKey])

	require.NoError(t, s.Toggle())
	assert.Equal(t, Dark, s.Current())
	assert.Equal(t, "dark", store.values[StorageKey])
}

func TestSystemChangeDoesNotOverrideExplicitChoice(t *testing.T) {
	rec := &hookRecorder{}
	store := newMemStore()
	s, err := New(store, Dark, rec.hook)
	require.NoError(t, err)
	require.NoError(t, s.Toggle())
	require.Equal(t, Light, s.Current())

	writes := store.writes
	changed, err := s.SystemChanged(Light)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, err = s.SystemChanged(Dark)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, writes, store.writes)
	assert.Equal(t, "light", store.values[StorageKey])

	assert.Equal(t, Light, s.Current())
	assert.Equal(t, Dark, s.System())
	assert.True(t, s.CanRestore())
	assert.Equal(t, []Theme{Dark, Light}, rec.applied)
}

func TestSystemChangeFollowedAndPersistedWithoutExplicitChoice(t *testing.T) {
	rec := &hookRecorder{}
	store := newMemStore()
	s, err := New(store, Dark, rec.hook)
	require.NoError(t, err)
	require.Equal(t, "dark", store.values[StorageKey])

	changed, err := s.SystemChanged(Light)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Light, s.Current())
	assert.Equal(t, "light", store.values[StorageKey])
	assert.False(t, s.Explicit())

	changed, err = s.SystemChanged(Light)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, err = s.SystemChanged(Theme(""))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 2, store.writes)
	assert.Equal(t, []Theme{Dark, Light}, rec.applied)
}

func TestSystemChangePersistFailure(t *testing.T) {
	store := newMemStore()
	s, err := New(store, Dark, nil)
	require.NoError(t, err)

	store.setErr = errors.New("disk full")
	changed, err := s.SystemChanged(Light)
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, Dark, s.Current())
	assert.Equal(t, Light, s.System())
}

func TestRestoreSystem(t *testing.T) {
	store := newMemStore(StorageKey, "light")
	s, err := New(store, Light, nil)
	require.NoError(t, err)

	_, err = s.SystemChanged(Dark)
	require.NoError(t, err)
	require.True(t, s.CanRestore())

	require.NoError(t, s.RestoreSystem())
	assert.Equal(t, Dark, s.Current())
	assert.Equal(t, "dark", store.values[StorageKey])
	assert.False(t, s.CanRestore())
	assert.True(t, s.Explicit())
}

func TestPersistFailureKeepsState(t *testing.T) {
	store := newMemStore()
	s, err := New(store, Dark, nil)
	require.NoError(t, err)

	store.setErr = errors.New("disk full")
	assert.Error(t, s.Toggle())
	assert.Equal(t, Dark, s.Current())
	assert.False(t, s.Explicit())
}

func fakeRunner(out string, err error) runner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(out), err
	}
}

func TestOSProbe(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		out      string
		err      error
		fallback Theme
		want     Theme
	}{
		{"macos dark", "darwin", "Dark\n", nil, Light, Dark},
		{"macos light", "darwin", "", &exec.ExitError{}, Dark, Light},
		{"macos missing tool", "darwin", "", exec.ErrNotFound, Dark, Dark},
		{"gnome dark", "linux", "'prefer-dark'\n", nil, Light, Dark},
		{"gnome light", "linux", "'prefer-light'\n", nil, Dark, Light},
		{"gnome default", "linux", "'default'\n", nil, Dark, Dark},
		{"no gsettings", "linux", "", exec.ErrNotFound, Light, Light},
		{"other platform", "windows", "", nil, Dark, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &OSProbe{goos: tt.goos, run: fakeRunner(tt.out, tt.err), fallback: tt.fallback}
			assert.Equal(t, tt.want, p.Detect(context.Background()))
		})
	}
}

func TestProbeFunc(t *testing.T) {
	p := ProbeFunc(func(context.Context) Theme { return Light })
	assert.Equal(t, Light, p.Detect(context.Background()))
}

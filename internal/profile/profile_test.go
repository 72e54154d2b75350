package profile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wstdesk/wstdesk/internal/profile"
	"github.com/wstdesk/wstdesk/internal/store"
)

func TestParseServerAddr(t *testing.T) {
	t.Run("wss with port", func(t *testing.T) {
		addr, err := profile.ParseServerAddr("wss://tunnel.example.com:8443")
		require.NoError(t, err)
		assert.Equal(t, "wss", addr.Scheme)
		assert.Equal(t, "tunnel.example.com:8443", addr.Host)
	})

	t.Run("ws without port", func(t *testing.T) {
		addr, err := profile.ParseServerAddr("ws://localhost")
		require.NoError(t, err)
		assert.Equal(t, profile.ServerAddr{Scheme: "ws", Host: "localhost"}, addr)
	})

	t.Run("http2 transports accepted", func(t *testing.T) {
		for _, raw := range []string{"http://example.com", "https://example.com"} {
			_, err := profile.ParseServerAddr(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		addr, err := profile.ParseServerAddr("  wss://example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "example.com", addr.Host)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := profile.ParseServerAddr("")
		assert.Error(t, err)
	})

	t.Run("rejects unknown scheme", func(t *testing.T) {
		_, err := profile.ParseServerAddr("ftp://example.com")
		assert.Error(t, err)
	})

	t.Run("rejects missing host", func(t *testing.T) {
		_, err := profile.ParseServerAddr("wss://")
		assert.Error(t, err)
	})
}

func TestServerAddrString(t *testing.T) {
	assert.Equal(t, "wss://example.com:443", profile.ServerAddr{Scheme: "wss", Host: "example.com:443"}.String())
	assert.Equal(t, "", profile.ServerAddr{}.String())
}

func TestServerAddrRoundTrip(t *testing.T) {
	in := profile.ServerAddr{Scheme: "wss", Host: "example.com:8443"}
	out, err := profile.ParseServerAddr(in.String())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProfileValidate(t *testing.T) {
	valid := profile.Profile{
		Name:       "home",
		ListenAddr: "127.0.0.1:8080",
		ServerAddr: profile.ServerAddr{Scheme: "wss", Host: "example.com"},
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing name", func(t *testing.T) {
		p := valid
		p.Name = "  "
		assert.Error(t, p.Validate())
	})

	t.Run("missing listen address", func(t *testing.T) {
		p := valid
		p.ListenAddr = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing server address", func(t *testing.T) {
		p := valid
		p.ServerAddr = profile.ServerAddr{}
		assert.Error(t, p.Validate())
	})

	t.Run("bad scheme", func(t *testing.T) {
		p := valid
		p.ServerAddr.Scheme = "tcp"
		assert.Error(t, p.Validate())
	})
}

func TestProfileJSONFieldNames(t *testing.T) {
	p := profile.Profile{
		Name:       "home",
		ListenAddr: "127.0.0.1:8080",
		ServerAddr: profile.ServerAddr{Scheme: "wss", Host: "example.com"},
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "name")
	assert.Contains(t, raw, "listenAddr")
	assert.Contains(t, raw, "serverAddr")

	var nested map[string]string
	require.NoError(t, json.Unmarshal(raw["serverAddr"], &nested))
	assert.Equal(t, "wss", nested["scheme"])
	assert.Equal(t, "example.com", nested["host"])
}

func openFileStore(t *testing.T) (*profile.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	s, err := store.Open(path)
	require.NoError(t, err)
	return profile.NewFileStore(s), path
}

func TestLoadAllInitializesMissingKey(t *testing.T) {
	fs, path := openFileStore(t)

	list, err := fs.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, list)

	// The empty list must have been persisted as a side effect.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]profile.Profile
	require.NoError(t, json.Unmarshal(data, &doc))
	entries, ok := doc[profile.StoreKey]
	assert.True(t, ok)
	assert.Empty(t, entries)
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	fs, path := openFileStore(t)

	in := []profile.Profile{
		{Name: "home", ListenAddr: "127.0.0.1:8080", ServerAddr: profile.ServerAddr{Scheme: "wss", Host: "example.com"}},
		{Name: "office", ListenAddr: "0.0.0.0:9090", ServerAddr: profile.ServerAddr{Scheme: "ws", Host: "intranet:8080"}},
	}
	require.NoError(t, fs.SaveAll(in))

	// Reopen from disk to prove durability, not just in-memory state.
	s, err := store.Open(path)
	require.NoError(t, err)
	out, err := profile.NewFileStore(s).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// A second save/load cycle changes nothing.
	require.NoError(t, fs.SaveAll(out))
	again, err := fs.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

func TestSaveAllNilList(t *testing.T) {
	fs, _ := openFileStore(t)

	require.NoError(t, fs.SaveAll(nil))
	out, err := fs.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

package profile

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/wstdesk/wstdesk/internal/store"
)

// StoreKey is the document key the profile list is persisted under.
const StoreKey = "ws-configs"

// ServerAddr is the structured form of a tunnel server address.
type ServerAddr struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
}

// String returns the flattened URL form shown on edit surfaces,
// e.g. "wss://tunnel.example.com:8443".
func (a ServerAddr) String() string {
	if a.Scheme == "" && a.Host == "" {
		return ""
	}
	return a.Scheme + "://" + a.Host
}

// Transport schemes the wstunnel client accepts.
var validSchemes = map[string]bool{
	"ws":    true,
	"wss":   true,
	"http":  true,
	"https": true,
}

// ParseServerAddr converts the flattened "wss://host:port" form into the
// structured one. The scheme must be one of ws, wss, http, https.
func ParseServerAddr(s string) (ServerAddr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServerAddr{}, fmt.Errorf("server address is empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return ServerAddr{}, fmt.Errorf("parsing server address %q: %w", s, err)
	}
	if !validSchemes[u.Scheme] {
		return ServerAddr{}, fmt.Errorf("server address %q: scheme must be ws, wss, http or https", s)
	}
	if u.Host == "" {
		return ServerAddr{}, fmt.Errorf("server address %q has no host", s)
	}
	return ServerAddr{Scheme: u.Scheme, Host: u.Host}, nil
}

// Profile is one named tunnel endpoint configuration: where the client
// listens locally and which server it tunnels through.
type Profile struct {
	Name       string     `json:"name" yaml:"name"`
	ListenAddr string     `json:"listenAddr" yaml:"listenAddr"`
	ServerAddr ServerAddr `json:"serverAddr" yaml:"serverAddr"`
}

// Validate checks field presence and the server address shape. Nothing
// beyond presence is validated.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if strings.TrimSpace(p.ListenAddr) == "" {
		return fmt.Errorf("profile %q: listen address is required", p.Name)
	}
	if _, err := ParseServerAddr(p.ServerAddr.String()); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}

// FileStore reads and writes the profile list through a JSON document
// store. It is the only persistence path; there are no partial updates.
type FileStore struct {
	store *store.Store
}

// NewFileStore wraps an opened document store.
func NewFileStore(s *store.Store) *FileStore {
	return &FileStore{store: s}
}

// LoadAll returns the persisted profile list. A store without the list key
// gets one initialized to the empty list and flushed before returning.
func (f *FileStore) LoadAll() ([]Profile, error) {
	var list []Profile
	ok, err := f.store.Get(StoreKey, &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		list = []Profile{}
		if err := f.store.Set(StoreKey, list); err != nil {
			return nil, err
		}
		if err := f.store.Save(); err != nil {
			return nil, fmt.Errorf("initializing profile list: %w", err)
		}
	}
	if list == nil {
		list = []Profile{}
	}
	return list, nil
}

// SaveAll rewrites the full profile list and flushes it to disk.
func (f *FileStore) SaveAll(list []Profile) error {
	if list == nil {
		list = []Profile{}
	}
	if err := f.store.Set(StoreKey, list); err != nil {
		return err
	}
	if err := f.store.Save(); err != nil {
		return fmt.Errorf("saving profile list: %w", err)
	}
	return nil
}

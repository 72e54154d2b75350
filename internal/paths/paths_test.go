package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wstdesk/wstdesk/internal/paths"
)

func TestDataDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.DataDir(), home))
	assert.True(t, strings.HasSuffix(paths.DataDir(), ".wstdesk"))
}

func TestStoreFile(t *testing.T) {
	assert.True(t, strings.HasPrefix(paths.StoreFile(), paths.DataDir()))
	assert.True(t, strings.HasSuffix(paths.StoreFile(), "profiles.json"))
}

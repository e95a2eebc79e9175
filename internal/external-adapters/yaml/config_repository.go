package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ochairo/pumlsync/internal/domain/entities"
)

// DefaultConfigFile is looked up in the scan root when no file is given explicitly
const DefaultConfigFile = ".pumlsync.yml"

// ConfigRepository loads configuration files
type ConfigRepository struct {
	parser *ConfigParser
}

// NewConfigRepository creates a new YAML-based configuration repository
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{
		parser: NewConfigParser(),
	}
}

// Load reads the configuration file at path on top of base. The file must exist.
func (r *ConfigRepository) Load(path string, base *entities.Config) (*entities.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file does not exist: %s", path)
	}

	return r.parser.ParseFile(path, base)
}

// LoadFromRoot reads DefaultConfigFile from root if present.
// The returned path is empty when no file was found and base is returned unchanged.
func (r *ConfigRepository) LoadFromRoot(root string, base *entities.Config) (*entities.Config, string, error) {
	path := filepath.Join(root, DefaultConfigFile)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, "", nil
		}
		return nil, "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	cfg, err := r.parser.ParseFile(path, base)
	if err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

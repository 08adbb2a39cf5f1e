package breed

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// catalogueFile is the on-disk shape of a breed catalogue.
type catalogueFile struct {
	Breeds []Breed `yaml:"breeds"`
}

// Load loads the breed catalogue.
// Search order: customPath -> ~/.turfline/configs/breeds.yaml ->
// ./configs/breeds.yaml -> embedded default.
func Load(customPath string) (*Catalogue, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("breed: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("breeds.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cat, err := parse(data, userPath); err == nil {
				return cat, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/breeds.yaml"); err == nil {
		if cat, err := parse(data, "configs/breeds.yaml"); err == nil {
			return cat, nil
		}
	}

	return parse(defaultBreedsYAML, "embedded default")
}

func parse(data []byte, source string) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("breed: cannot parse %s: %w", source, err)
	}
	cat, err := NewCatalogue(file.Breeds)
	if err != nil {
		return nil, fmt.Errorf("breed: invalid catalogue in %s: %w", source, err)
	}
	return cat, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turfline", "configs", filename)
}

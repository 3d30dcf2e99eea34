package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk structure for a template bank (JSON
// or YAML).
type bankFile struct {
	Version   string            `json:"version"`
	Templates map[string]string `json:"templates"`
}

// LoadBankFromFile reads a JSON or YAML template bank and layers
// its templates over the renderer's current bank. YAML support
// uses the same struct tags because gopkg.in/yaml.v3 honours
// json tags.
func (r *Renderer) LoadBankFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(
			"failed to read template bank %s: %w",
			path, err,
		)
	}

	return r.loadBankFromBytes(data, path)
}

// LoadBankFromDir loads all .json and .yaml/.yml template bank
// files from a directory. It does not recurse into
// subdirectories.
func (r *Renderer) LoadBankFromDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		if err := r.LoadBankFromFile(p); err != nil {
			return fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}
	}

	return nil
}

// loadBankFromBytes unmarshals a bank file and registers its
// templates.
func (r *Renderer) loadBankFromBytes(
	data []byte,
	source string,
) error {
	var bank bankFile

	ext := strings.ToLower(filepath.Ext(source))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &bank); err != nil {
			return fmt.Errorf(
				"failed to parse YAML bank %s: %w",
				source, err,
			)
		}
	} else {
		if err := json.Unmarshal(data, &bank); err != nil {
			return fmt.Errorf(
				"failed to parse JSON bank %s: %w",
				source, err,
			)
		}
	}

	for key, template := range bank.Templates {
		r.SetTemplate(key, template)
	}

	return nil
}

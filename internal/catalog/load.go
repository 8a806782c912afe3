package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrInvalidCatalog is returned for catalog documents that cannot be used.
var ErrInvalidCatalog = errors.New("invalid catalog")

type wireCategory struct {
	Name   string   `json:"name"`
	Images []string `json:"images"`
}

type wireGroup struct {
	Group      string         `json:"group"`
	Categories []wireCategory `json:"categories"`
}

// Parse decodes the catalog wire format: a JSON array of
// {"group", "categories": [{"name", "images": [...]}]}. Comments and trailing
// commas are accepted.
func Parse(data []byte) (*Catalog, error) {
	stripped := jsonc.ToJSON(data)

	var groups []wireGroup
	if err := json.Unmarshal(stripped, &groups); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	cat := &Catalog{Groups: make([]Group, 0, len(groups))}
	for gi, wg := range groups {
		if strings.TrimSpace(wg.Group) == "" {
			return nil, fmt.Errorf("%w: group %d has no name", ErrInvalidCatalog, gi)
		}
		group := Group{Name: wg.Group, Categories: make([]Category, 0, len(wg.Categories))}
		for _, wc := range wg.Categories {
			assets := make([]AssetID, 0, len(wc.Images))
			for _, image := range wc.Images {
				assets = append(assets, AssetID(image))
			}
			group.Categories = append(group.Categories, Category{Name: wc.Name, Assets: assets})
		}
		cat.Groups = append(cat.Groups, group)
	}
	return cat, nil
}

// Load reads and parses a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// ReadFile loads the catalog at path; "-" reads standard input.
func ReadFile(path string) (*Catalog, error) {
	if path == "-" {
		cat, err := Load(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

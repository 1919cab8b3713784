// Package seed rebuilds the inventory table from one of the embedded
// starting datasets.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/x402-Systems/pantry/internal/store"
)

//go:embed data/*.yaml
var datasets embed.FS

type record struct {
	Name     string   `yaml:"name"`
	Quantity *float64 `yaml:"quantity"`
	Unit     string   `yaml:"unit"`
}

type category struct {
	Name  string   `yaml:"name"`
	Items []record `yaml:"items"`
}

type dataset struct {
	Language   string     `yaml:"language"`
	Categories []category `yaml:"categories"`
}

// Datasets lists the names accepted by Load, sorted.
func Datasets() []string {
	entries, err := fs.ReadDir(datasets, "data")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Load returns the items of the named dataset in file order.
func Load(name string) ([]store.Item, error) {
	raw, err := datasets.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unknown dataset %q (available: %s)", name, strings.Join(Datasets(), ", "))
		}
		return nil, err
	}
	return parse(name, raw)
}

func parse(name string, raw []byte) ([]store.Item, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}

	var items []store.Item
	for _, c := range ds.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("dataset %s: category without a name", name)
		}
		for i, r := range c.Items {
			if r.Name == "" || r.Unit == "" || r.Quantity == nil {
				return nil, fmt.Errorf("dataset %s: [%s] item %d needs name, quantity and unit", name, c.Name, i+1)
			}
			items = append(items, store.Item{
				Name:     r.Name,
				Quantity: *r.Quantity,
				Unit:     r.Unit,
				Category: c.Name,
			})
		}
	}
	return items, nil
}

// Target is the part of the store a seed run writes to.
type Target interface {
	Reset(ctx context.Context) error
	BulkInsert(ctx context.Context, items []store.Item) error
	CountByCategory(ctx context.Context) ([]store.CategoryCount, error)
}

type Summary struct {
	Inserted   int
	Categories []store.CategoryCount
}

// Run drops and recreates the inventory table, inserts items and reports
// the per-category counts. Existing data is lost.
func Run(ctx context.Context, dst Target, items []store.Item) (Summary, error) {
	if err := dst.Reset(ctx); err != nil {
		return Summary{}, err
	}
	if err := dst.BulkInsert(ctx, items); err != nil {
		return Summary{}, fmt.Errorf("insert seed items: %w", err)
	}

	counts, err := dst.CountByCategory(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Inserted: len(items), Categories: counts}, nil
}

package schema

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"aihub/internal/model"
)

var (
	serviceExts    = []string{".yaml", ".yml", ".json"}
	comparisonExts = []string{".md", ".yaml", ".yml"}
)

// LoadServices reads and validates every service file in dir.
// Records are returned only if the whole directory is valid; otherwise the
// error is a *ValidationError covering every problem in every file.
// The result is ordered by Order, then Slug.
func LoadServices(dir string) ([]model.Service, error) {
	files, err := listFiles(dir, serviceExts)
	if err != nil {
		return nil, err
	}

	var p problems
	services := make([]model.Service, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read service %s: %w", name, err)
		}
		svc, err := DecodeService(data, strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			p.merge(name, err)
			continue
		}
		services = append(services, svc)
	}
	p.merge("", CheckCatalog(services))
	if err := p.err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(services, func(a, b model.Service) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
	return services, nil
}

// CheckCatalog validates constraints that span records: slug uniqueness and
// product-fit alternatives pointing at known services.
func CheckCatalog(services []model.Service) error {
	var p problems
	bySlug := make(map[string]int, len(services))
	for i, svc := range services {
		if prev, ok := bySlug[svc.Slug]; ok {
			p.add("slug", "%q is used by both %q and %q", svc.Slug, services[prev].Name, svc.Name)
			continue
		}
		bySlug[svc.Slug] = i
	}
	for _, svc := range services {
		for i, alt := range svc.ProductFit.Alternatives {
			if _, ok := bySlug[alt.Slug]; !ok {
				p.list = append(p.list, FieldError{
					Source:     svc.Slug,
					Path:       fmt.Sprintf("productFit.alternatives[%d].slug", i),
					Constraint: fmt.Sprintf("unknown service %q", alt.Slug),
				})
			}
		}
	}
	return p.err()
}

// LoadComparisons reads and validates every comparison file in dir. Both
// sides of each comparison must name a service in services. A missing
// directory yields no comparisons.
func LoadComparisons(dir string, services []model.Service) ([]model.Comparison, error) {
	files, err := listFiles(dir, comparisonExts)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	known := make(map[string]bool, len(services))
	for _, svc := range services {
		known[svc.Slug] = true
	}

	var p problems
	var comparisons []model.Comparison
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read comparison %s: %w", name, err)
		}
		c, err := DecodeComparison(data, strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil {
			p.merge(name, err)
			continue
		}
		if !known[c.ModelA] {
			p.list = append(p.list, FieldError{Source: name, Path: "modelA", Constraint: fmt.Sprintf("unknown service %q", c.ModelA)})
		}
		if !known[c.ModelB] {
			p.list = append(p.list, FieldError{Source: name, Path: "modelB", Constraint: fmt.Sprintf("unknown service %q", c.ModelB)})
		}
		comparisons = append(comparisons, c)
	}
	if err := p.err(); err != nil {
		return nil, err
	}
	return comparisons, nil
}

func listFiles(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "_") {
			continue
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

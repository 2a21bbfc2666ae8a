package catalog

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"mouldflow/core/catalog"
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

//go:embed seed/*.hcl
var seedFS embed.FS

// LoadDefault loads the built-in seed catalog embedded in the binary.
func LoadDefault() (*catalog.Catalog, error) {
	entries, err := fs.ReadDir(seedFS, "seed")
	if err != nil {
		return nil, apperrors.Parsing("reading embedded catalog", err)
	}

	var files []namedSource
	for _, e := range entries {
		src, err := fs.ReadFile(seedFS, "seed/"+e.Name())
		if err != nil {
			return nil, apperrors.Parsing("reading embedded catalog file "+e.Name(), err)
		}
		files = append(files, namedSource{name: e.Name(), src: src})
	}
	return build(files)
}

// LoadDir loads every .hcl file in dir as a catalog. Files are read in
// lexical name order so the catalog order is reproducible.
func LoadDir(dir string) (*catalog.Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Parsing("reading catalog directory "+dir, err)
	}

	var files []namedSource
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".hcl") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Parsing("reading catalog file "+path, err)
		}
		files = append(files, namedSource{name: e.Name(), src: src})
	}
	if len(files) == 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "no .hcl catalog files in %s", dir)
	}
	return build(files)
}

type namedSource struct {
	name string
	src  []byte
}

func build(files []namedSource) (*catalog.Catalog, error) {
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	var merged catalogFile
	for _, f := range files {
		var parsed catalogFile
		if err := hclsimple.Decode(f.name, f.src, nil, &parsed); err != nil {
			return nil, apperrors.Parsing("parsing catalog file "+f.name, err)
		}
		merged.Materials = append(merged.Materials, parsed.Materials...)
		merged.Machines = append(merged.Machines, parsed.Machines...)
	}

	materials := make([]types.MaterialProperties, 0, len(merged.Materials))
	for _, b := range merged.Materials {
		materials = append(materials, b.toMaterial())
	}
	machines := make([]types.MachineSpec, 0, len(merged.Machines))
	for _, b := range merged.Machines {
		machines = append(machines, b.toMachine())
	}
	return catalog.New(materials, machines)
}

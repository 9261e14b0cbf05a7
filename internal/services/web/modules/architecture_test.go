package modules

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/renegocia/internal/services/web/routepath"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestRoutePathsRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	paths := []string{
		routepath.Root,
		routepath.Telefone,
		routepath.Resultados,
		routepath.Health,
		routepath.Static,
	}
	seen := map[string]struct{}{}
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			t.Fatalf("duplicate route path constant %q", path)
		}
		seen[path] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	areas := []string{"cadastro", "resultados"}
	requiredFiles := []string{"module.go", "routes.go", "routes_test.go", "handlers.go", "service.go"}
	for _, area := range areas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}

func TestMountDoesNotReachIntoStoreDirectly(t *testing.T) {
	t.Parallel()

	for _, area := range []string{"cadastro", "resultados"} {
		assertMountDoesNotCallDependencyMethods(t, filepath.Join(area, "module.go"), map[string]struct{}{
			"GetSlot":    {},
			"PutSlot":    {},
			"DeleteSlot": {},
		})
	}
}

func assertMountDoesNotCallDependencyMethods(t *testing.T, moduleFile string, forbidden map[string]struct{}) {
	t.Helper()

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, moduleFile, nil, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse module file %s: %v", moduleFile, err)
	}

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name == nil || fn.Name.Name != "Mount" || fn.Body == nil {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || sel.Sel == nil {
				return true
			}
			if _, exists := forbidden[sel.Sel.Name]; exists {
				t.Fatalf("%s Mount calls %s; slot access belongs in the module service", moduleFile, sel.Sel.Name)
			}
			return true
		})
		return
	}

	t.Fatalf("module file %s missing Mount function", moduleFile)
}

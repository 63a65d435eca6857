// Command pybatfn generates class registry registrations for
// translated packages. It reads a manifest naming the packages to
// scan, finds their exported struct types, and writes a Go source file
// of pybat.Register calls so that isinstance and __class__ lookups
// work over those types.
//
// The manifest is YAML:
//
//	package: gen
//	scan:
//	  - example.com/myapp/gen
//	match: "."
//	ignore: "$^"
//
// match and ignore are regular expressions over type names: a type is
// included when match accepts its name and ignore does not.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"

	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v2"
)

type manifest struct {
	Package string   `yaml:"package"`
	Scan    []string `yaml:"scan"`
	Match   string   `yaml:"match"`
	Ignore  string   `yaml:"ignore"`
}

func main() {
	var out string
	flag.StringVar(&out, "o", "", "output file (default standard output)")
	flag.Parse()
	if flag.NArg() != 1 {
		fail("usage: pybatfn [-o file.go] manifest.yaml")
	}
	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fail("error reading manifest:", err)
	}
	var m manifest
	if err := yaml.UnmarshalStrict(b, &m); err != nil {
		fail("error parsing manifest:", err)
	}
	if m.Package == "" {
		fail("manifest names no output package")
	}
	if len(m.Scan) == 0 {
		fail("manifest names no packages to scan")
	}
	if m.Match == "" {
		m.Match = "."
	}
	if m.Ignore == "" {
		m.Ignore = "$^"
	}
	mre, err := regexp.Compile(m.Match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(m.Ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes, Fset: fset}
	pkgs, err := packages.Load(&config, m.Scan...)
	if err != nil {
		fail("error loading packages:", err)
	}
	w := new(bytes.Buffer)
	fmt.Fprintf(w, "// Code generated by pybatfn. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n\n", m.Package)
	fmt.Fprintf(w, "import (\n")
	fmt.Fprintf(w, "\t\"github.com/pybat/pybat\"\n")
	for _, pkg := range pkgs {
		fmt.Fprintf(w, "\n\t%q\n", pkg.PkgPath)
	}
	fmt.Fprintf(w, ")\n\n")
	for _, pkg := range pkgs {
		for _, name := range find(pkg.Types.Scope(), mre, ire) {
			fmt.Fprintf(w, "var %s%sClass = pybat.Register[%s.%s](pybat.NewClass(%q, nil))\n",
				pkg.Types.Name(), name, pkg.Types.Name(), name, name)
		}
	}
	if out == "" {
		os.Stdout.Write(w.Bytes())
		return
	}
	if err := os.WriteFile(out, w.Bytes(), 0644); err != nil {
		fail("error writing output:", err)
	}
}

func fail(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// find returns the sorted names of exported struct types in scope that
// the match and ignore expressions select.
func find(scope *types.Scope, mre, ire *regexp.Regexp) []string {
	var results []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		t, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		if _, ok := t.Type().Underlying().(*types.Struct); !ok {
			continue
		}
		results = append(results, name)
	}
	sort.Strings(results)
	return results
}

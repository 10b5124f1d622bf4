// Package registry is the single source of truth for supported syntax
// families. Adding or removing one should happen here.
package registry

import (
	"github.com/CodeAtlasHQ/atlas/depgraph/langsupport"
	"github.com/CodeAtlasHQ/atlas/depgraph/languages/ecmascript"
	"github.com/CodeAtlasHQ/atlas/depgraph/languages/python"
)

var modules = []langsupport.Module{
	ecmascript.Module{},
	python.Module{},
}

// Modules returns supported extraction modules in deterministic order.
func Modules() []langsupport.Module {
	return append([]langsupport.Module(nil), modules...)
}

// ModuleForExtension returns the module registered for the provided
// extension. Files with unregistered extensions are never parsed for
// imports.
func ModuleForExtension(ext string) (langsupport.Module, bool) {
	for _, module := range modules {
		for _, moduleExt := range module.Extensions() {
			if moduleExt == ext {
				return module, true
			}
		}
	}

	return nil, false
}

// SupportedExtensions returns every extension with a registered module.
func SupportedExtensions() []string {
	var extensions []string
	for _, module := range modules {
		extensions = append(extensions, module.Extensions()...)
	}
	return extensions
}

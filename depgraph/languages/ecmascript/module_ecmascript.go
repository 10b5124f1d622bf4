package ecmascript

// Module registers the C-family extractor for langsupport.
type Module struct{}

func (Module) Name() string {
	return "ECMAScript"
}

func (Module) Extensions() []string {
	return []string{".ts", ".tsx", ".js", ".jsx"}
}

func (Module) Imports(content []byte, ext string) []string {
	return ExtractImports(content, ext)
}

package ecmascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImports_StaticImports(t *testing.T) {
	source := `
import React from 'react';
import { useState } from 'react';
import { Button } from './components/Button';
`
	imports := ExtractImports([]byte(source), ".ts")

	assert.Equal(t, []string{"react", "react", "./components/Button"}, imports)
}

func TestExtractImports_ReExports(t *testing.T) {
	source := `
export { Button } from './Button';
export * from './helpers';
export const local = 1;
`
	imports := ExtractImports([]byte(source), ".ts")

	assert.Equal(t, []string{"./Button", "./helpers"}, imports)
}

func TestExtractImports_RequireCalls(t *testing.T) {
	source := `
const fs = require('fs');
const utils = require('./utils');
const dynamic = require(someVariable);
`
	imports := ExtractImports([]byte(source), ".js")

	assert.Equal(t, []string{"fs", "./utils"}, imports)
}

func TestExtractImports_DynamicImports(t *testing.T) {
	source := `
async function load() {
  const mod = await import('./lazy');
  return mod;
}
`
	imports := ExtractImports([]byte(source), ".ts")

	assert.Equal(t, []string{"./lazy"}, imports)
}

func TestExtractImports_NestedImportsAreCaptured(t *testing.T) {
	source := `
function maybe(flag) {
  if (flag) {
    return require('./feature');
  }
  return null;
}
`
	imports := ExtractImports([]byte(source), ".js")

	assert.Equal(t, []string{"./feature"}, imports)
}

func TestExtractImports_TSX(t *testing.T) {
	source := `
import { Button } from './Button';

export default function App() {
  return <Button label="ok" />;
}
`
	imports := ExtractImports([]byte(source), ".tsx")

	assert.Equal(t, []string{"./Button"}, imports)
}

func TestExtractImports_JSX(t *testing.T) {
	source := `
import Header from './Header';

export default () => <Header />;
`
	imports := ExtractImports([]byte(source), ".jsx")

	assert.Equal(t, []string{"./Header"}, imports)
}

func TestExtractImports_InvalidSyntaxFallsBackToRegex(t *testing.T) {
	// The broken tail makes structured parsing fail; the regex pass still
	// recovers the well-formed import above it.
	source := `
import { x } from './real';
import { { { garbage
`
	imports := ExtractImports([]byte(source), ".ts")

	assert.Equal(t, []string{"./real"}, imports)
}

func TestExtractImports_InvalidSyntaxWithNothingToRecover(t *testing.T) {
	source := `class { { {`

	imports := ExtractImports([]byte(source), ".ts")

	assert.Empty(t, imports)
}

func TestExtractImports_EmptyContent(t *testing.T) {
	imports := ExtractImports(nil, ".ts")

	assert.Empty(t, imports)
}

func TestExtractImports_SourceOrderIsPreserved(t *testing.T) {
	source := `
import a from './a';
const b = require('./b');
export { c } from './c';
`
	imports := ExtractImports([]byte(source), ".js")

	assert.Equal(t, []string{"./a", "./b", "./c"}, imports)
}

func TestModule_Extensions(t *testing.T) {
	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, Module{}.Extensions())
	assert.Equal(t, "ECMAScript", Module{}.Name())
}

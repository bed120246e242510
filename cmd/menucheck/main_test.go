package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/chestmenus/internal/material"
	"github.com/osse101/chestmenus/internal/menu"
)

func writeMenu(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestRun_CleanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "hub.yml", "menu-settings:\n  name: Hub\n  rows: 1\nicon:\n  POSITION-X: 1\n  POSITION-Y: 1\n  MATERIAL: golden_apple\n")

	var out bytes.Buffer
	code := run(&out, dir, true, false)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "no problems found")
	assert.Contains(t, out.String(), "hub.yml")
	assert.Contains(t, out.String(), "GA")
}

func TestRun_ReportsErrors(t *testing.T) {
	dir := t.TempDir()
	writeMenu(t, dir, "bad.yml", "menu-settings:\n  name: Bad\n  rows: lots\n")

	var out bytes.Buffer
	code := run(&out, dir, false, false)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "bad.yml")
	assert.Contains(t, out.String(), "1 errors")
}

func TestRun_MissingDirectory(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run(&out, filepath.Join(t.TempDir(), "nope"), false, false))
}

func TestMaterialLabel(t *testing.T) {
	assert.Equal(t, "GA", materialLabel("GOLDEN_APPLE"))
	assert.Equal(t, "ST", materialLabel("STONE"))
	assert.Equal(t, "?", materialLabel(""))
}

func TestRenderMenu_MarksIconsWithoutMaterial(t *testing.T) {
	m := menu.New("&aShop", 1, "shop.yml")
	m.SetIcon(0, 0, &menu.Icon{Material: material.Material("STONE"), Amount: 1})
	m.SetIcon(0, 1, &menu.Icon{Amount: 1})

	out := renderMenu(m)
	assert.Contains(t, out, "ST")
	assert.Contains(t, out, "??")
	assert.Contains(t, out, "shop.yml")
}

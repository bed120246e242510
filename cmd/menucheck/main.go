// Command menucheck loads a menus directory once and reports every problem
// found, optionally drawing each menu grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/chestmenus/internal/config"
	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/logger"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/reload"
)

func main() {
	_ = godotenv.Load()

	defaultDir := os.Getenv(config.EnvMenusDir)
	if defaultDir == "" {
		defaultDir = config.DefaultMenusDir
	}

	dir := flag.String("dir", defaultDir, "menus directory to check")
	preview := flag.Bool("preview", false, "draw every menu grid")
	verbose := flag.Bool("v", false, "log the reload pass to stderr")
	flag.Parse()

	os.Exit(run(os.Stdout, *dir, *preview, *verbose))
}

// run returns the process exit code: 0 when no error-severity problem was
// found, 1 otherwise, 2 when the directory could not be read.
func run(out io.Writer, dir string, preview, verbose bool) int {
	logOut := io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "menucheck", "", "cli", false), logOut)

	registry := menu.NewRegistry(&domain.FakeServer{})
	report, err := reload.NewService(dir, registry).Reload(context.Background())
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("✗ "+err.Error()))
		return 2
	}

	printReport(out, report)

	if preview {
		for _, name := range registry.GetMenuFileNames() {
			m, _ := registry.GetMenuByFileName(name)
			fmt.Fprintln(out, renderMenu(m))
		}
	}

	if report.Errors > 0 {
		return 1
	}
	return 0
}

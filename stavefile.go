//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary  = "bin/hongdown"
	mainPkg = "./cmd/hongdown"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
	"md":  Lint.Docs,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles bin/hongdown with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building hongdown...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Check formats, lints and tests the code, then checks the Markdown docs.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Lint.Docs)
}

// Clean removes build and coverage artifacts.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install runs go install with version info.
func Install() error {
	fmt.Println("Installing hongdown...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Deps downloads and tidies module dependencies.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage renders the coverage profile of the last test run as HTML.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs all tests with race detection and coverage.
func (Test) Default() error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return gotestsum("pkgname-and-test-fails",
		"-race", "-p", nCores, "-parallel", nCores,
		"./...", "-coverprofile=coverage.out", "-covermode=atomic",
	)
}

// Fuzz runs the formatter fuzz target for FUZZTIME (default 30s).
func (Test) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "30s")
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "^FuzzFormat$",
		"-fuzztime", fuzzTime, "./pkg/hongdown")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt runs gofmt over the tree.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Docs checks the repository's Markdown with a fresh build of hongdown.
func (Lint) Docs() error {
	st.Deps(Build)
	return sh.RunV(binary, "--check", "--exclude", "_examples/**", ".")
}

// Gate runs the checks CI requires, stopping at the first failure.
func (CI) Gate() error {
	st.SerialDeps(CI.FmtCheck, CI.Vet, CI.Lint, Build, Test.Default, CI.ModTidy)
	fmt.Println("CI gate passed")
	return nil
}

// FmtCheck fails when gofmt would change any file.
func (CI) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (CI) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs golangci-lint without fixes.
func (CI) Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go.mod or go.sum changed after go mod tidy")
	}
	return nil
}

// Default runs the Go benchmarks.
func (Bench) Default() error {
	return gotestsum("pkgname-and-test-fails", "-run", "^$", "-bench=.", "-benchmem", "./...")
}

func gotestsum(format string, args ...string) error {
	return sh.RunV("go", append([]string{"tool", "gotestsum", "-f", format, "--"}, args...)...)
}

func readModFiles() ([]byte, error) {
	var all []byte
	for _, name := range []string{"go.mod", "go.sum"} {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		all = append(all, data...)
	}
	return all, nil
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects build metadata into the main package.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

//go:build mage

// Package main contains Mage build targets for mailwright developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir    = "bin"
	binName   = "mailwright"
	cmdPkg    = "./cmd/mailwright"
	lambdaPkg = "./cmd/mailwright-lambda"
	lambdaZip = "mailwright-lambda.zip"
)

// ldflags stamps the CLI version from MAILWRIGHT_VERSION when set.
func ldflags() string {
	v := os.Getenv("MAILWRIGHT_VERSION")
	if v == "" {
		return ""
	}
	return "-X main.version=" + v
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Lambda builds the provided.al2023 bootstrap for arm64 and zips it.
func Lambda() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	env := map[string]string{"GOOS": "linux", "GOARCH": "arm64", "CGO_ENABLED": "0"}
	out := filepath.Join(binDir, "bootstrap")
	if err := sh.RunWithV(env, "go", "build", "-tags", "lambda.norpc", "-o", out, lambdaPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	zip := filepath.Join(binDir, lambdaZip)
	if err := sh.Run("zip", "-j", zip, out); err != nil {
		return fmt.Errorf("zipping bootstrap: %w", err)
	}
	fmt.Printf("Built %s\n", zip)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// All runs the tests, then builds the CLI and the Lambda bundle.
func All() {
	mg.SerialDeps(Test, Build, Lambda)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints Go production and test line counts per top-level directory.
func Stats() error {
	counts := map[string][2]int{}
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != "." && (strings.HasPrefix(info.Name(), ".") || strings.HasPrefix(info.Name(), "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return err
		}
		top := strings.SplitN(filepath.ToSlash(path), "/", 2)[0]
		c := counts[top]
		if strings.HasSuffix(path, "_test.go") {
			c[1] += n
		} else {
			c[0] += n
		}
		counts[top] = c
		return nil
	})
	if err != nil {
		return err
	}

	writeStats(os.Stdout, counts)
	return nil
}

// writeStats prints one row per directory in name order, then the totals.
func writeStats(w io.Writer, counts map[string][2]int) {
	var prod, test int
	dirs := make([]string, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)
	for _, dir := range dirs {
		c := counts[dir]
		fmt.Fprintf(w, "%-12s production %6d  tests %6d\n", dir, c[0], c[1])
		prod += c[0]
		test += c[1]
	}
	fmt.Fprintf(w, "%-12s production %6d  tests %6d\n", "total", prod, test)
}

// countLines counts non-blank lines in the file at path.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

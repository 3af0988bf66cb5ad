//go:build mage

// Package main provides build targets for the dashboard project using Mage.
//
// Usage:
//
//	mage build          Compile the dashboard binary to bin/
//	mage test           Run all tests
//	mage testRedis      Run the store tests against a local Redis
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install dashboard to GOPATH/bin
//	mage stats          Print Go line counts per package
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "dashboard"
	binaryDir  = "bin"
	cmdDir     = "./cmd/dashboard"
	versionVar = "github.com/olirobz31/dashboard-analytics-pro/internal/cli.Version"

	// defaultRedisAddr is used by TestRedis when DASHBOARD_TEST_REDIS is unset.
	defaultRedisAddr = "localhost:6379"
)

// Build compiles the dashboard binary to bin/, stamping the version from
// VERSION when set.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", filepath.Join(binaryDir, binaryName)}
	if v := os.Getenv("VERSION"); v != "" {
		args = append(args, "-ldflags", fmt.Sprintf("-X %s=%s", versionVar, v))
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestRedis runs the store tests with the Redis backend enabled.
func TestRedis() error {
	addr := os.Getenv("DASHBOARD_TEST_REDIS")
	if addr == "" {
		addr = defaultRedisAddr
	}
	env := map[string]string{"DASHBOARD_TEST_REDIS": addr}
	return sh.RunWithV(env, binGo, "test", "-v", "./internal/store/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

type lineCount struct{ prod, test int }

// Stats prints production and test line counts for each package directory.
func Stats() error {
	counts := map[string]*lineCount{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			switch path {
			case "vendor", ".git", "magefiles", "_examples", binaryDir:
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return nil
		}
		dir := filepath.Dir(path)
		c, ok := counts[dir]
		if !ok {
			c = &lineCount{}
			counts[dir] = c
		}
		if strings.HasSuffix(path, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(counts))
	for d := range counts {
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)

	var total lineCount
	for _, d := range dirs {
		c := counts[d]
		fmt.Printf("%-24s %6d prod %6d test\n", d, c.prod, c.test)
		total.prod += c.prod
		total.test += c.test
	}
	fmt.Printf("%-24s %6d prod %6d test\n", "total", total.prod, total.test)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

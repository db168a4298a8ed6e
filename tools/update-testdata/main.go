// Command update-testdata regenerates golden files by running the tests of
// every package that keeps them with -update.
package main

import (
	"flag"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/upset/zappretty"
)

const goldenSuffix = ".golden.json"

func ensureModPath() error {
	_, err := os.ReadFile("go.mod")
	if err != nil {
		return err
	}
	return nil
}

// findGoldenPackages returns the directories, relative to the module root,
// whose testdata holds at least one golden file.
func findGoldenPackages(fsys fs.FS) ([]string, error) {
	var pkgs []string

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || (d.Name() != "." && strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}

		dir := path.Dir(p)
		if path.Base(dir) != "testdata" || !strings.HasSuffix(d.Name(), goldenSuffix) {
			return nil
		}

		pkg := path.Dir(dir)
		if len(pkgs) == 0 || pkgs[len(pkgs)-1] != pkg {
			pkgs = append(pkgs, pkg)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pkgs, nil
}

func updateTestData(pkg, timeout string) error {
	cmd := exec.Command("go", "test", "-v", "-timeout", timeout, "./"+pkg, "-update")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	timeout := flag.String("timeout", "2m", "timeout passed to go test")
	flag.Parse()

	cfg := zap.NewProductionEncoderConfig()
	logger := zap.New(zapcore.NewCore(zappretty.NewCLIEncoder(cfg), zapcore.Lock(os.Stderr), zapcore.InfoLevel))
	defer logger.Sync()

	if err := ensureModPath(); err != nil {
		logger.Fatal("must be run from the module root", zap.Error(err))
	}

	pkgs, err := findGoldenPackages(os.DirFS("."))
	if err != nil {
		logger.Fatal("failed to find golden files", zap.Error(err))
	}

	var errs error

	for _, pkg := range pkgs {
		logger.Info("updating testdata", zap.String("package", pkg))

		if err := updateTestData(pkg, *timeout); err != nil {
			logger.Error("failed to update testdata", zap.String("package", pkg), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		logger.Fatal("some error(s) occurred in some of the tests", zap.Int("failed", len(multierr.Errors(errs))))
	}

	logger.Info("successfully updated testdata!", zap.Int("packages", len(pkgs)))
}

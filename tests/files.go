// Package tests provides access to external test data (test roms, processor
// tests), downloading it on first use.
package tests

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

var client = &http.Client{Timeout: 2 * time.Minute}

func decompress(zipFile, dest string) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fname := strings.Replace(f.Name, "nes-test-roms-master", "nes-test-roms", 1)
		fpath := filepath.Join(dest, fname)
		if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("%s: illegal file path", fpath)
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(fpath, os.ModePerm)
			continue
		}

		if err = os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}
		if err := extract(f, fpath); err != nil {
			return err
		}
	}

	log.Println("decompressed", len(r.File), "files")
	return nil
}

func extract(f *zip.File, fpath string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func download(url string, w io.Writer) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

func downloadTestRoms(dest string) error {
	const url = `https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip`

	tmpf, err := os.CreateTemp("", "nes-test-roms-*-.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmpf.Name())

	if err := download(url, tmpf); err != nil {
		tmpf.Close()
		return err
	}
	tmpf.Close()

	if err := decompress(tmpf.Name(), dest); err != nil {
		return fmt.Errorf("failed to decompress test roms: %s", err)
	}
	return nil
}

// download all 256 (one per opcode) Tom harte 6502 test files into dest dir.
func downloadTomHarteProcTests(dest string) error {
	const urlfmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

	tempdir, err := os.MkdirTemp("", "tom.harte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		url := fmt.Sprintf(urlfmt, opstr)

		g.Go(func() error {
			f, err := os.Create(filepath.Join(tempdir, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()

			return download(url, f)
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tempdir)
		return fmt.Errorf("failed to download all files: %s", err)
	}

	return os.Rename(tempdir, dest)
}

type lazyDir struct {
	once sync.Once
	path string
	err  error
}

func (d *lazyDir) get(tb testing.TB, name string, fetch func(dir string) (string, error)) string {
	tb.Helper()

	d.once.Do(func() {
		_, b, _, _ := runtime.Caller(0)
		d.path, d.err = fetch(filepath.Dir(b))
	})
	if d.err != nil {
		tb.Skipf("%s not available: %s", name, d.err)
	}
	return d.path
}

var romsDir, tomHarteDir lazyDir

// RomsPath returns the path to the nes-test-roms directory, downloading it if
// needed. The test is skipped if the roms can't be downloaded.
func RomsPath(tb testing.TB) string {
	return romsDir.get(tb, "nes-test-roms", func(testsDir string) (string, error) {
		dir := filepath.Join(testsDir, "nes-test-roms")
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			tb.Log("nes-test-roms directory not found, downloading it...")
			if err := downloadTestRoms(testsDir); err != nil {
				return "", err
			}
			tb.Log("Test roms downloaded in", dir)
		}
		return dir, nil
	})
}

// TomHarteProcTestsPath returns the path to the directory holding the 6502
// single step tests, downloading them if needed. The test is skipped if they
// can't be downloaded.
func TomHarteProcTestsPath(tb testing.TB) string {
	return tomHarteDir.get(tb, "processor tests", func(testsDir string) (string, error) {
		dir := filepath.Join(testsDir, "tomharte.processor.tests")
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			tb.Log("tomharte.processor.tests directory not found, downloading it...")
			if err := downloadTomHarteProcTests(dir); err != nil {
				return "", err
			}
			tb.Log("Tom Harte Processor Tests downloaded in", dir)
		}
		return dir, nil
	})
}

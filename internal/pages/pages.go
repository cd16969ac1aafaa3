// Package pages finds out how many page images a digitized object has.
package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrUnsupported is returned for paths that are neither a PDF nor a directory.
var ErrUnsupported = errors.New("unsupported page source")

// ImageExtensions are the file extensions treated as page images.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".jp2", ".webp"}

// CountPDF returns the number of pages in a PDF file.
func CountPDF(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count for %s: %w", path, err)
	}
	return n, nil
}

// ListImages returns the page images in dir, in page order.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return SortByNumber(names), nil
}

// Count returns the page count of a PDF file or an image directory. For
// directories the image names are returned as well.
func Count(path string) (int, []string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, nil, err
	}
	if fi.IsDir() {
		names, err := ListImages(path)
		if err != nil {
			return 0, nil, err
		}
		return len(names), names, nil
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		n, err := CountPDF(path)
		return n, nil, err
	}
	return 0, nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
}

func isImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

var trailingNumber = regexp.MustCompile(`(\d+)\.[^.]+$`)

// SortByNumber sorts file names by their trailing number before the
// extension. Names without a number go last, in lexical order.
// e.g., ["scan_10.tif", "scan_2.tif", "scan_1.tif"] -> ["scan_1.tif", "scan_2.tif", "scan_10.tif"]
func SortByNumber(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi := trailingNumber.FindStringSubmatch(strings.ToLower(sorted[i]))
		mj := trailingNumber.FindStringSubmatch(strings.ToLower(sorted[j]))

		hasI, hasJ := len(mi) > 1, len(mj) > 1
		if hasI != hasJ {
			return hasI
		}
		if hasI {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			if ni != nj {
				return ni < nj
			}
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

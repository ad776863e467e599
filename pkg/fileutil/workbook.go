// Package fileutil provides helpers for reading workbook files from disk
// with the caller-side pre-checks the import engine itself does not do.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize caps workbook files at 20 MiB, matching the upload limit
// of the surrounding application.
const DefaultMaxSize = 20 << 20

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// ReadWorkbookFile reads a workbook file into memory after checking the
// extension, that the file is not empty, and that it fits under maxSize
// (DefaultMaxSize when maxSize is zero). The engine only ever sees bytes;
// these checks belong to the caller per the import contract.
func ReadWorkbookFile(path string, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file extension %q (want .xlsx or .xlsm)", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("checking workbook file: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("workbook file %s is empty", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("workbook file %s exceeds size limit (%d > %d bytes)", path, info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workbook file: %w", err)
	}

	return data, nil
}

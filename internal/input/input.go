// Package input locates and reads puzzle input files.
//
// Files live in one directory and are named
//
//	<day><exercise>-examples<suffix>.txt
//	<day><exercise>-input<suffix>.txt
//
// falling back to the same name without the exercise letter, so both
// halves of a day can share one file.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrInputNotFound is returned when no candidate file exists.
var ErrInputNotFound = errors.New("input: no input file found")

// Selector identifies an input file.
type Selector struct {
	Day      int
	Exercise string
	Examples bool
	Suffix   string
}

// Names returns the candidate file names in lookup order.
func (s Selector) Names() []string {
	kind := "-input"
	if s.Examples {
		kind = "-examples"
	}
	day := strconv.Itoa(s.Day)
	names := make([]string, 0, 2)
	if s.Exercise != "" {
		names = append(names, day+s.Exercise+kind+s.Suffix+".txt")
	}
	return append(names, day+kind+s.Suffix+".txt")
}

// Find returns the first candidate that exists in dir.
func Find(dir string, s Selector) (string, error) {
	names := s.Names()
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: looked for %s in %s", ErrInputNotFound, strings.Join(names, ", "), dir)
}

// LoadLines reads path, trimming whitespace from every line and dropping
// a trailing blank line.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// Load combines Find and LoadLines.
func Load(dir string, s Selector) ([]string, error) {
	path, err := Find(dir, s)
	if err != nil {
		return nil, err
	}
	return LoadLines(path)
}

package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var chartExtensions = []string{".txt", ".chords", ".cho", ".chordpro"}

func IsChartPath(path string) bool {
	return slices.Contains(chartExtensions, strings.ToLower(filepath.Ext(path)))
}

// GatherAllChartPaths walks root and returns every chord chart it finds.
// maxNum of 0 means no limit.
func GatherAllChartPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsChartPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	return res, nil
}

// Mod is the non-negative remainder of a divided by m, for m > 0.
func Mod[A constraints.Signed](a A, m A) A {
	return ((a % m) + m) % m
}

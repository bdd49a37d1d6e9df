package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/zeebo/headsum"
)

type jsonResult struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// resolveFormat picks table output for terminals when no format was chosen.
func resolveFormat(format string, out io.Writer) string {
	if format != "" {
		return format
	}
	if f, ok := out.(*os.File); ok && isTerminal(f.Fd()) {
		return "table"
	}
	return "plain"
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeResults(w io.Writer, format string, results []headsum.Result) error {
	switch format {
	case "json":
		return writeJSON(w, results)
	case "table":
		return writeTable(w, results)
	default:
		return writePlain(w, results)
	}
}

func writePlain(w io.Writer, results []headsum.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s  %s\n", res.Digest, res.Path); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []headsum.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		out = append(out, jsonResult{Path: res.Path, Digest: res.Digest})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, results []headsum.Result) error {
	rows := make([][2]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, [2]string{res.Digest, res.Path})
	}

	_, err := fmt.Fprintln(w, renderTable(rows))
	return err
}

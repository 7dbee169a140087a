// Command generate_schema regenerates internal/database/schema.go from
// the embedded migration files, so tests can apply the full schema in
// one Exec without running migrations.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	migrationsDir = "internal/database/migrations/files"
	outputPath    = "internal/database/schema.go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "generate_schema: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var ups []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)
	if len(ups) == 0 {
		return fmt.Errorf("no .up.sql files found in %s", migrationsDir)
	}

	var schema strings.Builder
	for _, name := range ups {
		data, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		schema.WriteString(stripComments(string(data)))
	}

	var out strings.Builder
	out.WriteString("// Code generated by internal/database/tools/generate_schema.go; DO NOT EDIT.\n\n")
	out.WriteString("package database\n\n")
	out.WriteString("// Schema is the current database schema, assembled from the embedded\n")
	out.WriteString("// migration files. Tests apply it directly to in-memory databases\n")
	out.WriteString("// instead of running migrations.\n")
	out.WriteString("const Schema = `\n")
	out.WriteString(strings.TrimSpace(schema.String()))
	out.WriteString("\n`\n")

	if err := os.WriteFile(outputPath, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("wrote %s from %d migration file(s)\n", outputPath, len(ups))
	return nil
}

// stripComments removes SQL line comments and collapses blank runs, so
// the generated constant stays readable.
func stripComments(sql string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

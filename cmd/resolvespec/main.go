// Package main provides a command-line utility to resolve compression
// specification strings. It prints the filter id and parameters chosen for
// each variable, for debugging specification text before it reaches a
// storage pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/scigolib/compspec"
)

func main() {
	// Define command-line flags
	file := flag.String("file", "", "YAML file mapping variable names to policy strings")
	vars := flag.String("vars", "", "Comma-separated variable names")
	coords := flag.String("coords", "", "Comma-separated coordinate names")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if *file != "" {
		if text != "" {
			log.Fatal("Pass either a specification string or -file, not both")
		}
		loaded, err := compspec.LoadFile(*file)
		if err != nil {
			log.Fatalf("Failed to load specification file: %v", err)
		}
		text = loaded
	}

	if text == "" && *file == "" {
		fmt.Println("Usage: resolvespec [flags] <specification>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	policies, err := compspec.Resolve(text, splitNames(*vars), splitNames(*coords))
	if err != nil {
		log.Fatalf("Failed to resolve specification: %v", err)
	}

	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		descriptor := policies[name]
		fmt.Printf("%-20s filter=%d parameters=%v\n", name, descriptor.FilterID, descriptor.Parameters)
	}
}

func splitNames(list string) []string {
	if list == "" {
		return nil
	}
	names := strings.Split(list, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

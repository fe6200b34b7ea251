package shell

import (
	"fmt"
	"strings"

	sh "mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// Split splits line into words using POSIX shell quoting rules.
// The environment is never read, so parameter and arithmetic expansions are
// rejected; single-quote them to pass them through literally.
func Split(line string) ([]string, error) {
	var words []*syntax.Word
	err := syntax.NewParser().Words(strings.NewReader(line), func(w *syntax.Word) bool {
		words = append(words, w)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}

	for _, w := range words {
		if exp := findExpansion(w); exp != "" {
			return nil, fmt.Errorf("invalid command line: %s is not supported; quote it with '' to use it literally", exp)
		}
	}

	fields, err := sh.Fields(line, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	return fields, nil
}

func findExpansion(w *syntax.Word) string {
	var found string
	syntax.Walk(w, func(node syntax.Node) bool {
		if found != "" {
			return false
		}
		switch n := node.(type) {
		case *syntax.ParamExp:
			found = "parameter expansion"
			if n.Param != nil {
				found += " $" + n.Param.Value
			}
		case *syntax.ArithmExp:
			found = "arithmetic expansion"
		}
		return found == ""
	})
	return found
}

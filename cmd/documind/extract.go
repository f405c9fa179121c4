package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/documind"
)

// Run extracts the article at c.URL and prints it as JSON.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	proc := newURLProcessor(c.ExtractionFlags, deps.Logger)

	doc, err := proc.ProcessURL(deps.Ctx, documind.ExtractionRequest{URL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", documind.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

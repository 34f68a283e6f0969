// Package memdump writes the machine state as a Graphviz graph.
package memdump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/mnafees/chopper/v2/internal"
)

// Write renders state in Graphviz dot format to w.
func Write(w io.Writer, state internal.State) {
	memviz.Map(w, &state)
}

// WriteFile renders state to the named file, replacing it.
func WriteFile(filename string, state internal.State) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memdump: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("memdump: %w", err)
		}
	}()

	Write(f, state)
	return nil
}

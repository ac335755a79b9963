package cli

import (
	"fmt"
	"io"
	"os"
)

// writeOutput runs write against stdout when path is empty, otherwise against
// a newly created file at path, and reports the file on stderr.
func (c *CLI) writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(c.Out)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	printSuccess(c.Err, "Wrote output")
	printFile(c.Err, path)
	return nil
}

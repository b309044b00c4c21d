package writer

import (
	"errors"
	"fmt"

	"golang.design/x/clipboard"
)

// CopyToClipboard copies the text to the system clipboard.
func CopyToClipboard(text string) error {
	if text == "" {
		return errors.New("no result to copy")
	}
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("initializing clipboard: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

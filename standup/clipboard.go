// ABOUTME: Copies a rendered standup report to the system clipboard
// ABOUTME: Thin wrapper so callers do not import the clipboard package directly
package standup

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/harperreed/dayboard/models"
)

// Copy renders the report and places it on the system clipboard.
func Copy(report models.StandupReport) error {
	if err := clipboard.WriteAll(Render(report)); err != nil {
		return fmt.Errorf("failed to copy standup to clipboard: %w", err)
	}
	return nil
}

// ABOUTME: Standup CLI command
// ABOUTME: Prints the daily report, optionally copying it to the clipboard
package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/harperreed/dayboard/standup"
)

// StandupCommand generates and prints the daily standup report.
func StandupCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("standup", flag.ExitOnError)
	copyFlag := fs.Bool("copy", false, "Copy the report to the clipboard")
	_ = fs.Parse(args)

	report := standup.Generate(app.Tasks.Tasks(), time.Now())
	fmt.Print(standup.Render(report))

	if *copyFlag {
		if err := standup.Copy(report); err != nil {
			return err
		}
		fmt.Println("\n✓ Copied to clipboard")
	}
	return nil
}

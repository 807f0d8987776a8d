// ABOUTME: Shared application wiring handed to every CLI command
// ABOUTME: Holds the stores and trackers built once in main
package cli

import (
	"github.com/harperreed/dayboard/pomodoro"
	"github.com/harperreed/dayboard/store"
	"github.com/harperreed/dayboard/streak"
)

// App bundles the stores a command needs.
type App struct {
	Tasks        *store.TaskStore
	Customers    *store.CustomerStore
	Deals        *store.DealStore
	Interactions *store.InteractionStore
	Sessions     *store.SessionStore
	Streak       *streak.Tracker
	Timer        *pomodoro.Timer
}

// ABOUTME: Best-effort background mirroring of due-dated tasks to the calendar
// ABOUTME: At-most-once delivery; failures are logged and never retried
package calendar

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/harperreed/dayboard/models"
)

// SyncMarker records which tasks have been mirrored. The task store
// implements it.
type SyncMarker interface {
	IsSynced(taskID string) bool
	MarkSynced(taskID string)
}

// Notifier pushes due-dated tasks onto the calendar from a single worker
// goroutine. Enqueue never blocks: when the queue is full the notification
// is dropped. A task that already carries a synced marker is skipped.
type Notifier struct {
	bridge  Bridge
	markers SyncMarker
	queue   chan models.Task
	done    chan struct{}
	once    sync.Once
}

// NewNotifier starts the worker. bridge may be nil, in which case every
// notification is dropped.
func NewNotifier(bridge Bridge, markers SyncMarker) *Notifier {
	n := &Notifier{
		bridge:  bridge,
		markers: markers,
		queue:   make(chan models.Task, 16),
		done:    make(chan struct{}),
	}
	go n.run()
	return n
}

// Enqueue hands a task to the worker without blocking the caller.
func (n *Notifier) Enqueue(task models.Task) {
	select {
	case n.queue <- task:
	default:
		log.Printf("Calendar sync queue full, dropping task %s", task.ID)
	}
}

// Close stops accepting tasks, drains the queue, and waits for the worker.
func (n *Notifier) Close() {
	n.once.Do(func() {
		close(n.queue)
		<-n.done
	})
}

func (n *Notifier) run() {
	defer close(n.done)

	for task := range n.queue {
		n.sync(task)
	}
}

func (n *Notifier) sync(task models.Task) {
	if n.bridge == nil || task.DueDate == nil {
		return
	}
	if n.markers != nil && n.markers.IsSynced(task.ID) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := n.bridge.CreateTaskEvent(ctx, task.Title, task.Description, *task.DueDate, task.Priority)
	if err != nil {
		log.Printf("Calendar sync failed for task %s: %v", task.ID, err)
		return
	}
	if n.markers != nil {
		n.markers.MarkSynced(task.ID)
	}
}

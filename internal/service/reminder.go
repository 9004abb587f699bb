package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nzoschke/productivity/internal/metrics"
	"github.com/robfig/cron/v3"
)

// ReminderSender is the delivery side of reminders.
type ReminderSender interface {
	SendReminderEmail(ctx context.Context, email, taskText string, due time.Time) error
}

// ReminderService periodically scans the task collection for incomplete
// tasks whose reminder has passed and notifies once per task and reminder
// instant. Without a recipient it does nothing.
type ReminderService struct {
	tasks     *TaskService
	sender    ReminderSender
	recipient string
	schedule  string
	clock     Clock

	mu       sync.Mutex
	notified map[string]time.Time
	cron     *cron.Cron
}

func NewReminderService(tasks *TaskService, sender ReminderSender, recipient, schedule string, clock Clock) *ReminderService {
	return &ReminderService{
		tasks:     tasks,
		sender:    sender,
		recipient: recipient,
		schedule:  schedule,
		clock:     clock,
		notified:  map[string]time.Time{},
	}
}

// Start registers the scan on the cron schedule and runs it in the background.
func (s *ReminderService) Start() error {
	if s.recipient == "" {
		slog.Info("task reminders disabled (no REMINDER_EMAIL)")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		s.Check(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", s.schedule, err)
	}

	s.cron = c
	c.Start()
	slog.Info("task reminders started", "schedule", s.schedule)
	return nil
}

// Stop waits for a running scan to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Check sends every due reminder not yet sent and returns how many went out.
func (s *ReminderService) Check(ctx context.Context) int {
	if s.recipient == "" {
		return 0
	}

	now := s.clock.Now()
	sent := 0
	for _, task := range s.tasks.Collection().Items() {
		if !task.ReminderDue(now) {
			continue
		}

		due := *task.Reminder
		if s.alreadyNotified(task.ID, due) {
			continue
		}

		err := s.sender.SendReminderEmail(ctx, s.recipient, task.Text, due.In(now.Location()))
		if err != nil {
			slog.Error("failed to send reminder", "error", err, "task_id", task.ID)
			continue
		}

		s.markNotified(task.ID, due)
		metrics.RemindersSent.Inc()
		sent++
	}
	return sent
}

func (s *ReminderService) alreadyNotified(id string, due time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.notified[id]
	return ok && last.Equal(due)
}

func (s *ReminderService) markNotified(id string, due time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified[id] = due
}

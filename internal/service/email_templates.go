package service

import (
	"fmt"
	"time"
)

func reminderEmailTemplate(taskText string, due time.Time, tasksURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reminder: %s", taskText)
	body := fmt.Sprintf(`This task is due now:

%s

Due: %s

Open your tasks: %s

Best,
%s`, taskText, due.Format("Mon Jan 2, 2006 15:04 MST"), tasksURL, appName)

	return subject, body
}

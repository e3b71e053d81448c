package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notifier sends system notifications.
type Notifier struct {
	Enabled bool
}

// Send sends a system notification.
// On macOS, uses osascript to display notifications.
// On other platforms, this is a no-op.
func (n *Notifier) Send(title, message string) error {
	if !n.Enabled {
		return nil
	}

	if runtime.GOOS != "darwin" {
		// Only macOS supported for now
		return nil
	}

	return sendMacOSNotification(title, message)
}

// sendMacOSNotification uses osascript to display a notification.
func sendMacOSNotification(title, message string) error {
	// Escape quotes in title and message
	title = strings.ReplaceAll(title, `"`, `\"`)
	message = strings.ReplaceAll(message, `"`, `\"`)

	script := fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)
	cmd := exec.Command("osascript", "-e", script)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

// FormatLevelReached formats an award-level change notification.
func FormatLevelReached(levelName string, completedActivities int) (title, message string) {
	title = "🏆 Merit Award Progress"
	message = fmt.Sprintf("%s reached with %d activities complete", levelName, completedActivities)
	return title, message
}

// FormatLevelLost formats a notification for dropping below a level after a
// requirement is toggled back to incomplete.
func FormatLevelLost(levelName string, completedActivities int) (title, message string) {
	title = "📉 Merit Award Progress"
	message = fmt.Sprintf("no longer at %s (%d activities complete)", levelName, completedActivities)
	return title, message
}

// FormatPrerequisitesMet formats the notification sent when the last
// prerequisite is completed.
func FormatPrerequisitesMet(totalPrerequisites int) (title, message string) {
	title = "✅ Prerequisites Complete"
	message = fmt.Sprintf("all %d prerequisites met; activities now count toward an award", totalPrerequisites)
	return title, message
}

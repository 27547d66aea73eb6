//go:build !windows && !plan9

package logger

import "log/syslog"

// openSystemLog connects to the local syslog daemon using the user facility.
func openSystemLog(tag string) (systemLog, error) {
	return syslog.New(syslog.LOG_INFO|syslog.LOG_USER, tag)
}

//go:build windows || plan9

package logger

import "errors"

func openSystemLog(tag string) (systemLog, error) {
	return nil, errors.New("syslog is not supported on this platform")
}

package app

import (
	"log"

	"gol-viz/internal/driver"
)

// selectPattern forwards a pattern hotkey to the driver. Failures are logged
// and reported as false so the frame loop keeps running.
func selectPattern(drv *driver.Driver, name string, logger *log.Logger) bool {
	if _, err := drv.SelectPattern(name); err != nil {
		logger.Printf("select %s: %v", name, err)
		return false
	}
	return true
}

package tools

import (
	"log"
	"time"
)

var isEnabled = true
var printTimestamp = true

func EnableLogger() {
	isEnabled = true
}

func DisableLogger() {
	isEnabled = false
}

func EnableLoggerTimestamp() {
	printTimestamp = true
}

func DisableLoggerTimestamp() {
	printTimestamp = false
}

// Writes the given values to the standard logger, unless logging has been
// silenced through DisableLogger
func LogOutput(val ...interface{}) {
	if !isEnabled {
		return
	}
	if printTimestamp {
		log.Println("[" + time.Now().Format("2006-01-02 15.04:05.000") + "] ")
	}
	log.Println(val...)
}

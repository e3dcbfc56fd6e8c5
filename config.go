package mcworld

import "github.com/sirupsen/logrus"

// Config holds the optional settings a World is constructed with. The zero
// Config is valid: a nil Log defaults to logrus' standard logger.
type Config struct {
	// Log receives debug lines about subchunks materialised as air on load
	// and a summary of each Save. Defaults to logrus.StandardLogger() if
	// nil.
	Log *logrus.Logger
}

func (conf Config) log() *logrus.Logger {
	if conf.Log != nil {
		return conf.Log
	}
	return logrus.StandardLogger()
}

// Package logging configures the logrus logger used by the command line
// tools.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Setup installs the prefixed text formatter on the standard logger and
// sets its level (debug, info, warn, error).
func Setup(level string, out io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	if out == nil {
		out = os.Stdout
	}

	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}

// NewRun returns an entry tagged with a fresh run id.
func NewRun() *log.Entry {
	return log.WithField("run", uuid.NewString())
}

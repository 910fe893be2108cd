package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors entries at or above a minimum level to a console
// stream while the file writer stays the primary sink.
type ConsoleHook struct {
	out    io.Writer
	levels []logrus.Level
}

func NewConsoleHook(level logrus.Level) *ConsoleHook {
	return &ConsoleHook{
		out:    os.Stdout,
		levels: logrus.AllLevels[:level+1],
	}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return h.levels
}

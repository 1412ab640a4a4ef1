package projector

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus.FieldLogger to Logger.
type logrusLogger struct {
	log logrus.FieldLogger
}

// NewLogrusLogger returns a Logger that writes through l. Key-value pairs
// become logrus fields; a trailing key without a value is logged under
// "extra".
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	p := projector.New(bus, power, projector.WithLogger(projector.NewLogrusLogger(log)))
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLogger{log: l}
}

func (l *logrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(toFields(keysAndValues)).Info(msg)
}

func (l *logrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(toFields(keysAndValues)).Error(msg)
}

func toFields(kv []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		if i+1 == len(kv) {
			fields["extra"] = kv[i]
			break
		}
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return fields
}

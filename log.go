package dexdecode

import "github.com/sirupsen/logrus"

// defaultLogger is used only for startup diagnostics (Warmup, known-quirk
// warnings); the decode hot path never logs.
var defaultLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	return log
}

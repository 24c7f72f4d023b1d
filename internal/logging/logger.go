package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fitcoach/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 5
)

type LoggerSetupParams struct {
	ServiceName   string
	Environment   string
	LogLevel      string
	LogFormatJSON bool

	// LogFileName empty means STDOUT only.
	LogFileName   string
	LogToStdout   bool
	LogMaxSizeMB  int
	LogMaxBackups int

	SentryEnabled bool
	SentryDSN     string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Setup(params LoggerSetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.ServiceName != "" {
		logrus.AddHook(newServiceHook(params.ServiceName, params.Environment))
	}

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.Infoln("sentry set up")
		}
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Infoln("writing logs to STDOUT")
		return nopCloser{}
	}

	fileWriter := newFileWriter(params)
	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, fileWriter))
	} else {
		logrus.SetOutput(fileWriter)
	}
	logrus.Infof("writing logs to %s (stdout: %t)", fileWriter.Filename, params.LogToStdout)

	return fileWriter
}

func newFileWriter(params LoggerSetupParams) *lumberjack.Logger {
	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	maxSize := params.LogMaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := params.LogMaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

func setupSentry(params LoggerSetupParams) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.ServiceName,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	return nil
}

// serviceHook stamps every entry with the service and environment, unless the
// entry sets them itself.
type serviceHook struct {
	service string
	env     string
}

func newServiceHook(service, env string) *serviceHook {
	return &serviceHook{service: service, env: env}
}

func (h *serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = h.service
	}
	if h.env != "" {
		if _, ok := entry.Data["env"]; !ok {
			entry.Data["env"] = h.env
		}
	}
	return nil
}

func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return lvl
}

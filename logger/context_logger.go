package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	ContextLogger struct {
		zeroLogger      *zerolog.Logger
		level           LogLevel
		context         Context
		showGoroutineID bool
	}

	Context map[string]interface{}
)

// newContextLogger creates the logger, but doesn't initialize it yet. This
// allows loggers to be created in var phase and the global configuration
// to be applied later.
func newContextLogger(level LogLevel, context Context, showGoroutineID bool) *ContextLogger {
	return &ContextLogger{
		zeroLogger:      nil,
		level:           level,
		context:         context,
		showGoroutineID: showGoroutineID,
	}
}

func (c *ContextLogger) init() {
	c.update(c.level, c.context, c.showGoroutineID)
	InitializeGlobalLogger()
}

func (c *ContextLogger) update(level LogLevel, context Context, showGoroutineID bool) {
	c.level = level
	c.showGoroutineID = showGoroutineID

	zeroLogger := log.Level(toZeroLevel(level))
	for key, value := range context {
		zeroLogger = zeroLogger.With().Interface(key, value).Logger()
	}
	if showGoroutineID {
		zeroLogger = zeroLogger.Hook(goroutineIDHook{})
	}
	c.zeroLogger = &zeroLogger
}

func (c *ContextLogger) Trace(format string, args ...interface{}) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.logMessage(c.zeroLogger.Trace(), format, args)
}

func (c *ContextLogger) Debug(format string, args ...interface{}) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.logMessage(c.zeroLogger.Debug(), format, args)
}

func (c *ContextLogger) Info(format string, args ...interface{}) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.logMessage(c.zeroLogger.Info(), format, args)
}

func (c *ContextLogger) Warning(format string, args ...interface{}) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.logMessage(c.zeroLogger.Warn(), format, args)
}

func (c *ContextLogger) Error(format string, args ...interface{}) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.logMessage(c.zeroLogger.Error(), format, args)
}

func (c *ContextLogger) logMessage(event *zerolog.Event, format string, args []interface{}) {
	if len(args) == 0 {
		event.Msg(format)
	} else {
		event.Msgf(format, args...)
	}
}

// ChangeLevel changes the level of this logger only.
func (c *ContextLogger) ChangeLevel(newLevel LogLevel) {
	if c.zeroLogger == nil {
		c.init()
	}
	c.level = newLevel
	*c.zeroLogger = c.zeroLogger.Level(toZeroLevel(newLevel))
}

// A hook that adds goroutine ID to the log event
type goroutineIDHook struct{}

func (h goroutineIDHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Uint64("GoID", goroutineID())
}

func toZeroLevel(lvl LogLevel) zerolog.Level {
	switch lvl {
	case NONE:
		return zerolog.Disabled
	case TRACE:
		return zerolog.TraceLevel
	case DEBUG:
		return zerolog.DebugLevel
	case INFO:
		return zerolog.InfoLevel
	case WARNING:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		panic(fmt.Sprintf("unknown level: %d", lvl))
	}
}

// goroutineID parses the goroutine id from the stack dump header, there is
// no runtime API for it.
func goroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

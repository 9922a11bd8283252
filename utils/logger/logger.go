package logger

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

const (
	objectField = "object"
	objectWidth = 20
)

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		t := reflect.TypeOf(obj)
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		objStr = t.String()
	}
	if len(objStr) > objectWidth {
		objStr = objStr[:objectWidth]
	}
	return
}

// Init sets the global level and the text formatter used by every package of the module.
func Init(lvl logrus.Level) {
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/02/01 15:04:05",
	})
}

// Entry returns a logrus entry tagged with the given object.
func Entry(object any) *logrus.Entry {
	return logrus.WithField(objectField, objToString(object))
}

func log(lvl logrus.Level, object any, message string) {
	if !logrus.IsLevelEnabled(lvl) {
		return
	}
	Entry(object).Log(lvl, message)
}

func Trace(object any, message string) {
	log(logrus.TraceLevel, object, message)
}

func Tracef(object any, message string, args ...any) {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	log(logrus.TraceLevel, object, fmt.Sprintf(message, args...))
}

func Debug(object any, message string) {
	log(logrus.DebugLevel, object, message)
}

func Debugf(object any, message string, args ...any) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log(logrus.DebugLevel, object, fmt.Sprintf(message, args...))
}

func Info(object any, message string) {
	log(logrus.InfoLevel, object, message)
}

func Infof(object any, message string, args ...any) {
	if !logrus.IsLevelEnabled(logrus.InfoLevel) {
		return
	}
	log(logrus.InfoLevel, object, fmt.Sprintf(message, args...))
}

func Warning(object any, message string) {
	log(logrus.WarnLevel, object, message)
}

func Warningf(object any, message string, args ...any) {
	if !logrus.IsLevelEnabled(logrus.WarnLevel) {
		return
	}
	log(logrus.WarnLevel, object, fmt.Sprintf(message, args...))
}

func Error(object any, message string) {
	log(logrus.ErrorLevel, object, message)
}

func Errorf(object any, message string, args ...any) {
	if !logrus.IsLevelEnabled(logrus.ErrorLevel) {
		return
	}
	log(logrus.ErrorLevel, object, fmt.Sprintf(message, args...))
}

// Fatalf logs at fatal level and exits the process.
func Fatalf(object any, message string, args ...any) {
	Entry(object).Fatalf(message, args...)
}

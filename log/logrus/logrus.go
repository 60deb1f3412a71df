package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/kvcache"
)

var _ kvcache.Logger = Logger{}

// Logger writes through a logrus entry; nil fields log the bare entry.
type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f kvcache.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f kvcache.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f kvcache.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f kvcache.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f kvcache.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}

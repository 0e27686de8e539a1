package log

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 16

// EntryZ is a log entry built field by field, then emitted with End. A nil
// *EntryZ is valid and discards everything, so that disabled levels cost a
// single nil check per call.
type EntryZ struct {
	mod Module
	lvl Level
	msg string

	zfbuf [maxZFields]ZField
	zfidx int
}

var entryZPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func newEntryZ() *EntryZ {
	e := entryZPool.Get().(*EntryZ)
	e.zfidx = 0
	return e
}

func (z *EntryZ) add(f ZField) *EntryZ {
	if z == nil {
		return nil
	}
	if z.zfidx < maxZFields {
		z.zfbuf[z.zfidx] = f
		z.zfidx++
	}
	return z
}

func (z *EntryZ) Bool(key string, b bool) *EntryZ {
	var n int64
	if b {
		n = 1
	}
	return z.add(ZField{Key: key, kind: kindBool, num: n})
}

func (z *EntryZ) String(key, s string) *EntryZ {
	return z.add(ZField{Key: key, kind: kindString, str: s})
}

func (z *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	return z.add(ZField{Key: key, kind: kindStringer, obj: s})
}

func (z *EntryZ) Hex8(key string, v uint8) *EntryZ {
	return z.add(ZField{Key: key, kind: kindHex8, num: int64(v)})
}

func (z *EntryZ) Hex16(key string, v uint16) *EntryZ {
	return z.add(ZField{Key: key, kind: kindHex16, num: int64(v)})
}

func (z *EntryZ) Int(key string, v int) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: int64(v)})
}

func (z *EntryZ) Int64(key string, v int64) *EntryZ {
	return z.add(ZField{Key: key, kind: kindInt, num: v})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	f := ZField{Key: key, kind: kindError}
	if err != nil {
		f.obj = err
	}
	return z.add(f)
}

func (z *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	return z.add(ZField{Key: key, kind: kindDuration, num: int64(d)})
}

// End emits the entry. Panic and fatal levels do not return.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	fields := make(logrus.Fields, z.zfidx+1)
	fields["_mod"] = z.mod.String()
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].Key] = z.zfbuf[i].Value()
	}
	lvl, msg := z.lvl, z.msg
	z.zfbuf = [maxZFields]ZField{}
	entryZPool.Put(z)

	entry := logrus.StandardLogger().WithFields(fields)
	switch lvl {
	case PanicLevel:
		entry.Panic(msg)
	case FatalLevel:
		entry.Fatal(msg)
	case ErrorLevel:
		entry.Error(msg)
	case WarnLevel:
		entry.Warn(msg)
	case InfoLevel:
		entry.Info(msg)
	default:
		entry.Debug(msg)
	}
}

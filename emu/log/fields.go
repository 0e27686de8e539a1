package log

import (
	"fmt"
	"strconv"
	"time"
)

// fieldKind tells how a ZField value is stored and formatted.
type fieldKind uint8

const (
	kindBool fieldKind = iota + 1
	kindString
	kindStringer
	kindHex8
	kindHex16
	kindInt
	kindError
	kindDuration
)

// ZField is a single EntryZ field. Values are kept unformatted until the
// entry is emitted.
type ZField struct {
	Key  string
	kind fieldKind
	num  int64
	str  string
	obj  any // fmt.Stringer or error
}

// Value returns the field value, formatted for logrus.
func (f *ZField) Value() string {
	switch f.kind {
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindString:
		return f.str
	case kindStringer:
		return f.obj.(fmt.Stringer).String()
	case kindHex8:
		return fmt.Sprintf("%02x", uint8(f.num))
	case kindHex16:
		return fmt.Sprintf("%04x", uint16(f.num))
	case kindInt:
		return strconv.FormatInt(f.num, 10)
	case kindError:
		if f.obj == nil {
			return "<nil>"
		}
		return f.obj.(error).Error()
	case kindDuration:
		return time.Duration(f.num).String()
	}
	return ""
}

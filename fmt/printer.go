package fmt

import (
	sysfmt "fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/qjson"
)

// colors are forced on, callers decide whether to use them by Colored()
var (
	Green      = forceColor(color.FgGreen, color.Bold)
	Cyan       = forceColor(color.FgCyan, color.Bold)
	Magenta    = forceColor(color.FgMagenta, color.Bold)
	Yellow     = forceColor(color.FgYellow, color.Bold)
	Red        = forceColor(color.FgRed, color.Bold)
	Blue       = forceColor(color.FgBlue, color.Bold)
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
		Red,
		Blue,
	}
)

// Printer prints a formatted line
type Printer func(format string, args ...interface{})

// Fprinter return a Printer writes to w, a newline is always appended
func Fprinter(w io.Writer) Printer {
	return func(format string, args ...interface{}) {
		if !strings.HasSuffix(format, "\n") {
			format += "\n"
		}
		sysfmt.Fprintf(w, format, args...)
	}
}

// PrependTime prefix every line with wall clock
func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(timeStr(time.Now())+" "+format, args...)
	}
}

// PrependTag prefix every line with [tag]
func (p Printer) PrependTag(tag string) Printer {
	return func(format string, args ...interface{}) {
		p("["+tag+"] "+format, args...)
	}
}

// Colored reports whether output should be colored by default
func Colored() bool {
	return !color.NoColor
}

// Sprint render value, colored by its position when colored is set
func Sprint(idx int, v interface{}, colored bool) string {
	if !colored {
		return sysfmt.Sprint(v)
	}
	return colorFuncs[idx%len(colorFuncs)](v)
}

// Join render values with separator
func Join(values []interface{}, sep string, colored bool) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(Sprint(i, v, colored))
	}
	return sb.String()
}

// PrettyJSON of complex value, colored by qjson
func PrettyJSON(v interface{}) string {
	return string(qjson.PrettyMarshalWithIndent(v))
}

func forceColor(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintFunc()
}

func timeStr(tm time.Time) string {
	return tm.Format("15:04:05")
}

package fmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("1 - a - true", Join([]interface{}{1, "a", true}, " - ", false))
	assert.Equal("", Join(nil, ",", false))

	colored := Join([]interface{}{1, 2}, ",", true)
	assert.Contains(colored, "\x1b[")
	assert.NotEqual(Sprint(0, "v", true), Sprint(1, "v", true))
	assert.Equal(Sprint(0, "v", true), Sprint(len(colorFuncs), "v", true))
}

func TestPrinter(t *testing.T) {
	assert := assert.New(t)
	buf := new(bytes.Buffer)
	p := Fprinter(buf)
	p("hello %s", "world")
	assert.Equal("hello world\n", buf.String())

	buf.Reset()
	p.PrependTag("list")("n=%d\n", 1)
	assert.Equal("[list] n=1\n", buf.String())

	buf.Reset()
	p.PrependTime().PrependTag("list")("ok")
	line := buf.String()
	assert.True(strings.HasSuffix(line, " [list] ok\n"))
	assert.Equal(len("15:04:05"), strings.Index(line, " "))
}

func TestPrettyJSON(t *testing.T) {
	out := PrettyJSON(map[string]int{"key": 1})
	assert.Contains(t, out, "key")
}

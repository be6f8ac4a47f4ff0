package list

import (
	"fmt"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	fmt2 "github.com/qjpcpu/linkedlist/fmt"
	"github.com/qjpcpu/linkedlist/json"
)

// String render chain like 1 ----> 2 ----> 3
func (n *Node[T]) String() string {
	return n.render(DefaultSeparator, false)
}

// PrintValues write rendered chain with a trailing newline, stdout by default
func (n *Node[T]) PrintValues(opts ...PrintOption) {
	o := newPrintOptions(opts...)
	fmt.Fprintln(o.Output, n.render(o.Separator, o.Colored))
}

// PrintTable write chain as table of position and value
func (n *Node[T]) PrintTable(opts ...PrintOption) {
	o := newPrintOptions(opts...)
	tw := gotable.NewWriter()
	style := gotable.StyleDefault
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	tw.SetOutputMirror(o.Output)
	tw.AppendHeader(gotable.Row{"#", "Value"})
	var i int
	for node := range n.Each() {
		tw.AppendRows([]gotable.Row{{i, fmt2.Sprint(i, node.Value, o.Colored)}})
		i++
	}
	tw.Render()
}

// PrintJSON write chain values as indented json, colored by qjson when colored
func (n *Node[T]) PrintJSON(opts ...PrintOption) {
	o := newPrintOptions(opts...)
	if o.Colored {
		fmt.Fprintln(o.Output, fmt2.PrettyJSON(n.Values()))
		return
	}
	data, err := json.MarshalIndent(n)
	if err != nil {
		debugf("print json %v", err)
		return
	}
	fmt.Fprintln(o.Output, string(data))
}

func (n *Node[T]) render(sep string, colored bool) string {
	var values []interface{}
	for node := range n.Each() {
		values = append(values, node.Value)
	}
	return fmt2.Join(values, sep, colored)
}

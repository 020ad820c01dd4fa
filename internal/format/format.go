/*
Package format renders list contents for String methods.
*/
package format

import (
	"fmt"
	"iter"
	"strings"
)

// Seq renders the values of seq as name[v1 v2 ...].
func Seq[V any](name string, seq iter.Seq[V]) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Neighbor renders a neighbor value, or END if there is none.
func Neighbor[V any](v V, ok bool) string {
	if !ok {
		return "END"
	}
	return fmt.Sprint(v)
}

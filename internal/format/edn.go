package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json tags
// decide field names; object keys become kebab-case keywords
// (selectedListId => :selected-list-id).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeEDN(&buf, x, pretty, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func writeEDN(buf *bytes.Buffer, v any, pretty bool, depth int) {
	sep := func(i, n int) {
		if i == n-1 {
			return
		}
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat("  ", depth+1))
		} else {
			buf.WriteByte(' ')
		}
	}

	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		buf.WriteString(t.String())
	case string:
		buf.WriteString(strconv.Quote(t))
	case []any:
		buf.WriteByte('[')
		for i, it := range t {
			writeEDN(buf, it, pretty, depth+1)
			sep(i, len(t))
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			buf.WriteString(ednKeyword(k))
			buf.WriteByte(' ')
			writeEDN(buf, t[k], pretty, depth+1)
			sep(i, len(keys))
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(strconv.Quote(fmt.Sprint(t)))
	}
}

func ednKeyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	for i, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '_':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

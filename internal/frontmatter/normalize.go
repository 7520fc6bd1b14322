package frontmatter

import "bytes"

var utf8BOM = []byte("\xef\xbb\xbf")

// Normalize strips a leading UTF-8 byte order mark and converts CRLF and
// lone CR line endings to LF.
func Normalize(source []byte) []byte {
	source = bytes.TrimPrefix(source, utf8BOM)
	if bytes.IndexByte(source, '\r') < 0 {
		return source
	}
	out := bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}

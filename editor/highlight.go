package editor

import "bytes"

/*** syntax highlighting ***/

// Check if the character is a separator (whitespace, null, or punctuation)
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[]{}:;"), c) != -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// matchKeyword returns the length and class of the first keyword starting at
// the beginning of s that is followed by a separator or the end of s.
func matchKeyword(s []byte, kws []Keyword) (int, Highlight) {
	for _, kw := range kws {
		klen := len(kw.Text)
		if klen == 0 || klen > len(s) {
			continue
		}
		if !bytes.HasPrefix(s, []byte(kw.Text)) {
			continue
		}
		if klen < len(s) && !isSeparator(s[klen]) {
			continue
		}
		return klen, kw.Class.highlight()
	}
	return 0, HL_NORMAL
}

// updateSyntax highlights the row at position at and keeps going down the
// buffer for as long as a row's open comment state flips.
func (b *Buffer) updateSyntax(at int) {
	for i := at; i >= 0 && i < len(b.rows); i++ {
		if !b.highlightRow(b.rows[i]) {
			return
		}
	}
}

// highlightRow recomputes row.hl from row.render and reports whether the
// row's open comment state changed.
func (b *Buffer) highlightRow(row *Row) bool {
	row.hl = make([]Highlight, len(row.render))

	inComment := false
	if b.syntax == nil {
		changed := row.hlOpenComment != inComment
		row.hlOpenComment = inComment
		return changed
	}

	scs := []byte(b.syntax.SinglelineCommentStart)
	mcs := []byte(b.syntax.MultilineCommentStart)
	mce := []byte(b.syntax.MultilineCommentEnd)
	flags := b.syntax.Flags

	prevSep := true
	var inString byte
	inComment = row.idx > 0 && row.idx-1 < len(b.rows) && b.rows[row.idx-1].hlOpenComment

	render := row.render
	for i := 0; i < len(render); {
		c := render[i]
		prevHl := HL_NORMAL
		if i > 0 {
			prevHl = row.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				for j := i; j < len(render); j++ {
					row.hl[j] = HL_COMMENT
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.hl[i] = HL_MLCOMMENT
				if bytes.HasPrefix(render[i:], mce) {
					for j := range mce {
						row.hl[i+j] = HL_MLCOMMENT
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := range mcs {
					row.hl[i+j] = HL_MLCOMMENT
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if flags&HL_HIGHLIGHT_STRINGS != 0 {
			if inString != 0 {
				row.hl[i] = HL_STRING
				if c == '\\' && i+1 < len(render) {
					row.hl[i+1] = HL_STRING
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				row.hl[i] = HL_STRING
				i++
				continue
			}
		}

		if flags&HL_HIGHLIGHT_NUMBERS != 0 {
			if (isDigit(c) && (prevSep || prevHl == HL_NUMBER)) || (c == '.' && prevHl == HL_NUMBER) {
				row.hl[i] = HL_NUMBER
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if klen, hl := matchKeyword(render[i:], b.syntax.Keywords); klen > 0 {
				for j := range klen {
					row.hl[i+j] = hl
				}
				i += klen
				prevSep = true
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := row.hlOpenComment != inComment
	row.hlOpenComment = inComment
	return changed
}

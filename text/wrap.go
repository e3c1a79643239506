package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// piece is a stretch of text from a single span.
type piece struct {
	span int
	text string
}

// segment is either a word or the whitespace between two words.
// A word may cross span boundaries ("**Bo**ld" styled mid-word).
type segment struct {
	pieces []piece
	gap    bool
}

// paragraph is the text between two forced line breaks.
type paragraph struct {
	segments []segment
	span     int // span the paragraph starts in, for empty-line metrics
}

// normalizeText converts to NFC, folds CRLF to LF and tabs to spaces.
func normalizeText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", " ")
}

func isGap(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// splitParagraphs tokenizes spans into paragraphs of words and gaps.
// Every '\n' ends a paragraph, so n newlines give n+1 paragraphs.
func splitParagraphs(spans []Span) []paragraph {
	paras := []paragraph{{}}
	cur := &paras[0]

	appendPiece := func(span int, text string, gap bool) {
		n := len(cur.segments)
		if n > 0 && cur.segments[n-1].gap == gap {
			seg := &cur.segments[n-1]
			if last := &seg.pieces[len(seg.pieces)-1]; last.span == span {
				last.text += text
			} else {
				seg.pieces = append(seg.pieces, piece{span: span, text: text})
			}
			return
		}
		cur.segments = append(cur.segments, segment{
			pieces: []piece{{span: span, text: text}},
			gap:    gap,
		})
	}

	for i, sp := range spans {
		s := normalizeText(sp.Text)
		for s != "" {
			r, _ := utf8.DecodeRuneInString(s)
			if r == '\n' {
				paras = append(paras, paragraph{span: i})
				cur = &paras[len(paras)-1]
				s = s[1:]
				continue
			}
			gap := isGap(r)
			end := strings.IndexFunc(s, func(c rune) bool {
				return c == '\n' || isGap(c) != gap
			})
			if end < 0 {
				end = len(s)
			}
			appendPiece(i, s[:end], gap)
			s = s[end:]
		}
	}
	return paras
}

// wrapParagraph packs segments greedily into lines no wider than
// maxWidth. A word wider than maxWidth gets a line of its own and is never
// split. Gaps at a break are dropped; leading whitespace of the paragraph
// is kept. A maxWidth of zero or less disables wrapping.
func wrapParagraph(p paragraph, maxWidth float64, measure func([]piece) float64) [][]piece {
	var all []piece
	for _, s := range p.segments {
		all = append(all, s.pieces...)
	}
	if maxWidth <= 0 || len(p.segments) == 0 {
		return [][]piece{all}
	}

	var (
		lines   [][]piece
		line    []piece
		hasWord bool
		pending []piece
	)
	for i, s := range p.segments {
		if s.gap {
			if i == 0 {
				line = append(line, s.pieces...)
			} else {
				pending = s.pieces
			}
			continue
		}

		candidate := make([]piece, 0, len(line)+len(pending)+len(s.pieces))
		candidate = append(candidate, line...)
		if hasWord {
			candidate = append(candidate, pending...)
		}
		candidate = append(candidate, s.pieces...)

		if !hasWord || measure(candidate) <= maxWidth {
			line = candidate
		} else {
			lines = append(lines, line)
			line = append([]piece(nil), s.pieces...)
		}
		hasWord = true
		pending = nil
	}
	return append(lines, line)
}

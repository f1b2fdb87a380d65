package editor

import (
	"strings"

	"github.com/muesli/termenv"
)

// Highlight classifies one rendered character.
type Highlight uint8

// Syntax highlighting types
const (
	HL_NORMAL Highlight = iota
	HL_COMMENT
	HL_MLCOMMENT
	HL_KEYWORD1
	HL_KEYWORD2
	HL_STRING
	HL_NUMBER
	HL_MATCH
)

// Syntax highlighting flags
const (
	HL_HIGHLIGHT_NUMBERS = 1 << 0
	HL_HIGHLIGHT_STRINGS = 1 << 1
)

func (h Highlight) String() string {
	switch h {
	case HL_NORMAL:
		return "normal"
	case HL_COMMENT:
		return "comment"
	case HL_MLCOMMENT:
		return "mlcomment"
	case HL_KEYWORD1:
		return "keyword1"
	case HL_KEYWORD2:
		return "keyword2"
	case HL_STRING:
		return "string"
	case HL_NUMBER:
		return "number"
	case HL_MATCH:
		return "match"
	default:
		return "unknown"
	}
}

// Color maps a highlight class to the terminal color it is drawn with.
func (h Highlight) Color() termenv.ANSIColor {
	switch h {
	case HL_COMMENT, HL_MLCOMMENT:
		return termenv.ANSICyan
	case HL_KEYWORD1:
		return termenv.ANSIYellow
	case HL_KEYWORD2:
		return termenv.ANSIGreen
	case HL_STRING:
		return termenv.ANSIMagenta
	case HL_NUMBER:
		return termenv.ANSIRed
	case HL_MATCH:
		return termenv.ANSIBlue
	default:
		return termenv.ANSIWhite
	}
}

// KeywordClass selects which of the two keyword highlights a keyword gets.
type KeywordClass int

const (
	// KeywordPrimary keywords are drawn as HL_KEYWORD1 (control flow, declarations).
	KeywordPrimary KeywordClass = iota
	// KeywordSecondary keywords are drawn as HL_KEYWORD2 (types, builtins).
	KeywordSecondary
)

func (c KeywordClass) highlight() Highlight {
	if c == KeywordSecondary {
		return HL_KEYWORD2
	}
	return HL_KEYWORD1
}

type Keyword struct {
	Text  string
	Class KeywordClass
}

// Syntax describes how files of one type are highlighted.
type Syntax struct {
	Filetype string
	// Filematch entries starting with '.' match a filename suffix,
	// anything else matches a substring of the filename.
	Filematch              []string
	Keywords               []Keyword
	SinglelineCommentStart string
	MultilineCommentStart  string
	MultilineCommentEnd    string
	Flags                  int
}

func keywords(class KeywordClass, words ...string) []Keyword {
	kws := make([]Keyword, len(words))
	for i, w := range words {
		kws[i] = Keyword{Text: w, Class: class}
	}
	return kws
}

/*** filetypes ***/

var HLDB_ENTRIES = []*Syntax{
	{
		Filetype:  "c",
		Filematch: []string{".c", ".h", ".cpp"},
		Keywords: append(
			keywords(KeywordPrimary,
				"switch", "if", "while", "for", "break", "continue", "return", "else",
				"struct", "union", "typedef", "static", "enum", "class", "case"),
			keywords(KeywordSecondary,
				"int", "long", "double", "float", "char", "unsigned", "signed", "void")...,
		),
		SinglelineCommentStart: "//",
		MultilineCommentStart:  "/*",
		MultilineCommentEnd:    "*/",
		Flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		Filetype:  "go",
		Filematch: []string{".go"},
		Keywords: append(
			keywords(KeywordPrimary,
				"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
				"map", "package", "range", "return", "select", "struct", "switch", "type",
				"var"),
			keywords(KeywordSecondary,
				"any", "append", "bool", "byte", "cap", "close", "complex", "complex64",
				"complex128", "copy", "delete", "error", "false", "float32", "float64",
				"imag", "int", "int8", "int16", "int32", "int64", "iota", "len", "make",
				"new", "nil", "panic", "print", "println", "real", "recover", "rune",
				"string", "true", "uint", "uint8", "uint16", "uint32", "uint64",
				"uintptr")...,
		),
		SinglelineCommentStart: "//",
		MultilineCommentStart:  "/*",
		MultilineCommentEnd:    "*/",
		Flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		Filetype:  "python",
		Filematch: []string{".py"},
		Keywords: append(
			keywords(KeywordPrimary,
				"as", "assert", "break", "class", "continue", "def", "del", "elif",
				"else", "except", "finally", "for", "from", "global", "if", "import",
				"in", "lambda", "nonlocal", "pass", "raise", "return", "try", "while",
				"with", "yield"),
			keywords(KeywordSecondary,
				"and", "False", "is", "None", "not", "or", "True", "int", "float",
				"bool", "str", "bytes", "dict", "list", "set", "tuple", "len",
				"print", "range", "self")...,
		),
		SinglelineCommentStart: "#",
		Flags:                  HL_HIGHLIGHT_NUMBERS | HL_HIGHLIGHT_STRINGS,
	},
	{
		Filetype:  "makefile",
		Filematch: []string{"Makefile", "makefile", "GNUmakefile", ".mk"},
		Keywords: append(
			keywords(KeywordPrimary,
				"ifeq", "ifneq", "ifdef", "ifndef", "else", "endif", "include",
				"define", "endef", "export"),
			keywords(KeywordSecondary, ".PHONY", "$(MAKE)", "$(CC)")...,
		),
		SinglelineCommentStart: "#",
		Flags:                  HL_HIGHLIGHT_STRINGS,
	},
}

// MatchSyntax returns the first entry of HLDB_ENTRIES matching filename,
// or nil when no entry does.
func MatchSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	for _, s := range HLDB_ENTRIES {
		for _, pattern := range s.Filematch {
			if pattern == "" {
				continue
			}
			isExt := pattern[0] == '.'
			if (isExt && strings.HasSuffix(filename, pattern)) ||
				(!isExt && strings.Contains(filename, pattern)) {
				return s
			}
		}
	}
	return nil
}

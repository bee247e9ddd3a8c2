package thicket

import (
	"io"
	"strings"
)

// BlockParserFunc is a block-parser function registered under a
// conversion-specifier name. It receives the parser already positioned
// at the block's first line, with block_indent set appropriately, and
// must consume the whole block.
type BlockParserFunc func(p *Parser) (Value, error)

const defaultMaxBlockLevel = 100

// Parser holds the state of one parse. It is not reentrant and is not
// safe for concurrent use; distinct Parser values are fully independent.
type Parser struct {
	input LineReader

	currentLine   string
	currentIndent int
	lineNumber    int

	blockIndent   int
	blockLevel    int
	maxBlockLevel int

	skipComments bool
	eof          bool

	customParsers map[string]BlockParserFunc
}

// Option configures a Parser created by NewParser.
type Option func(*Parser)

// WithMaxBlockLevel overrides the default recursion cap (100).
func WithMaxBlockLevel(n int) Option {
	return func(p *Parser) { p.maxBlockLevel = n }
}

// WithCustomParser registers fn under name before parsing begins, in
// addition to (or overriding) the built-ins.
func WithCustomParser(name string, fn BlockParserFunc) Option {
	return func(p *Parser) { p.customParsers[name] = fn }
}

// NewParser creates a parser reading from r. Callers that need to
// register custom conversion-specifier parsers before parsing should use
// WithCustomParser or call SetCustomParser before Parse.
func NewParser(r io.Reader, opts ...Option) *Parser {
	return newParserFromSource(NewLineReader(r), opts...)
}

// NewParserFromLineReader creates a parser over a caller-supplied
// LineReader, for hosts that already have a line-oriented source.
func NewParserFromLineReader(lr LineReader, opts ...Option) *Parser {
	return newParserFromSource(lr, opts...)
}

func newParserFromSource(lr LineReader, opts ...Option) *Parser {
	p := &Parser{
		input:         lr,
		blockLevel:    1,
		maxBlockLevel: defaultMaxBlockLevel,
		skipComments:  true,
		customParsers: make(map[string]BlockParserFunc),
	}
	registerBuiltinParsers(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetCustomParser registers or overwrites the block-parser function for
// convspec. It returns true (kept for symmetry with the reference API's
// boolean success return; registration in this implementation cannot
// fail).
func (p *Parser) SetCustomParser(convspec string, fn BlockParserFunc) bool {
	p.customParsers[convspec] = fn
	return true
}

// Parse parses the whole input as a single top-level value and asserts
// that no non-comment data follows it.
func (p *Parser) Parse() (Value, error) {
	err := p.readBlockLine()
	if err == errEndOfBlock && p.eof {
		return Value{}, io.EOF
	}
	if err != nil && err != errEndOfBlock {
		return Value{}, err
	}

	result, err := p.parseValue(nil)
	if err != nil {
		return Value{}, err
	}

	// The value parsers leave the line after the value already read, so
	// check it before reading on.
	for {
		if p.currentLine != "" && !p.isCommentLine() {
			return Value{}, p.errorf(p.currentIndent, "Extra data after parsed value")
		}
		err = p.readBlockLine()
		if err == errEndOfBlock || err == io.EOF {
			return result, nil
		}
		if err != nil {
			return Value{}, err
		}
	}
}

// Parse parses data read from r as a single document.
func Parse(r io.Reader) (Value, error) {
	return NewParser(r).Parse()
}

// ParseString parses s as a single document.
func ParseString(s string) (Value, error) {
	return Parse(strings.NewReader(s))
}

package thicket

import (
	"errors"
	"io"
	"strings"
)

// readLine reads one raw line into p.currentLine, right-trims trailing
// whitespace, and measures its leading-space indent.
func (p *Parser) readLine() error {
	line, err := p.input.ReadLine()
	if err != nil {
		return err
	}
	line = strings.TrimRight(line, " \t")
	p.currentLine = line
	p.currentIndent = countIndent(line)
	p.lineNumber = p.input.LineNumber()
	return nil
}

// readBlockLine implements read_block_line: it returns the next line
// belonging to the current block, or errEndOfBlock.
func (p *Parser) readBlockLine() error {
	if p.eof {
		if p.blockLevel > 0 {
			return errEndOfBlock
		}
		return io.EOF
	}

	for {
		err := p.readLine()
		if errors.Is(err, io.EOF) {
			p.eof = true
			p.currentLine = ""
			return errEndOfBlock
		}
		if err != nil {
			return err
		}

		if p.skipComments {
			if len(p.currentLine) == 0 {
				continue
			}
			if p.isCommentLine() {
				continue
			}
			p.skipComments = false
		}

		if len(p.currentLine) == 0 {
			// Interior empty lines are preserved as-is.
			return nil
		}

		if p.currentIndent >= p.blockIndent {
			return nil
		}

		// Unindent detected.
		if p.isCommentLine() {
			// Unindented comments are invisible to every block; skip.
			continue
		}
		p.input.UnreadLine(p.currentLine)
		p.currentLine = ""
		return errEndOfBlock
	}
}

func (p *Parser) isCommentLine() bool {
	if p.currentIndent >= len(p.currentLine) {
		return false
	}
	return p.currentLine[p.currentIndent] == '#'
}

func countIndent(line string) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

// readBlock implements read_block: collects every remaining line of
// the current block, each with the first block_indent characters
// stripped.
func (p *Parser) readBlock() ([]string, error) {
	var lines []string
	for {
		line := p.currentLine
		if p.blockIndent < len(line) {
			lines = append(lines, line[p.blockIndent:])
		} else {
			lines = append(lines, "")
		}

		err := p.readBlockLine()
		if err == errEndOfBlock {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseNestedBlock implements parse_nested_block: sets block_indent to
// blockPos for the duration of fn, enforcing the recursion cap. Data
// left in the block after fn's value is an error.
func (p *Parser) parseNestedBlock(blockPos int, fn BlockParserFunc) (Value, error) {
	if p.blockLevel >= p.maxBlockLevel {
		return Value{}, p.errorf(p.currentIndent, "Too many nested blocks")
	}

	p.blockLevel++
	savedBlockIndent := p.blockIndent
	p.blockIndent = blockPos

	result, err := fn(p)
	if err == nil && p.currentLine != "" && !p.isCommentLine() {
		err = p.errorf(p.currentIndent, "Extra data after parsed value")
	}

	p.blockIndent = savedBlockIndent
	p.blockLevel--

	return result, err
}

// parseNestedBlockFromNextLine implements
// parse_nested_block_from_next_line: used when a structural token ends
// its line with nothing after it, so the nested block begins on the
// next line, one column deeper than the parent.
func (p *Parser) parseNestedBlockFromNextLine(fn BlockParserFunc) (Value, error) {
	p.blockIndent++
	err := p.readBlockLine()
	p.blockIndent--

	if err == errEndOfBlock {
		return Value{}, p.errorf(p.currentIndent, "Empty block")
	}
	if err != nil {
		return Value{}, err
	}

	return p.parseNestedBlock(p.blockIndent+1, fn)
}

// getStartPosition implements get_start_position: the position of the
// first non-space character relevant to this block, which may be
// deeper than block_indent when the value shares its parent's line (a
// list item or map value continuing inline).
func (p *Parser) getStartPosition() int {
	if p.blockIndent < p.currentIndent {
		return p.currentIndent
	}
	return skipSpaces(p.currentLine, p.blockIndent)
}

func skipSpaces(line string, pos int) int {
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	return pos
}

// isSpaceOrEOLAt reports whether position is past the end of line or
// holds a whitespace character.
func isSpaceOrEOLAt(line string, pos int) bool {
	if pos >= len(line) {
		return true
	}
	return line[pos] == ' ' || line[pos] == '\t'
}

// commentOrEndOfLine implements comment_or_end_of_line:
// true if, after skipping spaces from pos, the line has ended or a
// comment begins.
func (p *Parser) commentOrEndOfLine(pos int) bool {
	pos = skipSpaces(p.currentLine, pos)
	return pos >= len(p.currentLine) || p.currentLine[pos] == '#'
}

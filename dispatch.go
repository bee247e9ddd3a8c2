package thicket

import "strings"

// parseValue implements parse_value: it classifies the character at
// the current block's start position and dispatches to the appropriate
// sub-parser.
//
// nestedValuePos, when non-nil, signals that a map key is expected here:
// the callee must end the value with a key-value separator (writing the
// post-separator position back through the pointer) or report an error.
func (p *Parser) parseValue(nestedValuePos *int) (Value, error) {
	startPos := p.getStartPosition()
	line := p.currentLine

	if startPos >= len(line) {
		return p.parseLiteralStringOrMap(nestedValuePos)
	}
	ch := line[startPos]

	switch {
	case ch == ':':
		if nestedValuePos != nil {
			return Value{}, p.errorf(startPos, "Map key expected and it cannot start with colon")
		}
		name, valuePos, ok, err := p.parseConvSpec(startPos)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return p.parseLiteral()
		}
		fn := p.customParsers[name]
		if valuePos >= len(line) {
			return p.parseNestedBlockFromNextLine(fn)
		}
		return p.parseNestedBlock(valuePos, fn)

	case ch == '-':
		nextPos := startPos + 1
		if nextPos < len(line) && isDigit(line[nextPos]) {
			num, endPos, err := p.parseNumber(nextPos, -1)
			if err != nil {
				return Value{}, err
			}
			return p.checkValueEnd(num, endPos, nestedValuePos)
		}
		if isSpaceOrEOLAt(line, nextPos) {
			if nestedValuePos != nil {
				return Value{}, p.errorf(startPos, "Map key expected and it cannot be a list")
			}
			return p.parseList()
		}
		return p.parseLiteralStringOrMap(nestedValuePos)

	case ch == '"' || ch == '\'':
		startLine := p.lineNumber
		str, endPos, err := p.parseQuoted(startPos)
		if err != nil {
			return Value{}, err
		}
		endLine := p.lineNumber
		if endLine == startLine {
			return p.checkValueEnd(str, endPos, nestedValuePos)
		}
		if nestedValuePos != nil {
			return Value{}, p.errorf(startPos, "Map key expected")
		}
		if p.commentOrEndOfLine(endPos) {
			err := p.readBlockLine()
			if err != nil && err != errEndOfBlock {
				return Value{}, err
			}
			return str, nil
		}
		return Value{}, p.errorf(endPos, "Bad character after quoted string")
	}

	if matchesKeyword(line, startPos, "null") {
		return p.checkValueEnd(Null(), startPos+4, nestedValuePos)
	}
	if matchesKeyword(line, startPos, "true") {
		return p.checkValueEnd(Bool(true), startPos+4, nestedValuePos)
	}
	if matchesKeyword(line, startPos, "false") {
		return p.checkValueEnd(Bool(false), startPos+5, nestedValuePos)
	}

	if ch == '+' {
		nextPos := startPos + 1
		if nextPos < len(line) && isDigit(line[nextPos]) {
			startPos = nextPos
			ch = line[nextPos]
		}
	}
	if isDigit(ch) {
		num, endPos, err := p.parseNumber(startPos, 1)
		if err != nil {
			return Value{}, err
		}
		return p.checkValueEnd(num, endPos, nestedValuePos)
	}

	return p.parseLiteralStringOrMap(nestedValuePos)
}

func matchesKeyword(line string, pos int, keyword string) bool {
	if pos+len(keyword) > len(line) {
		return false
	}
	return line[pos:pos+len(keyword)] == keyword
}

// parseConvSpec extracts a conversion specifier starting right after
// openingColonPos. It returns the trimmed specifier name and the
// position immediately after the closing colon. ok is false when there
// is no recognized conversion specifier at this position, in which case
// the caller must not treat the colon specially.
func (p *Parser) parseConvSpec(openingColonPos int) (name string, valuePos int, ok bool, err error) {
	line := p.currentLine
	start := openingColonPos + 1
	if start > len(line) {
		return "", 0, false, nil
	}
	idx := strings.IndexByte(line[start:], ':')
	if idx < 0 {
		return "", 0, false, nil
	}
	closing := start + idx
	if closing == start {
		// Empty conversion specifier, "::".
		return "", 0, false, nil
	}
	if !isSpaceOrEOLAt(line, closing+1) {
		return "", 0, false, nil
	}
	name = strings.TrimSpace(line[start:closing])
	if _, registered := p.customParsers[name]; !registered {
		return "", 0, false, nil
	}
	return name, closing + 1, true, nil
}

// isKVSeparator implements is_kv_separator: a colon at colonPos
// qualifies as a key-value separator when followed by end-of-line,
// whitespace, or a recognized conversion specifier.
func (p *Parser) isKVSeparator(colonPos int) (bool, error) {
	line := p.currentLine
	if colonPos+1 >= len(line) {
		return true, nil
	}
	c := line[colonPos+1]
	if c == ' ' || c == '\t' {
		return true, nil
	}
	if c != ':' {
		return false, nil
	}
	_, _, ok, err := p.parseConvSpec(colonPos)
	return ok, err
}

// parseLiteralStringOrMap implements parse_literal_string_or_map: looks
// at the first colon in the current line; if it is a key-value
// separator, the block is a map, otherwise a literal string. When
// nestedValuePos is non-nil, the text before the separator is returned
// as the expected map key instead.
func (p *Parser) parseLiteralStringOrMap(nestedValuePos *int) (Value, error) {
	startPos := p.getStartPosition()
	line := p.currentLine

	if startPos < len(line) {
		if idx := strings.IndexByte(line[startPos:], ':'); idx >= 0 {
			colonPos := startPos + idx
			kvs, err := p.isKVSeparator(colonPos)
			if err != nil {
				return Value{}, err
			}
			if kvs {
				firstKey := strings.TrimSpace(line[startPos:colonPos])
				if nestedValuePos != nil {
					*nestedValuePos = colonPos + 1
					return String(firstKey), nil
				}
				return p.parseMap(String(firstKey), colonPos+2)
			}
		}
	}
	if nestedValuePos != nil {
		return Value{}, p.errorf(startPos, "Map key expected")
	}
	return p.parseLiteral()
}

// checkValueEnd implements check_value_end: after parsing a
// non-collection scalar ending at endPos, decide whether the value is
// actually the first key of a map (re-entering parseMap), whether it is
// the expected map key (writing the post-separator position back
// through nestedValuePos), or whether the line simply ends here.
func (p *Parser) checkValueEnd(value Value, endPos int, nestedValuePos *int) (Value, error) {
	line := p.currentLine
	endPos = skipSpaces(line, endPos)

	if endPos >= len(line) {
		if nestedValuePos != nil {
			return Value{}, p.errorf(endPos, "Map key expected")
		}
		err := p.readBlockLine()
		if err != nil && err != errEndOfBlock {
			return Value{}, err
		}
		return value, nil
	}

	switch line[endPos] {
	case ':':
		kvs, err := p.isKVSeparator(endPos)
		if err != nil {
			return Value{}, err
		}
		if kvs {
			if nestedValuePos != nil {
				*nestedValuePos = endPos + 1
				return value, nil
			}
			return p.parseMap(value, endPos+2)
		}
		return Value{}, p.errorf(endPos+1, "Bad character encountered")

	case '#':
		err := p.readBlockLine()
		if err != nil && err != errEndOfBlock {
			return Value{}, err
		}
		return value, nil

	default:
		return Value{}, p.errorf(endPos, "Bad character encountered")
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

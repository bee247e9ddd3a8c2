package thicket

import "strings"

// dedentLines strips the common leading-space prefix (measured over
// non-empty lines only) from every line, mutating none of the inputs.
func dedentLines(lines []string) []string {
	min := -1
	for _, l := range lines {
		if l == "" {
			continue
		}
		n := countIndent(l)
		if min == -1 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= min {
			out[i] = l[min:]
		} else {
			out[i] = ""
		}
	}
	return out
}

// parseLiteral implements parse_literal: dedent, drop trailing empty
// lines, and join with '\n'. A single surviving line gets no trailing
// newline; two or more do.
func (p *Parser) parseLiteral() (Value, error) {
	lines, err := p.readBlock()
	if err != nil {
		return Value{}, err
	}
	lines = dedentLines(lines)

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 1 {
		lines = append(lines, "")
	}
	return String(strings.Join(lines, "\n")), nil
}

// parseFolded implements parse_folded: dedent, drop all empty lines,
// and join the rest with single spaces.
func (p *Parser) parseFolded() (Value, error) {
	lines, err := p.readBlock()
	if err != nil {
		return Value{}, err
	}
	lines = dedentLines(lines)

	nonEmpty := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) == 0 {
		return String(""), nil
	}
	return String(strings.Join(nonEmpty, " ")), nil
}

// parseRaw implements parse_raw: no dedent, preserving internal
// indentation and comments verbatim.
func (p *Parser) parseRaw() (Value, error) {
	lines, err := p.readBlock()
	if err != nil {
		return Value{}, err
	}
	if len(lines) > 1 {
		lines = append(lines, "")
	}
	return String(strings.Join(lines, "\n")), nil
}

// findClosingQuote searches line for an unescaped quote at or after
// startPos. A quote preceded by an odd number of backslashes is treated
// as escaped and the search continues past it; after an even number
// (such as an escaped backslash) the quote closes the string.
func findClosingQuote(line string, quote byte, startPos int) (int, bool) {
	pos := startPos
	for pos <= len(line) {
		idx := strings.IndexByte(line[pos:], quote)
		if idx < 0 {
			return 0, false
		}
		abs := pos + idx
		backslashes := 0
		for abs-backslashes-1 >= startPos && line[abs-backslashes-1] == '\\' {
			backslashes++
		}
		if backslashes%2 == 1 {
			pos = abs + 1
			continue
		}
		return abs, true
	}
	return 0, false
}

// parseQuoted implements parse_quoted. quote must be the character at
// openingPos ('"' or '\''). It returns the decoded string and the
// position immediately after the closing quote on whichever line it
// closed.
func (p *Parser) parseQuoted(openingPos int) (Value, int, error) {
	quote := p.currentLine[openingPos]

	if idx, found := findClosingQuote(p.currentLine, quote, openingPos+1); found {
		s, _, err := p.unescapeLine(p.currentLine, p.lineNumber, quote, openingPos+1)
		if err != nil {
			return Value{}, 0, err
		}
		return String(s), idx + 1, nil
	}

	savedBlockIndent := p.blockIndent
	p.blockIndent = openingPos + 1

	var lines []string
	var lineNumbers []int
	closingFound := false
	endPos := 0

	for {
		line := p.currentLine
		var content string
		if p.blockIndent < len(line) {
			content = line[p.blockIndent:]
		}

		if idx, found := findClosingQuote(p.currentLine, quote, openingPos+1); found {
			cut := idx - p.blockIndent
			switch {
			case cut < 0:
				cut = 0
			case cut > len(content):
				cut = len(content)
			}
			lines = append(lines, content[:cut])
			lineNumbers = append(lineNumbers, p.lineNumber)
			endPos = idx + 1
			closingFound = true
			break
		}
		lines = append(lines, content)
		lineNumbers = append(lineNumbers, p.lineNumber)

		err := p.readBlockLine()
		if err == errEndOfBlock {
			break
		}
		if err != nil {
			p.blockIndent = savedBlockIndent
			return Value{}, 0, err
		}
	}

	p.blockIndent = savedBlockIndent

	if !closingFound {
		if p.currentIndent == openingPos &&
			p.currentIndent < len(p.currentLine) &&
			p.currentLine[p.currentIndent] == quote {
			endPos = openingPos + 1
		} else {
			return Value{}, 0, p.errorf(p.currentIndent, "String contains no closing quote")
		}
	}

	lines = dedentLines(lines)

	var keptLines []string
	var keptLineNumbers []int
	for i, l := range lines {
		if l == "" {
			continue
		}
		keptLines = append(keptLines, l)
		keptLineNumbers = append(keptLineNumbers, lineNumbers[i])
	}
	if len(keptLines) == 0 {
		return String(""), endPos, nil
	}

	for i, l := range keptLines {
		unescaped, _, err := p.unescapeLine(l, keptLineNumbers[i], quote, 0)
		if err != nil {
			return Value{}, 0, err
		}
		keptLines[i] = unescaped
	}

	return String(strings.Join(keptLines, " ")), endPos, nil
}

// unescapeLine implements unescape_line: processes backslash escapes in
// line starting at startPos, stopping at the unescaped quote or end of
// line. It returns the decoded text and the position where conversion
// stopped.
func (p *Parser) unescapeLine(line string, lineNumber int, quote byte, startPos int) (string, int, error) {
	var b strings.Builder
	n := len(line)
	pos := startPos

	for pos < n {
		c := line[pos]
		if c == quote {
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			pos++
			continue
		}

		escPos := pos + 1
		if escPos >= n {
			// Trailing backslash at end of line: emitted literally.
			b.WriteByte('\\')
			pos = escPos
			break
		}

		esc := line[escPos]
		switch esc {
		case '\'', '"', '?', '\\':
			b.WriteByte(esc)
			pos = escPos + 1
		case 'a':
			b.WriteByte(0x07)
			pos = escPos + 1
		case 'b':
			b.WriteByte(0x08)
			pos = escPos + 1
		case 'f':
			b.WriteByte(0x0c)
			pos = escPos + 1
		case 'n':
			b.WriteByte(0x0a)
			pos = escPos + 1
		case 'r':
			b.WriteByte(0x0d)
			pos = escPos + 1
		case 't':
			b.WriteByte(0x09)
			pos = escPos + 1
		case 'v':
			b.WriteByte(0x0b)
			pos = escPos + 1
		case 'o':
			v, end, err := p.readOctalEscape(line, escPos, lineNumber)
			if err != nil {
				return "", 0, err
			}
			b.WriteRune(v)
			pos = end + 1
		case 'x':
			v, end, err := p.readHexEscape(line, escPos, 2, lineNumber)
			if err != nil {
				return "", 0, err
			}
			b.WriteRune(v)
			pos = end + 1
		case 'u':
			v, end, err := p.readHexEscape(line, escPos, 4, lineNumber)
			if err != nil {
				return "", 0, err
			}
			b.WriteRune(v)
			pos = end + 1
		case 'U':
			v, end, err := p.readHexEscape(line, escPos, 8, lineNumber)
			if err != nil {
				return "", 0, err
			}
			b.WriteRune(v)
			pos = end + 1
		default:
			// Not a recognized escape: emit backslash and char verbatim.
			b.WriteByte('\\')
			b.WriteByte(esc)
			pos = escPos + 1
		}
	}
	return b.String(), pos, nil
}

// readOctalEscape reads \o followed by 1-3 octal digits starting right
// after oPos (the index of 'o' itself).
func (p *Parser) readOctalEscape(line string, oPos, lineNumber int) (rune, int, error) {
	n := len(line)
	var v rune
	end := oPos
	for i := 0; i < 3; i++ {
		end++
		if end >= n {
			if i == 0 {
				return 0, 0, p.errorAt(lineNumber, end, "Incomplete octal value")
			}
			end--
			break
		}
		c := line[end]
		if c < '0' || c > '7' {
			if i == 0 {
				return 0, 0, p.errorAt(lineNumber, end, "Bad octal value")
			}
			end--
			break
		}
		v = v<<3 + rune(c-'0')
	}
	return v, end, nil
}

// readHexEscape reads exactly count hex digits starting right after
// xPos (the index of the escape letter 'x'/'u'/'U').
func (p *Parser) readHexEscape(line string, xPos, count, lineNumber int) (rune, int, error) {
	n := len(line)
	var v rune
	end := xPos
	for i := 0; i < count; i++ {
		end++
		if end >= n {
			return 0, 0, p.errorAt(lineNumber, end, "Incomplete hexadecimal value")
		}
		c := line[end]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, 0, p.errorAt(lineNumber, end, "Bad hexadecimal value")
		}
		v = v<<4 + d
	}
	return v, end, nil
}

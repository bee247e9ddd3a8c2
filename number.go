package thicket

import (
	"math"
	"strconv"
)

// parseNumber implements parse_number. startPos is the position of the
// first digit (after any leading sign already consumed by the caller);
// sign is -1 or +1. It returns the parsed Value (Int, Uint, or Float)
// and the position right after the last character consumed.
func (p *Parser) parseNumber(startPos int, sign int) (Value, int, error) {
	line := p.currentLine
	pos := startPos

	radix := 10
	if line[pos] == '0' && pos+1 < len(line) {
		switch line[pos+1] {
		case 'b', 'B':
			radix = 2
			pos += 2
		case 'o', 'O':
			radix = 8
			pos += 2
		case 'x', 'X':
			radix = 16
			pos += 2
		}
	}

	digitsStart := pos
	var mag uint64
	overflow := false
	lastWasSeparator := false
	sawDigit := false

	for pos < len(line) {
		c := line[pos]
		if c == '\'' || c == '_' {
			if !sawDigit || lastWasSeparator {
				return Value{}, 0, p.errorf(pos, "Bad number")
			}
			lastWasSeparator = true
			pos++
			continue
		}
		d, ok := digitValue(c, radix)
		if !ok {
			break
		}
		if !overflow {
			if mag > (math.MaxUint64-uint64(d))/uint64(radix) {
				overflow = true
			} else {
				mag = mag*uint64(radix) + uint64(d)
			}
		}
		sawDigit = true
		lastWasSeparator = false
		pos++
	}

	if lastWasSeparator {
		return Value{}, 0, p.errorf(pos, "Bad number")
	}
	if !sawDigit {
		return Value{}, 0, p.errorf(pos, "Bad number")
	}

	isFloat := false
	if pos < len(line) && line[pos] == '.' {
		if radix != 10 {
			return Value{}, 0, p.errorf(pos, "Only decimal representation is supported for floating point numbers")
		}
		isFloat = true
		pos++
		for pos < len(line) && isDigit(line[pos]) {
			pos++
		}
	}
	if pos < len(line) && (line[pos] == 'e' || line[pos] == 'E') {
		if radix != 10 {
			return Value{}, 0, p.errorf(pos, "Only decimal representation is supported for floating point numbers")
		}
		isFloat = true
		expPos := pos
		pos++
		if pos < len(line) && (line[pos] == '+' || line[pos] == '-') {
			pos++
		}
		expDigits := pos
		for pos < len(line) && isDigit(line[pos]) {
			pos++
		}
		if pos == expDigits {
			pos = expPos
			isFloat = false
		}
	}

	if !isSpaceOrEOLAt(line, pos) && line[pos] != '#' && line[pos] != ':' {
		return Value{}, 0, p.errorf(pos, "Bad number")
	}

	if isFloat {
		text := stripSeparators(line[digitsStart:pos])
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				return Value{}, 0, p.errorf(pos, "Floating point overflow")
			}
			return Value{}, 0, p.errorf(pos, "Bad number")
		}
		if sign < 0 && f != 0 {
			f = -f
		}
		return Float(f), pos, nil
	}

	if overflow {
		return Value{}, 0, p.errorf(pos, "Numeric overflow")
	}
	if mag <= uint64(math.MaxInt64) {
		v := int64(mag)
		if sign < 0 {
			v = -v
		}
		return Int(v), pos, nil
	}
	if sign > 0 {
		return Uint(mag), pos, nil
	}
	return Value{}, 0, p.errorf(pos, "Integer overflow")
}

func digitValue(c byte, radix int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

func stripSeparators(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' || s[i] == '_' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

package thicket

// valueParserFunc adapts parseValue to BlockParserFunc for use as the
// nested-block callback when parsing list items and map values that are
// not conversion-specified blocks.
func valueParserFunc(p *Parser) (Value, error) {
	return p.parseValue(nil)
}

// parseList implements parse_list. The current line has '-' at
// start_pos; every item in the list must share that column.
func (p *Parser) parseList() (Value, error) {
	itemIndent := p.getStartPosition()
	var items []Value

	for {
		nextPos := itemIndent + 1
		if !isSpaceOrEOLAt(p.currentLine, nextPos) {
			return Value{}, p.errorf(itemIndent, "Bad list item")
		}

		var item Value
		var err error
		if p.commentOrEndOfLine(nextPos) {
			item, err = p.parseNestedBlockFromNextLine(valueParserFunc)
		} else {
			nextPos++
			item, err = p.parseNestedBlock(nextPos, valueParserFunc)
		}
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)

		err = p.readBlockLine()
		if err == errEndOfBlock {
			break
		}
		if err != nil {
			return Value{}, err
		}
		if p.currentIndent != itemIndent {
			return Value{}, p.errorf(p.currentIndent, "Bad indentation of list item")
		}
	}

	return List(items), nil
}

// parseMap implements parse_map. firstKey has already been parsed;
// valuePos points past its key-value separator.
func (p *Parser) parseMap(firstKey Value, valuePos int) (Value, error) {
	result := NewMap()
	key := firstKey
	keyIndent := p.getStartPosition()

	for {
		var value Value
		var err error
		if p.commentOrEndOfLine(valuePos) {
			value, err = p.parseNestedBlockFromNextLine(valueParserFunc)
		} else {
			value, err = p.parseNestedBlock(valuePos, valueParserFunc)
		}
		if err != nil {
			return Value{}, err
		}
		result.Set(key, value)

		err = p.readBlockLine()
		if err == errEndOfBlock {
			break
		}
		if err != nil {
			return Value{}, err
		}
		if p.currentIndent != keyIndent {
			return Value{}, p.errorf(p.currentIndent, "Bad indentation of map key")
		}

		key, err = p.parseValue(&valuePos)
		if err != nil {
			return Value{}, err
		}
	}

	return MapValue(result), nil
}

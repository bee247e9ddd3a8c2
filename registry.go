package thicket

import "fmt"

// registerBuiltinParsers installs the conversion-specifier handlers every
// Parser starts with. isodate, timestamp, and json are intentionally
// unimplemented; hosts needing them register their own handler via
// WithCustomParser or SetCustomParser.
func registerBuiltinParsers(p *Parser) {
	p.customParsers["raw"] = (*Parser).parseRaw
	p.customParsers["literal"] = (*Parser).parseLiteral
	p.customParsers["folded"] = (*Parser).parseFolded
	p.customParsers["isodate"] = notImplementedParser("isodate")
	p.customParsers["timestamp"] = notImplementedParser("timestamp")
	p.customParsers["json"] = notImplementedParser("json")
}

func notImplementedParser(name string) BlockParserFunc {
	return func(p *Parser) (Value, error) {
		// Still has to consume the block so the line reader stays in sync.
		if _, err := p.readBlock(); err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%s: %w", name, errNotImplemented)
	}
}

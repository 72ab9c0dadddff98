package argset

import (
	"bytes"
	"fmt"
)

// Help layout constants. The column widths are part of the output
// contract; hosts that diff help text rely on them.
const (
	optionNameWidth     = 20
	positionalNameWidth = 22
	noShortPlaceholder  = "    " // same width as "-x, "
)

// Help renders the two-section argument listing: flags and options
// first, then positional arguments, each in registration order. Pure
// function of the registered definitions.
func (p *Parser) Help() string {
	var out bytes.Buffer

	fmt.Fprintf(&out, "Usage: %s [OPTIONS] [ARGUMENTS]\n", p.name)

	out.WriteString("\nOptions:\n")
	for _, def := range p.defs {
		if def.kind == kindPositional {
			continue
		}
		short := noShortPlaceholder
		if def.short != 0 {
			short = fmt.Sprintf("-%c, ", def.short)
		}
		fmt.Fprintf(&out, "  %s%-*s %s\n", short, optionNameWidth, def.long, def.help)
	}

	out.WriteString("\nArguments:\n")
	for _, def := range p.defs {
		if def.kind != kindPositional {
			continue
		}
		fmt.Fprintf(&out, "  %-*s %s\n", positionalNameWidth, def.long, def.help)
	}

	return out.String()
}

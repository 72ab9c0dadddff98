// Package argset is a small declarative command-line argument parser.
//
// Callers register flags (boolean presence), options (exactly one value
// token) and positional arguments on a Parser, then hand it the raw
// process argument vector. The result is a ParsedArgs with typed access
// to option values, or a *ParseError describing the first failure.
package argset

type kind int

const (
	kindFlag kind = iota
	kindOption
	kindPositional
)

// definition is a single registered argument. Owned by the Parser;
// mutated only through the Builder returned by the Add* call that
// created it.
type definition struct {
	kind     kind
	short    rune // 0 means no short name
	long     string
	help     string
	required bool
}

// Parser holds the ordered argument definitions and runs the parse.
//
// The definitions must not be mutated (via Builder calls) concurrently
// with an in-flight Parse; concurrent Parse calls over a settled Parser
// are safe.
type Parser struct {
	name   string
	defs   []*definition
	defErr error
}

// New creates an empty Parser. The name appears in the usage line of
// generated help output.
func New(name string) *Parser {
	return &Parser{name: name}
}

// Builder configures exactly the definition it was created for.
// Holding the definition directly means reordered or interleaved
// builder calls can never touch a different argument.
type Builder struct {
	parser *Parser
	def    *definition
}

func (p *Parser) add(long string, k kind) *Builder {
	for _, def := range p.defs {
		if def.long == long {
			p.recordDefErr(duplicateDefinition(long))
			break
		}
	}
	def := &definition{kind: k, long: long}
	p.defs = append(p.defs, def)
	return &Builder{parser: p, def: def}
}

// AddFlag registers a boolean-presence argument (e.g. --verbose, -v).
func (p *Parser) AddFlag(long string) *Builder {
	return p.add(long, kindFlag)
}

// AddOption registers an argument that consumes the following token as
// its value (e.g. --output <file>).
func (p *Parser) AddOption(long string) *Builder {
	return p.add(long, kindOption)
}

// AddPositional registers an argument identified by position rather
// than a name token. The long name is used for help output and
// required-argument diagnostics only.
func (p *Parser) AddPositional(long string) *Builder {
	return p.add(long, kindPositional)
}

// Short sets the single-character short name (e.g. 'v' for -v).
// Short names are only meaningful on flags and options. The zero rune
// is the "no short name" sentinel and is ignored.
func (b *Builder) Short(r rune) *Builder {
	if r == 0 {
		return b
	}
	if b.def.kind != kindPositional {
		if existing := b.parser.findShort(r); existing != nil && existing != b.def {
			b.parser.recordDefErr(duplicateDefinition(string(r)))
		}
	}
	b.def.short = r
	return b
}

// Help sets the help text shown in generated help output.
func (b *Builder) Help(text string) *Builder {
	b.def.help = text
	return b
}

// Required marks the argument as mandatory; Parse fails if it is absent.
func (b *Builder) Required() *Builder {
	b.def.required = true
	return b
}

// recordDefErr keeps the first registration error; Parse reports it
// before looking at any input.
func (p *Parser) recordDefErr(err error) {
	if p.defErr == nil {
		p.defErr = err
	}
}

// findLong resolves a long name among flag and option definitions.
// Positionals have no name-token lookup path at all, so a prefixed
// token can never match one.
func (p *Parser) findLong(long string) *definition {
	for _, def := range p.defs {
		if def.kind == kindPositional {
			continue
		}
		if def.long == long {
			return def
		}
	}
	return nil
}

// findShort resolves a short-cluster character, skipping positionals
// for the same reason as findLong. Definitions without a short name
// carry the zero rune and never match, whatever the input holds.
func (p *Parser) findShort(r rune) *definition {
	for _, def := range p.defs {
		if def.kind == kindPositional || def.short == 0 {
			continue
		}
		if def.short == r {
			return def
		}
	}
	return nil
}

// longNames returns the long names of all flag and option definitions,
// in registration order. Used for unknown-argument suggestions.
func (p *Parser) longNames() []string {
	names := make([]string, 0, len(p.defs))
	for _, def := range p.defs {
		if def.kind == kindPositional {
			continue
		}
		names = append(names, def.long)
	}
	return names
}

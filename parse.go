package argset

import "strings"

// Parse consumes the full process argument vector and returns the
// parsed result, or the first failure. The first token is the program
// name by convention and is always discarded.
//
// Every failure aborts the whole parse; there are no partial results.
func (p *Parser) Parse(argv []string) (*ParsedArgs, error) {
	if p.defErr != nil {
		return nil, p.defErr
	}

	results := &ParsedArgs{
		flags:   make(map[string]struct{}),
		options: make(map[string]string),
	}

	if len(argv) > 0 {
		argv = argv[1:]
	}

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		// Help interception runs before prefix classification and wins
		// over registered names.
		if tok == "--help" || tok == "-h" {
			return nil, helpRequested()
		}

		if rest, ok := strings.CutPrefix(tok, "--"); ok {
			consumed, err := p.parseLong(rest, argv[i+1:], results)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		if rest, ok := strings.CutPrefix(tok, "-"); ok && rest != "" {
			consumed, err := p.parseCluster(rest, argv[i+1:], results)
			if err != nil {
				return nil, err
			}
			i += consumed
			continue
		}

		// Bare tokens (including a lone "-") are positional. Positional
		// definitions take no part in dispatch; they only drive help
		// output and required-argument validation.
		results.positional = append(results.positional, tok)
	}

	if err := p.validate(results); err != nil {
		return nil, err
	}
	return results, nil
}

// parseLong handles a --name token. Returns how many following tokens
// were consumed as option values (0 or 1).
func (p *Parser) parseLong(name string, rest []string, results *ParsedArgs) (int, error) {
	def := p.findLong(name)
	if def == nil {
		return 0, unknownArgument(name, suggestNames(name, p.longNames()))
	}

	switch def.kind {
	case kindFlag:
		results.flags[def.long] = struct{}{}
		return 0, nil
	default: // kindOption; positionals are unreachable through findLong
		return p.takeValue(def, rest, results)
	}
}

// parseCluster handles a single-dash token as grouped short flags,
// resolving each character left to right. An option is only legal as
// the last character; its value is the next token.
func (p *Parser) parseCluster(cluster string, rest []string, results *ParsedArgs) (int, error) {
	runes := []rune(cluster)
	for i, r := range runes {
		def := p.findShort(r)
		if def == nil {
			return 0, unknownArgument(string(r), nil)
		}

		switch def.kind {
		case kindFlag:
			results.flags[def.long] = struct{}{}
		default:
			if i != len(runes)-1 {
				return 0, optionInGroup(def.long)
			}
			return p.takeValue(def, rest, results)
		}
	}
	return 0, nil
}

// takeValue consumes the next token as the option's value. Repeated
// occurrences overwrite: last write wins.
func (p *Parser) takeValue(def *definition, rest []string, results *ParsedArgs) (int, error) {
	if len(rest) == 0 {
		return 0, missingValue(def.long)
	}
	results.options[def.long] = rest[0]
	return 1, nil
}

// validate checks required definitions in registration order and
// reports the first unsatisfied one. Positional definitions are
// validated by slot: the i-th registered positional corresponds to the
// i-th captured positional token.
func (p *Parser) validate(results *ParsedArgs) error {
	slot := 0
	for _, def := range p.defs {
		switch def.kind {
		case kindFlag:
			if def.required {
				if _, ok := results.flags[def.long]; !ok {
					return missingRequired(def.long)
				}
			}
		case kindOption:
			if def.required {
				if _, ok := results.options[def.long]; !ok {
					return missingRequired(def.long)
				}
			}
		case kindPositional:
			if def.required && slot >= len(results.positional) {
				return missingRequired(def.long)
			}
			slot++
		}
	}
	return nil
}

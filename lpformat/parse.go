// Package lpformat: the statement parser.
package lpformat

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlopt/lp"
)

// ObjectiveName is the solution-variable name the parser assigns to the
// objective row. It is deliberately outside the usual modeling namespace.
const ObjectiveName = "_obj"

// anonPrefix names anonymous constraint rows R_1, R_2, … in textual order.
const anonPrefix = "R_"

// Parse consumes LP text (one physical line per element, no trailing
// newlines) and produces the equivalent Model.
//
// Contracts:
//   - Exactly one max:/min: statement must be present.
//   - Statements are ';'-terminated; the terminator may be omitted at end
//     of line. '//' comments run to end of line.
//
// Errors: *ParseError with 1-based line/column, the expectation, and a Kind
// (KindUnknownDirective for undefined statement keywords).
//
// Complexity: O(total input length).
func Parse(lines []string) (*lp.Model, error) {
	p := &parser{model: lp.NewModel("", lp.Min)}

	var lineNo int
	for i, raw := range lines {
		lineNo = i + 1
		text := raw
		if cut := strings.Index(text, "//"); cut >= 0 {
			text = text[:cut]
		}

		// A physical line may carry several ';'-terminated statements.
		start := 0
		for start <= len(text) {
			end := strings.IndexByte(text[start:], ';')
			var stmt string
			if end < 0 {
				stmt = text[start:]
				end = len(text) - start
			} else {
				stmt = text[start : start+end]
			}
			if strings.TrimSpace(stmt) != "" {
				s := &scanner{src: stmt, line: lineNo, base: start + 1}
				if err := p.statement(s); err != nil {
					return nil, err
				}
			}
			start += end + 1
		}
	}

	if !p.sawObjective {
		return nil, errAt(lineNo, 1, KindMissingObjective, "a max: or min: statement")
	}

	return p.model, nil
}

// parser accumulates statements into the model under construction.
type parser struct {
	model        *lp.Model
	sawObjective bool
	anon         int
}

// statement dispatches one ';'-delimited statement.
func (p *parser) statement(s *scanner) error {
	s.skipSpace()
	startCol := s.col()
	mark := s.pos

	name := s.ident()
	s.skipSpace()

	switch {
	case name != "" && s.peek() == ':':
		s.pos++ // consume ':'
		switch strings.ToLower(name) {
		case "max":
			return p.objective(s, lp.Max, startCol)
		case "min":
			return p.objective(s, lp.Min, startCol)
		default:
			return p.row(s, name)
		}

	case name != "" && isIdentStart(s.peek()):
		// Two bare identifiers in a row: a declaration keyword or an
		// unknown directive.
		switch strings.ToLower(name) {
		case "int":
			return p.declaration(s, p.model.Ints)
		case "bin":
			return p.declaration(s, p.model.Binaries)
		case "free":
			return p.declaration(s, p.model.Unrestricted)
		default:
			return errAt(s.line, startCol, KindUnknownDirective, "int, bin, free, max:, min: or a constraint")
		}

	default:
		// Expression statement (anonymous row or raw bound); rewind so the
		// identifier is parsed as its first term.
		s.pos = mark

		return p.row(s, "")
	}
}

// objective records the single max:/min: statement.
func (p *parser) objective(s *scanner, dir lp.OpType, col int) error {
	if p.sawObjective {
		return errAt(s.line, col, KindDuplicateObjective, "a single objective statement")
	}
	combo, _, err := s.linComb()
	if err != nil {
		return err
	}
	if err = s.expectEnd(); err != nil {
		return err
	}
	if len(combo) == 0 {
		return errAt(s.line, s.col(), KindSyntax, "at least one objective term")
	}

	p.sawObjective = true
	p.model.OpType = dir
	p.model.Optimize = ObjectiveName
	p.model.SetVariable(ObjectiveName, combo)

	return nil
}

// row parses "combo op rhs" and records it as a named row, an anonymous
// row, or — for a bare unit-coefficient single variable — a raw bound.
func (p *parser) row(s *scanner, name string) error {
	lhs, lhsConst, err := s.linComb()
	if err != nil {
		return err
	}

	rel, err := s.relation()
	if err != nil {
		return err
	}

	rhs, rhsConst, err := s.linComb()
	if err != nil {
		return err
	}
	if err = s.expectEnd(); err != nil {
		return err
	}

	// Move right-hand variables left and constants right.
	for v, c := range rhs {
		lhs[v] -= c
		if lhs[v] == 0 {
			delete(lhs, v)
		}
	}
	bound := rhsConst - lhsConst

	if len(lhs) == 0 {
		return errAt(s.line, s.col(), KindSyntax, "at least one variable on a constraint row")
	}

	// Raw bound: anonymous single-variable row with coefficient 1.
	if name == "" && len(lhs) == 1 {
		for v, c := range lhs {
			if c == 1 {
				p.model.SetConstraint(v, constraintFor(rel, bound))

				return nil
			}
		}
	}

	if name == "" {
		p.anon++
		name = anonPrefix + strconv.Itoa(p.anon)
	}
	p.model.SetVariable(name, lhs)
	p.model.SetConstraint(name, constraintFor(rel, bound))

	return nil
}

// declaration parses the identifier list of an int/bin/free statement.
func (p *parser) declaration(s *scanner, flags map[string]bool) error {
	var seen int
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		if s.peek() == ',' {
			s.pos++

			continue
		}
		v := s.ident()
		if v == "" {
			return errAt(s.line, s.col(), KindSyntax, "a variable name")
		}
		flags[v] = true
		seen++
	}
	if seen == 0 {
		return errAt(s.line, s.col(), KindSyntax, "at least one variable name")
	}

	return nil
}

// constraintFor maps a relational operator onto a bound record.
func constraintFor(rel string, bound float64) lp.Constraint {
	switch rel {
	case "<=":
		return lp.Constraint{Max: lp.Float(bound)}
	case ">=":
		return lp.Constraint{Min: lp.Float(bound)}
	default:
		return lp.Constraint{Equal: lp.Float(bound)}
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Scanner
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// scanner walks one statement, tracking the 1-based source column.
type scanner struct {
	src  string
	pos  int
	line int
	base int
}

func (s *scanner) col() int  { return s.base + s.pos }
func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t' || s.src[s.pos] == '\r') {
		s.pos++
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ident consumes an identifier, or returns "" without advancing.
func (s *scanner) ident() string {
	if s.eof() || !isIdentStart(s.peek()) {
		return ""
	}
	start := s.pos
	for !s.eof() && isIdentByte(s.src[s.pos]) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// number consumes a numeric literal. Reports (0, false, nil) when the input
// does not start with one.
func (s *scanner) number() (float64, bool, error) {
	if s.eof() || (!isDigit(s.peek()) && s.peek() != '.') {
		return 0, false, nil
	}
	start := s.pos
	for !s.eof() && (isDigit(s.peek()) || s.peek() == '.') {
		s.pos++
	}
	if !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		mark := s.pos
		s.pos++
		if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		if s.eof() || !isDigit(s.peek()) {
			s.pos = mark // "3e" was "3" followed by identifier "e"
		} else {
			for !s.eof() && isDigit(s.peek()) {
				s.pos++
			}
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, false, errAt(s.line, s.base+start, KindBadNumber, "a numeric literal")
	}

	return v, true, nil
}

// linComb parses a linear combination: signed terms of the shape
// [coefficient]['*']variable or bare constants. Stops before a relational
// operator or end of statement.
func (s *scanner) linComb() (map[string]float64, float64, error) {
	var (
		combo    = make(map[string]float64)
		konst    float64
		sawTerm  bool
		sign     float64
		explicit bool
	)
	for {
		s.skipSpace()
		if s.eof() || s.peek() == '<' || s.peek() == '>' || s.peek() == '=' {
			break
		}

		// Signs bind to the following term and may repeat.
		sign, explicit = 1, false
		for !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			if s.peek() == '-' {
				sign = -sign
			}
			explicit = true
			s.pos++
			s.skipSpace()
		}
		if s.eof() {
			if explicit {
				return nil, 0, errAt(s.line, s.col(), KindSyntax, "a term after the sign")
			}

			break
		}

		coef, hasCoef, err := s.number()
		if err != nil {
			return nil, 0, err
		}
		s.skipSpace()
		if hasCoef && s.peek() == '*' {
			s.pos++
			s.skipSpace()
		}

		v := s.ident()
		switch {
		case v != "":
			if !hasCoef {
				coef = 1
			}
			combo[v] += sign * coef
			if combo[v] == 0 {
				delete(combo, v)
			}
		case hasCoef:
			konst += sign * coef
		default:
			return nil, 0, errAt(s.line, s.col(), KindSyntax, "a coefficient or variable")
		}
		sawTerm = true
	}
	if !sawTerm && len(combo) == 0 {
		// An empty side is legal only for the caller to reject with context.
		return combo, 0, nil
	}

	return combo, konst, nil
}

// relation consumes one of <=, >=, =, <, > ('<' and '>' alias '<=', '>=').
func (s *scanner) relation() (string, error) {
	s.skipSpace()
	switch s.peek() {
	case '<':
		s.pos++
		if s.peek() == '=' {
			s.pos++
		}

		return "<=", nil
	case '>':
		s.pos++
		if s.peek() == '=' {
			s.pos++
		}

		return ">=", nil
	case '=':
		s.pos++
		if s.peek() == '<' { // "=<" archaic alias
			s.pos++

			return "<=", nil
		}
		if s.peek() == '>' { // "=>"
			s.pos++

			return ">=", nil
		}

		return "=", nil
	default:
		return "", errAt(s.line, s.col(), KindSyntax, "a constraint operator (<=, >=, =)")
	}
}

// expectEnd demands nothing but whitespace remains.
func (s *scanner) expectEnd() error {
	s.skipSpace()
	if !s.eof() {
		return errAt(s.line, s.col(), KindSyntax, "end of statement")
	}

	return nil
}

package caseclass

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/circegen/circegen/cgerrors"
)

// DefaultMaxInputSize is the largest declaration accepted when no limit is configured.
const DefaultMaxInputSize int64 = 1 << 20

// ident matches one identifier: Unicode letters, marks, digits and
// connector punctuation such as underscore.
const ident = `[\p{L}\p{M}\p{N}\p{Pc}]+`

var (
	// declarationPattern matches the outer shape. Both groups are greedy and
	// do not balance brackets: fields run to the last closing paren.
	declarationPattern = regexp.MustCompile(
		`case\s+class\s+(?P<class>` + ident + `)\s*(?:\[(?P<types>.+)\])?\s*\((?P<fields>.+)\)`,
	)

	// typeParamPattern takes an optional variance marker and the leading
	// identifier; anything after it (bounds, context bounds) is ignored.
	typeParamPattern = regexp.MustCompile(`^[+-]?(?P<type>` + ident + `)`)

	// fieldPattern takes the identifier immediately before the first colon.
	fieldPattern = regexp.MustCompile(`^\s*(?P<field>` + ident + `):`)

	classIndex  = declarationPattern.SubexpIndex("class")
	typesIndex  = declarationPattern.SubexpIndex("types")
	fieldsIndex = declarationPattern.SubexpIndex("fields")
)

// Parser extracts Declarations from case class source text.
// A zero Parser is not ready for use; call New.
type Parser struct {
	// SplitMode selects how type parameter and field lists are split.
	SplitMode SplitMode
	// MaxInputSize is the largest input in bytes. 0 means DefaultMaxInputSize.
	MaxInputSize int64
	// Logger receives debug output for each parsing stage.
	Logger Logger
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{
		SplitMode:    SplitModeFlat,
		MaxInputSize: DefaultMaxInputSize,
		Logger:       NopLogger{},
	}
}

// Parse parses a case class declaration using a default Parser.
func Parse(input string) (*Declaration, error) {
	return New().Parse(input)
}

// ParseBytes parses a declaration held in a byte slice.
func (p *Parser) ParseBytes(data []byte) (*Declaration, error) {
	return p.Parse(string(data))
}

// ParseReader reads a whole declaration from r and parses it.
func (p *Parser) ParseReader(r io.Reader) (*Declaration, error) {
	limit := p.maxInputSize()
	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("caseclass: reading input: %w", err)
	}
	if n > limit {
		return nil, &cgerrors.ResourceLimitError{ResourceType: "input_size", Limit: limit, Actual: n}
	}
	return p.Parse(buf.String())
}

// Parse extracts a Declaration from input. Newlines are removed before
// matching, so a declaration may span several lines. The first stage that
// fails aborts the parse and its *cgerrors.ParseError is returned with a nil
// Declaration.
func (p *Parser) Parse(input string) (*Declaration, error) {
	log := p.logger()

	if limit := p.maxInputSize(); int64(len(input)) > limit {
		return nil, &cgerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Actual:       int64(len(input)),
		}
	}

	flat := flatten(input)

	m := declarationPattern.FindStringSubmatchIndex(flat)
	if m == nil {
		log.Debug("declaration shape not found", "input_length", len(flat))
		return nil, &cgerrors.ParseError{
			Kind:     cgerrors.KindDeclaration,
			Fragment: truncate(flat, 80),
			Message:  `expected "case class Name(...)"`,
		}
	}

	name := group(flat, m, classIndex)
	log = log.With("class", name)

	var typeParams []string
	if types, ok := optionalGroup(flat, m, typesIndex); ok {
		var err error
		typeParams, err = p.parseTypeParams(types)
		if err != nil {
			log.Debug("type parameter rejected", "error", err)
			return nil, err
		}
		log.Debug("extracted type parameters", "count", len(typeParams))
	}

	fields, err := p.parseFields(group(flat, m, fieldsIndex))
	if err != nil {
		log.Debug("field rejected", "error", err)
		return nil, err
	}
	log.Debug("extracted fields", "count", len(fields))

	return &Declaration{
		Name:       name,
		TypeParams: typeParams,
		Fields:     fields,
	}, nil
}

func (p *Parser) parseTypeParams(types string) ([]string, error) {
	pieces := p.SplitMode.split(types)
	params := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		m := typeParamPattern.FindStringSubmatch(strings.TrimLeft(piece, " \t\r\f\v"))
		if m == nil {
			return nil, &cgerrors.ParseError{
				Kind:     cgerrors.KindTypeParameter,
				Fragment: piece,
				Message:  "type parameter has no identifier",
			}
		}
		params = append(params, m[1])
	}
	return params, nil
}

func (p *Parser) parseFields(body string) ([]string, error) {
	pieces := p.SplitMode.split(body)
	fields := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		m := fieldPattern.FindStringSubmatch(piece)
		if m == nil {
			return nil, &cgerrors.ParseError{
				Kind:     cgerrors.KindField,
				Fragment: strings.TrimSpace(piece),
				Message:  `field has no "name:" prefix`,
			}
		}
		fields = append(fields, m[1])
	}
	return fields, nil
}

func (p *Parser) logger() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

func (p *Parser) maxInputSize() int64 {
	if p.MaxInputSize <= 0 {
		return DefaultMaxInputSize
	}
	return p.MaxInputSize
}

// flatten removes line breaks so the patterns see a single line.
func flatten(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

func group(s string, m []int, idx int) string {
	v, _ := optionalGroup(s, m, idx)
	return v
}

func optionalGroup(s string, m []int, idx int) (string, bool) {
	start, end := m[2*idx], m[2*idx+1]
	if start < 0 {
		return "", false
	}
	return s[start:end], true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

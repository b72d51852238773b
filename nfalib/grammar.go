package nfalib

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Syntax grammar for the simplified regex language, used as an upfront
// validation pass so operator-placement mistakes ("a|", "*a", "(a") are
// rejected before conversion:
//
//	pattern  = sequence ( "|" sequence )*
//	sequence = term+
//	term     = atom ( "*" | "+" | "?" )*
//	atom     = CHAR | "(" pattern ")"

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "QMark", Pattern: `\?`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Char", Pattern: `[^()*+?|]`},
})

type patternAST struct {
	Alts []*sequenceAST `parser:"@@ ( Pipe @@ )*"`
}

type sequenceAST struct {
	Terms []*termAST `parser:"@@+"`
}

type termAST struct {
	Atom   *atomAST `parser:"@@"`
	Quants []string `parser:"( @Star | @Plus | @QMark )*"`
}

type atomAST struct {
	Char  *string     `parser:"@Char"`
	Group *patternAST `parser:"| LParen @@ RParen"`
}

var patternParser = participle.MustBuild[patternAST](participle.Lexer(patternLexer))

// checkSyntax runs the validation grammar over the raw pattern; any parse
// failure is reported as a MalformedExpressionError with the offending
// offset.
func checkSyntax(pattern string) error {
	if _, err := patternParser.ParseString("pattern", pattern); err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return &MalformedExpressionError{
				Pos: perr.Position().Offset,
				Msg: perr.Message(),
			}
		}
		return &MalformedExpressionError{Msg: err.Error()}
	}
	return nil
}

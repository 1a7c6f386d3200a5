package dimacs

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// record is one non-blank line: a leading keyword and its arguments.
type record struct {
	Key  string `parser:"@(Word | Int)"`
	Args []*arg `parser:"@@*"`
}

type arg struct {
	Int  *int    `parser:"  @Int"`
	Word *string `parser:"| @Word"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+\b`},
	{Name: "Word", Pattern: `\S+`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parseRecord = participle.MustBuild[record](
	participle.Lexer(lineLexer),
)

// ints returns the arguments as integers when every one of them is an Int.
func (r *record) ints() ([]int, bool) {
	out := make([]int, len(r.Args))
	for i, a := range r.Args {
		if a.Int == nil {
			return nil, false
		}
		out[i] = *a.Int
	}

	return out, true
}

package lambdaparser

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`\x.x`, `\x.x`},
		{`\f.f f`, `\f.f f`},
		{`\f.\x.f f x`, `\f.\x.f f x`},
		{`\f.\x.f (f x)`, `\f.\x.f (f x)`},
		{`\f.((f f) f)`, `\f.f f f`},
		{`(\x.x)(\x.x)`, `(\x.x) (\x.x)`},
		{`\x.(\y.y) x`, `\x.(\y.y) x`},
		{`\x.x (\y.y)`, `\x.x (\y.y)`},
		{"  \\ a .\n a  ", `\a.a`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Format(mustParse(t, tt.input)), "input: %s", tt.input)
	}
}

func TestTermStringUsesFormat(t *testing.T) {
	term := mustParse(t, `\f.\x.f(f x)`)
	assert.Equal(t, `\f.\x.f (f x)`, term.String())
	assert.Equal(t, "x", name("x").String())
}

func TestFormatRoundTripFixed(t *testing.T) {
	inputs := []string{
		`\x.x`,
		`\f.f f`,
		`\f.\x.f f x`,
		`\f.(\x.f (x x)) (\x.f (x x))`,
		`\m.\n.\f.\x.m f (n f x)`,
		`(\x.x) (\y.y) (\z.z)`,
		`(\x.x) ((\y.y) (\z.z))`,
		`\a.(\b.a) (\c.c a)`,
	}
	for _, src := range inputs {
		first := mustParse(t, src)
		second := mustParse(t, Format(first))
		assertTerm(t, first, second)
		assert.Equal(t, Format(first), Format(second), "formatting must be idempotent")
	}
}

// genTerm builds a random term whose every reference is bound and whose
// binders never shadow, i.e. one Parse accepts.
func genTerm(r *rand.Rand, depth int, bound []string) Term {
	pool := []string{"x", "y", "z", "f", "g", "n", "m", "acc", "Foo"}

	if len(bound) > 0 && (depth == 0 || r.IntN(4) == 0) {
		return name(bound[r.IntN(len(bound))])
	}

	var fresh []string
	for _, id := range pool {
		if !slices.Contains(bound, id) {
			fresh = append(fresh, id)
		}
	}

	if len(bound) == 0 || (len(fresh) > 0 && r.IntN(2) == 0) || depth == 0 {
		param := fresh[r.IntN(len(fresh))]
		return abs(param, genTerm(r, max(depth-1, 0), append(slices.Clip(bound), param)))
	}
	return &Application{
		Fn:  genTerm(r, depth-1, bound),
		Arg: genTerm(r, depth-1, bound),
	}
}

func TestFormatRoundTripGenerated(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		term := genTerm(r, 6, nil)
		text := Format(term)

		reparsed, err := ParseString(text)
		require.NoError(t, err, "case %d: %s", i, text)
		assertTerm(t, term, reparsed)

		diags, err := ValidateOrError(term)
		require.NoError(t, err, "case %d: %v", i, diags)
	}
}

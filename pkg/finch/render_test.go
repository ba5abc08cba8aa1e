package finch

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// The "name = value" / "name = { v1, v2 }" forms are parsed by tooling built
// on the solver, so the rendering is pinned with a golden file.
func TestDiagnosticRenderingGolden(t *testing.T) {
	c := MustCatalog("Red", "Green", "Blue")
	s := NewSolver(WithSeed(1))

	var lines []string

	wa := s.NewVariable("WA", c)
	lines = append(lines, wa.String())

	green, err := c.Bit("Green")
	require.NoError(t, err)
	require.True(t, wa.TryNarrow(green))
	lines = append(lines, wa.String())

	nt := s.NewVariable("NT", c)
	redBlue, err := c.Mask("Red", "Blue")
	require.NoError(t, err)
	require.True(t, nt.TryNarrow(redBlue))
	lines = append(lines, nt.String())

	v := s.NewVariable("V", c)
	red, err := c.Bit("Red")
	require.NoError(t, err)
	require.True(t, v.TryNarrow(red))
	require.False(t, v.TryNarrow(green))
	lines = append(lines, v.String())

	sol := Solution{bindings: []Binding{
		{Variable: "A", Value: "Red"},
		{Variable: "B", Value: "Green"},
	}}
	lines = append(lines, sol.String())

	g := goldie.New(t)
	g.Assert(t, "rendering", []byte(strings.Join(lines, "\n")+"\n"))
}

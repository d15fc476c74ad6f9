package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlace_Center(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	out := Place("ab", bg, 10, 3, Center)

	require.Equal(t, strings.Join([]string{
		"..........",
		"....ab....",
		"..........",
	}, "\n"), out)
}

func TestPlace_Bottom(t *testing.T) {
	bg := strings.Join([]string{"......", "......", "......", "......"}, "\n")

	out := Place("xy", bg, 6, 4, Bottom)

	require.Equal(t, "..xy..", strings.Split(out, "\n")[2], "one row of padding below the box")
}

func TestPlace_ShortBackground(t *testing.T) {
	out := Place("box", "", 7, 3, Center)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "  box", lines[1])
}

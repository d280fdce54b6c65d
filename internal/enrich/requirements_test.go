package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequirements(t *testing.T) {
	input := `
# web stack
Flask==2.3.0
requests>=2.28
numpy ~= 1.24
pandas   # dataframes

-e ./local-package
git+https://example.com/repo.git
https://example.com/pkg.tar.gz

flask
`

	libs, err := ParseRequirements(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"flask", "requests", "numpy", "pandas"}, libs)
}

func TestParseRequirements_Empty(t *testing.T) {
	libs, err := ParseRequirements(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, libs)

	libs, err = ParseRequirements(strings.NewReader("# only comments\n\n"))
	require.NoError(t, err)
	assert.Empty(t, libs)
}

func TestParseRequirements_BareSpecifiers(t *testing.T) {
	libs, err := ParseRequirements(strings.NewReader("pkg!=1.0\nother<2\n==1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg", "other"}, libs)
}

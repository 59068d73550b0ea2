package chaincli

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageDoc(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "parser.go", nil, parser.ParseComments|parser.PackageClauseOnly)
	require.NoError(t, err)

	require.NotEmpty(t, f.Comments)
	assert.True(t, strings.HasPrefix(f.Comments[0].Text(), "Copyright"), "parser.go should open with the licence header")
	require.NotNil(t, f.Doc)
	assert.True(t, strings.HasPrefix(f.Doc.Text(), "Package chaincli "))
}

package code

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"objc-codegen/internal/objc"
)

func TestFile_ImportPartition(t *testing.T) {
	t.Parallel()

	f := &File{Imports: []objc.Import{
		{File: "A.h", IsPublic: true},
		{File: "B.h"},
		{File: "C.h", IsPublic: true},
	}}

	assert.Equal(t, []objc.Import{{File: "A.h", IsPublic: true}, {File: "C.h", IsPublic: true}}, f.PublicImports())
	assert.Equal(t, []objc.Import{{File: "B.h"}}, f.PrivateImports())
}

/*
File    : pym/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-kapoor/pym/ast"
	"github.com/rhea-kapoor/pym/runtime"
)

func TestProgramRunSharesGlobalClosureAcrossStatements(t *testing.T) {
	ctx := runtime.NewBufferedContext()
	prog := New(ctx)

	_, err := prog.Run(&ast.Assignment{Var: "x", Rv: ast.NumberConst(10)})
	require.NoError(t, err)

	_, err = prog.Run(ast.PrintVariable("x"))
	require.NoError(t, err)

	assert.Equal(t, "10\n", ctx.String())
}

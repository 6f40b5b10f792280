package eliminate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopGroup(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"no loop", nil, ""},
		{"single symbol simplifies", []string{"5"}, "5*"},
		{"concatenation", []string{"01*0"}, "(01*0)*"},
		{"merged group keeps brackets", []string{"(1|3)"}, "((1|3))*"},
		{"several labels", []string{"1", "2"}, "(1|2)*"},
		{"multi-byte symbol simplifies", []string{"β"}, "β*"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loopGroup(tc.labels))
		})
	}
}

func TestClosure(t *testing.T) {
	assert.Equal(t, "", closure(""))
	assert.Equal(t, "0*", closure("0"))
	assert.Equal(t, "γ*", closure("γ"))
	assert.Equal(t, "(0|1)*", closure("(0|1)"))
	assert.Equal(t, "(01)*", closure("01"))
	assert.Equal(t, "((0)(1))*", closure("(0)(1)"))
}

func TestAlternate(t *testing.T) {
	assert.Equal(t, "", alternate())
	assert.Equal(t, "", alternate("", ""))
	assert.Equal(t, "ab", alternate("", "ab"))
	assert.Equal(t, "(a|bc)", alternate("a", "", "bc"))
}

func TestIsBracketedUnit(t *testing.T) {
	assert.True(t, isBracketedUnit("(0|1)"))
	assert.True(t, isBracketedUnit("((0|1)|2(3)*4)"))
	assert.False(t, isBracketedUnit("(0)(1)"))
	assert.False(t, isBracketedUnit("0(1)"))
	assert.False(t, isBracketedUnit("("))
	assert.False(t, isBracketedUnit(""))
}

package visitology

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"testing"
)

type (
	node struct {
		kind string
	}

	Pear struct {
		kind struct{} `visit:"name=fruit.pear"`
		Ripe bool
	}

	Kind string

	Shape struct {
		Kind  Kind `visit:"discriminant"`
		Sides int
	}

	badDiscriminant struct {
		ID int `visit:"discriminant"`
	}

	badOption struct {
		ID int `visit:"kind=x"`
	}

	customTag struct {
		Name string `dispatch:"discriminant"`
	}
)

func (n *node) VisitKey() string {
	return n.kind
}

func TestRegistry_KeyOf(t *testing.T) {
	var nilShape *Shape
	var testCases = []struct {
		description string
		options     []Option
		element     interface{}
		expect      Key
		expectError bool
	}{
		{
			description: "type name",
			element:     &Apple{},
			expect:      Named("Apple"),
		},
		{
			description: "type name of struct value",
			element:     Apple{},
			expect:      Named("Apple"),
		},
		{
			description: "type name of pointer to pointer",
			element:     func() interface{} { apple := &Apple{}; return &apple }(),
			expect:      Named("Apple"),
		},
		{
			description: "builtin type name",
			element:     3,
			expect:      Named("int"),
		},
		{
			description: "unnamed type",
			element:     []int{1},
			expect:      Named("[]int"),
		},
		{
			description: "case formatted type name",
			options:     []Option{WithCaseFormat(text.CaseFormatLowerCamel)},
			element:     &Apple{},
			expect:      Named("apple"),
		},
		{
			description: "qualified type name",
			options:     []Option{WithQualifiedNames()},
			element:     &Apple{},
			expect:      Named("github.com/viant/visitology.Apple"),
		},
		{
			description: "element key",
			element:     &node{kind: "leaf"},
			expect:      Named("leaf"),
		},
		{
			description: "static tag name",
			element:     &Pear{},
			expect:      Named("fruit.pear"),
		},
		{
			description: "discriminant",
			element:     &Shape{Kind: "triangle", Sides: 3},
			expect:      Named("triangle"),
		},
		{
			description: "discriminant of struct value",
			element:     Shape{Kind: "square", Sides: 4},
			expect:      Named("square"),
		},
		{
			description: "custom tag name",
			options:     []Option{WithTagName("dispatch")},
			element:     &customTag{Name: "custom"},
			expect:      Named("custom"),
		},
		{
			description: "nil discriminant holder",
			element:     nilShape,
			expectError: true,
		},
		{
			description: "nil element",
			element:     nil,
			expectError: true,
		},
		{
			description: "non string discriminant",
			element:     &badDiscriminant{},
			expectError: true,
		},
		{
			description: "unsupported tag option",
			element:     &badOption{},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		registry := New[basket, string](testCase.options...)
		actual, err := registry.KeyOf(testCase.element)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_Visit_Discriminant(t *testing.T) {
	registry := New[basket, string]()
	handler := &fruitVisitor{}
	require.Nil(t, registry.Register(Named("triangle"), mustBind(t, handler, "VisitOrange")))
	require.Nil(t, registry.Register(Default, mustBind(t, handler, "VisitAny")))

	handle := &basket{}
	_, err := registry.Visit(&Shape{Kind: "triangle"}, handle, nil)
	require.Nil(t, err)
	_, err = registry.Visit(&Shape{Kind: "circle"}, handle, nil)
	require.Nil(t, err)
	var nilShape *Shape
	actual, err := registry.Visit(nilShape, handle, nil)
	require.Nil(t, err)
	assert.Equal(t, "default:*visitology.Shape", actual)
	assert.EqualValues(t, []string{"orange", "default", "default"}, handle.Trail)

	_, err = registry.Visit(&badDiscriminant{}, handle, nil)
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, ErrNoMatchingEntry))
}

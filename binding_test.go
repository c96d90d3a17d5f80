package visitology

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

type valueVisitor struct{}

func (v valueVisitor) Visit(element interface{}, handle *basket, aux interface{}) (string, error) {
	return "value", nil
}

type counterKind int

func (c counterKind) Visit(element interface{}, handle *basket, aux interface{}) (string, error) {
	return "kind", nil
}

func TestBind(t *testing.T) {
	var nilVisitor *fruitVisitor
	var testCases = []struct {
		description string
		handler     interface{}
		method      string
		expectErr   error
		expectCode  Code
		expect      string
	}{
		{
			description: "pointer receiver method",
			handler:     &fruitVisitor{},
			method:      "VisitOrange",
			expect:      "*visitology.fruitVisitor.VisitOrange",
		},
		{
			description: "struct value method",
			handler:     valueVisitor{},
			method:      "Visit",
			expect:      "visitology.valueVisitor.Visit",
		},
		{
			description: "nil handler",
			handler:     nil,
			method:      "Visit",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeMissingHandler,
		},
		{
			description: "nil pointer handler",
			handler:     nilVisitor,
			method:      "VisitOrange",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeMissingHandler,
		},
		{
			description: "primitive handler",
			handler:     counterKind(1),
			method:      "Visit",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeInvalidHandler,
		},
		{
			description: "string handler",
			handler:     "handler",
			method:      "Visit",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeInvalidHandler,
		},
		{
			description: "missing method",
			handler:     &fruitVisitor{},
			method:      "",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeMissingMethod,
		},
		{
			description: "unknown method",
			handler:     &fruitVisitor{},
			method:      "doesNotExist",
			expectErr:   ErrUnknownMethod,
			expectCode:  CodeUnknownMethod,
		},
		{
			description: "unexported method",
			handler:     &fruitVisitor{},
			method:      "visitAll",
			expectErr:   ErrUnknownMethod,
			expectCode:  CodeUnknownMethod,
		},
		{
			description: "incompatible signature",
			handler:     &fruitVisitor{},
			method:      "Peel",
			expectErr:   ErrInvalidBinding,
			expectCode:  CodeInvalidSignature,
		},
	}

	for _, testCase := range testCases {
		binding, err := Bind[basket, string](testCase.handler, testCase.method)
		if testCase.expectErr != nil {
			assert.Nil(t, binding, testCase.description)
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			assert.Equal(t, testCase.expectCode, CodeOf(err), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, binding.String(), testCase.description)
		assert.Equal(t, testCase.method, binding.Method(), testCase.description)
		assert.Equal(t, testCase.handler, binding.Handler(), testCase.description)
	}
}

func TestBind_ResultTypeMismatch(t *testing.T) {
	_, err := Bind[basket, int](&fruitVisitor{}, "VisitOrange")
	assert.True(t, errors.Is(err, ErrInvalidBinding))
	assert.Equal(t, CodeInvalidSignature, CodeOf(err))

	_, err = Bind[int, string](&fruitVisitor{}, "VisitOrange")
	assert.True(t, errors.Is(err, ErrInvalidBinding))
}

func TestBinding_Call(t *testing.T) {
	binding, err := Bind[basket, string](&fruitVisitor{prefix: "p-"}, "VisitApple")
	if !assert.Nil(t, err) {
		return
	}
	handle := &basket{}
	actual, err := binding.Call(&Apple{Weight: 7}, handle, nil)
	assert.Nil(t, err)
	assert.Equal(t, "p-apple:7", actual)
	assert.Equal(t, 1, handle.Apples)

	actual, err = binding.Call(nil, handle, nil)
	assert.Nil(t, err)
	assert.Equal(t, "p-apple:0", actual)

	_, err = binding.Call(&Orange{}, handle, nil)
	assert.True(t, errors.Is(err, ErrElementMismatch))
	assert.Equal(t, CodeElementMismatch, CodeOf(err))
	assert.Equal(t, 2, handle.Apples)
}

func TestError_Error(t *testing.T) {
	err := newError(ErrDuplicateEntry, CodeDuplicateEntry, "entry %s already exists", Named("Apple"))
	assert.Equal(t, `entry "Apple" already exists`, err.Error())
	assert.Equal(t, "no args", newError(ErrUnknownEntry, CodeUnknownEntry, "no args").Error())
	assert.Equal(t, Code(-1), CodeOf(errors.New("other")))
}

package pybat_test

import (
	"testing"

	"github.com/pybat/pybat"
)

type token struct {
	Kind string
}

type node struct {
	children []*node
}

var (
	tokenClass = pybat.Register[token](pybat.NewClass("Token", nil))
	nodeClass  = pybat.Register[node](pybat.NewClass("Node", nil))
)

func TestClassOfRegistered(t *testing.T) {
	if got := pybat.ClassOf(token{Kind: "op"}); got != tokenClass {
		t.Errorf("ClassOf(token) = %v", got)
	}
	if got := pybat.ClassName(node{}); got != "Node" {
		t.Errorf("ClassName(node) = %q", got)
	}
}

func TestClassOfUnregistered(t *testing.T) {
	if got := pybat.ClassOf(3.14); got != nil {
		t.Errorf("ClassOf(float64) = %v, want nil", got)
	}
	if got := pybat.ClassName("plain"); got != "" {
		t.Errorf("ClassName(string) = %q, want empty", got)
	}
	if got := pybat.ClassOf(nil); got != nil {
		t.Errorf("ClassOf(nil) = %v, want nil", got)
	}
}

type lexer struct{}

var lexerClass = pybat.NewClass("Lexer", nil)

func (lexer) PyClass() *pybat.Class { return lexerClass }

func TestClasserPreferred(t *testing.T) {
	if got := pybat.ClassOf(lexer{}); got != lexerClass {
		t.Errorf("ClassOf(lexer) = %v", got)
	}
	if !pybat.IsInstance(lexer{}, lexerClass) {
		t.Error("IsInstance over PyClass method failed")
	}
}

func TestIsInstanceSubclass(t *testing.T) {
	animal := pybat.NewClass("Animal", nil)
	dog := pybat.NewClass("Dog", animal)
	type pet struct{ name string }
	pybat.Register[pet](dog)
	p := pet{name: "rex"}
	if !pybat.IsInstance(p, dog) {
		t.Error("IsInstance against own class failed")
	}
	if !pybat.IsInstance(p, animal) {
		t.Error("IsInstance against base class failed")
	}
	if pybat.IsInstance(p, pybat.ExceptionClass) {
		t.Error("IsInstance against unrelated class succeeded")
	}
	if dog.Name() != "Dog" || dog.Base() != animal {
		t.Error("class accessors wrong")
	}
}

func TestExceptionHierarchy(t *testing.T) {
	errs := []pybat.PyException{
		&pybat.ValueError{Message: "v"},
		&pybat.IOError{Message: "i"},
		&pybat.KeyError{Message: "k"},
		&pybat.EOFError{Message: "e"},
		&pybat.NotImplementedError{Message: "n"},
	}
	for _, e := range errs {
		if !pybat.IsInstance(e, pybat.ExceptionClass) {
			t.Errorf("%s is not an Exception", pybat.ClassName(e))
		}
	}
	if !pybat.IsInstance(&pybat.ValueError{}, pybat.ValueErrorClass) {
		t.Error("ValueError is not a ValueError")
	}
	if pybat.IsInstance(&pybat.ValueError{}, pybat.IOErrorClass) {
		t.Error("ValueError matched IOError")
	}
}

func TestIsPyError(t *testing.T) {
	if !pybat.IsPyError(&pybat.KeyError{Message: "k"}) {
		t.Error("KeyError not recognized")
	}
	if pybat.IsPyError("just a string") {
		t.Error("plain value recognized as exception")
	}
}

func TestRaisePropagates(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*pybat.NotImplementedError)
		if !ok {
			t.Fatalf("recovered %v", r)
		}
		if e.Error() != "file.truncate" {
			t.Errorf("message = %q", e.Error())
		}
	}()
	pybat.Raise(&pybat.NotImplementedError{Message: "file.truncate"})
}

package blueprint

import (
	"errors"
	"testing"
)

type extractTarget struct {
	Name   string
	Count  int
	hidden string
}

func (e extractTarget) Greeting() string {
	return "hello " + e.Name
}

func (e *extractTarget) PtrGreeting() string {
	return "ptr " + e.Name
}

func (e extractTarget) Failing() (string, error) {
	return "", errors.New("getter failed")
}

func (e extractTarget) TooManyArgs(int) string { return "" }

func TestExtractAttribute_StructField(t *testing.T) {
	v, err := extractAttribute(extractTarget{Name: "a", Count: 2}, "Count")
	if err != nil {
		t.Fatalf("extractAttribute() error: %v", err)
	}
	if v != 2 {
		t.Errorf("extractAttribute() = %v, want 2", v)
	}
}

func TestExtractAttribute_PointerDeref(t *testing.T) {
	v, err := extractAttribute(&extractTarget{Name: "a"}, "Name")
	if err != nil {
		t.Fatalf("extractAttribute() error: %v", err)
	}
	if v != "a" {
		t.Errorf("extractAttribute() = %v, want a", v)
	}
}

func TestExtractAttribute_Method(t *testing.T) {
	v, err := extractAttribute(extractTarget{Name: "bob"}, "Greeting")
	if err != nil {
		t.Fatalf("extractAttribute() error: %v", err)
	}
	if v != "hello bob" {
		t.Errorf("extractAttribute() = %v, want hello bob", v)
	}
}

func TestExtractAttribute_PointerReceiverMethod(t *testing.T) {
	v, err := extractAttribute(&extractTarget{Name: "bob"}, "PtrGreeting")
	if err != nil {
		t.Fatalf("extractAttribute() error: %v", err)
	}
	if v != "ptr bob" {
		t.Errorf("extractAttribute() = %v, want ptr bob", v)
	}
}

func TestExtractAttribute_GetterError(t *testing.T) {
	_, err := extractAttribute(extractTarget{}, "Failing")
	if err == nil || err.Error() != "getter failed" {
		t.Errorf("extractAttribute() error = %v, want getter failed", err)
	}
}

func TestExtractAttribute_NonGetterMethod(t *testing.T) {
	_, err := extractAttribute(extractTarget{}, "TooManyArgs")
	if err == nil {
		t.Error("extractAttribute() expected error for method with arguments")
	}
}

func TestExtractAttribute_Map(t *testing.T) {
	obj := map[string]any{"title": "hi"}
	v, err := extractAttribute(obj, "title")
	if err != nil {
		t.Fatalf("extractAttribute() error: %v", err)
	}
	if v != "hi" {
		t.Errorf("extractAttribute() = %v, want hi", v)
	}
}

func TestExtractAttribute_Missing(t *testing.T) {
	_, err := extractAttribute(extractTarget{}, "Nope")
	if err == nil {
		t.Error("extractAttribute() expected error for missing attribute")
	}
}

func TestExtractAttribute_Unexported(t *testing.T) {
	_, err := extractAttribute(extractTarget{hidden: "x"}, "hidden")
	if err == nil {
		t.Error("extractAttribute() expected error for unexported field")
	}
}

func TestExtractAttribute_NilObject(t *testing.T) {
	if _, err := extractAttribute(nil, "Name"); err == nil {
		t.Error("extractAttribute() expected error for nil object")
	}

	var target *extractTarget
	if _, err := extractAttribute(target, "Name"); err == nil {
		t.Error("extractAttribute() expected error for nil pointer")
	}
}

package project

import "testing"

func TestCombineOrderMatters(t *testing.T) {
	a, b := Sum([]byte("door_01")), Sum([]byte("indent=4"))
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine must depend on argument order")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("Combine must be deterministic")
	}
	if Combine(a) == a {
		t.Fatal("Combine with no deps must still rehash")
	}
}

func TestDigestString(t *testing.T) {
	got := Sum(nil).String()
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Fatalf("Sum(nil) = %s, want %s", got, want)
	}
}

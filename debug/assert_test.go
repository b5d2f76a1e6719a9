package debug

import "testing"

func TestAssert(t *testing.T) {
	defer func() {
		r := recover()
		if !Enabled {
			if r != nil {
				t.Fatalf("expected no panic in release build, got %v", r)
			}
			return
		}
		err, ok := r.(Error)
		if !ok {
			t.Fatalf("expected debug.Error, got %#v", r)
		}
		if err.Error() != "assertion failed: broken" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}()

	Assert(true, "never")
	Assert(false, "broken")
	if Enabled {
		t.Fatal("Assert(false) returned")
	}
}

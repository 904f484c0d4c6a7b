package gravix2

import "testing"

func TestDebugAssertPanicsWhenStrict(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("debugAssert(strict=true, false) did not panic")
		}
	}()
	debugAssert(true, false, "boom")
}

func TestDebugAssertSilentWhenLax(t *testing.T) {
	defer func() {
		if recover() != nil {
			t.Fatal("debugAssert(strict=false, false) panicked")
		}
	}()
	debugAssert(false, false, "boom")
}

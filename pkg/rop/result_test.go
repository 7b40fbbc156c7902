package rop

import (
	"errors"
	"testing"
)

func TestSuccess_Observers(t *testing.T) {
	t.Parallel()
	r := Success[int, string](5)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got success=%v", r.IsSuccess())
	}
	if r.Value() != 5 {
		t.Fatalf("expected 5, got %d", r.Value())
	}
	if r.IsEmpty() {
		t.Fatalf("result built by Success must not be empty")
	}
}

func TestFailure_Observers(t *testing.T) {
	t.Parallel()
	r := Failure[int]("bad")

	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if r.Error() != "bad" {
		t.Fatalf("expected 'bad', got %q", r.Error())
	}
	if v, ok := r.Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got (%d, %v)", v, ok)
	}
	if r.ValueOr(-1) != -1 {
		t.Fatalf("expected default -1, got %d", r.ValueOr(-1))
	}
}

func TestZeroResult_IsEmpty(t *testing.T) {
	t.Parallel()
	var r Result[int, string]
	if !r.IsEmpty() || r.IsSuccess() {
		t.Fatalf("expected empty failure-like zero value, got empty=%v success=%v", r.IsEmpty(), r.IsSuccess())
	}
}

func TestValue_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	r := Failure[int]("bad")

	err := recoverError(func() { _ = r.Value() })
	if err == nil || !Error.Has(err) {
		t.Fatalf("expected rop error panic, got %v", err)
	}
}

func TestError_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	r := Success[int, string](1)

	err := recoverError(func() { _ = r.Error() })
	if err == nil || !Error.Has(err) {
		t.Fatalf("expected rop error panic, got %v", err)
	}
}

func TestBind_Success(t *testing.T) {
	t.Parallel()
	out := Bind(Success[int, string](5), func(x int) Result[int, string] {
		return Success[int, string](x * 2)
	})

	if !out.IsSuccess() || out.Value() != 10 {
		t.Fatalf("expected success with 10, got success=%v", out.IsSuccess())
	}
}

func TestBind_FailureSkipsStage(t *testing.T) {
	t.Parallel()
	called := false
	in := Failure[int]("bad")
	out := Bind(in, func(x int) Result[int, string] {
		called = true
		return Success[int, string](x * 2)
	})

	if called {
		t.Fatalf("stage must not be called on failure input")
	}
	if out.IsSuccess() || out.Error() != "bad" {
		t.Fatalf("expected failure 'bad', got success=%v", out.IsSuccess())
	}
	if out.Id() != in.Id() {
		t.Fatalf("re-tagged failure must keep id %s, got %s", in.Id(), out.Id())
	}
}

func TestBind_ChangesSuccessType(t *testing.T) {
	t.Parallel()
	out := Bind(Success[int, string](42), func(x int) Result[string, string] {
		return Success[string, string]("n=42")
	})

	if !out.IsSuccess() || out.Value() != "n=42" {
		t.Fatalf("expected 'n=42', got success=%v", out.IsSuccess())
	}
}

func TestBind_ShortCircuitsThreeStages(t *testing.T) {
	t.Parallel()
	calls := 0
	inc := func(x int) Result[int, string] {
		calls++
		return Success[int, string](x + 1)
	}
	stop := func(x int) Result[int, string] {
		calls++
		return Failure[int]("stop")
	}

	out := Success[int, string](1).Then(inc).Then(stop).Then(inc)

	if out.IsSuccess() || out.Error() != "stop" {
		t.Fatalf("expected failure 'stop', got success=%v", out.IsSuccess())
	}
	if calls != 2 {
		t.Fatalf("expected 2 stage calls, got %d", calls)
	}
}

func TestBind_ComposesLikeFunctions(t *testing.T) {
	t.Parallel()
	double := func(x int) Result[int, string] { return Success[int, string](x * 2) }
	addThree := func(x int) Result[int, string] { return Success[int, string](x + 3) }

	out := Success[int, string](4).Then(double).Then(addThree).Then(double)

	if out.Value() != ((4*2)+3)*2 {
		t.Fatalf("expected %d, got %d", ((4*2)+3)*2, out.Value())
	}
}

func TestBind_PreservesErrorValue(t *testing.T) {
	t.Parallel()
	type failure struct {
		Code   int
		Reason string
	}
	want := failure{Code: 7, Reason: "missing"}

	out := Bind(Failure[int](want), func(x int) Result[[]byte, failure] {
		return Success[[]byte, failure](nil)
	})

	if out.Error() != want {
		t.Fatalf("expected %+v, got %+v", want, out.Error())
	}
}

func TestMap_TeeFinally(t *testing.T) {
	t.Parallel()
	seen := 0
	res := Tee(Map(Success[int, string](3), func(x int) int { return x + 1 }), func(x int) { seen = x })

	got := Finally(res,
		func(v int) string { return "ok" },
		func(e string) string { return "fail:" + e })
	if got != "ok" || seen != 4 {
		t.Fatalf("expected ok/4, got %s/%d", got, seen)
	}

	seen = 0
	failed := Tee(Map(Failure[int]("x"), func(x int) int { return x + 1 }), func(x int) { seen = x })
	got = Finally(failed,
		func(v int) string { return "ok" },
		func(e string) string { return "fail:" + e })
	if got != "fail:x" || seen != 0 {
		t.Fatalf("expected fail:x/0, got %s/%d", got, seen)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()
	ok := Of(3, nil)
	if !ok.IsSuccess() || ok.Value() != 3 {
		t.Fatalf("expected success with 3")
	}

	sentinel := errors.New("io")
	failed := Of(0, sentinel)
	if failed.IsSuccess() || !errors.Is(failed.Error(), sentinel) {
		t.Fatalf("expected failure wrapping sentinel, got %v", failed.Error())
	}
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

package result_test

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"

	"go.llib.dev/scriptkit/option"
	"go.llib.dev/scriptkit/result"
)

func TestResult_variants(t *testing.T) {
	s := testcase.NewSpec(t)

	value := let.Int(s)
	errMsg := let.String(s)

	s.When("the result holds a success value", func(s *testcase.Spec) {
		res := testcase.Let(s, func(t *testcase.T) result.Result[int, string] {
			return result.Ok[int, string](value.Get(t))
		})

		s.Then("it reports itself as Ok", func(t *testcase.T) {
			t.Must.True(res.Get(t).IsOk())
			t.Must.False(res.Get(t).IsErr())
		})

		s.Then("the success value is accessible", func(t *testcase.T) {
			got, err := res.Get(t).Get()
			t.Must.NoError(err)
			t.Must.Equal(value.Get(t), got)
		})

		s.Then("accessing the error side fails with ErrWrongVariantAccess", func(t *testcase.T) {
			_, err := res.Get(t).GetErr()
			t.Must.ErrorIs(result.ErrWrongVariantAccess, err)
		})

		s.Then("option bridges reflect the variant", func(t *testcase.T) {
			t.Must.Equal(option.Some(value.Get(t)), res.Get(t).Ok())
			t.Must.True(res.Get(t).ErrValue().IsNone())
		})
	})

	s.When("the result holds an error value", func(s *testcase.Spec) {
		res := testcase.Let(s, func(t *testcase.T) result.Result[int, string] {
			return result.Err[int](errMsg.Get(t))
		})

		s.Then("it reports itself as Err", func(t *testcase.T) {
			t.Must.True(res.Get(t).IsErr())
			t.Must.False(res.Get(t).IsOk())
		})

		s.Then("the error value is accessible", func(t *testcase.T) {
			got, err := res.Get(t).GetErr()
			t.Must.NoError(err)
			t.Must.Equal(errMsg.Get(t), got)
		})

		s.Then("accessing the success side fails with ErrWrongVariantAccess", func(t *testcase.T) {
			_, err := res.Get(t).Get()
			t.Must.ErrorIs(result.ErrWrongVariantAccess, err)
		})

		s.Then("option bridges reflect the variant", func(t *testcase.T) {
			t.Must.True(res.Get(t).Ok().IsNone())
			t.Must.Equal(option.Some(errMsg.Get(t)), res.Get(t).ErrValue())
		})
	})
}

func TestResult_predicates(t *testing.T) {
	t.Parallel()

	ok := result.Ok[int, string](4)
	er := result.Err[int]("boom")

	require.True(t, ok.IsOkAnd(func(n int) bool { return n == 4 }))
	require.False(t, ok.IsOkAnd(func(n int) bool { return false }))
	require.False(t, er.IsOkAnd(func(n int) bool { return true }))

	require.True(t, er.IsErrAnd(func(e string) bool { return e == "boom" }))
	require.False(t, ok.IsErrAnd(func(e string) bool { return true }))
}

func TestResult_valueSemantics(t *testing.T) {
	t.Parallel()

	require.Equal(t, result.Ok[int, string](1), result.Ok[int, string](1))
	require.NotEqual(t, result.Ok[int, string](1), result.Ok[int, string](2))
	require.NotEqual(t, result.Ok[int, string](1), result.Err[int]("1"))
	require.Equal(t, result.Err[int]("x"), result.Err[int]("x"))
}

func TestResult_panicAccessors(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, result.Ok[int, string](1).MustGet())
	require.Equal(t, "e", result.Err[int]("e").MustGetErr())
	require.Panics(t, func() { result.Err[int]("e").MustGet() })
	require.Panics(t, func() { result.Ok[int, string](1).MustGetErr() })
	require.Panics(t, func() { result.Err[int]("e").Expect("want a value") })
	require.Panics(t, func() { result.Ok[int, string](1).ExpectErr("want an error") })
	require.Equal(t, 1, result.Ok[int, string](1).Expect("want a value"))
	require.Equal(t, "e", result.Err[int]("e").ExpectErr("want an error"))
}

func TestResult_fallbacks(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, result.Ok[int, string](1).GetOr(9))
	require.Equal(t, 9, result.Err[int]("e").GetOr(9))
	require.Equal(t, 1, result.Err[int]("1").GetOrElse(func(e string) int {
		n, _ := strconv.Atoi(e)
		return n
	}))
}

func TestResult_inspect(t *testing.T) {
	t.Parallel()

	var values []int
	var errs []string
	result.Ok[int, string](3).Inspect(func(n int) { values = append(values, n) })
	result.Err[int]("e").Inspect(func(n int) { values = append(values, n) })
	result.Err[int]("e").InspectErr(func(e string) { errs = append(errs, e) })
	result.Ok[int, string](3).InspectErr(func(e string) { errs = append(errs, e) })
	require.Equal(t, []int{3}, values)
	require.Equal(t, []string{"e"}, errs)
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ok(1)", result.Ok[int, string](1).String())
	require.Equal(t, "Err(boom)", result.Err[int]("boom").String())
}

func TestFrom(t *testing.T) {
	t.Parallel()

	require.Equal(t, result.Ok[int, error](42), result.From(42, nil))

	boom := errors.New("boom")
	r := result.From(0, boom)
	require.True(t, r.IsErr())
	require.Equal(t, boom, r.MustGetErr())
}

func TestMap(t *testing.T) {
	t.Parallel()

	sq := func(n int) int { return n * n }
	require.Equal(t, result.Ok[int, string](9), result.Map(result.Ok[int, string](3), sq))
	require.Equal(t, result.Err[int]("e"), result.Map(result.Err[int]("e"), sq))
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	upper := func(e string) string { return "error: " + e }
	require.Equal(t, result.Err[int]("error: e"), result.MapErr(result.Err[int]("e"), upper))
	require.Equal(t, result.Ok[int, string](1), result.MapErr(result.Ok[int, string](1), upper))
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	require.Equal(t, 9, result.MapOr(result.Ok[int, string](3), -1, func(n int) int { return n * n }))
	require.Equal(t, -1, result.MapOr(result.Err[int]("e"), -1, func(n int) int { return n * n }))
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parse := func(s string) result.Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Err[int]("not a number: " + s)
		}
		return result.Ok[int, string](n)
	}

	require.Equal(t, result.Ok[int, string](42), result.AndThen(result.Ok[string, string]("42"), parse))
	require.Equal(t, result.Err[int]("not a number: x"), result.AndThen(result.Ok[string, string]("x"), parse))
	require.Equal(t, result.Err[int]("e"), result.AndThen(result.Err[string]("e"), parse))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	rescue := func(e string) result.Result[int, string] { return result.Ok[int, string](0) }
	require.Equal(t, result.Ok[int, string](1), result.OrElse(result.Ok[int, string](1), rescue))
	require.Equal(t, result.Ok[int, string](0), result.OrElse(result.Err[int]("e"), rescue))
}

func TestOkOr(t *testing.T) {
	t.Parallel()

	require.Equal(t, result.Ok[int, string](1), result.OkOr(option.Some(1), "missing"))
	require.Equal(t, result.Err[int]("missing"), result.OkOr(option.None[int](), "missing"))
	require.Equal(t, result.Err[int]("lazy"), result.OkOrElse(option.None[int](), func() string { return "lazy" }))
}

func ExampleFrom() {
	r := result.From(os.Hostname())
	fmt.Println(r.IsOk())
	// Output: true
}

func ExampleOk() {
	r := result.Ok[int, string](42)
	fmt.Println(r)
	// Output: Ok(42)
}

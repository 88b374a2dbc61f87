package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestArrayHomogeneityEnforced(t *testing.T) {
	convey.Convey("array homogeneity", t, func() {
		a := NewArray()
		convey.So(a.Push(NewIntScalar(1)), convey.ShouldBeNil)
		err := a.Push(NewStringScalar("x"))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(IsHomogeneity(err), convey.ShouldBeTrue)
	})

	convey.Convey("an array of arrays tolerates differing inner element kinds", t, func() {
		a := NewArray()
		inner1 := NewArray()
		inner1.Push(NewIntScalar(1))
		inner2 := NewArray()
		inner2.Push(NewStringScalar("x"))
		convey.So(a.Push(inner1), convey.ShouldBeNil)
		convey.So(a.Push(inner2), convey.ShouldBeNil)
		convey.So(a.Len(), convey.ShouldEqual, 2)
	})
}

func TestArrayInsertAndErase(t *testing.T) {
	convey.Convey("Insert and Erase maintain order", t, func() {
		a := NewArray()
		a.Push(NewIntScalar(1))
		a.Push(NewIntScalar(3))
		convey.So(a.Insert(1, NewIntScalar(2)), convey.ShouldBeNil)
		ints, ok := a.AsInts()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(ints, convey.ShouldResemble, []int64{1, 2, 3})

		convey.So(a.Erase(1), convey.ShouldBeNil)
		ints, _ = a.AsInts()
		convey.So(ints, convey.ShouldResemble, []int64{1, 3})
	})
}

func TestAsVecPartialMismatchReturnsAbsent(t *testing.T) {
	convey.Convey("AsStrings fails entirely if any element is not a String", t, func() {
		a := NewArray()
		a.Push(NewIntScalar(1))
		_, ok := a.AsStrings()
		convey.So(ok, convey.ShouldBeFalse)
	})
}

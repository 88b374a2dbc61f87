package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestQualifiedLookupRequiresTableIntermediates(t *testing.T) {
	convey.Convey("a qualified lookup through a non-table intermediate is absent", t, func() {
		root := NewTable()
		root.Insert("a", NewIntScalar(1))

		_, ok := root.GetQualified("a.b")
		convey.So(ok, convey.ShouldBeFalse)

		_, err := root.GetQualifiedErr("a.b")
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(IsNotFound(err), convey.ShouldBeTrue)
	})
}

func TestInsertIntoClosedTableFails(t *testing.T) {
	convey.Convey("inserting into an inline-closed table fails", t, func() {
		root, err := ParseBytes([]byte(`owner = { name = "Tom" }`))
		convey.So(err, convey.ShouldBeNil)
		owner, ok := root.GetTableQualified("owner")
		convey.So(ok, convey.ShouldBeTrue)

		err = owner.Insert("age", NewIntScalar(3))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestTableRangeVisitsEveryEntry(t *testing.T) {
	convey.Convey("Range visits every direct entry", t, func() {
		root := NewTable()
		root.Insert("a", NewIntScalar(1))
		root.Insert("b", NewIntScalar(2))

		seen := map[string]bool{}
		root.Range(func(key string, n Node) bool {
			seen[key] = true
			return true
		})
		convey.So(seen, convey.ShouldResemble, map[string]bool{"a": true, "b": true})
	})
}

func TestEraseRemovesEntry(t *testing.T) {
	convey.Convey("Erase removes a direct key", t, func() {
		root := NewTable()
		root.Insert("a", NewIntScalar(1))
		root.Erase("a")
		convey.So(root.Contains("a"), convey.ShouldBeFalse)
	})
}

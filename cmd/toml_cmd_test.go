package cmd

import (
	"testing"

	"github.com/dzjyyds666/gotoml/parse/toml"
	"github.com/smartystreets/goconvey/convey"
)

func TestNodeToJSONProjection(t *testing.T) {
	convey.Convey("nodeToJSON projects a tree onto plain JSON-ready values", t, func() {
		root, err := toml.ParseBytes([]byte(`
title = "example"

[owner]
name = "Tom"
dob = 1979-05-27T07:32:00Z
`))
		convey.So(err, convey.ShouldBeNil)

		out := nodeToJSON(root).(map[string]any)
		convey.So(out["title"], convey.ShouldEqual, "example")

		owner := out["owner"].(map[string]any)
		convey.So(owner["name"], convey.ShouldEqual, "Tom")
		convey.So(owner["dob"], convey.ShouldEqual, "1979-05-27T07:32:00Z")
	})
}

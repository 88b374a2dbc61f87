package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFile(t *testing.T) {
	convey.Convey("File opens and parses a document from disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		convey.So(os.WriteFile(path, []byte("title = \"example\"\n"), 0o644), convey.ShouldBeNil)

		root, err := File(path)
		convey.So(err, convey.ShouldBeNil)
		title, ok := root.GetStringQualified("title")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(title, convey.ShouldEqual, "example")
	})

	convey.Convey("File fails for a missing path", t, func() {
		_, err := File(filepath.Join(t.TempDir(), "missing.toml"))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

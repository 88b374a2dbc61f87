package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dzjyyds666/gotoml/parse"
	"github.com/dzjyyds666/gotoml/parse/toml"
	"github.com/spf13/cobra"
)

type TomlParams struct {
	Find   string `json:"find"`   // qualified key to look up, e.g. a.b.c
	Input  string `json:"input"`  // input file path
	Output string `json:"output"` // output file path
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find a qualified key, e.g. a.b.c")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}

	root, err := parse.File(params.Input)
	if err != nil {
		fmt.Println("parse error:", err)
		os.Exit(1)
	}

	if params.Find != "" {
		n, ok := root.GetQualified(params.Find)
		if !ok {
			fmt.Println("key not found")
			os.Exit(1)
		}
		out, err := json.MarshalIndent(nodeToJSON(n), "", "  ")
		if err != nil {
			fmt.Println("encode error:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if params.Output != "" {
		f, err := os.Create(params.Output)
		if err != nil {
			fmt.Println("create output error:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := toml.Write(f, root); err != nil {
			fmt.Println("write error:", err)
			os.Exit(1)
		}
		return
	}

	out, err := json.MarshalIndent(nodeToJSON(root), "", "  ")
	if err != nil {
		fmt.Println("encode error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// nodeToJSON projects a toml.Node onto plain Go values suitable for
// json.Marshal: Table -> map, Array/TableArray -> slice, scalars -> the
// closest native JSON type, with date/time scalars rendered through
// their textual form.
func nodeToJSON(n toml.Node) any {
	switch v := n.(type) {
	case *toml.Table:
		out := make(map[string]any)
		v.Range(func(key string, child toml.Node) bool {
			out[key] = nodeToJSON(child)
			return true
		})
		return out
	case *toml.Array:
		out := make([]any, 0, v.Len())
		v.Range(func(i int, child toml.Node) bool {
			out = append(out, nodeToJSON(child))
			return true
		})
		return out
	case *toml.TableArray:
		out := make([]any, 0, v.Len())
		v.Range(func(i int, t *toml.Table) bool {
			out = append(out, nodeToJSON(t))
			return true
		})
		return out
	case *toml.Scalar:
		return scalarToJSON(v)
	default:
		return nil
	}
}

func scalarToJSON(s *toml.Scalar) any {
	switch s.ScalarKind {
	case toml.ScalarString:
		v, _ := s.String()
		return v
	case toml.ScalarInt:
		v, _ := s.Int64()
		return v
	case toml.ScalarFloat:
		v, _ := s.Float64()
		return v
	case toml.ScalarBool:
		v, _ := s.Bool()
		return v
	case toml.ScalarLocalDate:
		v, _ := s.LocalDate()
		return v.String()
	case toml.ScalarLocalTime:
		v, _ := s.LocalTime()
		return v.String()
	case toml.ScalarLocalDateTime:
		v, _ := s.LocalDateTime()
		return v.String()
	case toml.ScalarOffsetDateTime:
		v, _ := s.OffsetDateTime()
		return v.String()
	default:
		return nil
	}
}

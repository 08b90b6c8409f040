// Command frameschema prints the JSON Schema of the frames the remote
// renderer streams to websocket clients.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/invopop/jsonschema"

	"gloomhold/pkg/game/renderer"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema (default stdout)")
	flag.Parse()

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := writeSchema(out, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(renderer.Frame))
	schema.Title = "Gloomhold Frame"
	schema.Description = "One rendered turn as pushed to websocket clients"
	return schema
}

func writeSchema(w io.Writer, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

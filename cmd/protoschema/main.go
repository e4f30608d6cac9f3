// Command protoschema writes a JSON Schema describing every payload spoken
// with the pond server, keyed by envelope type.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/JimLynchCodes/Quackers-Frontend-v3/shared/messages"
)

// wireCatalog has one property per envelope type.
type wireCatalog struct {
	YouJoined          messages.YouJoined          `json:"you_joined"`
	OtherPlayerJoined  messages.OtherPlayerJoined  `json:"other_player_joined"`
	OtherPlayerMoved   messages.OtherPlayerMoved   `json:"other_player_moved"`
	OtherPlayerQuacked messages.OtherPlayerQuacked `json:"other_player_quacked"`
	CrackersMoved      messages.CrackersMoved      `json:"crackers_moved"`
	Move               messages.MoveRequest        `json:"move"`
	Quack              messages.QuackRequest       `json:"quack"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(wireCatalog))
	schema.Title = "Quackers wire protocol"
	schema.Description = "Payloads carried in the data field of each envelope, keyed by type"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	return os.Rename(tmpPath, outPath)
}

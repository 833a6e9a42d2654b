// ctsgen compiles a JSON query descriptor into the engine's search
// expression and prints it on stdout.
//
//	ctsgen --input query.json --prefixed
//	cat query.json | ctsgen --collection Collection1 --limit 10
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Sebastien78370/spring-data-marklogic/marklogic/cts"
)

func main() {
	loadConfig()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	data, err := readInput(viper.GetString("input"))
	if err != nil {
		return err
	}

	doc, err := decodeDescriptor(data)
	if err != nil {
		return err
	}
	applyOverrides(&doc)

	q, err := doc.toQuery()
	if err != nil {
		return err
	}

	var opts []cts.SerializerOption
	if viper.GetBool("prefixed") {
		opts = append(opts, cts.Prefixed())
	}
	expression, err := cts.NewSerializer(opts...).Serialize(q)
	if err != nil {
		return err
	}

	fmt.Println(expression)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "reading stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "reading %s", path)
}

// applyOverrides lets flags take precedence over the descriptor file.
func applyOverrides(doc *queryDoc) {
	if c := viper.GetString("collection"); c != "" {
		doc.Collection = c
	}
	if pflag.CommandLine.Changed("limit") {
		limit := viper.GetInt64("limit")
		doc.Limit = &limit
	}
	if pflag.CommandLine.Changed("skip") {
		skip := viper.GetInt64("skip")
		doc.Skip = &skip
	}
}

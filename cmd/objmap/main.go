// Package main provides the objmap command.
//
// objmap loads or dumps JSON and YAML record files through one of the demo
// schemas and prints the converted records as JSON:
//
//	objmap load --schema message testdata/message.yaml
//	objmap dump --schema user --canonical user.json
package main

import (
	"os"
)

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

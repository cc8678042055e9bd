// Package main provides the objc-imports CLI.
//
// objc-imports shows how the import resolver treats a list of Objective-C
// type names: whether they need an import, whether a forward declaration
// is enough, and which header and library the import comes from.
//
//	objc-imports --config objc-codegen.yaml CGRect RMUser 'RMState:RMState'
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "objc-imports:", err)
		os.Exit(1)
	}
}

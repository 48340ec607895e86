// Package flowgen turns in-code workflow definitions into YAML manifests.
//
// Workflows are defined in ordinary Go files with the workflow API and
// registered at package initialization:
//
//	package pipelines
//
//	import "github.com/mvp-joe/flowgen"
//
//	var _ = flowgen.New("nightly-report").
//	    Script("collect", "python:3.12", "import report\nreport.collect()").
//	    Register()
//
// A small binary embeds the tool and links the definition packages:
//
//	package main
//
//	import (
//	    "github.com/mvp-joe/flowgen"
//
//	    _ "example.com/pipelines"
//	)
//
//	func main() { flowgen.Main() }
//
// Pointing the binary at a file or folder then serializes everything the
// matching files registered:
//
//	$ pipelines generate yaml ./pipelines --to ./manifests
//
// Each source file that registered at least one workflow becomes one output
// document set; files registering none are skipped. Multiple documents from
// one file are joined with a '---' line, matching the multi-document YAML
// convention.
//
// # Registry
//
// Registration attributes each definition to the source file it was declared
// in, which is what lets a folder of definitions mirror into a folder of
// manifests file by file. The registry is scoped to the process and
// resettable; nothing persists between runs.
//
// # Validation
//
// Definitions are validated when built: template names must be unique, the
// entrypoint must resolve, and DAG templates must be acyclic with all
// dependencies present. Validation failures abort the whole run.
package flowgen

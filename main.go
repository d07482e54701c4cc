package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/Geoffrey1014/svf-front-end-sub000/ast"
	"github.com/Geoffrey1014/svf-front-end-sub000/cfg"
	"github.com/Geoffrey1014/svf-front-end-sub000/cst"
	"github.com/Geoffrey1014/svf-front-end-sub000/diag"
	"github.com/Geoffrey1014/svf-front-end-sub000/lir"
	"github.com/Geoffrey1014/svf-front-end-sub000/ssa"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Add microsecond precision to log timestamps; no further output is produced.")
	intermedialFlag = flag.Bool("intermedial", false, "Print each function's generated three-address LIR.")
	cfgFlag        = flag.Bool("cfg", false, "Write one cfg<N>.dot file per function, numbered in declaration order.")
	outputCSTFlag  = flag.Bool("output-cst", false, "Requests a CST dot dump; rendering the CST is the external parser's job, so this only logs that the request was received.")
	outputFlag     = flag.String("output", "", "File to write the final SSA-form LIR listing to, instead of stdout.")
)

func init() {
	flag.StringVar(outputFlag, "o", "", "Shorthand for --output.")
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()
	if *verboseFlag {
		log.SetFlags(log.Flags() | log.Lmicroseconds)
	}

	must.Truef(flag.NArg() == 1, "usage: %s [flags] <source-file>", os.Args[0])
	path := flag.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		log.Error.Printf("%s: %v", path, err)
		os.Exit(1)
	}

	if *outputCSTFlag {
		log.Printf("--output-cst requested; CST rendering is produced by the external parser, not this tool")
	}

	root, err := parse(src)
	if err != nil {
		log.Error.Printf("%s: %v", path, err)
		os.Exit(1)
	}

	sink := &diag.Sink{}
	builder := ast.NewBuilder(sink)
	tu := builder.Build(cst.NewSitterNode(root, src))

	out := os.Stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			log.Error.Printf("%s: %v", *outputFlag, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	fileScope := lir.NewSymbolTable(nil)
	failed := false
	for i, fn := range tu.Functions {
		function := lir.Generate(fn, fileScope, sink)
		graph := cfg.Build(function)

		var paramNames []string
		for _, p := range fn.Params.Params {
			paramNames = append(paramNames, p.Name())
		}
		ssa.Convert(graph, paramNames)

		if *intermedialFlag {
			fmt.Fprintf(out, "-- %s --\n", function.Name)
			for _, s := range function.Stmts {
				fmt.Fprintln(out, s.String())
			}
		}
		if *cfgFlag {
			dotPath := fmt.Sprintf("cfg%d.dot", i)
			if err := os.WriteFile(dotPath, []byte(graph.Dot(function.Name)), 0o644); err != nil {
				log.Error.Printf("%s: %v", dotPath, err)
				failed = true
			}
		}
		for _, block := range graph.BlocksList {
			for _, s := range block.Stmts {
				fmt.Fprintln(out, s.String())
			}
		}
	}

	if len(sink.Messages) > 0 {
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

// parse invokes the external tree-sitter Rust grammar to produce a CST —
// the source language's "mut"/"loop"/for-in/range-expression vocabulary
// (package ast) is Rust's, not C's. The front end never constructs its own
// grammar or parser — it only consumes whatever named-child tree the
// parser hands back (package cst), dispatching on node-kind strings
// (ast.Builder.Dispatch) rather than the grammar's internal symbol ids.
func parse(src []byte) (*sitter.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}
	return tree.RootNode(), nil
}

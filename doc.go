// Package texgen assembles LaTeX documents from YAML configuration and
// compiles them to PDF with latexmk.
//
// # Quick Start
//
// Create a service and point it at a document config:
//
//	svc := texgen.New()
//	pdf, err := svc.Generate(ctx, "artifacts/doc.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", pdf)
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Document config loading (strict YAML, fail-fast validation)
//  2. Content file loading (paragraph/itemize/image/code/embed records)
//  3. Text normalization (escaping, inline formatting, link and macro
//     passthrough)
//  4. LaTeX assembly via the Sink abstraction (TexWriter)
//  5. PDF compilation via latexmk
//
// # Text Normalization
//
// Prose fields accept a restricted inline markup: `code`, **bold**,
// *italic*, [display](url) links, and raw TeX macros such as
// \ref{fig:one}, which pass through unescaped. Reserved LaTeX
// characters (# $ _ & %) are escaped everywhere else. Verbatim blocks
// and anchor labels are never normalized.
//
// # Configuration
//
// Two YAML schemas drive generation: a document config (title, authors,
// geometry, preamble, abstract, revision history, ordered content-file
// list) and content files holding typed records tagged with a type
// discriminator. Content files may embed other content files
// recursively. See the Loader and DocumentConfig types.
//
// Use functional options to customize the service:
//
//	svc := texgen.New(
//	    texgen.WithTimeout(5*time.Minute),
//	    texgen.WithLatexmkPath("/usr/local/bin/latexmk"),
//	    texgen.WithWorkDir("build"),
//	)
//
// # Toolchain Requirements
//
// PDF compilation requires a TeX distribution providing latexmk and the
// extarticle document class. The assembled .tex source is written next
// to the output and kept after compilation for debugging.
package texgen

// Package target describes the native target an emlangc compilation emits
// IR for: a triple string and a data layout string, both copied verbatim
// onto the generated *ir.Module (spec.md §6 "IR-module contract to
// back-end": "a verified LLVM module whose target triple and data layout
// are set").
//
// The original implementation's TargetConfig additionally tracks CPU
// name, CPU feature flags (SSE/AVX/NEON/...), relocation model, code
// model, and optimisation level, and builds an llvm::TargetMachine from
// them (original_source/compiler/codegen/target_config.cpp). None of that
// has anywhere to go here: github.com/llir/llvm is a pure-Go IR
// *constructor* with no TargetMachine, no CPU-feature string consumer, and
// no object-code emitter (spec.md §1 treats the native back-end as an
// external collaborator) — see DESIGN.md's internal/target entry.
package target

import "fmt"

// Config is the subset of target description an IR module actually
// carries: its triple and its data layout string.
type Config struct {
	Triple     string
	DataLayout string
}

// Default is the triple emlangc assumes when no `target:` is set in
// `.emlangc.yaml`, matching the reference's X86_64/Linux default
// CPU selection (original_source/.../target_config.cpp
// detectDefaultCPU's Architecture::X86_64 case).
var Default = Config{
	Triple:     "x86_64-unknown-linux-gnu",
	DataLayout: "e-m:e-p270:32:32-p271:32:32-p272:64:64-i64:64-i128:128-f80:128-n8:16:32:64-S128",
}

// known holds the triple/data-layout pairs emlangc can target without a
// real LLVM install to query: the three platform families the reference's
// PlatformInfo/Architecture enums distinguish (original_source/include/
// codegen/target_config.h), each with LLVM's standard data layout string
// for that platform.
var known = map[string]Config{
	"x86_64-unknown-linux-gnu": Default,
	"x86_64-apple-darwin": {
		Triple:     "x86_64-apple-darwin",
		DataLayout: "e-m:o-p270:32:32-p271:32:32-p272:64:64-i64:64-f80:128-n8:16:32:64-S128",
	},
	"aarch64-unknown-linux-gnu": {
		Triple:     "aarch64-unknown-linux-gnu",
		DataLayout: "e-m:e-p270:32:32-p271:32:32-p272:64:64-i8:8:32-i16:16:32-i64:64-i128:128-n32:64-S128",
	},
	"wasm32-unknown-unknown": {
		Triple:     "wasm32-unknown-unknown",
		DataLayout: "e-m:e-p:32:32-p10:8:8-p20:8:8-i64:64-n32:64-S128-ni:1:10:20",
	},
}

// Lookup resolves a triple string to its known Config. For an
// unrecognised triple it returns the zero Config and false; Parse is the
// permissive variant that keeps an unknown triple with a blank data
// layout.
func Lookup(triple string) (Config, bool) {
	cfg, ok := known[triple]
	return cfg, ok
}

// Parse resolves a triple (the `.emlangc.yaml` `target:` value; the CLI
// has no target flag) into a Config, erroring
// only on an empty string — an unrecognised but non-empty triple is still
// accepted (its data layout is left blank), matching
// TargetConfig::parse's permissive "simple parsing" note in the
// reference.
func Parse(triple string) (Config, error) {
	if triple == "" {
		return Config{}, fmt.Errorf("target: empty triple")
	}
	if cfg, ok := known[triple]; ok {
		return cfg, nil
	}
	return Config{Triple: triple}, nil
}

// Package cpp lowers a checked tree to C++ source text.
//
// Emission runs as four passes over the program, bracketed by a fixed
// header and footer: forward type declarations, forward function
// declarations, full type definitions, full function definitions. The
// output links against the uc runtime headers and is otherwise
// self-contained.
package cpp

import (
	"fmt"
	"strings"

	"ucc/internal/ast"
)

type Emitter struct {
	buf    strings.Builder
	indent string
}

// EmitProgram lowers prog and returns the complete C++ translation unit.
// The tree must have passed semantic analysis; emission assumes every
// expression carries a type and every call carries a function.
func EmitProgram(prog *ast.Program) string {
	e := &Emitter{}
	e.emitHeader()
	e.emitTypeDecls(prog)
	e.emitFunctionDecls(prog)
	e.emitTypeDefs(prog)
	e.emitFunctionDefs(prog)
	e.emitFooter()
	return e.buf.String()
}

func (e *Emitter) raw(s string) {
	e.buf.WriteString(s)
}

func (e *Emitter) rawf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// line writes s on its own line at the current indent.
func (e *Emitter) line(s string) {
	e.buf.WriteString(e.indent)
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *Emitter) linef(format string, args ...any) {
	e.buf.WriteString(e.indent)
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

func (e *Emitter) blank() {
	e.buf.WriteByte('\n')
}

func (e *Emitter) emitHeader() {
	e.raw(`#include "defs.h"
#include "ref.h"
#include "array.h"
#include "library.h"
#include "expr.h"

namespace uc {

`)
	e.indent = "  "
}

func (e *Emitter) emitFooter() {
	e.raw(`} // namespace uc

int main(int argc, char **argv) {
  uc::UC_ARRAY(uc::UC_PRIMITIVE(string)) args = uc::uc_make_array_of<uc::UC_PRIMITIVE(string)>();
  for (int i = 1; i < argc; i++) {
    uc::uc_array_push(args, uc::UC_PRIMITIVE(string)(argv[i]));
  }
  uc::UC_FUNCTION(main)(args);
  return 0;
}
`)
}

func (e *Emitter) banner(title string) {
	e.line("// " + title)
	e.blank()
}

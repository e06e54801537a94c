package isa

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Load evaluates a starlark instruction set definition.
//
// The script assigns a dict named 'instructions', mapping each mnemonic to a
// tuple of (format, opcode) or (format, opcode, secondary), with opcodes
// written as five binary digits. The optional 'branch' and 'memory' lists
// name the mnemonics whose address operand may not be a variable, or may not
// be a label, respectively.
//
//	instructions = {
//	    "inc": ("B", "00001"),
//	    "jz":  ("E", "00010"),
//	}
//	branch = ["jz"]
//
// The src argument is passed to starlark unchanged, so may be a string,
// a []byte, an io.Reader, or nil to read from filename.
func Load(filename string, src any) (table *Table, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, name := range formatNames {
		pred[name] = starlark.String(name)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		return
	}

	st_insts, ok := dict["instructions"].(*starlark.Dict)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrDefinition, f("'instructions' must be a dict"))
		return
	}

	spec := make(map[string]Spec, st_insts.Len())
	for _, item := range st_insts.Items() {
		mnemonic, ok := starlark.AsString(item[0])
		if !ok {
			err = fmt.Errorf("%w: %v", ErrDefinition, f("mnemonic %v is not a string", item[0]))
			return
		}
		var def Spec
		def, err = parseEntry(item[1])
		if err != nil {
			err = &ErrEntry{Mnemonic: mnemonic, Err: err}
			return
		}
		spec[mnemonic] = def
	}

	classes := []struct {
		name  string
		class Class
	}{
		{"branch", CLASS_BRANCH},
		{"memory", CLASS_MEMORY},
	}
	for _, cl := range classes {
		value, ok := dict[cl.name]
		if !ok {
			continue
		}
		var names []string
		names, err = stringList(cl.name, value)
		if err != nil {
			return
		}
		for _, mnemonic := range names {
			def, ok := spec[mnemonic]
			if !ok {
				err = ErrMnemonicUnknown(mnemonic)
				return
			}
			def.Class = cl.class
			spec[mnemonic] = def
		}
	}

	table = &Table{spec: spec}
	return
}

// parseEntry parses a (format, opcode[, secondary]) tuple.
func parseEntry(value starlark.Value) (spec Spec, err error) {
	tuple, ok := value.(starlark.Tuple)
	if !ok || len(tuple) < 2 || len(tuple) > 3 {
		err = fmt.Errorf("%w: %v", ErrDefinition, f("expected (format, opcode[, secondary]), got %v", value))
		return
	}

	var words [3]string
	for n, item := range tuple {
		words[n], ok = starlark.AsString(item)
		if !ok {
			err = fmt.Errorf("%w: %v", ErrDefinition, f("%v is not a string", item))
			return
		}
	}

	spec.Format, err = ParseFormat(words[0])
	if err != nil {
		return
	}

	spec.Opcode, err = ParseOpcode(words[1])
	if err != nil {
		return
	}

	if len(tuple) == 3 {
		if spec.Format != FORMAT_C {
			err = ErrSecondary
			return
		}
		spec.Secondary, err = ParseOpcode(words[2])
		if err != nil {
			return
		}
		spec.HasSecondary = true
	}

	return
}

// stringList converts a starlark list or tuple of strings.
func stringList(name string, value starlark.Value) (list []string, err error) {
	seq, ok := value.(starlark.Indexable)
	if _, is_str := value.(starlark.String); !ok || is_str {
		err = fmt.Errorf("%w: %v", ErrDefinition, f("'%v' must be a list", name))
		return
	}

	for n := range seq.Len() {
		str, ok := starlark.AsString(seq.Index(n))
		if !ok {
			err = fmt.Errorf("%w: %v", ErrDefinition, f("'%v' entry %v is not a string", name, seq.Index(n)))
			return
		}
		list = append(list, str)
	}

	return
}

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

// Class access and property flags, JVMS17 Table 4.1-B.
const (
	AccPublic     AccessFlags = 0x0001
	AccFinal      AccessFlags = 0x0010
	AccSuper      AccessFlags = 0x0020
	AccInterface  AccessFlags = 0x0200
	AccAbstract   AccessFlags = 0x0400
	AccSynthetic  AccessFlags = 0x1000
	AccAnnotation AccessFlags = 0x2000
	AccEnum       AccessFlags = 0x4000
	AccModule     AccessFlags = 0x8000
)

// Field access and property flags, JVMS17 Table 4.5-A.
const (
	AccFieldPublic    AccessFlags = 0x0001
	AccFieldPrivate   AccessFlags = 0x0002
	AccFieldProtected AccessFlags = 0x0004
	AccFieldStatic    AccessFlags = 0x0008
	AccFieldFinal     AccessFlags = 0x0010
	AccFieldVolatile  AccessFlags = 0x0040
	AccFieldTransient AccessFlags = 0x0080
	AccFieldSynthetic AccessFlags = 0x1000
	AccFieldEnum      AccessFlags = 0x4000
)

// Method access and property flags, JVMS17 Table 4.6-A.
const (
	AccMethodPublic       AccessFlags = 0x0001
	AccMethodPrivate      AccessFlags = 0x0002
	AccMethodProtected    AccessFlags = 0x0004
	AccMethodStatic       AccessFlags = 0x0008
	AccMethodFinal        AccessFlags = 0x0010
	AccMethodSynchronized AccessFlags = 0x0020
	AccMethodBridge       AccessFlags = 0x0040
	AccMethodVarArgs      AccessFlags = 0x0080
	AccMethodNative       AccessFlags = 0x0100
	AccMethodAbstract     AccessFlags = 0x0400
	AccMethodStrict       AccessFlags = 0x0800
	AccMethodSynthetic    AccessFlags = 0x1000
)

// AccessFlags is a bitmask of access_flags, shared by class, field and
// method declarations; which constants are meaningful depends on which
// table (class/field/method) the value was read from.
type AccessFlags uint16

// Has reports whether every bit in flag is set in f.
func (f AccessFlags) Has(flag AccessFlags) bool {
	return f&flag == flag
}

// classFlagNames maps each defined class access bit to its mnemonic, the
// same lookup-table idiom ImageDirectoryEntry.String() uses for PE data
// directory names.
var classFlagNames = map[AccessFlags]string{
	AccPublic:     "PUBLIC",
	AccFinal:      "FINAL",
	AccSuper:      "SUPER",
	AccInterface:  "INTERFACE",
	AccAbstract:   "ABSTRACT",
	AccSynthetic:  "SYNTHETIC",
	AccAnnotation: "ANNOTATION",
	AccEnum:       "ENUM",
	AccModule:     "MODULE",
}

var fieldFlagNames = map[AccessFlags]string{
	AccFieldPublic:    "PUBLIC",
	AccFieldPrivate:   "PRIVATE",
	AccFieldProtected: "PROTECTED",
	AccFieldStatic:    "STATIC",
	AccFieldFinal:     "FINAL",
	AccFieldVolatile:  "VOLATILE",
	AccFieldTransient: "TRANSIENT",
	AccFieldSynthetic: "SYNTHETIC",
	AccFieldEnum:      "ENUM",
}

var methodFlagNames = map[AccessFlags]string{
	AccMethodPublic:       "PUBLIC",
	AccMethodPrivate:      "PRIVATE",
	AccMethodProtected:    "PROTECTED",
	AccMethodStatic:       "STATIC",
	AccMethodFinal:        "FINAL",
	AccMethodSynchronized: "SYNCHRONIZED",
	AccMethodBridge:       "BRIDGE",
	AccMethodVarArgs:      "VARARGS",
	AccMethodNative:       "NATIVE",
	AccMethodAbstract:     "ABSTRACT",
	AccMethodStrict:       "STRICT",
	AccMethodSynthetic:    "SYNTHETIC",
}

func flagNames(f AccessFlags, table map[AccessFlags]string) []string {
	var names []string
	for flag, name := range table {
		if f.Has(flag) {
			names = append(names, name)
		}
	}
	return names
}

// ClassFlagNames returns the mnemonic names of every class access bit set
// in f.
func (f AccessFlags) ClassFlagNames() []string { return flagNames(f, classFlagNames) }

// FieldFlagNames returns the mnemonic names of every field access bit set
// in f.
func (f AccessFlags) FieldFlagNames() []string { return flagNames(f, fieldFlagNames) }

// MethodFlagNames returns the mnemonic names of every method access bit
// set in f.
func (f AccessFlags) MethodFlagNames() []string { return flagNames(f, methodFlagNames) }

// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vm

// Opcode byte values, JVMS17 Table 6.5. The full byte space is named here
// so the decode stage can always report a mnemonic; whether execute can
// actually run that instruction is a separate question handled by the
// interpreter's per-family dispatch in exec_*.go.
const (
	OpNop             = 0x00
	OpAConstNull      = 0x01
	OpIConstM1        = 0x02
	OpIConst0         = 0x03
	OpIConst1         = 0x04
	OpIConst2         = 0x05
	OpIConst3         = 0x06
	OpIConst4         = 0x07
	OpIConst5         = 0x08
	OpLConst0         = 0x09
	OpLConst1         = 0x0a
	OpFConst0         = 0x0b
	OpFConst1         = 0x0c
	OpFConst2         = 0x0d
	OpDConst0         = 0x0e
	OpDConst1         = 0x0f
	OpBipush          = 0x10
	OpSipush          = 0x11
	OpLdc             = 0x12
	OpLdcW            = 0x13
	OpLdc2W           = 0x14
	OpILoad           = 0x15
	OpLLoad           = 0x16
	OpFLoad           = 0x17
	OpDLoad           = 0x18
	OpALoad           = 0x19
	OpILoad0          = 0x1a
	OpILoad1          = 0x1b
	OpILoad2          = 0x1c
	OpILoad3          = 0x1d
	OpLLoad0          = 0x1e
	OpLLoad1          = 0x1f
	OpLLoad2          = 0x20
	OpLLoad3          = 0x21
	OpFLoad0          = 0x22
	OpFLoad1          = 0x23
	OpFLoad2          = 0x24
	OpFLoad3          = 0x25
	OpDLoad0          = 0x26
	OpDLoad1          = 0x27
	OpDLoad2          = 0x28
	OpDLoad3          = 0x29
	OpALoad0          = 0x2a
	OpALoad1          = 0x2b
	OpALoad2          = 0x2c
	OpALoad3          = 0x2d
	OpIALoad          = 0x2e
	OpLALoad          = 0x2f
	OpFALoad          = 0x30
	OpDALoad          = 0x31
	OpAALoad          = 0x32
	OpBALoad          = 0x33
	OpCALoad          = 0x34
	OpSALoad          = 0x35
	OpIStore          = 0x36
	OpLStore          = 0x37
	OpFStore          = 0x38
	OpDStore          = 0x39
	OpAStore          = 0x3a
	OpIStore0         = 0x3b
	OpIStore1         = 0x3c
	OpIStore2         = 0x3d
	OpIStore3         = 0x3e
	OpLStore0         = 0x3f
	OpLStore1         = 0x40
	OpLStore2         = 0x41
	OpLStore3         = 0x42
	OpFStore0         = 0x43
	OpFStore1         = 0x44
	OpFStore2         = 0x45
	OpFStore3         = 0x46
	OpDStore0         = 0x47
	OpDStore1         = 0x48
	OpDStore2         = 0x49
	OpDStore3         = 0x4a
	OpAStore0         = 0x4b
	OpAStore1         = 0x4c
	OpAStore2         = 0x4d
	OpAStore3         = 0x4e
	OpIAStore         = 0x4f
	OpLAStore         = 0x50
	OpFAStore         = 0x51
	OpDAStore         = 0x52
	OpAAStore         = 0x53
	OpBAStore         = 0x54
	OpCAStore         = 0x55
	OpSAStore         = 0x56
	OpPop             = 0x57
	OpPop2            = 0x58
	OpDup             = 0x59
	OpDupX1           = 0x5a
	OpDupX2           = 0x5b
	OpDup2            = 0x5c
	OpDup2X1          = 0x5d
	OpDup2X2          = 0x5e
	OpSwap            = 0x5f
	OpIAdd            = 0x60
	OpLAdd            = 0x61
	OpFAdd            = 0x62
	OpDAdd            = 0x63
	OpISub            = 0x64
	OpLSub            = 0x65
	OpFSub            = 0x66
	OpDSub            = 0x67
	OpIMul            = 0x68
	OpLMul            = 0x69
	OpFMul            = 0x6a
	OpDMul            = 0x6b
	OpIDiv            = 0x6c
	OpLDiv            = 0x6d
	OpFDiv            = 0x6e
	OpDDiv            = 0x6f
	OpIRem            = 0x70
	OpLRem            = 0x71
	OpFRem            = 0x72
	OpDRem            = 0x73
	OpINeg            = 0x74
	OpLNeg            = 0x75
	OpFNeg            = 0x76
	OpDNeg            = 0x77
	OpIShl            = 0x78
	OpLShl            = 0x79
	OpIShr            = 0x7a
	OpLShr            = 0x7b
	OpIUShr           = 0x7c
	OpLUShr           = 0x7d
	OpIAnd            = 0x7e
	OpLAnd            = 0x7f
	OpIOr             = 0x80
	OpLOr             = 0x81
	OpIXor            = 0x82
	OpLXor            = 0x83
	OpIInc            = 0x84
	OpI2L             = 0x85
	OpI2F             = 0x86
	OpI2D             = 0x87
	OpL2I             = 0x88
	OpL2F             = 0x89
	OpL2D             = 0x8a
	OpF2I             = 0x8b
	OpF2L             = 0x8c
	OpF2D             = 0x8d
	OpD2I             = 0x8e
	OpD2L             = 0x8f
	OpD2F             = 0x90
	OpI2B             = 0x91
	OpI2C             = 0x92
	OpI2S             = 0x93
	OpLCmp            = 0x94
	OpFCmpL           = 0x95
	OpFCmpG           = 0x96
	OpDCmpL           = 0x97
	OpDCmpG           = 0x98
	OpIfEq            = 0x99
	OpIfNe            = 0x9a
	OpIfLt            = 0x9b
	OpIfGe            = 0x9c
	OpIfGt            = 0x9d
	OpIfLe            = 0x9e
	OpIfICmpEq        = 0x9f
	OpIfICmpNe        = 0xa0
	OpIfICmpLt        = 0xa1
	OpIfICmpGe        = 0xa2
	OpIfICmpGt        = 0xa3
	OpIfICmpLe        = 0xa4
	OpIfACmpEq        = 0xa5
	OpIfACmpNe        = 0xa6
	OpGoto            = 0xa7
	OpJsr             = 0xa8
	OpRet             = 0xa9
	OpTableSwitch     = 0xaa
	OpLookupSwitch    = 0xab
	OpIReturn         = 0xac
	OpLReturn         = 0xad
	OpFReturn         = 0xae
	OpDReturn         = 0xaf
	OpAReturn         = 0xb0
	OpReturn          = 0xb1
	OpGetStatic       = 0xb2
	OpPutStatic       = 0xb3
	OpGetField        = 0xb4
	OpPutField        = 0xb5
	OpInvokeVirtual   = 0xb6
	OpInvokeSpecial   = 0xb7
	OpInvokeStatic    = 0xb8
	OpInvokeInterface = 0xb9
	OpInvokeDynamic   = 0xba
	OpNew             = 0xbb
	OpNewArray        = 0xbc
	OpANewArray       = 0xbd
	OpArrayLength     = 0xbe
	OpAThrow          = 0xbf
	OpCheckCast       = 0xc0
	OpInstanceOf      = 0xc1
	OpMonitorEnter    = 0xc2
	OpMonitorExit     = 0xc3
	OpWide            = 0xc4
	OpMultiANewArray  = 0xc5
	OpIfNull          = 0xc6
	OpIfNonNull       = 0xc7
	OpGotoW           = 0xc8
	OpJsrW            = 0xc9
	OpBreakpoint      = 0xca
	OpImpdep1         = 0xfe
	OpImpdep2         = 0xff
)

// opcodeMnemonics names every defined opcode byte, JVMS17 Table 6.5. A
// byte with no entry here is simply undefined and always yields
// DecodeError; a byte with an entry may still yield
// UnimplementedOpcodeError at execute time if its family is out of scope.
var opcodeMnemonics = map[byte]string{
	OpNop: "nop", OpAConstNull: "aconst_null",
	OpIConstM1: "iconst_m1", OpIConst0: "iconst_0", OpIConst1: "iconst_1",
	OpIConst2: "iconst_2", OpIConst3: "iconst_3", OpIConst4: "iconst_4", OpIConst5: "iconst_5",
	OpLConst0: "lconst_0", OpLConst1: "lconst_1",
	OpFConst0: "fconst_0", OpFConst1: "fconst_1", OpFConst2: "fconst_2",
	OpDConst0: "dconst_0", OpDConst1: "dconst_1",
	OpBipush: "bipush", OpSipush: "sipush",
	OpLdc: "ldc", OpLdcW: "ldc_w", OpLdc2W: "ldc2_w",
	OpILoad: "iload", OpLLoad: "lload", OpFLoad: "fload", OpDLoad: "dload", OpALoad: "aload",
	OpILoad0: "iload_0", OpILoad1: "iload_1", OpILoad2: "iload_2", OpILoad3: "iload_3",
	OpLLoad0: "lload_0", OpLLoad1: "lload_1", OpLLoad2: "lload_2", OpLLoad3: "lload_3",
	OpFLoad0: "fload_0", OpFLoad1: "fload_1", OpFLoad2: "fload_2", OpFLoad3: "fload_3",
	OpDLoad0: "dload_0", OpDLoad1: "dload_1", OpDLoad2: "dload_2", OpDLoad3: "dload_3",
	OpALoad0: "aload_0", OpALoad1: "aload_1", OpALoad2: "aload_2", OpALoad3: "aload_3",
	OpIALoad: "iaload", OpLALoad: "laload", OpFALoad: "faload", OpDALoad: "daload",
	OpAALoad: "aaload", OpBALoad: "baload", OpCALoad: "caload", OpSALoad: "saload",
	OpIStore: "istore", OpLStore: "lstore", OpFStore: "fstore", OpDStore: "dstore", OpAStore: "astore",
	OpIStore0: "istore_0", OpIStore1: "istore_1", OpIStore2: "istore_2", OpIStore3: "istore_3",
	OpLStore0: "lstore_0", OpLStore1: "lstore_1", OpLStore2: "lstore_2", OpLStore3: "lstore_3",
	OpFStore0: "fstore_0", OpFStore1: "fstore_1", OpFStore2: "fstore_2", OpFStore3: "fstore_3",
	OpDStore0: "dstore_0", OpDStore1: "dstore_1", OpDStore2: "dstore_2", OpDStore3: "dstore_3",
	OpAStore0: "astore_0", OpAStore1: "astore_1", OpAStore2: "astore_2", OpAStore3: "astore_3",
	OpIAStore: "iastore", OpLAStore: "lastore", OpFAStore: "fastore", OpDAStore: "dastore",
	OpAAStore: "aastore", OpBAStore: "bastore", OpCAStore: "castore", OpSAStore: "sastore",
	OpPop: "pop", OpPop2: "pop2",
	OpDup: "dup", OpDupX1: "dup_x1", OpDupX2: "dup_x2",
	OpDup2: "dup2", OpDup2X1: "dup2_x1", OpDup2X2: "dup2_x2",
	OpSwap: "swap",
	OpIAdd: "iadd", OpLAdd: "ladd", OpFAdd: "fadd", OpDAdd: "dadd",
	OpISub: "isub", OpLSub: "lsub", OpFSub: "fsub", OpDSub: "dsub",
	OpIMul: "imul", OpLMul: "lmul", OpFMul: "fmul", OpDMul: "dmul",
	OpIDiv: "idiv", OpLDiv: "ldiv", OpFDiv: "fdiv", OpDDiv: "ddiv",
	OpIRem: "irem", OpLRem: "lrem", OpFRem: "frem", OpDRem: "drem",
	OpINeg: "ineg", OpLNeg: "lneg", OpFNeg: "fneg", OpDNeg: "dneg",
	OpIShl: "ishl", OpLShl: "lshl", OpIShr: "ishr", OpLShr: "lshr",
	OpIUShr: "iushr", OpLUShr: "lushr",
	OpIAnd: "iand", OpLAnd: "land", OpIOr: "ior", OpLOr: "lor", OpIXor: "ixor", OpLXor: "lxor",
	OpIInc: "iinc",
	OpI2L:  "i2l", OpI2F: "i2f", OpI2D: "i2d",
	OpL2I: "l2i", OpL2F: "l2f", OpL2D: "l2d",
	OpF2I: "f2i", OpF2L: "f2l", OpF2D: "f2d",
	OpD2I: "d2i", OpD2L: "d2l", OpD2F: "d2f",
	OpI2B: "i2b", OpI2C: "i2c", OpI2S: "i2s",
	OpLCmp: "lcmp", OpFCmpL: "fcmpl", OpFCmpG: "fcmpg", OpDCmpL: "dcmpl", OpDCmpG: "dcmpg",
	OpIfEq: "ifeq", OpIfNe: "ifne", OpIfLt: "iflt", OpIfGe: "ifge", OpIfGt: "ifgt", OpIfLe: "ifle",
	OpIfICmpEq: "if_icmpeq", OpIfICmpNe: "if_icmpne", OpIfICmpLt: "if_icmplt",
	OpIfICmpGe: "if_icmpge", OpIfICmpGt: "if_icmpgt", OpIfICmpLe: "if_icmple",
	OpIfACmpEq: "if_acmpeq", OpIfACmpNe: "if_acmpne",
	OpGoto: "goto", OpJsr: "jsr", OpRet: "ret",
	OpTableSwitch: "tableswitch", OpLookupSwitch: "lookupswitch",
	OpIReturn: "ireturn", OpLReturn: "lreturn", OpFReturn: "freturn",
	OpDReturn: "dreturn", OpAReturn: "areturn", OpReturn: "return",
	OpGetStatic: "getstatic", OpPutStatic: "putstatic",
	OpGetField: "getfield", OpPutField: "putfield",
	OpInvokeVirtual: "invokevirtual", OpInvokeSpecial: "invokespecial",
	OpInvokeStatic: "invokestatic", OpInvokeInterface: "invokeinterface",
	OpInvokeDynamic: "invokedynamic",
	OpNew:           "new", OpNewArray: "newarray", OpANewArray: "anewarray",
	OpArrayLength: "arraylength", OpAThrow: "athrow",
	OpCheckCast: "checkcast", OpInstanceOf: "instanceof",
	OpMonitorEnter: "monitorenter", OpMonitorExit: "monitorexit",
	OpWide: "wide", OpMultiANewArray: "multianewarray",
	OpIfNull: "ifnull", OpIfNonNull: "ifnonnull",
	OpGotoW: "goto_w", OpJsrW: "jsr_w",
	OpBreakpoint: "breakpoint", OpImpdep1: "impdep1", OpImpdep2: "impdep2",
}

// mnemonic returns the name of opcode, or "" if it is entirely undefined.
func mnemonic(opcode byte) string {
	return opcodeMnemonics[opcode]
}

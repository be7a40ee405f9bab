// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/saferwall/jvmclass/classfile"
	"github.com/saferwall/jvmclass/vm"
	"github.com/spf13/cobra"
)

var (
	wantConstantPool bool
	wantMethods       bool
	wantFields        bool
	codeOf            string
	methodName        string
	methodArgs        []string
)

func prettyPrint(buf []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, buf, "", "\t"); err != nil {
		log.Println("JSON parse error:", err)
		return string(buf)
	}
	return out.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dumpOne(filename string, cmd *cobra.Command) {
	log.Printf("processing %s", filename)

	cf, err := classfile.New(filename, &classfile.Options{})
	if err != nil {
		log.Printf("error opening %s: %s", filename, err)
		return
	}
	defer cf.Close()

	if err := cf.Parse(); err != nil {
		log.Printf("error parsing %s: %s", filename, err)
		return
	}

	if wantConstantPool {
		b, _ := json.Marshal(cf.ConstantPool)
		fmt.Println(prettyPrint(b))
	}
	if wantFields {
		b, _ := json.Marshal(cf.Fields)
		fmt.Println(prettyPrint(b))
	}
	if wantMethods {
		b, _ := json.Marshal(cf.Methods)
		fmt.Println(prettyPrint(b))
	}
	if codeOf != "" {
		for _, m := range cf.Methods {
			if m.Name != codeOf {
				continue
			}
			code := m.Code()
			b, _ := json.Marshal(code)
			fmt.Println(prettyPrint(b))
		}
	}
	if len(cf.Anomalies) > 0 {
		log.Printf("%s: anomalies: %v", filename, cf.Anomalies)
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]
	if !isDirectory(filePath) {
		dumpOne(filePath, cmd)
		return
	}
	var files []string
	filepath.Walk(filePath, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	for _, f := range files {
		dumpOne(f, cmd)
	}
}

func runMethod(cmd *cobra.Command, args []string) {
	filename := args[0]

	cf, err := classfile.New(filename, &classfile.Options{})
	if err != nil {
		log.Fatalf("error opening %s: %s", filename, err)
	}
	defer cf.Close()

	if err := cf.Parse(); err != nil {
		log.Fatalf("error parsing %s: %s", filename, err)
	}

	var target *classfile.Method
	for _, m := range cf.Methods {
		if m.Name == methodName {
			target = m
			break
		}
	}
	if target == nil {
		log.Fatalf("method %q not found in %s", methodName, filename)
	}

	code := target.Code()
	if code == nil {
		log.Fatalf("method %q has no Code attribute (abstract or native)", methodName)
	}

	descriptor, err := classfile.ParseMethodDescriptor(target.Descriptor)
	if err != nil {
		log.Fatalf("bad descriptor for %q: %s", methodName, err)
	}
	returnType, err := returnTypeTag(descriptor.ReturnType)
	if err != nil {
		log.Fatalf("method %q: %s", methodName, err)
	}

	frame := vm.NewFrame(code, cf.ConstantPool, returnType, nil)
	if err := bindArguments(frame, descriptor, methodArgs); err != nil {
		log.Fatalf("binding arguments to %q: %s", methodName, err)
	}

	result, err := vm.NewInterpreter(frame).Execute()
	if err != nil {
		log.Fatalf("running %q: %s", methodName, err)
	}
	fmt.Printf("%s returned %s\n", methodName, describeResult(result, returnType))
}

func returnTypeTag(p classfile.ParamType) (vm.TypeTag, error) {
	if p.ArrayDims > 0 {
		return vm.TagArrayRef, nil
	}
	switch p.Code {
	case 'I', 'B', 'C', 'S', 'Z':
		return vm.TagInt, nil
	case 'J':
		return vm.TagLong, nil
	case 'F':
		return vm.TagFloat, nil
	case 'D':
		return vm.TagDouble, nil
	case 'L':
		return vm.TagClassRef, nil
	case 'V':
		return vm.TagVoid, nil
	default:
		return 0, fmt.Errorf("unsupported descriptor type code %q", p.Code)
	}
}

// bindArguments stores args (parsed per descriptor.Params) into the
// frame's local variable array starting at slot 0, the layout a static
// method's invocation gives its parameters (JVMS17 2.6.1).
func bindArguments(frame *vm.Frame, descriptor *classfile.MethodDescriptor, args []string) error {
	if len(args) != len(descriptor.Params) {
		return fmt.Errorf("method takes %d argument(s), got %d", len(descriptor.Params), len(args))
	}
	slot := 0
	for i, p := range descriptor.Params {
		if p.ArrayDims > 0 || p.Code == 'L' {
			return fmt.Errorf("argument %d: reference-typed parameters are not supported from the command line", i)
		}
		switch p.Code {
		case 'J':
			v, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				return fmt.Errorf("argument %d: %s", i, err)
			}
			if err := frame.Locals.Set(slot, vm.Long(v)); err != nil {
				return err
			}
			slot += 2
		case 'D':
			v, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return fmt.Errorf("argument %d: %s", i, err)
			}
			if err := frame.Locals.Set(slot, vm.Double(v)); err != nil {
				return err
			}
			slot += 2
		case 'F':
			v, err := strconv.ParseFloat(args[i], 32)
			if err != nil {
				return fmt.Errorf("argument %d: %s", i, err)
			}
			if err := frame.Locals.Set(slot, vm.Float(float32(v))); err != nil {
				return err
			}
			slot++
		default: // I, B, C, S, Z all travel as a 32-bit int local.
			v, err := strconv.ParseInt(args[i], 10, 32)
			if err != nil {
				return fmt.Errorf("argument %d: %s", i, err)
			}
			if err := frame.Locals.Set(slot, vm.Int(int32(v))); err != nil {
				return err
			}
			slot++
		}
	}
	return nil
}

func describeResult(v vm.Value, tag vm.TypeTag) string {
	switch tag {
	case vm.TagVoid:
		return "(void)"
	case vm.TagLong:
		n, _ := v.AsLong()
		return fmt.Sprintf("%d", n)
	case vm.TagFloat:
		n, _ := v.AsFloat()
		return fmt.Sprintf("%g", n)
	case vm.TagDouble:
		n, _ := v.AsDouble()
		return fmt.Sprintf("%g", n)
	default:
		n, _ := v.AsInt()
		return fmt.Sprintf("%d", n)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jvmdump",
		Short: "A Java class file parser and bytecode interpreter",
		Long:  "Loads and inspects JVM class files, and runs a documented subset of their bytecode, by Saferwall",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("jvmdump version 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [file or directory]",
		Short: "Dumps a class file's structure as JSON",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}
	dumpCmd.Flags().BoolVar(&wantConstantPool, "constant-pool", false, "dump the constant pool")
	dumpCmd.Flags().BoolVar(&wantFields, "fields", false, "dump fields")
	dumpCmd.Flags().BoolVar(&wantMethods, "methods", false, "dump methods")
	dumpCmd.Flags().StringVar(&codeOf, "code", "", "dump the named method's Code attribute")

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Runs a method through the bytecode interpreter",
		Args:  cobra.ExactArgs(1),
		Run:   runMethod,
	}
	runCmd.Flags().StringVar(&methodName, "method", "main", "method name to run")
	runCmd.Flags().StringArrayVar(&methodArgs, "arg", nil, "argument to pass to the method (repeatable)")

	rootCmd.AddCommand(versionCmd, dumpCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

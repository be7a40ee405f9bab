// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package classfile

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"golang.org/x/mod/semver"

	"github.com/saferwall/jvmclass/internal/log"
)

// ClassFileMagic is the four-byte magic number every class file begins
// with (JVMS17 4.1).
const ClassFileMagic = 0xCAFEBABE

// maxTestedMajorVersion is the newest major.minor version this decoder has
// been exercised against; anything newer is still decoded but flagged as
// an anomaly rather than rejected, mirroring how saferwall/pe treats a PE
// built for a loader feature it hasn't seen rather than refusing to parse.
const maxTestedMajorVersion = 61

// defaultMaxConstantPoolEntries is the value newFile stores in
// Options.MaxConstantPoolEntries when the caller leaves it zero: the
// largest count a u16 constant_pool_count field can hold.
const defaultMaxConstantPoolEntries = 1<<16 - 1

// Options configures class file parsing.
type Options struct {
	// Fast stops parsing after the header, constant pool, access flags,
	// this/super class indices and interfaces table, skipping fields,
	// methods and the class-level attribute table.
	Fast bool

	// MaxConstantPoolEntries is filled in with the default when zero.
	// Parse does not compare the declared constant_pool_count against it.
	MaxConstantPoolEntries uint16

	// Logger receives structured diagnostics during parsing. Nil selects
	// a default logger writing to stdout, filtered to errors only.
	Logger log.Logger
}

// File is a parsed class file (JVMS17 4.1).
type File struct {
	MinorVersion uint16 `json:"minor_version"`
	MajorVersion uint16 `json:"major_version"`

	ConstantPool *Pool `json:"constant_pool"`

	AccessFlags AccessFlags `json:"access_flags"`
	ThisClass   uint16      `json:"this_class"`
	SuperClass  uint16      `json:"super_class"`
	Interfaces  []uint16    `json:"interfaces,omitempty"`

	Fields     []*Field     `json:"fields,omitempty"`
	Methods    []*Method    `json:"methods,omitempty"`
	Attributes []*Attribute `json:"attributes,omitempty"`

	Anomalies []string `json:"anomalies,omitempty"`

	data   mmap.MMap
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// New instantiates a File by memory-mapping the class file at name.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := newFile(opts)
	file.data = data
	file.f = f
	return file, nil
}

// NewBytes instantiates a File from an in-memory buffer, used for tests
// and fuzzing where there is no backing file to map.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := newFile(opts)
	file.data = data
	return file, nil
}

func newFile(opts *Options) *File {
	file := &File{}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	if file.opts.MaxConstantPoolEntries == 0 {
		file.opts.MaxConstantPoolEntries = defaultMaxConstantPoolEntries
	}

	if file.opts.Logger == nil {
		base := log.NewStdLogger(os.Stdout)
		file.logger = log.NewHelper(log.NewFilter(base, log.FilterLevel(log.LevelError)))
	} else {
		file.logger = log.NewHelper(file.opts.Logger)
	}
	return file
}

// Close releases the memory-mapped file, if any. A File built with
// NewBytes has nothing to unmap and Close is a no-op.
func (c *File) Close() error {
	if c.f == nil {
		return nil
	}
	if c.data != nil {
		_ = c.data.Unmap()
	}
	return c.f.Close()
}

// Parse performs the full class file decode: header, constant pool,
// access flags, superclass graph, interfaces, fields, methods and
// class-level attributes, in the order JVMS17 4.1 lays the format out.
func (c *File) Parse() error {
	r := newReader(c.data)

	if err := c.parseHeader(r); err != nil {
		return err
	}

	pool, err := parseConstantPool(r)
	if err != nil {
		return err
	}
	c.ConstantPool = pool

	accessFlags, err := r.ReadU16()
	if err != nil {
		return err
	}
	c.AccessFlags = AccessFlags(accessFlags)

	c.ThisClass, err = r.ReadU16()
	if err != nil {
		return err
	}
	c.SuperClass, err = r.ReadU16()
	if err != nil {
		return err
	}

	interfacesCount, err := r.ReadU16()
	if err != nil {
		return err
	}
	c.Interfaces = make([]uint16, interfacesCount)
	for i := range c.Interfaces {
		c.Interfaces[i], err = r.ReadU16()
		if err != nil {
			return err
		}
	}

	if c.opts.Fast {
		return nil
	}

	c.Fields, err = parseFields(r, c.ConstantPool)
	if err != nil {
		return err
	}

	c.Methods, err = parseMethods(r, c.ConstantPool)
	if err != nil {
		return err
	}

	c.Attributes, err = parseAttributes(r, c.ConstantPool)
	if err != nil {
		c.logger.Warnf("class attribute parsing failed: %v", err)
		return err
	}

	return nil
}

// parseHeader reads the magic number and version fields, flagging (but
// not rejecting) a major.minor version above maxTestedMajorVersion.0,
// the newest this decoder has been tested against.
func (c *File) parseHeader(r *reader) error {
	magic, err := r.ReadU32()
	if err != nil {
		return err
	}
	if magic != ClassFileMagic {
		return ErrBadMagic
	}

	c.MinorVersion, err = r.ReadU16()
	if err != nil {
		return err
	}
	c.MajorVersion, err = r.ReadU16()
	if err != nil {
		return err
	}

	got := fmt.Sprintf("v%d.%d.0", c.MajorVersion, c.MinorVersion)
	ceiling := fmt.Sprintf("v%d.0.0", maxTestedMajorVersion)
	if semver.IsValid(got) && semver.Compare(got, ceiling) > 0 {
		c.Anomalies = append(c.Anomalies, fmt.Sprintf(
			"version %d.%d is newer than the tested ceiling %d.0",
			c.MajorVersion, c.MinorVersion, maxTestedMajorVersion))
	}

	return nil
}

// ThisClassName resolves the ThisClass constant pool index to a binary
// class name.
func (c *File) ThisClassName() (string, error) {
	return c.ConstantPool.ClassName(c.ThisClass)
}

// SuperClassName resolves the SuperClass constant pool index to a binary
// class name. A SuperClass of 0 is only valid for java/lang/Object.
func (c *File) SuperClassName() (string, error) {
	if c.SuperClass == 0 {
		return "", nil
	}
	return c.ConstantPool.ClassName(c.SuperClass)
}

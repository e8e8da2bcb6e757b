// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"slices"
	"sync"
)

// Kinds of the built-in variants.
const (
	KindLink      = "link"
	KindContainer = "container"
)

// Node is one piece of content mounted in a surface.
type Node struct {
	// Name identifies the node, e.g. "label" or "icon".
	Name string

	// Text is the node's text content, if any.
	Text string
}

// Surface is the element a glass effect is drawn over.
//
// Implementations are safe for concurrent use.
type Surface interface {
	// Kind returns the registry kind the surface was created as.
	Kind() string

	// Measure returns the current rendered box in fractional pixels.
	Measure() (width, height float64)

	// Resize sets the rendered box.
	Resize(width, height float64)

	// SetLink sets the navigation target. Variants that cannot navigate
	// ignore it.
	SetLink(href string)

	// Link returns the navigation target, or "" if there is none.
	Link() string

	// Clear removes all mounted content.
	Clear()

	// MountContent appends nodes to the mounted content.
	MountContent(nodes ...Node)

	// Content returns a copy of the mounted content.
	Content() []Node
}

// Options configure a new surface.
type Options struct {
	// Width and Height are the initial box in fractional pixels.
	Width  float64
	Height float64
}

func (o Options) validate() error {
	for _, v := range []float64{o.Width, o.Height} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidSize
		}
	}
	return nil
}

// element holds the state shared by the built-in variants.
type element struct {
	kind string

	mu      sync.RWMutex
	width   float64
	height  float64
	content []Node
}

func (e *element) Kind() string { return e.kind }

func (e *element) Measure() (float64, float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width, e.height
}

func (e *element) Resize(width, height float64) {
	e.mu.Lock()
	e.width, e.height = width, height
	e.mu.Unlock()
}

func (e *element) Clear() {
	e.mu.Lock()
	e.content = nil
	e.mu.Unlock()
}

func (e *element) MountContent(nodes ...Node) {
	e.mu.Lock()
	e.content = append(e.content, nodes...)
	e.mu.Unlock()
}

func (e *element) Content() []Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.content)
}

// Link is a surface that navigates to an href when activated.
type Link struct {
	element
	href string
}

// NewLink creates a Link with the box from opts.
func NewLink(opts Options) *Link {
	return &Link{element: element{kind: KindLink, width: opts.Width, height: opts.Height}}
}

// SetLink sets the navigation target.
func (l *Link) SetLink(href string) {
	l.mu.Lock()
	l.href = href
	l.mu.Unlock()
}

// Link returns the navigation target.
func (l *Link) Link() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.href
}

// Container is a plain surface without navigation.
type Container struct {
	element
}

// NewContainer creates a Container with the box from opts.
func NewContainer(opts Options) *Container {
	return &Container{element: element{kind: KindContainer, width: opts.Width, height: opts.Height}}
}

// SetLink is a no-op.
func (c *Container) SetLink(string) {}

// Link always returns "".
func (c *Container) Link() string { return "" }

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package family

import (
	"github.com/carhuaz/ArbolGenealogicoInca/avl"
)

// Frequency - number of members having a relation label
type Frequency struct {
	Label string
	Count int
}

// Statistics - all of the aggregate scans taken under one lock
type Statistics struct {
	Count      int
	Depth      int
	Balanced   bool
	AgeSum     int
	AgeCount   int
	AverageAge float64 // zero when AgeCount is zero
	MinimumAge int     // valid only when AgeCount > 0
	MaximumAge int
	Relations  []Frequency
}

// accumulator for one depth first sweep over the ages
type ageTotals struct {
	sum     int
	count   int
	minimum int
	maximum int
}

func (a ageTotals) merge(b ageTotals) ageTotals {
	if 0 == b.count {
		return a
	}
	if 0 == a.count {
		return b
	}
	a.sum += b.sum
	a.count += b.count
	if b.minimum < a.minimum {
		a.minimum = b.minimum
	}
	if b.maximum > a.maximum {
		a.maximum = b.maximum
	}
	return a
}

func ageScan(p *avl.Node) ageTotals {
	if nil == p {
		return ageTotals{}
	}
	age := recordOf(p).Age
	t := ageTotals{sum: age, count: 1, minimum: age, maximum: age}
	return t.merge(ageScan(p.Left())).merge(ageScan(p.Right()))
}

func relationScan(p *avl.Node, label string) int {
	if nil == p {
		return 0
	}
	n := relationScan(p.Left(), label) + relationScan(p.Right(), label)
	if label == recordOf(p).Relation {
		n += 1
	}
	return n
}

// Count - number of members, by a full sweep
func (reg *Registry) Count() int {
	reg.Lock()
	defer reg.Unlock()
	return reg.tree.CountNodes()
}

// Depth - number of levels: 0 when empty, 1 for a single member
func (reg *Registry) Depth() int {
	reg.Lock()
	defer reg.Unlock()
	return reg.tree.Depth()
}

// IsBalanced - self check that every node is AVL balanced
func (reg *Registry) IsBalanced() bool {
	reg.Lock()
	defer reg.Unlock()
	return reg.tree.IsBalanced()
}

// AgeTotals - sum of all ages and the number of ages summed
func (reg *Registry) AgeTotals() (int, int) {
	reg.Lock()
	defer reg.Unlock()
	t := ageScan(reg.tree.Root())
	return t.sum, t.count
}

// AverageAge - mean age, false for an empty registry
func (reg *Registry) AverageAge() (float64, bool) {
	sum, count := reg.AgeTotals()
	if 0 == count {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// AgeRange - youngest and oldest ages, false for an empty registry
func (reg *Registry) AgeRange() (int, int, bool) {
	reg.Lock()
	defer reg.Unlock()
	t := ageScan(reg.tree.Root())
	return t.minimum, t.maximum, t.count > 0
}

// RelationCount - number of members whose relation exactly equals label
func (reg *Registry) RelationCount(label string) int {
	reg.Lock()
	defer reg.Unlock()
	return relationScan(reg.tree.Root(), label)
}

// RelationFrequencies - RelationCount for each label, in the same order
func (reg *Registry) RelationFrequencies(labels []string) []Frequency {
	reg.Lock()
	defer reg.Unlock()
	return reg.frequencies(labels)
}

func (reg *Registry) frequencies(labels []string) []Frequency {
	f := make([]Frequency, len(labels))
	for i, label := range labels {
		f[i] = Frequency{
			Label: label,
			Count: relationScan(reg.tree.Root(), label),
		}
	}
	return f
}

// Statistics - every aggregate at once
func (reg *Registry) Statistics(labels []string) Statistics {
	reg.Lock()
	defer reg.Unlock()

	t := ageScan(reg.tree.Root())
	s := Statistics{
		Count:      reg.tree.CountNodes(),
		Depth:      reg.tree.Depth(),
		Balanced:   reg.tree.IsBalanced(),
		AgeSum:     t.sum,
		AgeCount:   t.count,
		MinimumAge: t.minimum,
		MaximumAge: t.maximum,
		Relations:  reg.frequencies(labels),
	}
	if t.count > 0 {
		s.AverageAge = float64(t.sum) / float64(t.count)
	}
	return s
}

/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package blockdag

import (
	"sort"
)

// IdSet is a set of block ids. Every element can optionally carry a data
// value of any type, elements added without one share an empty marker.
type IdSet struct {
	m map[uint]interface{}
}

// Create a new IdSet
func NewIdSet() *IdSet {
	return &IdSet{
		m: map[uint]interface{}{},
	}
}

// Return the map
func (s *IdSet) GetMap() map[uint]interface{} {
	return s.m
}

// Add one id to the set
func (s *IdSet) Add(elem uint) {
	s.m[elem] = struct{}{}
}

// Add one id along with its data value
func (s *IdSet) AddPair(elem uint, data interface{}) {
	s.m[elem] = data
}

// Remove the element
func (s *IdSet) Remove(elem uint) {
	delete(s.m, elem)
}

// Merge all elements of the other set, data values included.
func (s *IdSet) AddSet(other *IdSet) {
	if other == nil || other.IsEmpty() {
		return
	}
	for k, v := range other.m {
		s.m[k] = v
	}
}

func (s *IdSet) RemoveSet(other *IdSet) {
	if other == nil || other.IsEmpty() {
		return
	}
	for k := range other.m {
		delete(s.m, k)
	}
}

func (s *IdSet) AddList(list []uint) {
	for _, v := range list {
		s.Add(v)
	}
}

// Union returns the union with the other set as a new set, the receiver
// is left untouched.
func (s *IdSet) Union(other *IdSet) *IdSet {
	result := s.Clone()
	if s != other {
		result.AddSet(other)
	}
	return result
}

// Intersection returns the common elements as a new set. The surviving
// data values are taken from the other set.
func (s *IdSet) Intersection(other *IdSet) *IdSet {
	result := NewIdSet()
	if s == other {
		result.AddSet(s)
		return result
	}
	if other == nil {
		return result
	}
	for k, v := range other.m {
		if s.Has(k) {
			result.AddPair(k, v)
		}
	}
	return result
}

// Drop every element that is also a member of the other set.
func (s *IdSet) Exclude(other *IdSet) {
	if other == nil {
		return
	}
	for k := range other.m {
		delete(s.m, k)
	}
}

func (s *IdSet) Has(elem uint) bool {
	_, ok := s.m[elem]
	return ok
}

// HasOnly reports whether elem is the single member of the set.
func (s *IdSet) HasOnly(elem uint) bool {
	return s.Size() == 1 && s.Has(elem)
}

func (s *IdSet) Get(elem uint) interface{} {
	return s.m[elem]
}

func (s *IdSet) Size() int {
	return len(s.m)
}

func (s *IdSet) IsEmpty() bool {
	return s.Size() == 0
}

// List returns the ids in no particular order.
func (s *IdSet) List() []uint {
	list := make([]uint, 0, len(s.m))
	for k := range s.m {
		list = append(list, k)
	}
	return list
}

// SortList returns the ids ordered from small to big, or reversed.
func (s *IdSet) SortList(reverse bool) []uint {
	list := IdSlice(s.List())
	if reverse {
		sort.Sort(sort.Reverse(list))
	} else {
		sort.Sort(list)
	}
	return []uint(list)
}

// IsEqual compares membership only, data values are ignored.
func (s *IdSet) IsEqual(other *IdSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for k := range s.m {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Contain reports whether the other set is a non-empty subset of s.
func (s *IdSet) Contain(other *IdSet) bool {
	if other.IsEmpty() {
		return false
	}
	for k := range other.m {
		if !s.Has(k) {
			return false
		}
	}
	return true
}

// return a new copy
func (s *IdSet) Clone() *IdSet {
	result := NewIdSet()
	result.AddSet(s)
	return result
}

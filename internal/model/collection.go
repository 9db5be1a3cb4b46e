package model

import (
	"sort"
	"strings"
)

// Collection maps an identifier to its record. The reducers below never
// mutate their input; each returns a fresh map plus whether anything changed.
type Collection map[string]ToDo

type Entry struct {
	Key  string
	ToDo ToDo
}

func (c Collection) clone() Collection {
	out := make(Collection, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	return out
}

func Add(c Collection, id, text string, category Category) (Collection, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.TrimSpace(id) == "" || !category.IsValid() {
		return c, false
	}
	if _, exists := c[id]; exists {
		return c, false
	}
	out := c.clone()
	out[id] = ToDo{Text: trimmed, Category: category}
	return out, true
}

func ToggleComplete(c Collection, key string) (Collection, bool) {
	item, ok := c[key]
	if !ok {
		return c, false
	}
	out := c.clone()
	item.Complete = !item.Complete
	out[key] = item
	return out, true
}

func Edit(c Collection, key, text string) (Collection, bool) {
	item, ok := c[key]
	if !ok {
		return c, false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == item.Text {
		return c, false
	}
	out := c.clone()
	item.Text = trimmed
	out[key] = item
	return out, true
}

func Delete(c Collection, key string) (Collection, bool) {
	if _, ok := c[key]; !ok {
		return c, false
	}
	out := c.clone()
	delete(out, key)
	return out, true
}

func Keys(c Collection) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Filter returns the records of one category in key order.
func Filter(c Collection, category Category) []Entry {
	out := make([]Entry, 0, len(c))
	for _, k := range Keys(c) {
		if c[k].Category == category {
			out = append(out, Entry{Key: k, ToDo: c[k]})
		}
	}
	return out
}

func Counts(c Collection, category Category) (done int, total int) {
	for _, item := range c {
		if item.Category != category {
			continue
		}
		total++
		if item.Complete {
			done++
		}
	}
	return done, total
}

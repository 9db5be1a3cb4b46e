package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("model: invalid category")
	ErrEmptyText       = errors.New("model: to-do text is required")
)

type Category string

const (
	CategoryWork   Category = "Work"
	CategoryTravel Category = "Travel"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryTravel:
		return true
	default:
		return false
	}
}

// Toggle returns the other tab.
func (c Category) Toggle() Category {
	if c == CategoryTravel {
		return CategoryWork
	}
	return CategoryTravel
}

func (c Category) Placeholder() string {
	if c == CategoryTravel {
		return "Where do you want to go?"
	}
	return "Add a To Do"
}

func ParseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "work", "w":
		return CategoryWork, nil
	case "travel", "t":
		return CategoryTravel, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
}

// CategoryFromWorking maps the persisted "working" flag onto a tab.
func CategoryFromWorking(working bool) Category {
	if working {
		return CategoryWork
	}
	return CategoryTravel
}

func (c Category) Working() bool {
	return c != CategoryTravel
}

type ToDo struct {
	Text     string
	Category Category
	Complete bool
}

func (t ToDo) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	return nil
}

// toDoJSON is the stored shape: {"text": ..., "working": bool, "complete": bool}.
type toDoJSON struct {
	Text     *string `json:"text"`
	Working  *bool   `json:"working"`
	Complete bool    `json:"complete"`
}

func (t ToDo) MarshalJSON() ([]byte, error) {
	text := t.Text
	working := t.Category.Working()
	return json.Marshal(toDoJSON{Text: &text, Working: &working, Complete: t.Complete})
}

func (t *ToDo) UnmarshalJSON(data []byte) error {
	var raw toDoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Text == nil {
		return errors.New("model: to-do is missing text")
	}
	if raw.Working == nil {
		return errors.New("model: to-do is missing working flag")
	}
	*t = ToDo{
		Text:     *raw.Text,
		Category: CategoryFromWorking(*raw.Working),
		Complete: raw.Complete,
	}
	return nil
}

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tabdo/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeEdit   Type = "edit"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeTab    Type = "tab"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type EditArgs struct {
	Row  int
	Text string
}

// RowArgs addresses a to-do by its 1-based row in the visible list.
type RowArgs struct {
	Row int
}

type TabArgs struct {
	Category model.Category
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Edit   *EditArgs
	Done   *RowArgs
	Delete *RowArgs
	Tab    *TabArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	// rest keeps the user's spacing for free-text arguments.
	rest := strings.TrimSpace(raw[len(parts[0]):])

	switch head {
	case "add", "a":
		return parseAdd(input, rest)
	case "edit", "e":
		return parseEdit(input, rest)
	case "done", "x":
		return parseRow(input, TypeDone, args)
	case "delete", "rm":
		return parseRow(input, TypeDelete, args)
	case "tab":
		return parseTab(input, args)
	case "work", "travel":
		return parseTab(input, []string{head})
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, text string) (Command, error) {
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a row and new text"}
	}
	row, err := parseRowNumber(fields[0])
	if err != nil {
		return Command{}, err
	}
	text := strings.TrimSpace(rest[len(fields[0]):])
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{Row: row, Text: text}}, nil
}

func parseRow(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires one row number", typ)}
	}
	row, err := parseRowNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeDone {
		cmd.Done = &RowArgs{Row: row}
	} else {
		cmd.Delete = &RowArgs{Row: row}
	}
	return cmd, nil
}

func parseTab(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tab requires work or travel"}
	}
	category, err := model.ParseCategory(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeTab, Raw: raw, Tab: &TabArgs{Category: category}}, nil
}

func parseRowNumber(s string) (int, error) {
	row, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || row < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row: %s", s)}
	}
	return row, nil
}
